package hashmap_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusmap/hashmap"
)

// ExampleMap shows the duplicate-key policy and growth on insertion.
func ExampleMap() {
	m := hashmap.New[string, float64](hashmap.String, hashmap.WithCapacity(2))

	_ = m.Put("Jorns Hall", 60)
	err := m.Put("Jorns Hall", 90)
	fmt.Println(errors.Is(err, hashmap.ErrDuplicateKey))

	v, _ := m.Get("Jorns Hall")
	fmt.Println(v, m.Len(), m.Capacity())

	_ = m.Put("Science Hall", 105.8)
	fmt.Println(m.Len(), m.Capacity())

	// Output:
	// true
	// 60 1 2
	// 2 4
}
