// Package dotfile reads campus maps written as DOT-style edge lines:
//
//	digraph campus {
//	    "Memorial Union" -> "Science Hall" [seconds="105.8"];
//	}
//
// Only edge lines become records; an edge line must end with ";".
// Everything else is ignored.
package dotfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusmap/navigator"
)

// edgeLine matches `"<src>" -> "<dst>" [seconds="<w>"];`, whitespace tolerant.
var edgeLine = regexp.MustCompile(`^\s*"([^"]+)"\s*->\s*"([^"]+)"\s*\[\s*seconds\s*=\s*"([^"]*)"\s*\]\s*;\s*$`)

// ParseStats counts what a parse did with each line.
type ParseStats struct {
	Lines   int // lines read
	Records int // edge lines turned into records
	Skipped int // lines with "->" that were not a valid edge line
}

// Parse reads every edge line from r.
func Parse(r io.Reader) ([]navigator.Record, error) {
	records, _, err := ParseWithStats(r)
	return records, err
}

// ParseWithStats is Parse plus line counters.
// Read errors are returned with the line number reached.
func ParseWithStats(r io.Reader) ([]navigator.Record, ParseStats, error) {
	var (
		stats   ParseStats
		records []navigator.Record
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()

		rec, ok := parseLine(line)
		if !ok {
			if strings.Contains(line, "->") {
				stats.Skipped++
			}
			continue
		}
		records = append(records, rec)
		stats.Records++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("dotfile: line %d: %w", stats.Lines+1, err)
	}

	return records, stats, nil
}

// Load opens path and parses it.
func Load(path string) ([]navigator.Record, ParseStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("dotfile: could not open graph file: %w", err)
	}
	defer file.Close()

	return ParseWithStats(file)
}

func parseLine(line string) (navigator.Record, bool) {
	m := edgeLine.FindStringSubmatch(line)
	if m == nil {
		return navigator.Record{}, false
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(m[3]), 64)
	if err != nil {
		return navigator.Record{}, false
	}

	src, dst := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if src == "" || dst == "" {
		return navigator.Record{}, false
	}

	return navigator.Record{Source: src, Destination: dst, Seconds: seconds}, true
}
