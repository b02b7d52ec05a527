// Command campusmap answers shortest-path questions about a campus map.
//
// Usage:
//
//	campusmap locations
//	campusmap path <from> <to>
//	campusmap furthest <from>
//	campusmap serve
//
// The map file, listen address, log level and HTTP timeouts come from
// CAMPUSMAP_* environment variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/campusmap/dotfile"
	"github.com/katalvlaran/campusmap/navigator"
	"github.com/katalvlaran/campusmap/server"
)

const usage = `usage:
  campusmap locations
  campusmap path <from> <to>
  campusmap furthest <from>
  campusmap serve`

var errUsage = errors.New(usage)

// arity maps each subcommand to its argument count.
var arity = map[string]int{
	"locations": 0,
	"path":      2,
	"furthest":  1,
	"serve":     0,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run executes one subcommand. Results go to stdout, logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	if n, ok := arity[args[0]]; !ok || n != len(args)-1 {
		return errUsage
	}

	conf, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, conf.LogLevel)
	if err != nil {
		return err
	}

	nav, err := load(conf.GraphFile, logger)
	if err != nil {
		return err
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "locations":
		for _, l := range nav.Locations() {
			fmt.Fprintln(stdout, l)
		}
	case "path":
		route, err := nav.Route(rest[0], rest[1])
		if err != nil {
			return err
		}
		if route.Empty() {
			fmt.Fprintf(stdout, "no path from %q to %q\n", rest[0], rest[1])
			return nil
		}
		fmt.Fprintln(stdout, route)
		fmt.Fprintf(stdout, "total: %gs\n", route.Total)
	case "furthest":
		far, err := nav.MostDistant(rest[0])
		if err != nil {
			return err
		}
		if far == navigator.NoLocation {
			fmt.Fprintf(stdout, "nothing is reachable from %q\n", rest[0])
			return nil
		}
		fmt.Fprintf(stdout, "%s (%gs)\n", far, nav.TotalTime(rest[0], far))
	case "serve":
		return serve(ctx, conf, nav, logger)
	default:
		return errUsage
	}

	return nil
}

// load reads the map file into a fresh Navigator.
func load(path string, logger *slog.Logger) (*navigator.Navigator, error) {
	records, stats, err := dotfile.Load(path)
	if err != nil {
		return nil, err
	}
	if stats.Skipped > 0 {
		logger.Warn("skipped malformed edge lines", slog.String("file", path), slog.Int("skipped", stats.Skipped))
	}

	nav := navigator.New(navigator.WithLogger(logger), navigator.WithCapacity(max(len(records), 1)))
	if err = nav.LoadGraph(records); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Info("campus map loaded",
		slog.String("file", path),
		slog.Int("records", stats.Records),
		slog.Int("locations", nav.Len()),
	)

	return nav, nil
}

// serve runs the HTTP API until ctx is cancelled.
func serve(ctx context.Context, conf Config, nav *navigator.Navigator, logger *slog.Logger) error {
	srv := server.New(nav, logger).HTTPServer(conf.ListenAddr, conf.ReadTimeout, conf.WriteTimeout)

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", conf.ListenAddr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped")

	return nil
}
