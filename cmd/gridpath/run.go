package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/runner"
)

var errNoMapName = errors.New("no map name given")

// prompt asks for a map file name on out and reads one line from in.
func prompt(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprint(out, "Map name (e.g. map2.txt): "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read map name: %w", err)
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", errNoMapName
	}
	return name, nil
}

// mapPath resolves name against dir unless it is already absolute.
func mapPath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// run solves every named map, at most cfg.Parallel at a time, and writes the
// reports to out in argument order. The first failing map aborts the batch.
func run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, names []string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	algs, err := runner.Algorithms(cfg.Algorithms, cfg.ShowsOverlay)
	if err != nil {
		return err
	}

	var opts []runner.Option
	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New()
		opts = append(opts, runner.WithMetrics(m))
	}
	r := runner.New(log, algs, opts...)

	reports := make([]bytes.Buffer, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallel)
	for i, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := mapPath(cfg.MapsDir, name)
			log.WithField("path", path).Debug("loading map")
			g, err := grid.Load(path)
			if err != nil {
				return err
			}
			outcomes, err := r.Solve(name, g)
			if err != nil {
				return err
			}
			if len(names) > 1 {
				fmt.Fprintf(&reports[i], "=== %s ===\n", name)
			}
			return runner.WriteReport(&reports[i], outcomes)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i := range reports {
		if _, err := reports[i].WriteTo(out); err != nil {
			return err
		}
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.WithField("path", cfg.MetricsFile).Info("metrics written")
	}
	return nil
}
