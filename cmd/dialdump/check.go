package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/GeoffIX/PoserLib/depgraph"
	"github.com/GeoffIX/PoserLib/dialvalue"
)

// checkResult summarises one fixture file.
type checkResult struct {
	path       string
	err        error
	parameters int
	operations int
	corrupt    []string
	cycles     [][]string
}

func (r checkResult) ok() bool {
	return r.err == nil && len(r.corrupt) == 0 && len(r.cycles) == 0
}

func newCheckCmd(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "check <scene.yaml>...",
		Short: "Check fixture files for corrupt operations and dependency cycles",
		Long: `Loads every file, reports operations without a source parameter and
dependency cycles, and exits non-zero when any file fails to load or is not
well formed. Files are checked concurrently; results print in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.checkFiles(cmd.Context(), args, jobs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				switch {
				case r.err != nil:
					fmt.Fprintf(out, "%s: error: %v\n", r.path, r.err)
				case r.ok():
					fmt.Fprintf(out, "%s: ok (%d parameters, %d operations)\n", r.path, r.parameters, r.operations)
				default:
					fmt.Fprintf(out, "%s: %d corrupt operations, %d cycles\n", r.path, len(r.corrupt), len(r.cycles))
					for _, c := range r.corrupt {
						fmt.Fprintf(out, "  corrupt %s\n", c)
					}
				}
				if !r.ok() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errMalformed, failed, len(results))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&jobs, "jobs", runtime.GOMAXPROCS(0), "files checked in parallel")

	return cmd
}

// checkFiles checks paths with at most jobs files in flight. Per-file
// failures are recorded in the results; only cancellation is returned.
func (a *app) checkFiles(ctx context.Context, paths []string, jobs int) ([]checkResult, error) {
	results := make([]checkResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.checkFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *app) checkFile(path string) checkResult {
	r := checkResult{path: path}
	s, err := a.loadFile(path)
	if err != nil {
		r.err = err
		return r
	}

	for _, actor := range s.Actors() {
		for _, p := range actor.Parameters() {
			r.parameters++
			r.operations += p.NumValueOperations()
			for _, op := range dialvalue.Describe(p).Ops {
				if op.Corrupt {
					r.corrupt = append(r.corrupt, fmt.Sprintf("%s operation %d (%v)", depgraph.ID(p), op.Index, op.Type))
				}
			}
		}
	}

	_, cycles, err := depgraph.DetectCycles(depgraph.FromScene(s))
	if err != nil {
		r.err = err
		return r
	}
	r.cycles = cycles
	a.log.Debug("checked", slog.String("path", path), slog.Bool("ok", r.ok()))

	return r
}
