package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/GeoffIX/PoserLib/dialvalue"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Describe a parameter again every time the fixture file changes",
		Long: `Prints the report and dial value of --actor/--parm, then reloads the
fixture and prints them again whenever the file is written. Stops on
interrupt. Reload errors are logged and watching continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := a.describeDial(out); err != nil {
				return err
			}

			return watchFile(cmd.Context(), a.f.scenePath, a.log, func() error {
				a.scene = nil
				return a.describeDial(out)
			})
		},
	}
}

// describeDial prints the report and dial value of the target parameter.
func (a *app) describeDial(w io.Writer) error {
	s, p, err := a.target()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "--- %s\n", a.f.scenePath)
	fmt.Fprint(w, dialvalue.Describe(p).String())
	fmt.Fprintf(w, "dial %g\n", a.resolver(s).DialValue(p))

	return nil
}

// watchFile calls onChange after every write to path until ctx is done.
// The parent directory is watched so editors that replace the file are
// followed.
func watchFile(ctx context.Context, path string, log *slog.Logger, onChange func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("dialdump: watch: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("dialdump: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if err := onChange(); err != nil {
				log.Warn("reload failed", slog.String("path", path), slog.Any("error", err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", slog.Any("error", err))
		}
	}
}
