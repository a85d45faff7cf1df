package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/GeoffIX/PoserLib/dialvalue"
	"github.com/GeoffIX/PoserLib/internal/logging"
	"github.com/GeoffIX/PoserLib/scene"
)

// flags shared by every subcommand.
type flags struct {
	scenePath string
	actor     string
	parm      string
	first     int
	last      int
	legacy    bool
	metrics   bool
	logLevel  string
	logFormat string
	prefsDir  string
}

// app is the per-invocation state built in PersistentPreRunE.
type app struct {
	f     *flags
	log   *slog.Logger
	reg   *prometheus.Registry
	stats *dialvalue.Metrics
	scene *scene.Scene
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	a := &app{f: f}

	root := &cobra.Command{
		Use:   "dialdump",
		Short: "Inspect dial values and value operations of a scene fixture",
		Long: `dialdump loads a YAML scene fixture into the in-memory host and runs the
dial value operations against it.

Use --legacy to simulate a host without the optional queries, which forces
the extract/read/restore path.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if f.metrics && a.reg != nil {
				writeMetrics(cmd.OutOrStdout(), a.reg)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.scenePath, "scene", "", "scene fixture (YAML)")
	pf.StringVar(&f.actor, "actor", "", "actor name")
	pf.StringVar(&f.parm, "parm", "", "parameter name")
	pf.IntVar(&f.first, "first", 0, "first frame (zero-based)")
	pf.IntVar(&f.last, "last", -1, "last frame, inclusive (default: last scene frame)")
	pf.BoolVar(&f.legacy, "legacy", false, "simulate a host without optional queries")
	pf.BoolVar(&f.metrics, "metrics", false, "print protocol counters after the command")
	pf.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "auto", "log format: text, json or auto")
	pf.StringVar(&f.prefsDir, "prefs-dir", "", "host preference directory (units command)")

	root.AddCommand(
		newDescribeCmd(a),
		newDialCmd(a),
		newRangeCmd(a),
		newAnimationCmd(a),
		newEstimateCmd(a),
		newGraphCmd(a),
		newImpactCmd(a),
		newProbeCmd(a),
		newUnitsCmd(a),
		newCustomDataCmd(a),
		newAnimSetsCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
	)

	return root
}

func (a *app) init(stderr io.Writer) error {
	level, err := logging.ParseLevel(a.f.logLevel)
	if err != nil {
		return err
	}
	json, err := logging.ParseFormat(a.f.logFormat, stderr)
	if err != nil {
		return err
	}
	a.log = logging.New(logging.Config{Level: level, JSON: json, Writer: stderr, Component: "dialdump"})
	a.reg = prometheus.NewRegistry()
	a.stats = dialvalue.NewMetrics(a.reg)

	return nil
}

// loadScene loads the fixture named by --scene once per invocation.
func (a *app) loadScene() (*scene.Scene, error) {
	if a.scene != nil {
		return a.scene, nil
	}
	if a.f.scenePath == "" {
		return nil, fmt.Errorf("dialdump: --scene is required")
	}
	s, err := a.loadFile(a.f.scenePath)
	if err != nil {
		return nil, err
	}
	a.scene = s

	return s, nil
}

// loadFile loads a fixture, applying --legacy. Safe for concurrent use.
func (a *app) loadFile(path string) (*scene.Scene, error) {
	var opts []scene.Option
	if a.f.legacy {
		opts = append(opts,
			scene.WithoutUnaffectedValue(),
			scene.WithoutFrameFlags(),
			scene.WithoutHasKeyAtFrame(),
			scene.WithoutInsert(),
			scene.WithoutControlProp(),
			scene.WithoutAnimSetNames())
	}
	s, err := scene.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("scene loaded", slog.String("path", path), slog.Int("actors", len(s.Actors())))

	return s, nil
}

// target loads the scene and resolves --actor/--parm.
func (a *app) target() (*scene.Scene, *scene.Parameter, error) {
	s, err := a.loadScene()
	if err != nil {
		return nil, nil, err
	}
	if a.f.actor == "" || a.f.parm == "" {
		return nil, nil, fmt.Errorf("dialdump: --actor and --parm are required")
	}
	p, err := s.Lookup(a.f.actor, a.f.parm)
	if err != nil {
		return nil, nil, err
	}

	return s, p, nil
}

// frames returns the --first/--last range, defaulting last to the final
// scene frame.
func (a *app) frames(s *scene.Scene) (int, int) {
	last := a.f.last
	if last < 0 {
		last = s.NumFrames() - 1
	}

	return a.f.first, last
}

func (a *app) options() []dialvalue.Option {
	return []dialvalue.Option{dialvalue.WithLogger(a.log), dialvalue.WithMetrics(a.stats)}
}

func (a *app) resolver(s *scene.Scene) *dialvalue.Resolver {
	return dialvalue.New(dialvalue.NewProbe(s, dialvalue.WithLogger(a.log)), a.options()...)
}

// writeMetrics prints every counter in the registry as "name{labels} value".
func writeMetrics(w io.Writer, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		return
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var pairs []string
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			labels := ""
			if len(pairs) > 0 {
				labels = "{" + strings.Join(pairs, ",") + "}"
			}
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
		}
	}
}
