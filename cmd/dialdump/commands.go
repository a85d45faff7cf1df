package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GeoffIX/PoserLib/animset"
	"github.com/GeoffIX/PoserLib/customdata"
	"github.com/GeoffIX/PoserLib/depgraph"
	"github.com/GeoffIX/PoserLib/dialvalue"
	"github.com/GeoffIX/PoserLib/prefs"
	"github.com/GeoffIX/PoserLib/units"
)

// errMalformed is returned by describe when a parameter has corrupt
// operations or sits on a dependency cycle.
var errMalformed = errors.New("dialdump: value operations are not well formed")

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print a parameter's value operations",
		Long: `Prints the value, every value operation and any dependency cycle of the
parameter selected by --actor and --parm. Exits non-zero when an operation
has no source parameter or the parameter sits on a cycle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, p, err := a.target()
			if err != nil {
				return err
			}
			rep := dialvalue.Describe(p)
			a.log.Info("described", slog.Any("report", rep))
			fmt.Fprint(cmd.OutOrStdout(), rep.String())
			if !rep.WellFormed() {
				return errMalformed
			}

			return nil
		},
	}
}

func newDialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dial",
		Short: "Print the dial value at the active frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, p, err := a.target()
			if err != nil {
				return err
			}
			v, err := a.resolver(s).ResolveDialValue(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %g\n", p.InternalName(), v)

			return nil
		},
	}
}

func newRangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "range",
		Short: "Print dial values over --first..--last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, p, err := a.target()
			if err != nil {
				return err
			}
			first, last := a.frames(s)
			values, err := a.resolver(s).DialValueRange(p, first, last)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, v := range values {
				fmt.Fprintf(out, "%d %g\n", first+i, v)
			}

			return nil
		},
	}
}

func newAnimationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "animation",
		Short: "Print dial values with keyframe flags over --first..--last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, p, err := a.target()
			if err != nil {
				return err
			}
			first, last := a.frames(s)
			keys, err := a.resolver(s).DialAnimation(p, first, last)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintf(out, "%d %g %s\n", k.Frame, k.Value, flagString(k))
			}

			return nil
		},
	}
}

// flagString renders the set keyframe flags, e.g. "key,spline", or "-".
func flagString(k dialvalue.KeyFrame) string {
	var parts []string
	if k.HasKey {
		parts = append(parts, "key")
	}
	if k.Constant {
		parts = append(parts, "constant")
	}
	if k.Linear {
		parts = append(parts, "linear")
	}
	if k.Spline {
		parts = append(parts, "spline")
	}
	if k.SplineBreak {
		parts = append(parts, "break")
	}
	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, ",")
}

func newEstimateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Print the analytic dial estimate next to the computed value",
		Long: `Inverts the value operations of the parameter without touching the scene.
The estimate can differ from the dial value when operations are not
invertible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, p, err := a.target()
			if err != nil {
				return err
			}
			est := dialvalue.Estimate(p, a.options()...)
			fmt.Fprintf(cmd.OutOrStdout(), "value %g\nestimate %g\n", p.Value(), est)

			return nil
		},
	}
}

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the scene's parameter dependency graph",
		Long: `Prints every dependency edge, unresolved operations, and either an
evaluation order or the dependency cycles that prevent one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadScene()
			if err != nil {
				return err
			}
			g := depgraph.FromScene(s)
			out := cmd.OutOrStdout()
			for _, e := range g.Edges() {
				fmt.Fprintf(out, "%s -> %s (%v #%d)\n", e.From, e.To, e.Op, e.Index)
			}
			for _, d := range g.Dangling {
				fmt.Fprintf(out, "unresolved %s operation %d (%v)\n", d.Vertex, d.Index, d.Op)
			}

			cyclic, cycles, err := depgraph.DetectCycles(g)
			if err != nil {
				return err
			}
			if cyclic {
				for _, c := range cycles {
					fmt.Fprintf(out, "cycle %s\n", strings.Join(c, " -> "))
				}
				return depgraph.ErrCycleDetected
			}
			order, err := depgraph.TopologicalSort(g, depgraph.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "order:")
			for _, id := range order {
				fmt.Fprintf(out, "  %s\n", id)
			}

			return nil
		},
	}
}

func newImpactCmd(a *app) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "impact",
		Short: "List the parameters driven by a parameter, directly or transitively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, p, err := a.target()
			if err != nil {
				return err
			}
			r, err := depgraph.Downstream(depgraph.FromScene(s), depgraph.ID(p),
				depgraph.WithMaxDepth(depth), depgraph.WithReachContext(cmd.Context()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range r.Order[1:] {
				fmt.Fprintf(out, "%d %s\n", r.Depth[id], strings.Join(r.Path(id), " -> "))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum operation hops (0: unlimited)")

	return cmd
}

func newProbeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print the optional queries the host supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadScene()
			if err != nil {
				return err
			}
			c := dialvalue.ProbeCapabilities(s, dialvalue.WithLogger(a.log))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "unaffected_value %t\n", c.UnaffectedValue)
			fmt.Fprintf(out, "frame_flags %t\n", c.FrameFlags)
			fmt.Fprintf(out, "has_key_at_frame %t\n", c.HasKeyAtFrame)
			fmt.Fprintf(out, "control_prop %t\n", c.ControlProp)
			fmt.Fprintf(out, "animset_names %t\n", c.AnimSetNames)
			fmt.Fprintf(out, "insert_value_operation %t\n", c.InsertValueOperation)

			return nil
		},
	}
}

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units <pnu>",
		Short: "Convert a length in Poser native units to the configured UI unit",
		Long: `Reads the unit settings from the host preference file in --prefs-dir
and converts the argument. Without --prefs-dir the defaults (PNU) apply.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pnu, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("dialdump: units: %w", err)
			}
			settings := units.DefaultSettings()
			if a.f.prefsDir != "" {
				p := prefs.New(a.f.prefsDir, "", "", 0)
				units.Register(p)
				path, err := p.Load(false)
				if err != nil {
					return err
				}
				a.log.Debug("preferences loaded", slog.String("path", path))
				if settings, err = units.LoadSettings(p); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g PNU = %g %s (%g mm)\n",
				pnu, settings.PNUToUnits(pnu), settings.Type.Abbreviation(), units.PNUToMillimetres(pnu))

			return nil
		},
	}
}

func newCustomDataCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "customdata",
		Short: "List the indexed custom data of every actor and figure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadScene()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range customdata.ListScene(s) {
				fmt.Fprintf(out, "%s %s=%q\n", r.Object, r.Key, r.Value)
			}

			return nil
		},
	}
}

func newAnimSetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "animsets",
		Short: "List animation sets and their parameters by actor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadScene()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range animset.Names(s) {
				fmt.Fprintln(out, name)
				groups, err := animset.ActorParameters(s, name)
				if err != nil {
					return err
				}
				for _, g := range groups {
					names := make([]string, len(g.Params))
					for i, p := range g.Params {
						names[i] = p.InternalName()
					}
					fmt.Fprintf(out, "  %s: %s\n", g.Actor.InternalName(), strings.Join(names, " "))
				}
			}

			return nil
		},
	}
}
