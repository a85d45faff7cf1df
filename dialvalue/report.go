// File: report.go
// Role: Read-only diagnostics of a parameter's value operations.
// Policy:
//   - Never mutates the scene; host panics are recorded as problems.
//   - Malformed operations and dependency cycles are reported as data.

package dialvalue

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/GeoffIX/PoserLib/depgraph"
	"github.com/GeoffIX/PoserLib/host"
)

const indent = "    "

// OpReport describes one attached value operation.
type OpReport struct {
	Index    int
	Type     host.ValueOpType
	Callback bool

	// Corrupt is set when the operation has no source parameter.
	Corrupt bool

	SourceFigure string
	SourceActor  string
	SourceParm   string

	Delta float64
	Keys  []host.ControlPoint
}

// Report describes a parameter and its value operations.
type Report struct {
	Figure string
	Actor  string
	Parm   string
	Value  float64
	Ops    []OpReport

	// Cycles lists the dependency cycles reachable upstream of the
	// parameter, as vertex IDs with the first vertex repeated at the end.
	Cycles [][]string

	// Problems collects host errors met while reading.
	Problems []string
}

// WellFormed reports whether every non-callback operation has a source.
func (r Report) WellFormed() bool {
	for _, op := range r.Ops {
		if op.Corrupt {
			return false
		}
	}

	return true
}

// Corrupt returns the indexes of operations without a source.
func (r Report) Corrupt() []int {
	var out []int
	for _, op := range r.Ops {
		if op.Corrupt {
			out = append(out, op.Index)
		}
	}

	return out
}

// Describe inspects p without changing anything.
func Describe(p host.Parameter) (rep Report) {
	if p == nil {
		rep.Problems = append(rep.Problems, ErrNilParameter.Error())
		return rep
	}
	defer func() {
		if r := recover(); r != nil {
			rep.Problems = append(rep.Problems, fmt.Sprintf("host panic: %v", r))
		}
	}()

	rep.Figure, rep.Actor, rep.Parm = identity(p)
	rep.Value = p.Value()

	for i, op := range p.ValueOperations() {
		or := OpReport{Index: i, Type: op.Type(), Callback: op.Type().IsCallback()}
		if !or.Callback {
			src := op.SourceParameter()
			if src == nil {
				or.Corrupt = true
			} else {
				or.SourceFigure, or.SourceActor, or.SourceParm = identity(src)
				switch or.Type {
				case host.ValueOpDeltaAdd:
					or.Delta = op.Delta()
				case host.ValueOpKey:
					for k := 0; k < op.NumKeys(); k++ {
						key, val, err := op.GetKey(k)
						if err != nil {
							rep.Problems = append(rep.Problems, fmt.Sprintf("operation %d key %d: %v", i, k, err))
							break
						}
						or.Keys = append(or.Keys, host.ControlPoint{Key: key, Value: val})
					}
				}
			}
		}
		rep.Ops = append(rep.Ops, or)
	}

	g := depgraph.Upstream(p)
	if _, cycles, err := depgraph.DetectCycles(g); err == nil {
		rep.Cycles = cycles
	}

	return rep
}

// DescribeTo writes the text form of Describe(p) to w and reports whether the
// operations are well formed. Write errors are ignored.
func DescribeTo(w io.Writer, p host.Parameter) bool {
	rep := Describe(p)
	_, _ = io.WriteString(w, rep.String())

	return rep.WellFormed() && p != nil
}

// String renders the report in the indented scene-file style.
func (r Report) String() string {
	var b strings.Builder
	plural := "s"
	if len(r.Ops) == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, "%s%s, %s has %d value operation%s\n", indent, r.Actor, r.Parm, len(r.Ops), plural)

	for _, op := range r.Ops {
		switch {
		case op.Callback:
			fmt.Fprintf(&b, "%sPython CallBack Value Operation\n", indent+indent)
		case op.Corrupt:
			fmt.Fprintf(&b, "***WARNING***%s%v SourceParameter is nil\n", indent+indent, op.Type)
		default:
			in2, in3 := indent+indent, indent+indent+indent
			fmt.Fprintf(&b, "%s%v\n%s%s\n%s%s\n%s%s\n", in2, op.Type,
				in3, op.SourceFigure, in3, op.SourceActor, in3, op.SourceParm)
			switch op.Type {
			case host.ValueOpDeltaAdd:
				fmt.Fprintf(&b, "%sdeltaAddDelta %0.6f\n", in2, op.Delta)
			case host.ValueOpKey:
				fmt.Fprintf(&b, "%sbeginValueKeys\n", in3)
				for _, k := range op.Keys {
					fmt.Fprintf(&b, "%svalueKey %g %g\n", in3+indent, k.Key, k.Value)
				}
				fmt.Fprintf(&b, "%sendValueKeys\n", in3)
			}
		}
	}
	for _, c := range r.Cycles {
		fmt.Fprintf(&b, "***WARNING***%sdependency cycle %s\n", indent, strings.Join(c, " -> "))
	}
	for _, pr := range r.Problems {
		fmt.Fprintf(&b, "***WARNING***%s%s\n", indent, pr)
	}

	return b.String()
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("figure", r.Figure),
		slog.String("actor", r.Actor),
		slog.String("parameter", r.Parm),
		slog.Float64("value", r.Value),
		slog.Int("operations", len(r.Ops)),
		slog.Any("corrupt", r.Corrupt()),
		slog.Int("cycles", len(r.Cycles)),
		slog.Bool("well_formed", r.WellFormed()),
	)
}
