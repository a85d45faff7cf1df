// File: extract.go
// Role: Extract/Restore, the value-operation transaction around a dial read.
// Policy:
//   - Every operation is validated before the first deletion; a corrupt one
//     leaves the parameter untouched.
//   - Deletion runs in reverse index order so earlier indexes stay valid.
//   - Callbacks are recorded but never removed or rebuilt.
//   - Restore is best effort and reports every failure at the end.

package dialvalue

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/GeoffIX/PoserLib/host"
)

// Extract removes every non-callback value operation from p and returns a
// snapshot from which Restore can rebuild them. A parameter without
// operations yields an empty snapshot and no host calls.
//
// Errors:
//   - ErrNilParameter when p is nil.
//   - *CorruptDependencyError when any operation has no source; nothing has
//     been deleted.
//   - *HostOperationError when the host rejects a read or a delete; the
//     operations removed so far are restored first, and any failure of that
//     rollback is joined to the returned error.
func Extract(p host.Parameter, opts ...Option) (*Snapshot, error) {
	o := buildOptions(opts)
	return extract(p, o)
}

// Restore rebuilds the operations recorded in snap on p, in forward order.
// When the host can insert at an index the original positions relative to
// callbacks are kept; otherwise rebuilt operations are appended after them.
// A failed insert switches to appending for the remaining operations.
// A nil or empty snapshot is a no-op.
func Restore(p host.Parameter, snap *Snapshot, opts ...Option) error {
	o := buildOptions(opts)
	return restore(p, snap, o)
}

func extract(p host.Parameter, o Options) (*Snapshot, error) {
	if p == nil {
		return nil, ErrNilParameter
	}
	snap := &Snapshot{Param: p}
	if p.NumValueOperations() == 0 {
		return snap, nil
	}

	for i, op := range p.ValueOperations() {
		rec, err := capture(p, i, op)
		if err != nil {
			var corrupt *CorruptDependencyError
			if errors.As(err, &corrupt) {
				o.Metrics.corrupt()
				o.Logger.Warn("corrupt value operation",
					slog.String("parameter", corrupt.Parm),
					slog.String("actor", corrupt.Actor),
					slog.Int("index", i),
					slog.String("op", corrupt.Op.String()))
			}
			return nil, err
		}
		snap.Records = append(snap.Records, rec)
	}

	for i := len(snap.Records) - 1; i >= 0; i-- {
		rec := snap.Records[i]
		if rec.IsCallback() {
			o.Logger.Debug("keep callback", slog.String("parameter", p.InternalName()), slog.Int("index", rec.Index))
			continue
		}
		if err := p.DeleteValueOperation(rec.Index); err != nil {
			herr := hostError("delete", p, rec.Index, err)
			rollback := &Snapshot{Param: p, Records: snap.Records[i+1:]}
			if rerr := restore(p, rollback, o); rerr != nil {
				return nil, errors.Join(herr, rerr)
			}
			return nil, herr
		}
		o.Logger.Debug("removed value operation",
			slog.String("parameter", p.InternalName()),
			slog.Int("index", rec.Index),
			slog.String("op", rec.Type.String()))
	}
	if snap.Removed() > 0 {
		o.Metrics.extracted()
	}

	return snap, nil
}

// capture reads the configuration of op without changing it.
func capture(p host.Parameter, index int, op host.ValueOp) (OpRecord, error) {
	rec := OpRecord{Index: index, Type: op.Type()}
	if rec.IsCallback() {
		return rec, nil
	}
	rec.Source = op.SourceParameter()
	if rec.Source == nil {
		return rec, corruptError(p, index, rec.Type)
	}

	switch rec.Type {
	case host.ValueOpDeltaAdd:
		rec.Delta = op.Delta()
	case host.ValueOpKey:
		n := op.NumKeys()
		rec.Keys = make([]host.ControlPoint, 0, n)
		for k := 0; k < n; k++ {
			key, value, err := op.GetKey(k)
			if err != nil {
				return rec, hostError("read", p, index, fmt.Errorf("key %d: %w", k, err))
			}
			rec.Keys = append(rec.Keys, host.ControlPoint{Key: key, Value: value})
		}
	}

	return rec, nil
}

func restore(p host.Parameter, snap *Snapshot, o Options) error {
	if p == nil {
		return ErrNilParameter
	}
	if snap.Removed() == 0 {
		return nil
	}

	inserter, canInsert := p.(host.ValueOpInserter)
	if o.Capabilities != nil && !o.Capabilities.InsertValueOperation {
		canInsert = false
	}

	var errs []error
	for _, rec := range snap.Records {
		if rec.IsCallback() {
			continue
		}
		if err := restoreOne(p, rec, inserter, &canInsert); err != nil {
			o.Metrics.restoreFailed()
			o.Logger.Warn("restore value operation failed",
				slog.String("parameter", p.InternalName()),
				slog.Int("index", rec.Index),
				slog.String("op", rec.Type.String()),
				slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		o.Logger.Debug("restored value operation",
			slog.String("parameter", p.InternalName()),
			slog.Int("index", rec.Index),
			slog.String("op", rec.Type.String()))
	}
	o.Metrics.restored()

	return errors.Join(errs...)
}

// restoreOne rebuilds one operation. A host panic is converted to an error
// so the remaining entries still get their turn.
func restoreOne(p host.Parameter, rec OpRecord, inserter host.ValueOpInserter, canInsert *bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = hostError("add", p, rec.Index, fmt.Errorf("panic: %v", r))
		}
	}()

	var op host.ValueOp
	if *canInsert {
		op, err = insertOne(inserter, rec)
		if err != nil {
			// Positions are unreliable from here on; append the rest.
			*canInsert = false
		}
	}
	if !*canInsert {
		op, err = p.AddValueOperation(rec.Type, rec.Source)
	}
	if err != nil {
		return hostError("add", p, rec.Index, err)
	}

	switch rec.Type {
	case host.ValueOpDeltaAdd:
		if err := op.SetDelta(rec.Delta); err != nil {
			return hostError("configure", p, rec.Index, err)
		}
	case host.ValueOpKey:
		for _, cp := range rec.Keys {
			if err := op.InsertKey(cp.Key, cp.Value); err != nil {
				return hostError("configure", p, rec.Index, err)
			}
		}
	}

	return nil
}

// insertOne inserts rec at its original index, turning a panic into an
// error so the caller can append instead.
func insertOne(inserter host.ValueOpInserter, rec OpRecord) (op host.ValueOp, err error) {
	defer func() {
		if r := recover(); r != nil {
			op, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	return inserter.InsertValueOperation(rec.Index, rec.Type, rec.Source)
}
