// File: batch.go
// Role: Extract and restore several parameters as one unit.
// Policy:
//   - A failed extraction restores the parameters already extracted, in
//     reverse order, before returning.
//   - Restore runs in reverse extraction order and joins every failure.

package dialvalue

import (
	"errors"

	"github.com/GeoffIX/PoserLib/host"
)

// Batch holds the snapshots of several parameters extracted together.
type Batch struct {
	opts  Options
	snaps []*Snapshot
}

// ExtractAll extracts every parameter in order. If one fails, the
// parameters already extracted are restored in reverse order and the error
// is returned with any restore failures joined.
func ExtractAll(params []host.Parameter, opts ...Option) (*Batch, error) {
	o := buildOptions(opts)
	b := &Batch{opts: o}
	for _, p := range params {
		snap, err := extract(p, o)
		if err != nil {
			if rerr := b.Restore(); rerr != nil {
				return nil, errors.Join(err, rerr)
			}
			return nil, err
		}
		b.snaps = append(b.snaps, snap)
	}

	return b, nil
}

// Len returns the number of extracted parameters.
func (b *Batch) Len() int { return len(b.snaps) }

// Snapshots returns the snapshots in extraction order.
func (b *Batch) Snapshots() []*Snapshot {
	out := make([]*Snapshot, len(b.snaps))
	copy(out, b.snaps)

	return out
}

// Restore restores every parameter in reverse extraction order and empties
// the batch. Calling it again is a no-op.
func (b *Batch) Restore() error {
	var errs []error
	for i := len(b.snaps) - 1; i >= 0; i-- {
		s := b.snaps[i]
		if err := restore(s.Param, s, b.opts); err != nil {
			errs = append(errs, err)
		}
	}
	b.snaps = nil

	return errors.Join(errs...)
}
