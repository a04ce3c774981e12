package changer

import (
	"github.com/npillmayer/soundlaw"
)

// Reconstruction is a lazy enumerator over the cartesian product of
// per-slot candidates produced by Reconstruct. Clients drive it like
// a scanner:
//
//	recon, err := changer.Reconstruct(seq, rule)
//	for recon.Next() {
//	    candidate := recon.Candidate()
//	    …
//	}
//
// A Reconstruction is not safe for concurrent use.
type Reconstruction struct {
	slots   [][][]string // per slot, the candidate unit runs
	odo     []int        // current choice per slot, odometer style
	total   int
	started bool
	done    bool
}

func newReconstruction(slots [][][]string) *Reconstruction {
	total := 0
	if len(slots) > 0 {
		total = 1
		for _, slot := range slots {
			total *= len(slot)
		}
	}
	return &Reconstruction{
		slots: slots,
		odo:   make([]int, len(slots)),
		total: total,
	}
}

// Len returns the total number of candidates the enumeration yields.
func (r *Reconstruction) Len() int {
	return r.total
}

// Next advances to the next candidate, returning false when the
// enumeration is exhausted.
func (r *Reconstruction) Next() bool {
	if r.done || r.total == 0 {
		return false
	}
	if !r.started {
		r.started = true
		return true
	}
	for i := len(r.odo) - 1; i >= 0; i-- {
		r.odo[i]++
		if r.odo[i] < len(r.slots[i]) {
			return true
		}
		r.odo[i] = 0
	}
	r.done = true
	return false
}

// Candidate assembles the sequence at the current odometer position.
// It must not be called before the first Next.
func (r *Reconstruction) Candidate() soundlaw.Sequence {
	b := borrowBuilder()
	defer releaseBuilder(b)
	for i, choice := range r.odo {
		b.units = append(b.units, r.slots[i][choice]...)
	}
	return soundlaw.NewSequenceUnits(b.units)
}
