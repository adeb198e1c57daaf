package partition

import (
	"github.com/on-the-ground/partitions/purefn"
)

// Engine computes partitions and memoizes every (total, floor) it visits.
//
// IMPORTANT:
// An Engine is NOT safe for concurrent use. Share it through a Holder.
type Engine struct {
	memo      *purefn.Table[Set]
	withFloor func(total, floor uint) Set
}

// Stats describes the memo of an Engine.
type Stats struct {
	Keys   int
	Hits   uint64
	Misses uint64
}

func NewEngine() *Engine {
	e := &Engine{memo: purefn.NewTable[Set]()}
	e.withFloor = purefn.TableizeI2O1(e.calc, e.memo)
	return e
}

// Partitions returns every partition of total. The result is a copy and may be
// modified by the caller.
func (e *Engine) Partitions(total uint) Set {
	if total == 0 {
		// zero is made of zero parts
		return Set{Partition{}}
	}
	return e.lookup(total, 1).Clone()
}

// PartitionsWithFloor returns the partitions of k.Total whose addends are all
// at least k.Floor, or nil if there are none.
func (e *Engine) PartitionsWithFloor(k Key) (Set, error) {
	if k.Floor == 0 {
		return nil, ErrZeroFloor
	}
	return e.lookup(k.Total, k.Floor).Clone(), nil
}

func (e *Engine) Stats() Stats {
	s := e.memo.Stats()
	return Stats{Keys: s.Entries, Hits: s.Hits, Misses: s.Misses}
}

// lookup returns nil when no partition of total has every addend >= floor.
// Such keys are never stored.
func (e *Engine) lookup(total, floor uint) Set {
	if total < floor {
		return nil
	}
	return e.withFloor(total, floor)
}

// calc must only be reached through withFloor, with total >= floor.
// Sets share addend slices with the entries they were built from; stored sets
// are never modified.
func (e *Engine) calc(total, floor uint) Set {
	if total == floor {
		return Set{Partition{total}}
	}

	// total = floor + { partitions of the remainder, same floor }
	withSmallest := e.lookup(total-floor, floor)
	// total = { partitions with a larger smallest addend }
	withoutSmallest := e.lookup(total, floor+1)

	results := make(Set, 0, len(withSmallest)+len(withoutSmallest))
	for _, p := range withSmallest {
		current := make(Partition, 0, len(p)+1)
		current = append(current, floor)
		results = append(results, append(current, p...))
	}
	return append(results, withoutSmallest...)
}
