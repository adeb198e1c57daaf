package partition

// Partition is a sequence of positive addends in non-decreasing order.
// The empty Partition is the only partition of zero.
type Partition []uint

// Sum returns the total the addends add up to.
func (p Partition) Sum() uint {
	var sum uint
	for _, addend := range p {
		sum += addend
	}
	return sum
}

// Set is an ordered collection of partitions of the same total.
type Set []Partition

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for i, p := range s {
		out[i] = append(make(Partition, 0, len(p)), p...)
	}
	return out
}

// Key identifies the partitions of Total whose addends are all at least Floor.
type Key struct {
	Total uint
	Floor uint
}
