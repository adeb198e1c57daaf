package partition

import "sync"

var defaultHolder = sync.OnceValue(func() *Holder {
	return NewHolder()
})

// Default returns the process-wide Holder used by the package-level functions.
func Default() *Holder {
	return defaultHolder()
}

// GetPartitions returns every partition of total using the process-wide Holder.
func GetPartitions(total uint) Set {
	return Default().GetPartitions(total)
}

// GetPartitionsInt returns every partition of total using the process-wide
// Holder. Negative totals are rejected with ErrNegativeTotal.
func GetPartitionsInt(total int) (Set, error) {
	return Default().GetPartitionsInt(total)
}
