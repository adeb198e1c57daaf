// Package partition lists the integer partitions of non-negative integers.
//
// A partition of n is a multiset of positive integers that add up to n. Each
// partition is returned with its addends in non-decreasing order, and the
// partitions of n always come back in the same order.
//
// Results are memoized by (total, floor), where floor is the smallest addend a
// sub-partition may use. The memo lives as long as the Holder that owns it, and
// the package-level GetPartitions shares one process-wide Holder:
//
//	for _, p := range partition.GetPartitions(4) {
//	    fmt.Println(p) // [1 1 1 1] [1 1 2] [1 3] [2 2] [4]
//	}
//
// A Holder serializes every call on a single mutex, so a large total blocks
// other callers until it finishes.
package partition
