// Package purefn provides memoization utilities for pure functions.
//
// Tableize is not just a utility to add memoization.
// It asks the caller to commit to one question:
//
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family memoizes pure function calls by their input values
// into a Table. A Table is trie-shaped: each argument selects one level, and the
// last argument selects the stored value. Tables are unbounded and never evict,
// so every key is computed at most once for the lifetime of the table.
//
// Tables are not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
//
// Recursive functions can be tableized by closing over the tableized value:
//
//	var choose func(n, k int) int
//	choose = purefn.TableizeI2O1(func(n, k int) int {
//	    if k == 0 || k == n {
//	        return 1
//	    }
//	    return choose(n-1, k-1) + choose(n-1, k)
//	}, purefn.NewTable[int]())
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
