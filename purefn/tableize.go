package purefn

import (
	"fmt"
)

type ComparableOrStringer any
type ComparableOrString any

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	memo *Table[O1],
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		memo,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

// tableKey falls back to the String form of arguments that implement fmt.Stringer,
// so non-comparable types can still key a table.
func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
	memo *Table[O],
) func(...ComparableOrStringer) O {
	if memo == nil {
		panic("tableize: nil table")
	}
	return func(args ...ComparableOrStringer) O {
		keys := make([]ComparableOrString, len(args))
		for i, arg := range args {
			keys[i] = tableKey(arg)
		}
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}
