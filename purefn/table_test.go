package purefn_test

import (
	"testing"

	"github.com/on-the-ground/partitions/purefn"
	"github.com/stretchr/testify/assert"
)

func TestTable_BasicUsage(t *testing.T) {
	table := purefn.NewTable[string]()

	// store a value
	table.Store([]purefn.ComparableOrString{"a", "b", "c"}, "final")

	// load it back
	val, ok := table.Load([]purefn.ComparableOrString{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = table.Load([]purefn.ComparableOrString{"a", "b", "x"})
	assert.False(t, ok)
	_, ok = table.Load([]purefn.ComparableOrString{"z", "b", "c"})
	assert.False(t, ok)

	// overwrite existing
	table.Store([]purefn.ComparableOrString{"a", "b", "c"}, "updated")
	val, ok = table.Load([]purefn.ComparableOrString{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, purefn.TableStats{Entries: 1, Hits: 2, Misses: 2}, table.Stats())
}

func TestTable_NeverEvicts(t *testing.T) {
	table := purefn.NewTable[int]()
	for i := 0; i < 1000; i++ {
		table.Store([]purefn.ComparableOrString{i, i + 1}, i)
	}
	assert.Equal(t, 1000, table.Len())

	for i := 0; i < 1000; i++ {
		v, ok := table.Load([]purefn.ComparableOrString{i, i + 1})
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestTable_EmptyKeysPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty keys, but didn't panic")
		}
	}()
	table := purefn.NewTable[int]()
	table.Load([]purefn.ComparableOrString{})
}
