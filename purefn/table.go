package purefn

type node map[ComparableOrString]any

// Table is an unbounded memo keyed by argument tuples.
// It is not safe for concurrent use.
type Table[O any] struct {
	root   node
	size   int
	hits   uint64
	misses uint64
}

// TableStats is a snapshot of a Table's size and lookup counters.
type TableStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

func NewTable[O any]() *Table[O] {
	return &Table[O]{root: node{}}
}

func (t *Table[O]) Load(keys []ComparableOrString) (O, bool) {
	m, k := t.traverse(keys, false)
	if m != nil {
		if v, ok := m[k]; ok {
			t.hits++
			return v.(O), true
		}
	}
	t.misses++
	var zero O
	return zero, false
}

func (t *Table[O]) Store(keys []ComparableOrString, value O) {
	m, k := t.traverse(keys, true)
	if _, ok := m[k]; !ok {
		t.size++
	}
	m[k] = value
}

// Len returns the number of stored values.
func (t *Table[O]) Len() int {
	return t.size
}

func (t *Table[O]) Stats() TableStats {
	return TableStats{Entries: t.size, Hits: t.hits, Misses: t.misses}
}

// traverse walks every key but the last and returns the innermost level with
// the last key. Missing levels are created when create is set; otherwise a nil
// level is returned for a path that does not exist.
func (t *Table[O]) traverse(keys []ComparableOrString, create bool) (node, ComparableOrString) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	m := t.root
	for _, k := range keys[:length-1] {
		v, ok := m[k]
		if !ok {
			if !create {
				return nil, keys[length-1]
			}
			v = node{}
			m[k] = v
		}
		m = v.(node)
	}
	return m, keys[length-1]
}
