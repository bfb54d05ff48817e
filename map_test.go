package bstmap

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries[K, V any](m *Map[K, V]) []Entry[K, V] {
	out := []Entry[K, V]{}
	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		out = append(out, it.Entry())
	}
	return out
}

func TestMapExample(t *testing.T) {
	m := New[int, string]()
	m.Insert(Entry[int, string]{3, "c"})
	m.Insert(Entry[int, string]{1, "a"})
	m.Insert(Entry[int, string]{2, "b"})

	assert.Equal(t, []Entry[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}, entries(m))

	assert.Equal(t, 1, m.EraseKey(2))
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, []Entry[int, string]{{1, "a"}, {3, "c"}}, entries(m))

	v, err := m.At(5)
	assert.Nil(t, v)
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.Equal(t, "at 5: "+ErrKeyNotFound.Error(), err.Error())
	assert.Equal(t, 2, m.Size())
}

func TestMapInsert(t *testing.T) {
	m := New[string, int]()

	it, ok := m.Insert(Entry[string, int]{"k", 1})
	require.True(t, ok)
	assert.Equal(t, "k", it.Key())

	again, ok := m.Insert(Entry[string, int]{"k", 2})
	assert.False(t, ok)
	assert.True(t, it.Equal(again))
	assert.Equal(t, 1, again.Value())
	assert.Equal(t, 1, m.Size())
}

func TestMapUniqueness(t *testing.T) {
	distinct := make([]string, 300)
	for i := range distinct {
		distinct[i] = uuid.NewString()
	}

	m := New[string, int]()
	for round := 0; round < 3; round++ {
		for i, k := range distinct {
			m.Insert(Entry[string, int]{k, round*1000 + i})
		}
	}
	assert.Equal(t, len(distinct), m.Size())

	// first insert wins
	for i, k := range distinct {
		v, ok := m.Get(k)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	expected := slices.Sorted(slices.Values(distinct))
	assert.Equal(t, expected, slices.Collect(m.Keys()))
}

func TestMapFindRoundTrip(t *testing.T) {
	want := map[string]string{}
	m := New[string, string]()
	for i := 0; i < 200; i++ {
		k, v := uuid.NewString(), uuid.NewString()
		want[k] = v
		m.Insert(Entry[string, string]{k, v})
	}

	for k, v := range want {
		it := m.Find(k)
		require.False(t, it.IsEnd())
		assert.Equal(t, Entry[string, string]{k, v}, it.Entry())
	}
	assert.True(t, m.Find("absent").Equal(m.End()))
	assert.Equal(t, want, maps.Collect(m.All()))
}

func TestMapEraseKey(t *testing.T) {
	m := New(Entry[int, string]{5, "e"}, Entry[int, string]{2, "b"}, Entry[int, string]{8, "h"},
		Entry[int, string]{1, "a"}, Entry[int, string]{3, "c"}, Entry[int, string]{7, "g"})

	for _, k := range []int{5, 1, 8} {
		before := m.Size()
		assert.Equal(t, 1, m.EraseKey(k), k)
		assert.True(t, m.Find(k).IsEnd(), k)
		assert.Equal(t, before-1, m.Size(), k)
	}

	assert.Equal(t, 0, m.EraseKey(42))
	assert.Equal(t, 0, m.EraseKey(5))
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, []int{2, 3, 7}, slices.Collect(m.Keys()))
}

func TestMapEraseIterator(t *testing.T) {
	m := New(Entry[int, string]{2, "b"}, Entry[int, string]{1, "a"}, Entry[int, string]{3, "c"})

	next := m.Erase(m.Find(2))
	assert.Equal(t, 3, next.Key())
	next = m.Erase(next)
	assert.True(t, next.IsEnd())
	assert.Equal(t, "map[1:a]", m.String())
}

func TestMapEraseRange(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{50, 20, 80, 10, 30, 70, 90, 25, 35} {
		m.Insert(Entry[int, int]{k, k * 10})
	}

	last := m.EraseRange(m.Find(20), m.Find(70))
	assert.Equal(t, 70, last.Key())
	assert.Equal(t, []int{10, 70, 80, 90}, slices.Collect(m.Keys()))

	last = m.EraseRange(m.Begin(), m.End())
	assert.True(t, last.IsEnd())
	assert.True(t, m.Empty())
}

func TestMapIndex(t *testing.T) {
	m := New[string, int]()

	v := m.Index("hits")
	assert.Equal(t, 0, *v)
	assert.Equal(t, 1, m.Size())

	*v += 3
	*m.Index("hits")++
	assert.Equal(t, 4, *m.Index("hits"))
	assert.Equal(t, 1, m.Size())

	counts := New[string, int]()
	for _, w := range strings.Fields("b a b c b a") {
		*counts.Index(w)++
	}
	assert.Equal(t, "map[a:2 b:3 c:1]", counts.String())
}

func TestMapGetOrInsert(t *testing.T) {
	m := New[string, []int]()
	calls := 0
	factory := func() []int {
		calls++
		return []int{}
	}

	p := m.GetOrInsert("x", factory)
	*p = append(*p, 1)
	p = m.GetOrInsert("x", factory)
	*p = append(*p, 2)

	assert.Equal(t, 1, calls)
	v, ok := m.Get("x")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)
}

func TestMapAtAndGet(t *testing.T) {
	m := New(Entry[string, int]{"one", 1})

	v, err := m.At("one")
	require.NoError(t, err)
	*v = 11
	got, ok := m.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 11, got)

	_, err = m.At("two")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	got, ok = m.Get("two")
	assert.False(t, ok)
	assert.Zero(t, got)
	assert.False(t, m.Contains("two"))
	assert.Equal(t, 1, m.Size())
}

func TestMapStableIterators(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{40, 20, 60, 10, 30, 50, 70} {
		m.Insert(Entry[int, string]{k, strings.Repeat("x", k/10)})
	}
	held := m.Find(10)
	mid := m.Find(50)

	// 60 has two children, so 70's node is the one unlinked
	m.EraseKey(30)
	m.EraseKey(60)
	m.Insert(Entry[int, string]{65, "new"})

	assert.Equal(t, 10, held.Key())
	assert.Equal(t, "x", held.Value())
	assert.Equal(t, 50, mid.Key())
	assert.Equal(t, "xxxxx", mid.Value())
	assert.Equal(t, 65, mid.Next().Key())
	assert.Equal(t, 40, mid.Prev().Key())
}

func TestMapIteratorSetValue(t *testing.T) {
	m := New(Entry[int, string]{1, "a"}, Entry[int, string]{2, "b"})
	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		it.SetValue(strings.ToUpper(it.Value()))
	}
	*m.Find(1).ValuePtr() += "!"
	assert.Equal(t, "map[1:A! 2:B]", m.String())
}

func TestMapConstructors(t *testing.T) {
	list := New(Entry[int, string]{2, "b"}, Entry[int, string]{1, "a"}, Entry[int, string]{2, "dup"})
	assert.Equal(t, "map[1:a 2:b]", list.String())

	byLen := NewFunc[string, int](func(a, b string) int { return len(a) - len(b) })
	byLen.InsertList(Entry[string, int]{"ccc", 3}, Entry[string, int]{"a", 1}, Entry[string, int]{"zz", 2}, Entry[string, int]{"b", 9})
	assert.Equal(t, []string{"a", "zz", "ccc"}, slices.Collect(byLen.Keys()))

	seq := FromSeq[string, int](strings.Compare, maps.All(map[string]int{"y": 2, "x": 1}))
	assert.Equal(t, "map[x:1 y:2]", seq.String())

	ranged := New[int, string]()
	ranged.InsertRange(list.Begin(), list.End())
	ranged.InsertRange(list.Find(2), list.End())
	assert.Equal(t, entries(list), entries(ranged))

	backward := []int{}
	for k := range list.Backward() {
		backward = append(backward, k)
	}
	assert.Equal(t, []int{2, 1}, backward)
}

func TestMapCopyMoveSwap(t *testing.T) {
	src := New(Entry[int, string]{1, "a"}, Entry[int, string]{2, "b"})

	clone := src.Clone()
	*clone.Index(1) = "changed"
	assert.Equal(t, "map[1:a 2:b]", src.String())
	assert.Equal(t, "map[1:changed 2:b]", clone.String())

	assigned := New(Entry[int, string]{9, "z"})
	assigned.Assign(src)
	assert.Equal(t, "map[1:a 2:b]", assigned.String())

	moved := src.Move()
	assert.True(t, src.Empty())
	assert.Equal(t, "map[1:a 2:b]", moved.String())

	src.Reset(Entry[int, string]{7, "g"}, Entry[int, string]{7, "dup"})
	assert.Equal(t, "map[7:g]", src.String())

	src.Swap(moved)
	assert.Equal(t, "map[1:a 2:b]", src.String())
	assert.Equal(t, "map[7:g]", moved.String())

	src.Clear()
	assert.Equal(t, 0, src.Size())
	assert.Equal(t, "map[]", src.String())
}

func TestMapCursor(t *testing.T) {
	m := New(Entry[string, int]{"b", 2}, Entry[string, int]{"a", 1})

	c := m.Cursor()
	var got []Entry[string, int]
	for c.HasNext() {
		e, err := c.Next()
		require.NoError(t, err)
		got = append(got, e)
	}
	assert.Equal(t, []Entry[string, int]{{"a", 1}, {"b", 2}}, got)

	_, err := c.Next()
	assert.Equal(t, ErrNoMoreEntries, err)
}

func TestMapBigKeySet(t *testing.T) {
	keys := shuffled(getKeys("1mvl5_10"), 50000)

	m := New[string, int]()
	for i, k := range keys {
		*m.Index(k) = i
	}

	prev := ""
	count := 0
	for k, v := range m.All() {
		if count > 0 {
			assert.Less(t, prev, k)
		}
		assert.Equal(t, k, keys[v])
		prev = k
		count++
	}
	assert.Equal(t, m.Size(), count)
	assert.Less(t, m.Height(), 100)
}
