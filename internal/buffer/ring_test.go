package buffer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun-lee/fob/pkg/record"
)

func push(r *Ring, names ...string) {
	for _, n := range names {
		r.Push(record.Record{Attrs: map[string]any{"Name": n}})
	}
}

func snapshotNames(t *testing.T, r *Ring) []string {
	t.Helper()

	var out []string
	for _, rec := range r.Snapshot() {
		name, ok := rec.NameValue()
		require.True(t, ok)
		out = append(out, name)
	}
	return out
}

func TestRing_PushAndSnapshot(t *testing.T) {
	r := NewRing(4)
	push(r, "a", "b", "c")

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"a", "b", "c"}, snapshotNames(t, r))
}

func TestRing_EvictsOldest(t *testing.T) {
	r := NewRing(3)
	push(r, "a", "b", "c", "d", "e")

	assert.Equal(t, 3, r.Len())
	assert.EqualValues(t, 2, r.Dropped())
	assert.Equal(t, []string{"c", "d", "e"}, snapshotNames(t, r))
}

func TestRing_DefaultCapacity(t *testing.T) {
	r := NewRing(0)
	for i := 0; i < 2000; i++ {
		push(r, fmt.Sprintf("rec-%d", i))
	}
	assert.Equal(t, 1024, r.Len())
}
