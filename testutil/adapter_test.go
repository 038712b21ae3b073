package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/listx"
)

// TestAdapterInterface runs the same scenario against both implementations.
func TestAdapterInterface(t *testing.T) {
	tests := []struct {
		name    string
		adapter SequenceAdapter[int]
	}{
		{name: "List", adapter: listx.Of(1, 2)},
		{name: "Model", adapter: NewModel(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.adapter
			require.NoError(t, s.Insert(1, 100))
			require.NoError(t, s.Insert(s.Len(), 300))
			require.Equal(t, []int{1, 100, 2, 300}, s.Slice())

			require.ErrorIs(t, s.Insert(-1, 0), listx.ErrOutOfRange)
			require.ErrorIs(t, s.RemoveAt(4), listx.ErrOutOfRange)
			require.Equal(t, 2, s.IndexOf(2))
			require.True(t, s.Remove(100))
			require.Equal(t, []int{1, 2, 300}, s.Slice())
		})
	}
}

// TestListMatchesModel applies long random operation sequences to a List and a
// Model and requires identical observations after every step.
func TestListMatchesModel(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		l := listx.New[int]()
		m := NewModel[int]()
		for step, op := range RandomOps(seed, 1500) {
			got, want := Apply(l, op), Apply(m, op)
			require.Equal(t, want, got, "seed %d step %d %s", seed, step, op)
			require.Equal(t, m.Len(), l.Len(), "seed %d step %d", seed, step)
			require.NoError(t, l.Check(), "seed %d step %d", seed, step)
		}
		require.Equal(t, m.Slice(), l.Slice(), "seed %d", seed)
	}
}
