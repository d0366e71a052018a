package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// indexed is a Sequence without a Swap method, so Swap falls back to At/Set.
type indexed struct {
	data []string
	sets int
}

func (s *indexed) Len() int { return len(s.data) }

func (s *indexed) At(i int) string { return s.data[i] }

func (s *indexed) Set(i int, v string) {
	s.data[i] = v
	s.sets++
}

func TestSwap(t *testing.T) {
	t.Parallel()

	t.Run("uses Swapper", func(t *testing.T) {
		t.Parallel()

		values := []int{1, 2, 3}
		Swap[int](Slice[int](values), 0, 2)

		assert.Equal(t, []int{3, 2, 1}, values)
	})

	t.Run("falls back to At and Set", func(t *testing.T) {
		t.Parallel()

		seq := &indexed{data: []string{"a", "b", "c"}}
		Swap[string](seq, 0, 1)

		assert.Equal(t, []string{"b", "a", "c"}, seq.data)
		assert.Equal(t, 2, seq.sets)
	})

	t.Run("same index is a no-op", func(t *testing.T) {
		t.Parallel()

		seq := &indexed{data: []string{"a", "b"}}
		Swap[string](seq, 1, 1)

		assert.Equal(t, []string{"a", "b"}, seq.data)
	})
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilPtr *indexed

	assert.True(t, IsNil[string](nil))
	assert.True(t, IsNil[string](nilPtr))
	assert.False(t, IsNil[int](Slice[int](nil)))
	assert.False(t, IsNil[int](Of(1, 2)))
	assert.False(t, IsNil[string](&indexed{}))
}

func TestSlice(t *testing.T) {
	t.Parallel()

	backing := []int{70, 30, 50}
	s := Slice[int](backing)

	s.Set(1, -50)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, -50, s.At(1))
	assert.Equal(t, []int{70, -50, 50}, backing)
	assert.Equal(t, []int{70, -50, 50}, Values[int](s))
	assert.Equal(t, 0, Of[int]().Len())
}
