package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreResetsCursor(t *testing.T) {
	s := New()
	first := s.Store("src", []string{"a", "b", "c"})
	assert.Equal(t, "a", first)
	assert.Equal(t, 3, s.Len())

	_, _, _, ok := s.Cycle()
	require.True(t, ok)

	first = s.Store("src2", []string{"x", "y"})
	assert.Equal(t, "x", first)
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "x", cur)
}

func TestCycleWrapsAround(t *testing.T) {
	s := New()
	s.Store("src", []string{"a", "b", "c"})

	text, pos, total, ok := s.Cycle()
	require.True(t, ok)
	assert.Equal(t, "b", text)
	assert.Equal(t, 2, pos)
	assert.Equal(t, 3, total)

	text, _, _, _ = s.Cycle()
	assert.Equal(t, "c", text)

	// По кругу обратно к первому
	text, pos, _, _ = s.Cycle()
	assert.Equal(t, "a", text)
	assert.Equal(t, 1, pos)
}

func TestCycleEmptySession(t *testing.T) {
	s := New()
	_, _, _, ok := s.Cycle()
	assert.False(t, ok)
	assert.False(t, s.Matches("anything"))
}

func TestMatchesCurrentSuggestion(t *testing.T) {
	s := New()
	s.Store("src", []string{"polished text", "another"})

	assert.True(t, s.Matches("polished text"))
	assert.True(t, s.Matches("  polished text \n"))
	assert.False(t, s.Matches("another"))

	s.Cycle()
	assert.True(t, s.Matches("another"))
	assert.False(t, s.Matches("polished text"))
}
