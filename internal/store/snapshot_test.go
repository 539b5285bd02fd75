package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_CommitLatest(t *testing.T) {
	s := New[string]()

	_, loaded := s.Get()
	assert.False(t, loaded)

	token := s.Begin()
	assert.True(t, s.Commit(token, []string{"a", "b"}))

	data, loaded := s.Get()
	assert.True(t, loaded)
	assert.Equal(t, []string{"a", "b"}, data)
}

func TestSnapshot_StaleResponseDiscarded(t *testing.T) {
	s := New[string]()

	// Two fetches race; the first one resolves last.
	first := s.Begin()
	second := s.Begin()

	assert.True(t, s.Commit(second, []string{"newer"}))
	assert.False(t, s.Commit(first, []string{"older"}))

	data, _ := s.Get()
	assert.Equal(t, []string{"newer"}, data)
}

func TestSnapshot_ClearKeepsSequence(t *testing.T) {
	s := New[int]()
	token := s.Begin()
	s.Clear()

	// A response from before the clear is accepted only if no newer fetch
	// started; clearing must not reset the sequence below issued tokens.
	assert.True(t, s.Commit(token, []int{1}))

	next := s.Begin()
	s.Clear()
	_, loaded := s.Get()
	assert.False(t, loaded)
	assert.True(t, s.Commit(next, []int{2}))
}

func TestViews_PerSessionIsolation(t *testing.T) {
	v := NewViews[int]()

	a := v.For("session-a")
	b := v.For("session-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, v.For("session-a"))

	a.Commit(a.Begin(), []int{1, 2})
	_, loaded := b.Get()
	assert.False(t, loaded)
}

func TestViews_Drop(t *testing.T) {
	v := NewViews[int]()
	s := v.For("session-a")
	s.Commit(s.Begin(), []int{1})

	v.Drop("session-a")

	_, loaded := v.For("session-a").Get()
	assert.False(t, loaded)
}
