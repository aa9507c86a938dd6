package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		path string
		kind Kind
		slug string
	}{
		{"/", Home, ""},
		{"", Home, ""},
		{"/?from=cli", Home, ""},
		{"/easter", Easter, ""},
		{"/easter/", Easter, ""},
		{"/projects/voicebrain", Project, "voicebrain"},
		{"/projects/voicebrain/", Project, "voicebrain"},
		{"/projects/voicebrain#features", Project, "voicebrain"},
		{"/projects/", NotFound, ""},
		{"/projects/a/b", NotFound, ""},
		{"/about", NotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := Parse(tt.path)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.slug, r.Slug)
		})
	}
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/projects/market-r", ProjectPath("market-r"))
	assert.Equal(t, "/projects/market-r", Parse("/projects/market-r/").Path())
	assert.Equal(t, "/", Parse("").Path())
	assert.Equal(t, "/easter", Parse("/easter?x=1").Path())
	assert.Equal(t, "/missing", Parse("/missing").Path())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "home", Home.String())
	assert.Equal(t, "project", Project.String())
	assert.Equal(t, "easter", Easter.String())
	assert.Equal(t, "not-found", NotFound.String())
}

func TestHistory(t *testing.T) {
	h := NewHistory(Parse("/"))
	assert.Equal(t, Home, h.Current().Kind)

	assert.True(t, h.Push(Parse("/projects/a")))
	assert.False(t, h.Push(Parse("/projects/a/")), "same path is not pushed twice")
	assert.True(t, h.Push(Parse("/easter")))
	assert.Equal(t, 3, h.Len())

	r, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "a", r.Slug)

	r, ok = h.Back()
	assert.True(t, ok)
	assert.Equal(t, Home, r.Kind)

	_, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len())
}

func TestHistoryBackFromDeepLink(t *testing.T) {
	h := NewHistory(Parse("/projects/a"))

	r, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, Home, r.Kind)
	assert.Equal(t, 1, h.Len())
}
