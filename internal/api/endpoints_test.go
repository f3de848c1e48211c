package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterListURL(t *testing.T) {
	assert.Equal(t, DefaultCharactersBaseURL+"?limit=45", CharacterListURL(DefaultCharactersBaseURL, 45))
	assert.Equal(t, "http://x/c?limit=45", CharacterListURL("http://x/c", 0))
	assert.Equal(t, "http://x/c?lang=pt&limit=10", CharacterListURL("http://x/c?lang=pt", 10))
}

func TestCharacterDetailURL(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "7", want: "http://x/c?id=7"},
		{id: "a b", want: "http://x/c?id=a+b"},
		{id: "1&limit=999", want: "http://x/c?id=1%26limit%3D999"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, CharacterDetailURL("http://x/c", tt.id))
		})
	}
}

func TestPostURLs(t *testing.T) {
	assert.Equal(t, "http://x/posts", PostListURL("http://x"))
	assert.Equal(t, "http://x/posts", PostListURL("http://x/"))
	assert.Equal(t, "http://x/posts/3", PostDetailURL("http://x", "3"))
	assert.Equal(t, "http://x/posts/..%2Fusers", PostDetailURL("http://x", "../users"))
}
