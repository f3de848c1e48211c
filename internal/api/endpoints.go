// Package api builds the upstream URLs each screen fetches.
package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Upstream defaults.
const (
	DefaultCharactersBaseURL = "https://www.demonslayer-api.com/api/v1/characters"
	DefaultPostsBaseURL      = "https://jsonplaceholder.typicode.com"

	// DefaultCharacterLimit is the fixed page size of the character list.
	DefaultCharacterLimit = 45
)

// CharacterListURL returns the character list endpoint: {base}?limit={limit}.
// A non-positive limit uses DefaultCharacterLimit.
func CharacterListURL(base string, limit int) string {
	if limit <= 0 {
		limit = DefaultCharacterLimit
	}
	return withQuery(base, "limit", strconv.Itoa(limit))
}

// CharacterDetailURL returns the character lookup endpoint: {base}?id={id}.
func CharacterDetailURL(base, id string) string {
	return withQuery(base, "id", id)
}

// PostListURL returns the posts endpoint: {base}/posts.
func PostListURL(base string) string {
	return strings.TrimRight(base, "/") + "/posts"
}

// PostDetailURL returns a single post endpoint: {base}/posts/{id}.
func PostDetailURL(base, id string) string {
	return PostListURL(base) + "/" + url.PathEscape(id)
}

// withQuery appends key=value to base, keeping any query base already has.
func withQuery(base, key, value string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + url.QueryEscape(key) + "=" + url.QueryEscape(value)
}
