// Package testutil provides fake upstream APIs for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rshade/roster/internal/records"
)

// charactersPath is where the fake mounts the character catalog.
const charactersPath = "/api/v1/characters"

// Upstream is an in-process fake of both upstream APIs.
type Upstream struct {
	Server *httptest.Server

	mu         sync.Mutex
	characters []map[string]any
	posts      []records.Post
	wrap       bool
	status     int
	requests   []string
}

// NewUpstream starts a fake upstream that is closed when the test ends.
func NewUpstream(t testing.TB) *Upstream {
	t.Helper()
	u := &Upstream{}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(u.record)
	r.Get(charactersPath, u.listCharacters)
	r.Get("/posts", u.listPosts)
	r.Get("/posts/{id}", u.getPost)

	u.Server = httptest.NewServer(r)
	t.Cleanup(u.Server.Close)
	return u
}

// CharactersURL is the base URL of the fake character catalog.
func (u *Upstream) CharactersURL() string {
	return u.Server.URL + charactersPath
}

// PostsURL is the base URL of the fake posts API.
func (u *Upstream) PostsURL() string {
	return u.Server.URL
}

// SetCharacters replaces the raw character records served.
func (u *Upstream) SetCharacters(characters ...map[string]any) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.characters = characters
	return u
}

// SetPosts replaces the posts served.
func (u *Upstream) SetPosts(posts ...records.Post) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.posts = posts
	return u
}

// WrapContent serves character responses as {"content": [...]}.
func (u *Upstream) WrapContent(wrap bool) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.wrap = wrap
	return u
}

// FailWith makes every request answer with status; 0 restores normal answers.
func (u *Upstream) FailWith(status int) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status = status
	return u
}

// Requests returns the request URIs received so far.
func (u *Upstream) Requests() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.requests...)
}

func (u *Upstream) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requests = append(u.requests, r.URL.RequestURI())
		status := u.status
		u.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (u *Upstream) listCharacters(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	all := append([]map[string]any(nil), u.characters...)
	wrap := u.wrap
	u.mu.Unlock()

	selected := make([]map[string]any, 0, len(all))
	if id := r.URL.Query().Get("id"); id != "" {
		for _, c := range all {
			if idString(c["id"]) == id {
				selected = append(selected, c)
			}
		}
	} else {
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil || limit > len(all) || limit <= 0 {
			limit = len(all)
		}
		selected = append(selected, all[:limit]...)
	}

	if wrap {
		writeJSON(w, map[string]any{"content": selected})
		return
	}
	writeJSON(w, selected)
}

func (u *Upstream) listPosts(w http.ResponseWriter, _ *http.Request) {
	u.mu.Lock()
	posts := append([]records.Post{}, u.posts...)
	u.mu.Unlock()
	writeJSON(w, posts)
}

func (u *Upstream) getPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.posts {
		if strconv.FormatInt(p.ID, 10) == id {
			writeJSON(w, p)
			return
		}
	}
	writeJSON(w, map[string]any{}, http.StatusNotFound)
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case int:
		return strconv.Itoa(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, v any, status ...int) {
	w.Header().Set("Content-Type", "application/json")
	if len(status) > 0 {
		w.WriteHeader(status[0])
	}
	_ = json.NewEncoder(w).Encode(v)
}
