package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// errTrailingData is returned when a body holds more than one JSON document.
var errTrailingData = errors.New("unexpected data after JSON document")

// DecodeJSON parses body into a generic JSON value. Numbers are kept as
// json.Number so identifiers keep their upstream spelling.
func DecodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return payload, nil
}

// DecodeCharacterList parses and normalizes a character list response.
func DecodeCharacterList(body []byte) ([]ListItem, error) {
	payload, err := DecodeJSON(body)
	if err != nil {
		return nil, err
	}
	return NormalizeCharacterList(payload), nil
}

// DecodeCharacterDetail parses and normalizes a character lookup response.
// A nil record with a nil error means the lookup matched nothing.
func DecodeCharacterDetail(body []byte) (*DetailRecord, error) {
	payload, err := DecodeJSON(body)
	if err != nil {
		return nil, err
	}
	return NormalizeCharacterDetail(payload), nil
}

// DecodePostList parses a posts response without normalizing it.
func DecodePostList(body []byte) ([]Post, error) {
	var posts []Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("decoding posts: %w", err)
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

// DecodePost parses a single post without normalizing it. A JSON null body
// yields a nil post.
func DecodePost(body []byte) (*Post, error) {
	var post *Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("decoding post: %w", err)
	}
	return post, nil
}
