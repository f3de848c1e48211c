package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// contentKey is the wrapper property some upstream responses use for the record array.
const contentKey = "content"

// Unwrap returns the record array held by payload. The payload may be a bare
// array or an object with a "content" array; any other shape yields an empty
// collection.
func Unwrap(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		if content, ok := v[contentKey].([]any); ok {
			return content
		}
	}
	return []any{}
}

// NormalizeCharacterList maps an upstream list payload into list items.
// Every element produces an item; an element without an id uses its position.
func NormalizeCharacterList(payload any) []ListItem {
	raw := Unwrap(payload)
	items := make([]ListItem, 0, len(raw))
	for idx, element := range raw {
		obj := asObject(element)

		id, ok := stringValue(obj["id"])
		if !ok {
			id = strconv.Itoa(idx)
		}

		items = append(items, ListItem{
			ID:    id,
			Name:  stringOr(obj["name"], DefaultName),
			Image: imageOf(obj),
		})
	}
	return items
}

// NormalizeCharacterDetail maps an upstream lookup payload into a detail record.
// The lookup is a filtered list, so only the first element is used. It returns
// nil when the lookup matched nothing.
func NormalizeCharacterDetail(payload any) *DetailRecord {
	raw := Unwrap(payload)
	if len(raw) == 0 || raw[0] == nil {
		return nil
	}
	record := normalizeCharacter(asObject(raw[0]))
	return &record
}

// normalizeCharacter applies the full default table to a single character.
func normalizeCharacter(obj map[string]any) DetailRecord {
	id, _ := stringValue(obj["id"])
	return DetailRecord{
		ID:          id,
		Name:        stringOr(obj["name"], DefaultName),
		Age:         stringOr(obj["age"], DefaultDemographic),
		Gender:      stringOr(obj["gender"], DefaultDemographic),
		Race:        stringOr(obj["race"], DefaultDemographic),
		Description: stringOr(obj["description"], DefaultFreeText),
		Quote:       stringOr(obj["quote"], DefaultFreeText),
		Image:       imageOf(obj),
	}
}

// imageOf resolves the image URL with precedence image, img, images[0].url, images[0].
// The images collection may hold objects with a url field or plain strings.
func imageOf(obj map[string]any) *string {
	for _, key := range []string{"image", "img"} {
		if s, ok := stringValue(obj[key]); ok {
			return &s
		}
	}

	images, ok := obj["images"].([]any)
	if !ok || len(images) == 0 {
		return nil
	}

	switch first := images[0].(type) {
	case map[string]any:
		if s, found := stringValue(first["url"]); found {
			return &s
		}
	case string:
		return &first
	}
	return nil
}

// asObject treats anything that is not a JSON object as an empty one so that
// malformed elements still receive defaults.
func asObject(v any) map[string]any {
	if obj, ok := v.(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

// stringOr returns v coerced to a string, or def when v is absent or null.
func stringOr(v any, def string) string {
	if s, ok := stringValue(v); ok {
		return s
	}
	return def
}

// stringValue coerces a decoded JSON value to a string. It reports false for
// absent and null values only; every other value has a string form.
func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(val); err != nil {
			return fmt.Sprint(val), true
		}
		return string(bytes.TrimSpace(buf.Bytes())), true
	}
}
