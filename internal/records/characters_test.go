package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, body string) any {
	t.Helper()
	payload, err := DecodeJSON([]byte(body))
	require.NoError(t, err)
	return payload
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
	}{
		{name: "bare array", body: `[{"id":1},{"id":2}]`, wantLen: 2},
		{name: "content wrapper", body: `{"content":[{"id":1}]}`, wantLen: 1},
		{name: "content not an array", body: `{"content":{"id":1}}`, wantLen: 0},
		{name: "object without content", body: `{"id":1}`, wantLen: 0},
		{name: "scalar", body: `42`, wantLen: 0},
		{name: "null", body: `null`, wantLen: 0},
		{name: "empty array", body: `[]`, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unwrap(mustDecode(t, tt.body))
			require.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestNormalizeCharacterList_ShapeInvariance(t *testing.T) {
	elements := `[
		{"id": 1, "name": "Tanjiro Kamado", "img": "https://img/tanjiro.png"},
		{"id": "2", "images": [{"url": "https://img/nezuko.png"}]},
		{"name": "Zenitsu", "images": ["https://img/zenitsu.png"]},
		null,
		"garbage"
	]`

	bare := NormalizeCharacterList(mustDecode(t, elements))
	wrapped := NormalizeCharacterList(mustDecode(t, `{"content":`+elements+`,"page":1}`))

	assert.Equal(t, bare, wrapped)
	require.Len(t, bare, 5, "malformed elements must be defaulted, never dropped")
}

func TestNormalizeCharacterList_Defaults(t *testing.T) {
	items := NormalizeCharacterList(mustDecode(t, `[
		{"id": 10, "name": "Tanjiro Kamado", "image": "https://img/a.png", "img": "https://img/b.png"},
		{"id": null},
		{},
		"not an object"
	]`))
	require.Len(t, items, 4)

	assert.Equal(t, "10", items[0].ID)
	assert.Equal(t, "Tanjiro Kamado", items[0].Name)
	require.NotNil(t, items[0].Image)
	assert.Equal(t, "https://img/a.png", *items[0].Image, "image wins over img")

	for i, item := range items[1:] {
		position := i + 1
		assert.Equal(t, []string{"1", "2", "3"}[i], item.ID, "id falls back to position %d", position)
		assert.Equal(t, DefaultName, item.Name)
		assert.Nil(t, item.Image)
	}
}

func TestNormalizeCharacterList_EmptyName(t *testing.T) {
	items := NormalizeCharacterList(mustDecode(t, `[{"id": 1, "name": ""}]`))
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Name, "only absent or null names are defaulted")
}

func TestImageOf(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *string
	}{
		{name: "image", body: `{"image":"a"}`, want: strPtr("a")},
		{name: "img when image null", body: `{"image":null,"img":"b"}`, want: strPtr("b")},
		{name: "images object url", body: `{"images":[{"url":"c"},{"url":"d"}]}`, want: strPtr("c")},
		{name: "images string", body: `{"images":["e"]}`, want: strPtr("e")},
		{name: "images object without url", body: `{"images":[{"alt":"x"}]}`, want: nil},
		{name: "images empty", body: `{"images":[]}`, want: nil},
		{name: "images not an array", body: `{"images":"f"}`, want: nil},
		{name: "nothing", body: `{}`, want: nil},
		{name: "numeric image coerced", body: `{"image":5}`, want: strPtr("5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := mustDecode(t, tt.body).(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.want, imageOf(obj))
		})
	}
}

func TestNormalizeCharacterDetail(t *testing.T) {
	t.Run("fills defaults for a sparse record", func(t *testing.T) {
		record := NormalizeCharacterDetail(mustDecode(t, `[{"id":7,"name":"Tanjiro"}]`))
		require.NotNil(t, record)

		assert.Equal(t, "7", record.ID)
		assert.Equal(t, "Tanjiro", record.Name)
		assert.Equal(t, "-", record.Age)
		assert.Equal(t, "-", record.Gender)
		assert.Equal(t, "-", record.Race)
		assert.Empty(t, record.Description)
		assert.Empty(t, record.Quote)
		assert.Nil(t, record.Image)
	})

	t.Run("passes through a complete record", func(t *testing.T) {
		record := NormalizeCharacterDetail(mustDecode(t, `{"content":[{
			"id": 3, "name": "Muzan", "age": 1000, "gender": "Male", "race": "Demon",
			"description": "Progenitor", "quote": "...", "img": "https://img/m.png"
		}]}`))
		require.NotNil(t, record)

		assert.Equal(t, "1000", record.Age)
		assert.Equal(t, "Demon", record.Race)
		assert.Equal(t, "Progenitor", record.Description)
		require.NotNil(t, record.Image)
		assert.Equal(t, "https://img/m.png", *record.Image)
	})

	t.Run("no positional fallback for id", func(t *testing.T) {
		record := NormalizeCharacterDetail(mustDecode(t, `[{"name":"Nameless"}]`))
		require.NotNil(t, record)
		assert.Empty(t, record.ID)
	})

	t.Run("uses only the first match", func(t *testing.T) {
		record := NormalizeCharacterDetail(mustDecode(t, `[{"id":1},{"id":2}]`))
		require.NotNil(t, record)
		assert.Equal(t, "1", record.ID)
	})

	t.Run("zero matches is nil", func(t *testing.T) {
		assert.Nil(t, NormalizeCharacterDetail(mustDecode(t, `[]`)))
		assert.Nil(t, NormalizeCharacterDetail(mustDecode(t, `{"content":[]}`)))
		assert.Nil(t, NormalizeCharacterDetail(mustDecode(t, `[null]`)))
	})
}

func TestMissingNameAlwaysDefaults(t *testing.T) {
	bodies := []string{`{}`, `{"name":null}`, `{"id":1,"age":"16"}`, `{"images":[]}`}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			items := NormalizeCharacterList(mustDecode(t, "["+body+"]"))
			require.Len(t, items, 1)
			assert.Equal(t, DefaultName, items[0].Name)

			record := NormalizeCharacterDetail(mustDecode(t, "["+body+"]"))
			require.NotNil(t, record)
			assert.Equal(t, DefaultName, record.Name)
			assert.Nil(t, record.Image)
		})
	}
}

func TestDetailRecord_IsDemon(t *testing.T) {
	tests := []struct {
		race string
		want bool
	}{
		{race: "Demon", want: true},
		{race: "demon", want: true},
		{race: "DEMÔNIO", want: true},
		{race: " Demônio ", want: true},
		{race: "Human", want: false},
		{race: "-", want: false},
		{race: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.race, func(t *testing.T) {
			assert.Equal(t, tt.want, DetailRecord{Race: tt.race}.IsDemon())
		})
	}
}

func TestListItem_Initial(t *testing.T) {
	assert.Equal(t, "T", ListItem{Name: "tanjiro"}.Initial())
	assert.Equal(t, "É", ListItem{Name: "édipo"}.Initial())
	assert.Equal(t, "?", ListItem{}.Initial())
}

func strPtr(s string) *string {
	return &s
}
