package tui

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/records"
	"github.com/rshade/roster/internal/testutil"
)

func TestListScreen_LoadingView(t *testing.T) {
	u := testutil.NewUpstream(t)
	s := NewCharacterListScreen(context.Background(), characterOptions(u))

	assert.True(t, s.State().IsIdle())
	assert.Contains(t, s.View(), msgLoading)

	cmd := s.Mount()
	require.NotNil(t, cmd)
	assert.True(t, s.State().IsLoading())
	assert.Contains(t, s.View(), msgLoading)
	s.Unmount()
}

func TestListScreen_Empty(t *testing.T) {
	u := testutil.NewUpstream(t)
	s := NewCharacterListScreen(context.Background(), characterOptions(u))

	drive(t, s.Update, s.Mount())

	require.True(t, s.State().IsSuccess())
	assert.Contains(t, s.View(), "Nenhum personagem.")
	assert.Nil(t, s.Update(keyEnterMsg), "enter on an empty list does nothing")
}

func TestListScreen_WrappedContent(t *testing.T) {
	u := testutil.NewUpstream(t).SetCharacters(tanjiro()).WrapContent(true)
	s := NewCharacterListScreen(context.Background(), characterOptions(u))

	drive(t, s.Update, s.Mount())

	require.True(t, s.State().IsSuccess())
	require.Len(t, s.State().Payload, 1)
	assert.Equal(t, "1", s.State().Payload[0].ID)
	assert.Contains(t, u.Requests(), "/api/v1/characters?limit=45")
}

func TestListScreen_ErrorAndRetry(t *testing.T) {
	u := testutil.NewUpstream(t).SetCharacters(tanjiro()).FailWith(http.StatusInternalServerError)
	s := NewCharacterListScreen(context.Background(), characterOptions(u))

	drive(t, s.Update, s.Mount())

	require.True(t, s.State().IsError())
	view := s.View()
	assert.Contains(t, view, "Erro: HTTP 500")
	assert.Contains(t, view, msgRetry)

	u.FailWith(0)
	retry := s.Update(runeKey("r"))
	require.NotNil(t, retry)
	assert.False(t, s.Refreshing(), "retry after an error shows the loading view")
	assert.Contains(t, s.View(), msgLoading)

	drive(t, s.Update, retry)
	require.True(t, s.State().IsSuccess())
	assert.Contains(t, s.View(), "Tanjiro Kamado")
}

func TestListScreen_RefreshKeepsRows(t *testing.T) {
	u := testutil.NewUpstream(t).SetCharacters(tanjiro())
	s := NewCharacterListScreen(context.Background(), characterOptions(u))
	drive(t, s.Update, s.Mount())

	u.SetCharacters(tanjiro(), muzan())
	refresh := s.Update(runeKey("r"))
	require.NotNil(t, refresh)

	assert.True(t, s.Refreshing())
	assert.True(t, s.State().IsLoading())
	assert.Contains(t, s.View(), "Tanjiro Kamado")
	assert.Contains(t, s.View(), msgRefreshing)
	assert.Nil(t, s.Update(runeKey("r")), "refresh is ignored while loading")

	drive(t, s.Update, refresh)
	assert.False(t, s.Refreshing())
	assert.Len(t, s.State().Payload, 2)
	assert.Contains(t, s.View(), "Muzan Kibutsuji")
}

func TestListScreen_UnmountDropsResult(t *testing.T) {
	u := testutil.NewUpstream(t).SetCharacters(tanjiro())
	s := NewCharacterListScreen(context.Background(), characterOptions(u))

	first := s.Mount()
	s.Unmount()
	drive(t, s.Update, first)

	assert.True(t, s.State().IsLoading(), "results after unmount are ignored")
	assert.Nil(t, s.Mount(), "a closed screen starts no request")
}

func TestListScreen_SelectedItemRoutes(t *testing.T) {
	u := testutil.NewUpstream(t).SetPosts(records.Post{ID: 42, Title: "answer"})
	s := NewPostListScreen(context.Background(), characterOptions(u))
	drive(t, s.Update, s.Mount())

	item, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(42), item.ID)

	cmd := s.Update(keyEnterMsg)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Screen: RoutePostDetail, ID: "42"}, cmd())
}

func TestDetailScreen_NotFound(t *testing.T) {
	u := testutil.NewUpstream(t).SetCharacters(tanjiro())
	s := NewCharacterDetailScreen(context.Background(), characterOptions(u), "999")

	drive(t, s.Update, s.Mount())

	require.True(t, s.State().IsSuccess())
	assert.Nil(t, s.State().Payload)
	assert.Contains(t, s.View(), "Personagem não encontrado.")
}

func TestDetailScreen_PostErrorAndRetry(t *testing.T) {
	u := testutil.NewUpstream(t)
	s := NewPostDetailScreen(context.Background(), characterOptions(u), "7")

	drive(t, s.Update, s.Mount())
	require.True(t, s.State().IsError())
	assert.Contains(t, s.View(), "Erro: HTTP 404")

	u.SetPosts(records.Post{ID: 7, Title: "found", Body: "body"})
	drive(t, s.Update, s.Update(runeKey("r")))
	require.True(t, s.State().IsSuccess())
	assert.Contains(t, s.View(), "found")
}

func TestDetailScreen_EscGoesBack(t *testing.T) {
	u := testutil.NewUpstream(t)
	s := NewPostDetailScreen(context.Background(), characterOptions(u), "1")

	cmd := s.Update(keyEscMsg)
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
	assert.Nil(t, s.Update(runeKey("x")))
}

func TestDetailScreen_IgnoresForeignSettlement(t *testing.T) {
	u := testutil.NewUpstream(t).SetCharacters(tanjiro())
	a := NewCharacterDetailScreen(context.Background(), characterOptions(u), "1")
	b := NewCharacterDetailScreen(context.Background(), characterOptions(u), "1")

	cmd := a.Mount()
	b.Mount()
	drive(t, b.Update, cmd)

	assert.True(t, b.State().IsLoading())
	assert.True(t, a.State().IsLoading())
	a.Unmount()
	b.Unmount()
}

func TestRenderCharacterDetail(t *testing.T) {
	image := "https://img.example/x.png"
	human := &records.DetailRecord{
		ID: "1", Name: "Tanjiro", Age: "15", Gender: "male", Race: "Human",
		Description: "Kind boy", Quote: "Never give up", Image: &image,
	}

	out := RenderCharacterDetail(human, 60)
	assert.Contains(t, out, "TANJIRO")
	assert.Contains(t, out, "Humano")
	assert.Contains(t, out, "Idade:")
	assert.Contains(t, out, "Male")
	assert.Contains(t, out, "Kind boy")
	assert.Contains(t, out, "Never give up")
	assert.Contains(t, out, imageMarker)

	bare := &records.DetailRecord{
		ID: "2", Name: records.DefaultName, Age: "-", Gender: "-", Race: "demônio",
	}
	out = RenderCharacterDetail(bare, 60)
	assert.Contains(t, out, "Demônio")
	assert.NotContains(t, out, "Descrição")
	assert.NotContains(t, out, quoteGlyph)
	assert.NotContains(t, out, imageMarker)
}

func TestRenderCharacterItem(t *testing.T) {
	image := "x"
	assert.Contains(t, renderCharacterItem(records.ListItem{ID: "1", Name: "tanjiro"}, false), "[T]")
	assert.Contains(t, renderCharacterItem(records.ListItem{ID: "1", Name: "x", Image: &image}, false), imageMarker)
	assert.Contains(t, renderCharacterItem(records.ListItem{ID: "1", Name: ""}, false), "[?]")
}

func TestDetectOutputMode(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false, true))
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, true, false))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, false, false))

	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}
