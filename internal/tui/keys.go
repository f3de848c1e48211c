package tui

// Key bindings.
const (
	keyQuit    = "q"
	keyCtrlC   = "ctrl+c"
	keyEnter   = "enter"
	keyEsc     = "esc"
	keyRefresh = "r"
)

// User-facing texts.
const (
	msgLoading    = "Carregando…"
	msgRefreshing = "Atualizando…"
	msgRetry      = "Tentar novamente"
	msgErrorLabel = "Erro: "
)
