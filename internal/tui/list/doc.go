// Package listview provides a scrolling, selectable list for Bubble Tea screens.
//
// Only the rows inside the viewport are rendered, so long catalogs stay cheap
// to redraw. Navigation supports arrows, j/k, pgup/pgdn and home/end.
package listview
