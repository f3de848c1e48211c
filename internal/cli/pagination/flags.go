package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	MaxPageSize = 1000
)

// Validation errors.
var (
	ErrInvalidPage         = errors.New("page must be >= 1")
	ErrInvalidPageSize     = fmt.Errorf("page-size must be between 1 and %d", MaxPageSize)
	ErrPageSizeWithoutPage = errors.New("--page-size requires --page to be set")
	ErrInvalidSortFormat   = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField      = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder    = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField    = errors.New("invalid sort field")
)

// Params holds the paging and sorting flags. A zero Page disables paging.
type Params struct {
	Page     int
	PageSize int
	Sort     string
}

// Validate checks the flag combination.
func (p Params) Validate() error {
	switch {
	case p.Page < 0:
		return ErrInvalidPage
	case p.PageSize < 0 || p.PageSize > MaxPageSize:
		return ErrInvalidPageSize
	case p.Page == 0 && p.PageSize > 0:
		return ErrPageSizeWithoutPage
	}
	if p.Sort != "" {
		if _, _, err := ParseSort(p.Sort); err != nil {
			return err
		}
	}
	return nil
}

// Enabled reports whether paging is on.
func (p Params) Enabled() bool {
	return p.Page > 0
}

// effectivePageSize falls back to a single page holding everything.
func (p Params) effectivePageSize(total int) int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	return max(total, 1)
}

const sortPartsMax = 2

// ParseSort parses "field" or "field:order". The order defaults to asc.
//
//nolint:nonamedreturns // Named returns document the pair.
func ParseSort(expr string) (field, order string, err error) {
	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}
	field = strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", ErrEmptySortField
	}
	order = SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}

// Apply returns the requested page of items. A page past the end yields the
// last page.
func Apply[T any](items []T, p Params) []T {
	if !p.Enabled() || len(items) == 0 {
		return items
	}
	size := p.effectivePageSize(len(items))
	offset := (p.Page - 1) * size
	if offset >= len(items) {
		offset = ((len(items) - 1) / size) * size
	}
	end := min(offset+size, len(items))
	return items[offset:end]
}
