package pagination

import (
	"fmt"
	"slices"
	"sort"
)

// CompareFunc orders two items by one field.
type CompareFunc[T any] func(a, b T) int

// Sorter sorts items by named fields.
type Sorter[T any] struct {
	fields map[string]CompareFunc[T]
}

// NewSorter creates a sorter over the given fields.
func NewSorter[T any](fields map[string]CompareFunc[T]) *Sorter[T] {
	return &Sorter[T]{fields: fields}
}

// IsValidField reports whether field can be sorted on.
func (s *Sorter[T]) IsValidField(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// ValidFields returns the sortable fields in order.
func (s *Sorter[T]) ValidFields() []string {
	fields := make([]string, 0, len(s.fields))
	for f := range s.fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a stably sorted copy of items for expr ("field[:order]").
// An empty expr returns items unchanged.
func (s *Sorter[T]) Sort(items []T, expr string) ([]T, error) {
	if expr == "" {
		return items, nil
	}
	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	cmp, ok := s.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, s.ValidFields())
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if order == SortOrderDesc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return sorted, nil
}
