package dto

import (
	"fmt"
	"slices"
	"strings"
)

// SearchFilter builds the list filter used by every back-office table:
// a case-insensitive substring match over Fields ORed together,
// ANDed with an exact match on StatusField.
type SearchFilter struct {
	Query       string
	Fields      []string
	StatusField string
	Status      string
	Table       string
	Equals      []Filter
}

// Equal adds another exact match on field. Empty and "all" values are ignored.
func (s SearchFilter) Equal(field, value string) SearchFilter {
	value = strings.TrimSpace(value)
	if value == "" || value == "all" {
		return s
	}

	s.Equals = append(slices.Clone(s.Equals), Filter{
		ArgName:  fmt.Sprintf("f_%s", field),
		Field:    field,
		Value:    value,
		Operator: FilterOperatorEq,
		Table:    s.Table,
	})

	return s
}

// Group returns nil when neither predicate is active.
func (s SearchFilter) Group() *FilterGroup {
	group := FilterGroup{Operator: FilterGroupOperatorAnd}

	query := strings.TrimSpace(s.Query)
	if query != "" && len(s.Fields) > 0 {
		or := FilterGroup{Operator: FilterGroupOperatorOr}

		for _, field := range s.Fields {
			or.Filters = append(or.Filters, Filter{
				ArgName:  fmt.Sprintf("q_%s", field),
				Field:    field,
				Value:    query,
				Operator: FilterOperatorLike,
				Table:    s.Table,
			})
		}

		group.Filters = append(group.Filters, or)
	}

	if s.StatusField != "" && s.Status != "" && s.Status != "all" {
		group.Filters = append(group.Filters, Filter{
			ArgName:  fmt.Sprintf("f_%s", s.StatusField),
			Field:    s.StatusField,
			Value:    s.Status,
			Operator: FilterOperatorEq,
			Table:    s.Table,
		})
	}

	for _, equal := range s.Equals {
		group.Filters = append(group.Filters, equal)
	}

	if len(group.Filters) == 0 {
		return nil
	}

	return &group
}
