package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SalBom/app-sb-sub001/internal/domain"
)

// anyLiteral is the textual form of an empty selection.
const anyLiteral = "any"

// Selection is an optional reference to a brand or category: either "any"
// (the zero value) or a concrete id.
type Selection struct {
	id  int64
	set bool
}

// Any returns the empty selection.
func Any() Selection {
	return Selection{}
}

// Select returns a selection of the given id.
func Select(id int64) Selection {
	return Selection{id: id, set: true}
}

// ID returns the selected id and true, or 0 and false for "any".
func (s Selection) ID() (int64, bool) {
	return s.id, s.set
}

// IsAny reports whether nothing is selected.
func (s Selection) IsAny() bool {
	return !s.set
}

// Matches reports whether id satisfies the selection.
func (s Selection) Matches(id int64) bool {
	return !s.set || s.id == id
}

// String returns "any" or the decimal id.
func (s Selection) String() string {
	if !s.set {
		return anyLiteral
	}
	return strconv.FormatInt(s.id, 10)
}

// ParseSelection accepts "", "any" or a decimal id, which is how the mobile
// pickers carry the value.
func ParseSelection(raw string) (Selection, error) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, anyLiteral) {
		return Any(), nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return Any(), domain.NewValidationError("selection", fmt.Sprintf("must be an integer id or %q, got %q", anyLiteral, raw))
	}
	return Select(id), nil
}
