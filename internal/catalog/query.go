package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MikeMC777/shop-api/internal/paging"
)

// DefaultDescriptionLength is used by list views when the caller sends none.
const DefaultDescriptionLength = 200

// ProductFilter selects products. Zero values disable a predicate.
type ProductFilter struct {
	CategoryIDs []int
	Terms       []string
	MatchAll    bool
	Page        paging.Page
}

// CategoryFilter selects categories. A zero Page returns every match.
type CategoryFilter struct {
	DepartmentID int
	ProductID    int
	OrderBy      string
	Page         paging.Page
}

// SplitTerms breaks a search string on whitespace and commas.
func SplitTerms(q string) []string {
	return strings.FieldsFunc(q, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// MatchName applies the all/any term semantics to a product name.
func MatchName(name string, terms []string, all bool) bool {
	if len(terms) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, t := range terms {
		hit := strings.Contains(lower, strings.ToLower(t))
		if all && !hit {
			return false
		}
		if !all && hit {
			return true
		}
	}
	return all
}

// Truncate cuts s to n runes and appends "..." when something was dropped.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}

func categoryOrder(o string) string {
	switch o {
	case "name":
		return "name"
	default:
		return "category_id"
	}
}
