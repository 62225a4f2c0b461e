package httpx

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/MikeMC777/shop-api/internal/apperr"
	"github.com/MikeMC777/shop-api/internal/paging"
)

var errNotDecimal = errors.New("not a decimal integer")

// parseDecimal reads a base 10 integer with an optional minus sign. cast
// alone would honour 0x and leading-zero octal prefixes.
func parseDecimal(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" {
		return 0, errNotDecimal
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errNotDecimal
		}
	}
	if s = strings.TrimLeft(s, "0"); s == "" {
		s = "0"
	}
	if neg {
		s = "-" + s
	}
	return cast.ToIntE(s)
}

// IDParam parses a positive integer path parameter.
func IDParam(c *gin.Context, name string) (int, error) {
	id, err := parseDecimal(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperr.Validation(name, "invalid "+name)
	}
	return id, nil
}

// IntQuery parses an integer query parameter, falling back to def when it is
// missing or malformed.
func IntQuery(c *gin.Context, name string, def int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def
	}
	v, err := parseDecimal(raw)
	if err != nil {
		return def
	}
	return v
}

// BoolQuery accepts on/true/1 style flags.
func BoolQuery(c *gin.Context, name string) bool {
	raw := strings.ToLower(strings.TrimSpace(c.Query(name)))
	if raw == "on" || raw == "yes" {
		return true
	}
	return cast.ToBool(raw)
}

// PageQuery reads page and limit.
func PageQuery(c *gin.Context) paging.Page {
	return paging.New(IntQuery(c, "page", 1), IntQuery(c, "limit", paging.DefaultLimit))
}

// Rows is the envelope for unpaginated lists.
type Rows[T any] struct {
	Rows []T `json:"rows"`
}

func NewRows[T any](rows []T) Rows[T] {
	if rows == nil {
		rows = []T{}
	}
	return Rows[T]{Rows: rows}
}
