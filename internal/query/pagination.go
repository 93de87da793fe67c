package query

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 12

	// NoLimit is the sentinel limit=-1: return every matching row and
	// ignore the page parameter entirely.
	NoLimit = -1
)

type Pagination struct {
	Limit int
	Page  int
}

// ParsePagination reads the limit/page query values, falling back to the
// defaults on absent or malformed input.
func ParsePagination(limitStr, pageStr string) Pagination {
	return Pagination{
		Limit: parseIntDefault(limitStr, DefaultLimit),
		Page:  parseIntDefault(pageStr, 1),
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (p Pagination) Apply(tx *gorm.DB) *gorm.DB {
	if p.Limit == NoLimit {
		return tx
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return tx.Offset((page - 1) * p.Limit).Limit(p.Limit)
}

// ParseFields splits a comma-separated projection list, falling back to the
// resource default when the parameter is absent.
func ParseFields(fieldsStr, def string) []string {
	if fieldsStr == "" {
		fieldsStr = def
	}
	parts := strings.Split(fieldsStr, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
