package streamio

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPageSize is the platform's hard per-call maximum.
const MaxPageSize = 100

// ErrSortOrder is returned for a sort order the API does not understand.
var ErrSortOrder = errors.New("unknown sort order")

// SortOrder is the catalog ordering requested from the API.
type SortOrder string

const (
	CreatedAtDesc SortOrder = "created_at.desc"
	CreatedAtAsc  SortOrder = "created_at.asc"
	TitleAsc      SortOrder = "title.asc"
	TitleDesc     SortOrder = "title.desc"
)

// SortOrders lists every supported order, default first.
func SortOrders() []SortOrder {
	return []SortOrder{CreatedAtDesc, CreatedAtAsc, TitleAsc, TitleDesc}
}

// ParseSortOrder accepts any supported order, case-insensitively.
func ParseSortOrder(s string) (SortOrder, error) {
	candidate := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	for _, order := range SortOrders() {
		if order == candidate {
			return order, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSortOrder, s)
}

// Next cycles through SortOrders.
func (s SortOrder) Next() SortOrder {
	orders := SortOrders()
	for i, order := range orders {
		if order == s {
			return orders[(i+1)%len(orders)]
		}
	}
	return orders[0]
}

func (s SortOrder) String() string {
	return string(s)
}

// ParseTags splits a free-text, comma separated tag list.
func ParseTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func joinTags(tags []string) string {
	return strings.Join(ParseTags(strings.Join(tags, ",")), ",")
}

// Credentials is the account pair sent as HTTP Basic authentication.
type Credentials struct {
	Username string
	Password string
}

// Present reports whether both halves of the pair are set.
func (c Credentials) Present() bool {
	return c.Username != "" && c.Password != ""
}
