package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"Murmur/internal/core/paging"
)

// ParsePage reads page, size, and sort from the query string.
// Bad numbers fall back to defaults; bounds are enforced by Normalize.
func ParsePage(r *http.Request) paging.Request {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	return paging.Request{
		Page: page,
		Size: size,
		Sort: q.Get("sort"),
	}.Normalize()
}

// PathUUID parses a UUID path parameter.
func PathUUID(value, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %q", name, value)
	}
	return id, nil
}

// QueryUUIDs parses a comma-separated list of UUIDs from the query string.
func QueryUUIDs(r *http.Request, name string) ([]uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry: %q", name, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// QueryBool parses an optional boolean query parameter; absent means nil.
func QueryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}

// QueryInt parses an optional integer query parameter; absent means nil.
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}

// QueryStrings parses a comma-separated list of strings, dropping blanks.
func QueryStrings(r *http.Request, name string) []string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
