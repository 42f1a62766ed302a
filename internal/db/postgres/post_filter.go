package postgres

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"Murmur/internal/core/posts"
)

// buildPostFilter translates post search criteria into an AND-composed
// WHERE fragment with positional args, starting at $1. Pure function of
// the criteria; the repo appends ORDER BY / LIMIT / OFFSET.
//
// Account scoping is deliberately asymmetric: with AccountIDs present
// the filter is a plain author IN (...) — the caller only sees their
// own posts by listing themselves — and with no AccountIDs at all the
// caller's posts are excluded outright. The search is a "other
// people's posts" browse by default.
func buildPostFilter(c posts.SearchCriteria, callerID uuid.UUID) (string, []any, error) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(c.IDs) > 0 {
		conds = append(conds, fmt.Sprintf("id = ANY(%s)", next(pq.Array(uuidStrings(c.IDs)))))
	}

	if len(c.AccountIDs) > 0 {
		conds = append(conds, fmt.Sprintf("author_id = ANY(%s)", next(pq.Array(uuidStrings(c.AccountIDs)))))
	} else {
		conds = append(conds, fmt.Sprintf("author_id <> %s", next(callerID.String())))
	}

	if len(c.BlockedIDs) > 0 {
		conds = append(conds, fmt.Sprintf("NOT (id = ANY(%s))", next(pq.Array(uuidStrings(c.BlockedIDs)))))
	}

	// A null flag counts as not-blocked / not-deleted
	if c.IsBlocked != nil {
		if *c.IsBlocked {
			conds = append(conds, "is_blocked = TRUE")
		} else {
			conds = append(conds, "COALESCE(is_blocked, FALSE) = FALSE")
		}
	}
	if c.IsDeleted != nil {
		if *c.IsDeleted {
			conds = append(conds, "is_deleted = TRUE")
		} else {
			conds = append(conds, "COALESCE(is_deleted, FALSE) = FALSE")
		}
	}

	if c.Title != "" {
		conds = append(conds, fmt.Sprintf("title ILIKE %s", next("%"+c.Title+"%")))
	}
	if c.Text != "" {
		conds = append(conds, fmt.Sprintf("post_text ILIKE %s", next("%"+c.Text+"%")))
	}

	if len(c.Tags) > 0 {
		conds = append(conds, fmt.Sprintf("tags && %s", next(pq.Array(c.Tags))))
	}

	if c.DateFrom != "" {
		from, err := parseEpochMillis(c.DateFrom)
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, fmt.Sprintf("publish_date >= %s", next(from)))
	}
	if c.DateTo != "" {
		to, err := parseEpochMillis(c.DateTo)
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, fmt.Sprintf("publish_date <= %s", next(to)))
	}

	return joinConds(conds), args, nil
}

// parseEpochMillis converts an epoch-millisecond string to a UTC timestamp
func parseEpochMillis(s string) (time.Time, error) {
	millis, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", posts.ErrInvalidDateRange, s)
	}
	return time.UnixMilli(millis).UTC(), nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func joinConds(conds []string) string {
	if len(conds) == 0 {
		return "TRUE"
	}
	where := conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where
}
