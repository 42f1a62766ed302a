package posts

import "github.com/google/uuid"

// SearchCriteria holds the optional filters for the paged post search.
// Absent (zero/nil) fields add no constraint.
//
// DateFrom/DateTo are epoch-millisecond strings as sent by clients; they
// are parsed to UTC timestamps by the filter builder and a malformed
// value surfaces as ErrInvalidDateRange.
type SearchCriteria struct {
	Title      string      `json:"title,omitempty"`
	Text       string      `json:"text,omitempty"`
	DateFrom   string      `json:"dateFrom,omitempty"`
	DateTo     string      `json:"dateTo,omitempty"`
	IDs        []uuid.UUID `json:"ids,omitempty"`
	AccountIDs []uuid.UUID `json:"accountIds,omitempty"`
	BlockedIDs []uuid.UUID `json:"blockedIds,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
	IsBlocked  *bool       `json:"isBlocked,omitempty"`
	IsDeleted  *bool       `json:"isDeleted,omitempty"`
}

// IncludesAccount reports whether the caller explicitly listed the given
// account among the requested author IDs. The search defaults to hiding
// the caller's own posts unless they ask for them this way.
func (c SearchCriteria) IncludesAccount(id uuid.UUID) bool {
	for _, acc := range c.AccountIDs {
		if acc == id {
			return true
		}
	}
	return false
}
