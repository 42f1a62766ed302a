package paging

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Request describes the page a caller wants: zero-based page number,
// page size, and an optional sort expression such as "created_at,desc".
type Request struct {
	Sort string `json:"sort,omitempty"`
	Page int    `json:"page"`
	Size int    `json:"size"`
}

// Normalize clamps the request to sane bounds so repositories never see
// negative offsets or unbounded limits.
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

// Offset returns the row offset for the normalized request.
func (r Request) Offset() int {
	n := r.Normalize()
	return n.Page * n.Size
}

// Limit returns the row limit for the normalized request.
func (r Request) Limit() int {
	return r.Normalize().Size
}

// Page is one page of results plus the totals needed by clients to
// render pagination controls.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// NewPage assembles a Page from query results and the total row count.
func NewPage[T any](content []T, total int64, req Request) Page[T] {
	n := req.Normalize()
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(n.Size) - 1) / int64(n.Size))
	}
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        n.Page,
		Size:          n.Size,
	}
}
