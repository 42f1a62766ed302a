package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("negative page clamps to zero", func(t *testing.T) {
		n := Request{Page: -3, Size: 10}.Normalize()
		assert.Equal(t, 0, n.Page)
	})

	t.Run("zero size gets default", func(t *testing.T) {
		n := Request{}.Normalize()
		assert.Equal(t, DefaultSize, n.Size)
	})

	t.Run("oversized page clamps to max", func(t *testing.T) {
		n := Request{Size: 5000}.Normalize()
		assert.Equal(t, MaxSize, n.Size)
	})
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Request{Page: 0, Size: 25}.Offset())
	assert.Equal(t, 75, Request{Page: 3, Size: 25}.Offset())
}

func TestNewPage(t *testing.T) {
	t.Run("computes total pages with remainder", func(t *testing.T) {
		p := NewPage([]int{1, 2, 3}, 7, Request{Page: 0, Size: 3})
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(7), p.TotalElements)
	})

	t.Run("empty result has zero pages and non-nil content", func(t *testing.T) {
		p := NewPage[int](nil, 0, Request{})
		assert.Equal(t, 0, p.TotalPages)
		assert.NotNil(t, p.Content)
		assert.Empty(t, p.Content)
	})
}
