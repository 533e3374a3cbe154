package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryNormalize(t *testing.T) {
	t.Run("clamps pagination", func(t *testing.T) {
		q := ListQuery{Offset: -5, Limit: 500}
		q.Normalize(9)
		assert.Equal(t, 0, q.Offset)
		assert.Equal(t, 9, q.Limit)

		q = ListQuery{Limit: 0}
		q.Normalize(9)
		assert.Equal(t, 9, q.Limit)
	})

	t.Run("All collapses to no filter", func(t *testing.T) {
		q := ListQuery{Type: "All", Region: "all", Status: "Enacted"}
		q.Normalize(9)
		assert.Empty(t, q.Type)
		assert.Empty(t, q.Region)
		assert.Equal(t, "Enacted", q.Status)
	})

	t.Run("trims search text", func(t *testing.T) {
		q := ListQuery{Search: "  usdc  "}
		q.Normalize(9)
		assert.Equal(t, "usdc", q.Search)
	})
}
