package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSortOrder(t *testing.T) {
	def := "created_at DESC, id DESC"

	assert.Equal(t, def, SanitizeSortOrder("", ResourceSortColumns, def))
	assert.Equal(t, "name ASC", SanitizeSortOrder("name", ResourceSortColumns, def))
	assert.Equal(t, "cost_monthly DESC", SanitizeSortOrder("cost_monthly desc", ResourceSortColumns, def))
	assert.Equal(t, "kind ASC, created_at DESC", SanitizeSortOrder("kind, created_at desc", ResourceSortColumns, def))

	// Unknown columns and injection attempts fall back to the default.
	assert.Equal(t, def, SanitizeSortOrder("password", ResourceSortColumns, def))
	assert.Equal(t, def, SanitizeSortOrder("name; DROP TABLE resources", ResourceSortColumns, def))
}

func TestClampPaginationParams(t *testing.T) {
	limit, offset := ClampPaginationParams(0, -5)
	assert.Equal(t, DefaultLimit, limit)
	assert.Equal(t, DefaultOffset, offset)

	limit, offset = ClampPaginationParams(5000, 200000)
	assert.Equal(t, MaxPageSize, limit)
	assert.Equal(t, MaxOffset, offset)

	limit, offset = ClampPaginationParams(10, 20)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 20, offset)
}
