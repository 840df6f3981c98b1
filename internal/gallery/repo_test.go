package gallery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The public-page ordering lives in the query itself; guard the clauses so a
// reworded statement can't silently change it.
func TestListGalleryQuery_OrderingClauses(t *testing.T) {
	q := strings.Join(strings.Fields(listGalleryQuery), " ")

	assert.Contains(t, q, "WHERE kind = $1", "banner rows stay off the gallery page")
	assert.Contains(t, q, "ORDER BY sort_order ASC NULLS LAST, created_at ASC",
		"unordered images sort last, ties break by creation time")
}
