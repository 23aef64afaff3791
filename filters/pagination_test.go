package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindow(t *testing.T) {
	w := Paginate(1, 12, 25)
	assert.Equal(t, 1, w.Start)
	assert.Equal(t, 12, w.End)
	assert.False(t, w.HasPrev())
	assert.True(t, w.HasNext())

	w = Paginate(2, 12, 25)
	assert.Equal(t, 13, w.Start)
	assert.Equal(t, 24, w.End)
	assert.True(t, w.HasPrev())
	assert.True(t, w.HasNext())

	// Final partial page.
	w = Paginate(3, 12, 25)
	assert.Equal(t, 25, w.Start)
	assert.Equal(t, 25, w.End)
	assert.True(t, w.HasPrev())
	assert.False(t, w.HasNext())
}

func TestPaginateEmptyResults(t *testing.T) {
	w := Paginate(1, 12, 0)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 0, w.End)
	assert.False(t, w.HasPrev())
	assert.False(t, w.HasNext())
	assert.Equal(t, 0, w.TotalPages())
}

func TestPaginateDefendsAgainstBadInput(t *testing.T) {
	w := Paginate(0, 0, 30)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, DefaultPageSize, w.PerPage)
	assert.Equal(t, 1, w.Start)
	assert.Equal(t, 12, w.End)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, Paginate(1, 12, 25).TotalPages())
	assert.Equal(t, 2, Paginate(1, 12, 24).TotalPages())
	assert.Equal(t, 1, Paginate(1, 12, 5).TotalPages())
}
