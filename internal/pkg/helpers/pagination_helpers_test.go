package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&per_page=40", 3, 40},
		{"clamped to max", "per_page=500", 1, 100},
		{"invalid page falls back", "page=zero", 1, 20},
		{"negative page falls back", "page=-2", 1, 20},
		{"zero per_page falls back", "per_page=0", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := ParsePageParams(queryContext(tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestParseSearchPageParams(t *testing.T) {
	page, perPage := ParseSearchPageParams(queryContext(""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, perPage)

	_, perPage = ParseSearchPageParams(queryContext("per_page=200"))
	assert.Equal(t, 50, perPage)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	assert.Equal(t, 3, p.Pages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// Page beyond the last page: empty list, no next page.
	p = NewPagination(9, 20, 45)
	assert.False(t, p.HasNext)

	p = NewPagination(1, 20, 0)
	assert.Equal(t, 0, p.Pages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestOffsetLimit(t *testing.T) {
	offset, limit := OffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, uint64(20), limit)

	offset, _ = OffsetLimit(0, 20)
	assert.Equal(t, uint64(0), offset)
}
