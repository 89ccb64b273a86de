package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/models/dto"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100

	// Search endpoints use tighter limits.
	SearchDefaultPerPage = 10
	SearchMaxPerPage     = 50
)

// ParsePageParams extracts page and per_page from the request. page falls
// back to 1 when invalid; per_page falls back to the default when invalid
// and is clamped to the maximum.
func ParsePageParams(c *gin.Context) (page, perPage int) {
	return parsePageParams(c, DefaultPerPage, MaxPerPage)
}

// ParseSearchPageParams is ParsePageParams with the search-endpoint limits.
func ParseSearchPageParams(c *gin.Context) (page, perPage int) {
	return parsePageParams(c, SearchDefaultPerPage, SearchMaxPerPage)
}

func parsePageParams(c *gin.Context, defaultPerPage, maxPerPage int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return page, perPage
}

// OffsetLimit converts a 1-based page and page size into SQL offset/limit.
func OffsetLimit(page, perPage int) (offset uint64, limit uint64) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return uint64((page - 1) * perPage), uint64(perPage)
}

// NewPagination builds the standard pagination block from a total row
// count. A page past the end simply yields has_next=false; items are
// expected to be empty in that case.
func NewPagination(page, perPage int, total int64) dto.Pagination {
	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(perPage)))
	}

	return dto.Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
}
