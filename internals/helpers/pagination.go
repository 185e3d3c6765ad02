package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Page       int   `json:"page"`
	Rows       int   `json:"rows"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"`
}

type Paging struct {
	Page   int
	Rows   int
	Offset int
	Limit  int
}

// ResolvePaging reads ?page= and ?rows= and normalizes them.
func ResolvePaging(c *fiber.Ctx, defaultRows, maxRows int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = 1
	}

	rows, _ := strconv.Atoi(strings.TrimSpace(c.Query("rows", strconv.Itoa(defaultRows))))
	if rows <= 0 {
		rows = defaultRows
	}
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}

	return Paging{
		Page:   page,
		Rows:   rows,
		Offset: (page - 1) * rows,
		Limit:  rows,
	}
}

func BuildPagination(total int64, p Paging, count int) Pagination {
	totalPages := int((total + int64(p.Rows) - 1) / int64(p.Rows))
	return Pagination{
		Page:       p.Page,
		Rows:       p.Rows,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
		Count:      count,
	}
}
