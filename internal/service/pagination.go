// Package service implements the domain rules on top of the repositories.
package service

import "pulse/internal/models"

// PageSize is the fixed page window for every listing in the application.
const PageSize = 10

// PostPage is one page window of a post listing plus pagination metadata.
// It is JSON-serializable so whole pages can be cached as-is.
type PostPage struct {
	Posts      []*models.Post `json:"posts"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// normalizePage coerces out-of-range page numbers to the first page.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageOffset(page int) int {
	return (normalizePage(page) - 1) * PageSize
}

func newPostPage(posts []*models.Post, page int, total int64) *PostPage {
	if posts == nil {
		posts = []*models.Post{}
	}
	totalPages := int((total + PageSize - 1) / PageSize)
	return &PostPage{
		Posts:      posts,
		Page:       normalizePage(page),
		PageSize:   PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
