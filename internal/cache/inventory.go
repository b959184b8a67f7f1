package cache

import (
	"fmt"
	"time"
)

const (
	// IndexKeyPattern matches every cached index page.
	IndexKeyPattern = "index:page:*"

	indexKeyPrefix = "index:page:%d"
)

const (
	// IndexTTL is the whole-page cache window for the site index. Posts
	// created inside the window stay invisible until it expires or the
	// index is cleared explicitly.
	IndexTTL = 20 * time.Second
)

// IndexKey returns the cache key for one page of the site index. The key
// depends on nothing but the page number.
func IndexKey(page int) string {
	return fmt.Sprintf(indexKeyPrefix, page)
}
