// Package pagination normalizes page arguments for list-style commands.
package pagination

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// ClampPage normalizes a 1-based page number.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Slice returns the bounds of the given 1-based page over n items. The
// returned range is empty when the page starts past the end.
func Slice(n, page, pageSize int) (start, end int) {
	page = ClampPage(page)
	if pageSize < 1 {
		pageSize = 1
	}
	start = (page - 1) * pageSize
	if start >= n {
		return n, n
	}
	end = start + pageSize
	if end > n {
		end = n
	}
	return start, end
}
