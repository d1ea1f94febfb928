package query

// PageSizes are the selectable page sizes. Anything else falls back to the default.
var PageSizes = []int{5, 10, 50, 100}

const DefaultPageSize = 5

// Page is one window over a filtered collection.
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
	Number     int
	Size       int
	From       int // 1-based position of the first shown element, 0 when empty
	To         int
}

// ValidPageSize reports whether size is one of the selectable options.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Paginate slices items into the requested page. The page number is clamped
// into [1, totalPages]; total pages is never below 1 even for an empty set.
func Paginate[T any](items []T, page, size int) Page[T] {
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := Page[T]{
		Items:      items[start:end],
		Total:      total,
		TotalPages: totalPages,
		Number:     page,
		Size:       size,
	}
	if total > 0 {
		out.From = start + 1
		out.To = end
	}
	return out
}
