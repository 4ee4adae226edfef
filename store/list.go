package store

// pageBounds converts 1-based offset pagination into slice bounds over a
// filtered list of length total. Listing scans are O(total) per request by
// design; the backing store has no cursors.
func pageBounds(total, page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
