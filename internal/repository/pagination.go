package repository

import "gorm.io/gorm"

// applyLimitOffset applies optional pagination bounds. A zero limit leaves the
// result set unrestricted, matching the unbounded default of news/event listings.
func applyLimitOffset(query *gorm.DB, limit, offset int) *gorm.DB {
	if query == nil {
		return query
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
