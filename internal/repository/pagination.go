package repository

import "gorm.io/gorm"

// hardPageSizeCap 防止调用方绕过 handler 层传入超大分页。
const hardPageSizeCap = 200

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
// pageSize <= 0 表示不分页，由调用方自行限制结果集。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > hardPageSizeCap {
		pageSize = hardPageSizeCap
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
