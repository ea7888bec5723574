// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"

	"togetherly/internal/shared/constants"
)

// Paginate is a GORM scope applying 1-based page/pageSize, with the shared
// defaults and MaxPageSize cap.
//
//	db.Model(&Model{}).Scopes(db.Paginate(2, 20)).Find(&results)
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = constants.DefaultPage
		}
		switch {
		case pageSize < 1:
			pageSize = constants.DefaultPageSize
		case pageSize > constants.MaxPageSize:
			pageSize = constants.MaxPageSize
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
