package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate applies a row-level lock inside the current transaction.
// SQLite has no SELECT ... FOR UPDATE; its single-writer transactions already
// serialize the read-check-write sequence.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
