package store

import (
	"gorm.io/gorm"
)

// DoInTx runs fn inside a database transaction. The transaction is rolled
// back when fn returns an error, committed otherwise.
func DoInTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
