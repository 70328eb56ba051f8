package importer

import (
	"errors"
	"fmt"

	"github.com/pocket-ledger/backend/internal/models"
	"gorm.io/gorm"
)

var ErrImportAborted = errors.New("the import was aborted and all of its rows were rolled back")

// Create inserts all parsed expenses in one transaction.
//
// The batch is all or nothing: the first insert that fails rolls back every
// insert performed in this call, the store is left exactly as it was.
func Create(db *gorm.DB, expenses []models.Expense) (int, error) {
	// Start a transaction so we can roll back all created resources if an error occurs
	tx := db.Begin()
	if tx.Error != nil {
		return 0, fmt.Errorf("%w: %s", ErrImportAborted, tx.Error)
	}

	for idx, expense := range expenses {
		err := tx.Create(&expense).Error
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("%w: row %d: %s", ErrImportAborted, idx+1, err)
		}

		// Update the expense in the batch so that it also contains the ID
		expenses[idx] = expense
	}

	err := tx.Commit().Error
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrImportAborted, err)
	}

	return len(expenses), nil
}
