// Package importer implements the bulk import of expenses from tabular files.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/validate"
)

// Columns of the import file, in order.
const (
	Date = iota
	Amount
	Category
	Description
)

// Parse reads expenses from a CSV file with the columns
// date, amount, category, description.
//
// The first line is the header and is skipped. Every data row must carry a
// valid date and amount, the first invalid row aborts the parse with an error
// naming its line.
func Parse(f io.Reader) ([]models.Expense, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	expenses := make([]models.Expense, 0)

	// Skip the header line
	_, err := reader.Read()
	if err == io.EOF {
		return expenses, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read the header line: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		if len(record) < Description {
			return csvReadError(reader, fmt.Errorf("%w: a row needs at least a date, an amount and a category", validate.ErrInvalidFormat))
		}

		if !validate.Required(record[Date], record[Amount], record[Category]) {
			return csvReadError(reader, models.ErrExpenseFieldsMissing)
		}

		date, err := validate.Date(record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("date: %w", err))
		}

		amount, err := validate.Amount(record[Amount])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("amount: %w", err))
		}

		expense := models.Expense{
			Date:     date,
			Amount:   amount,
			Category: record[Category],
		}

		if len(record) > Description {
			expense.Description = record[Description]
		}

		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// csvReadError returns an error including the line of the input the error
// occurred in.
func csvReadError(r *csv.Reader, err error) ([]models.Expense, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return nil, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
