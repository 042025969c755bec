package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "expenses"
	EntityName = "expense"

	FieldID          = "id"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldEntryDate   = "entry_date"
)

type Expense struct {
	ID          string    `db:"id"`
	Description string    `db:"description"`
	Amount      float64   `db:"amount"`
	Category    string    `db:"category"`
	EntryDate   time.Time `db:"entry_date"`
	model.Metadata
}
