package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "incomes"
	EntityName = "income"

	FieldID          = "id"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldEntryDate   = "entry_date"
)

// Income records revenue outside of room sales, such as restaurant or laundry
// income. Room revenue itself always comes from the daily sales ledger.
type Income struct {
	ID          string    `db:"id"`
	Description string    `db:"description"`
	Amount      float64   `db:"amount"`
	Category    string    `db:"category"`
	EntryDate   time.Time `db:"entry_date"`
	model.Metadata
}
