package dto

import (
	"frontdesk/internal/domains/expense/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateExpenseRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Amount      float64 `json:"amount"      validate:"required,min=0"`
	Category    string  `json:"category"    validate:"omitempty,max=100"`
	EntryDate   string  `json:"entry_date"  validate:"omitempty,dateonly"`
}

// ToModel builds the expense record; a missing entry date defaults to today.
func (c *CreateExpenseRequest) ToModel(user string) (model.Expense, error) {
	entryDate := timezone.Midnight(timezone.Now())

	if c.EntryDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, c.EntryDate)
		if err != nil {
			return model.Expense{}, failure.BadRequest(err) // nolint:wrapcheck
		}

		entryDate = timezone.Midnight(parsed)
	}

	return model.Expense{
		ID:          uuid.NewString(),
		Description: c.Description,
		Amount:      c.Amount,
		Category:    c.Category,
		EntryDate:   entryDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	EntryDate   string  `json:"entry_date"`
	gDto.Metadata
}

func (e *ExpenseResponse) FromModel(model model.Expense) {
	e.ID = model.ID
	e.Description = model.Description
	e.Amount = model.Amount
	e.Category = model.Category
	e.EntryDate = timezone.Format(model.EntryDate, constant.DateOnlyFormat)
	e.Metadata.FromModel(model.Metadata)
}

type GetExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetExpensesResponse) FromModels(models []model.Expense, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Expenses = make([]ExpenseResponse, len(models))
	for i, mod := range models {
		g.Expenses[i].FromModel(mod)
	}
}
