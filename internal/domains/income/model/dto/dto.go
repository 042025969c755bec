package dto

import (
	"frontdesk/internal/domains/income/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateIncomeRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Amount      float64 `json:"amount"      validate:"required,min=0"`
	Category    string  `json:"category"    validate:"omitempty,max=100"`
	EntryDate   string  `json:"entry_date"  validate:"omitempty,dateonly"`
}

func (c *CreateIncomeRequest) ToModel(user string) (model.Income, error) {
	entryDate := timezone.Midnight(timezone.Now())

	if c.EntryDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, c.EntryDate)
		if err != nil {
			return model.Income{}, failure.BadRequest(err) // nolint:wrapcheck
		}

		entryDate = timezone.Midnight(parsed)
	}

	return model.Income{
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

type IncomeResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	EntryDate   string  `json:"entry_date"`
	gDto.Metadata
}

func (i *IncomeResponse) FromModel(model model.Income) {
	i.ID = model.ID
	i.Description = model.Description
	i.Amount = model.Amount
	i.Category = model.Category
	i.EntryDate = timezone.Format(model.EntryDate, constant.DateOnlyFormat)
	i.Metadata.FromModel(model.Metadata)
}

type GetIncomesResponse struct {
	Incomes   []IncomeResponse `json:"incomes"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (g *GetIncomesResponse) FromModels(models []model.Income, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Incomes = make([]IncomeResponse, len(models))
	for i, mod := range models {
		g.Incomes[i].FromModel(mod)
	}
}
