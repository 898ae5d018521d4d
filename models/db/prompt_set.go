package dbmodels

import (
	"doc-analyzer-backend/models"
	setapimodels "doc-analyzer-backend/models/api/set"
)

type PromptSet struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	Prompts     []Prompt      `gorm:"many2many:prompt_set_members;"`
	Queries     []PromptQuery `gorm:"foreignKey:SetID"`
}

func (r PromptSet) ToModel() setapimodels.SetView {
	return setapimodels.SetView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		MemberCount: len(r.Prompts),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type PromptQuery struct {
	BaseModel
	SetID      string               `gorm:"index"`
	Name       string               `gorm:"type:varchar(255)"`
	QueryType  models.QueryField    `gorm:"type:varchar(64)" comment:"Поле промта для сравнения"`
	Operator   models.QueryOperator `gorm:"type:varchar(64)"`
	QueryValue string               `comment:"Значение для сравнения"`
}

func (r PromptQuery) ToModel() setapimodels.QueryView {
	return setapimodels.QueryView{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		QueryData: setapimodels.QueryData{
			Name:     r.Name,
			Field:    r.QueryType,
			Operator: r.Operator,
			Value:    r.QueryValue,
		},
	}
}
