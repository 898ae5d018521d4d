package dbmodels

import (
	"doc-analyzer-backend/models"
	setapimodels "doc-analyzer-backend/models/api/set"
)

type DocumentSet struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	Documents   []Document      `gorm:"many2many:document_set_members;"`
	Queries     []DocumentQuery `gorm:"foreignKey:SetID"`
}

func (r DocumentSet) ToModel() setapimodels.SetView {
	return setapimodels.SetView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		MemberCount: len(r.Documents),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type DocumentQuery struct {
	BaseModel
	SetID      string               `gorm:"index"`
	Name       string               `gorm:"type:varchar(255)"`
	QueryType  models.QueryField    `gorm:"type:varchar(64)" comment:"Поле документа для сравнения"`
	Operator   models.QueryOperator `gorm:"type:varchar(64)"`
	QueryValue string               `comment:"Значение для сравнения"`
}

func (r DocumentQuery) ToModel() setapimodels.QueryView {
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
