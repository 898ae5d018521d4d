package setapimodels

import (
	"time"

	"doc-analyzer-backend/models"

	"github.com/pkg/errors"
)

type QueryData struct {
	Name     string               `json:"name"`
	Field    models.QueryField    `json:"field"`
	Operator models.QueryOperator `json:"operator"`
	Value    string               `json:"value"`
}

func (r QueryData) Validate(allowedFields []models.QueryField) error {
	if !r.Field.IsValidFor(allowedFields) {
		return errors.Errorf("недопустимое поле для сравнения: %v", r.Field)
	}
	if !r.Operator.IsValid() {
		return errors.Errorf("недопустимый оператор: %v", r.Operator)
	}
	if r.Value == "" {
		return errors.New("не указано значение для сравнения")
	}
	return nil
}

type QueryView struct {
	ID string `json:"id"`
	QueryData
	CreatedAt time.Time `json:"created_at"`
}

type SetData struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	MemberIDs   []string   `json:"member_ids"`      // начальный состав набора
	Query       *QueryData `json:"query,omitempty"` // опциональный авто-запрос
}

func (r SetData) Validate(allowedFields []models.QueryField) error {
	if r.Name == "" {
		return errors.New("не указано имя набора")
	}
	if r.Query != nil {
		return r.Query.Validate(allowedFields)
	}
	return nil
}

type SetView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SetDetailsView struct {
	SetView
	MemberIDs   []string    `json:"member_ids"`
	MemberNames []string    `json:"member_names"`
	Queries     []QueryView `json:"queries"`
}

type AddMembersRequest struct {
	IDs []string `json:"ids"`
}

func (r AddMembersRequest) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("не указаны записи для добавления")
	}
	return nil
}
