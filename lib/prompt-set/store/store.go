package promptsetstore

import (
	apimodels "doc-analyzer-backend/models/api"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PromptSet) (id string, err error)
	GetByID(id string) (rec *dbmodels.PromptSet, err error)
	List(filter apimodels.Pagination) (list []dbmodels.PromptSet, rowCount int64, err error)
	ListWithQueries() (list []dbmodels.PromptSet, err error)
	ListByIDs(ids []string) (list []dbmodels.PromptSet, err error)
	AddMembers(id string, prompts []dbmodels.Prompt) error
	AddQuery(rec dbmodels.PromptQuery) (id string, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PromptSet) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.PromptSet, err error) {
	err = i.db.
		Preload("Prompts").
		Preload("Queries").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List(filter apimodels.Pagination) (list []dbmodels.PromptSet, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.PromptSet{}).Preload("Prompts")
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// ListWithQueries наборы с авто-запросами и текущим составом, для воркера
func (i impl) ListWithQueries() (list []dbmodels.PromptSet, err error) {
	err = i.db.
		Preload("Prompts").
		Preload("Queries").
		Where("id IN (?)", i.db.
			Model(&dbmodels.PromptQuery{}).
			Select("set_id")).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.PromptSet, err error) {
	err = i.db.
		Preload("Prompts").
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddMembers(id string, prompts []dbmodels.Prompt) error {
	rec := dbmodels.PromptSet{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.
		Model(&rec).
		Association("Prompts").
		Append(prompts)
}

func (i impl) AddQuery(rec dbmodels.PromptQuery) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
