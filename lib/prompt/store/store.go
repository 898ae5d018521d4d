package promptstore

import (
	promptapimodels "doc-analyzer-backend/models/api/prompt"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Prompt) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Prompt, err error)
	List(filter promptapimodels.PromptFilter) (list []dbmodels.Prompt, rowCount int64, err error)
	ListWithoutSets() (list []dbmodels.Prompt, err error)
	ListByIDs(ids []string) (list []dbmodels.Prompt, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Prompt) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Prompt{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Prompt, err error) {
	err = i.db.
		Preload("Sets").
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

func (i impl) List(filter promptapimodels.PromptFilter) (list []dbmodels.Prompt, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.Prompt{}).Preload("Sets")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		switch filter.SearchIn {
		case "name":
			tx = tx.Where("name ILIKE ?", pattern)
		case "content":
			tx = tx.Where("content ILIKE ?", pattern)
		default:
			tx = tx.Where("name ILIKE ? OR content ILIKE ?", pattern, pattern)
		}
	}
	if filter.SetID != "" {
		tx = tx.Where("id IN (?)", i.db.
			Table("prompt_set_members").
			Select("prompt_id").
			Where("prompt_set_id = ?", filter.SetID))
	}
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

// ListWithoutSets промты, не входящие ни в один набор
func (i impl) ListWithoutSets() (list []dbmodels.Prompt, err error) {
	err = i.db.
		Where("id NOT IN (?)", i.db.
			Table("prompt_set_members").
			Select("prompt_id")).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.Prompt, err error) {
	err = i.db.
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
