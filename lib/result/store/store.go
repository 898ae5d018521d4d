package resultstore

import (
	resultapimodels "doc-analyzer-backend/models/api/result"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Result) (id string, err error)
	GetByID(id string) (rec *dbmodels.Result, err error)
	List(filter resultapimodels.ResultFilter) (list []dbmodels.Result, rowCount int64, err error)
	ListAll(filter resultapimodels.ResultFilter) (list []dbmodels.Result, err error)
	ListByRunID(runID string) (list []dbmodels.Result, err error)
	SaveFeedback(rec dbmodels.Feedback) (id string, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Result) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Result, err error) {
	err = i.db.
		Preload("Document").
		Preload("Prompt").
		Preload("BatchRun").
		Preload("Feedback").
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

func (i impl) List(filter resultapimodels.ResultFilter) (list []dbmodels.Result, rowCount int64, err error) {
	tx := i.listQuery(filter)
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

// ListAll выборка по фильтру без пагинации
func (i impl) ListAll(filter resultapimodels.ResultFilter) (list []dbmodels.Result, err error) {
	err = i.listQuery(filter).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) listQuery(filter resultapimodels.ResultFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Result{}).
		Preload("Document").
		Preload("Prompt").
		Preload("BatchRun").
		Preload("Feedback")
	if filter.BatchRunID != "" {
		tx = tx.Where("batch_run_id = ?", filter.BatchRunID)
	}
	if filter.DocumentID != "" {
		tx = tx.Where("document_id = ?", filter.DocumentID)
	}
	if filter.PromptID != "" {
		tx = tx.Where("prompt_id = ?", filter.PromptID)
	}
	return tx
}

func (i impl) ListByRunID(runID string) (list []dbmodels.Result, err error) {
	err = i.db.
		Preload("Document").
		Preload("Prompt").
		Preload("Feedback").
		Where("batch_run_id = ?", runID).
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SaveFeedback(rec dbmodels.Feedback) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
