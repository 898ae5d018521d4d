package batchstore

import (
	"time"

	"doc-analyzer-backend/models"
	apimodels "doc-analyzer-backend/models/api"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.BatchRun) (id string, err error)
	GetByID(id string) (rec *dbmodels.BatchRun, err error)
	List(filter apimodels.Pagination) (list []dbmodels.BatchRun, rowCount int64, err error)
	ListDue(now time.Time) (list []dbmodels.BatchRun, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.BatchRun) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.BatchRun, err error) {
	err = i.db.
		Preload("Documents").
		Preload("Documents.Sets").
		Preload("Prompts").
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

func (i impl) List(filter apimodels.Pagination) (list []dbmodels.BatchRun, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.BatchRun{}).
		Preload("Documents").
		Preload("Prompts")
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

// ListDue запуски, чье запланированное время наступило.
// Одобренные запуски выбираются наравне с ожидающими.
func (i impl) ListDue(now time.Time) (list []dbmodels.BatchRun, err error) {
	err = i.db.
		Preload("Documents").
		Preload("Prompts").
		Where("status IN ?", []models.BatchRunStatus{
			models.BatchRunStatusPending,
			models.BatchRunStatusApproved,
		}).
		Where("scheduled_for <= ?", now).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.BatchRun{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
