package documentsetstore

import (
	apimodels "doc-analyzer-backend/models/api"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.DocumentSet) (id string, err error)
	GetByID(id string) (rec *dbmodels.DocumentSet, err error)
	List(filter apimodels.Pagination) (list []dbmodels.DocumentSet, rowCount int64, err error)
	ListWithQueries() (list []dbmodels.DocumentSet, err error)
	AddMembers(id string, documents []dbmodels.Document) error
	AddQuery(rec dbmodels.DocumentQuery) (id string, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DocumentSet) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.DocumentSet, err error) {
	err = i.db.
		Preload("Documents").
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

func (i impl) List(filter apimodels.Pagination) (list []dbmodels.DocumentSet, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.DocumentSet{}).Preload("Documents")
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
func (i impl) ListWithQueries() (list []dbmodels.DocumentSet, err error) {
	err = i.db.
		Preload("Documents").
		Preload("Queries").
		Where("id IN (?)", i.db.
			Model(&dbmodels.DocumentQuery{}).
			Select("set_id")).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddMembers(id string, documents []dbmodels.Document) error {
	rec := dbmodels.DocumentSet{BaseModel: dbmodels.BaseModel{ID: id}}
	return i.db.
		Model(&rec).
		Association("Documents").
		Append(documents)
}

func (i impl) AddQuery(rec dbmodels.DocumentQuery) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
