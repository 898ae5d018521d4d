package documentstore

import (
	documentapimodels "doc-analyzer-backend/models/api/document"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Document) (id string, err error)
	GetByID(id string) (rec *dbmodels.Document, err error)
	List(filter documentapimodels.DocumentFilter) (list []dbmodels.Document, rowCount int64, err error)
	ListWithoutSets() (list []dbmodels.Document, err error)
	ListByIDs(ids []string) (list []dbmodels.Document, err error)
	ListFileTypes() (list []string, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Document) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Document, err error) {
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

func (i impl) List(filter documentapimodels.DocumentFilter) (list []dbmodels.Document, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.Document{}).Preload("Sets")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		switch filter.SearchIn {
		case "name":
			tx = tx.Where("name ILIKE ?", pattern)
		case "content":
			tx = tx.Where("content ILIKE ?", pattern)
		case "file_type":
			tx = tx.Where("file_type ILIKE ?", pattern)
		default:
			tx = tx.Where("name ILIKE ? OR content ILIKE ? OR file_type ILIKE ?", pattern, pattern, pattern)
		}
	}
	if filter.FileType != "" {
		tx = tx.Where("file_type = ?", filter.FileType)
	}
	if filter.SetID != "" {
		tx = tx.Where("id IN (?)", i.db.
			Table("document_set_members").
			Select("document_id").
			Where("document_set_id = ?", filter.SetID))
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("uploaded_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// ListWithoutSets документы, не входящие ни в один набор
func (i impl) ListWithoutSets() (list []dbmodels.Document, err error) {
	err = i.db.
		Where("id NOT IN (?)", i.db.
			Table("document_set_members").
			Select("document_id")).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.Document, err error) {
	err = i.db.
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListFileTypes() (list []string, err error) {
	err = i.db.
		Model(&dbmodels.Document{}).
		Distinct("file_type").
		Where("file_type <> ''").
		Order("file_type").
		Pluck("file_type", &list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
