package document

import (
	"context"
	"time"

	"doc-analyzer-backend/db"
	documentstore "doc-analyzer-backend/lib/document/store"
	filestorage "doc-analyzer-backend/lib/file-storage"
	"doc-analyzer-backend/lib/utils/helpers"
	documentapimodels "doc-analyzer-backend/models/api/document"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data documentapimodels.DocumentData) (id string, err error)
	Upload(ctx context.Context, fileName, contentType string, file []byte) (id string, err error)
	List(filter documentapimodels.DocumentFilter) (list []documentapimodels.DocumentView, rowCount int64, err error)
	GetByID(id string) (view *documentapimodels.DocumentView, err error)
	DownloadFile(ctx context.Context, id string) (fileName string, file []byte, err error)
	ListFileTypes() (list []string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: documentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store documentstore.Provider
}

func (i impl) Create(data documentapimodels.DocumentData) (id string, err error) {
	rec := dbmodels.Document{
		Name:       data.Name,
		Content:    data.Content,
		FileType:   data.FileType,
		UploadedAt: time.Now(),
	}
	if err = rec.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления документа")
		return "", errors.New("ошибка добавления документа")
	}
	return id, nil
}

// Upload сохраняет содержимое файла как текст документа,
// исходный файл уходит в файловое хранилище, если оно настроено
func (i impl) Upload(ctx context.Context, fileName, contentType string, file []byte) (id string, err error) {
	logger := log.WithField("file_name", fileName)
	if len(file) == 0 {
		return "", errors.New("получен пустой файл")
	}
	rec := dbmodels.Document{
		Name:       fileName,
		Content:    string(file),
		FileType:   helpers.FileTypeByName(fileName),
		UploadedAt: time.Now(),
	}
	if err = rec.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения документа")
		return "", errors.New("ошибка сохранения документа")
	}
	err = filestorage.Instance.UploadDocumentFile(ctx, id, fileName, contentType, file)
	if err != nil {
		// документ уже сохранен, отсутствие исходного файла не критично
		logger.WithError(err).Error("ошибка сохранения исходного файла документа")
	}
	return id, nil
}

func (i impl) List(filter documentapimodels.DocumentFilter) (list []documentapimodels.DocumentView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка документов")
		return nil, 0, err
	}
	list = make([]documentapimodels.DocumentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) GetByID(id string) (view *documentapimodels.DocumentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("document_id", id).Error("ошибка поиска документа по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("документ не найден")
	}
	result := rec.ToModel()
	return &result, nil
}

// DownloadFile исходный файл документа из файлового хранилища
func (i impl) DownloadFile(ctx context.Context, id string) (fileName string, file []byte, err error) {
	logger := log.WithField("document_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска документа по ID")
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.New("документ не найден")
	}
	fileName, file, err = filestorage.Instance.GetDocumentFile(ctx, id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения исходного файла документа")
		return "", nil, err
	}
	return fileName, file, nil
}

func (i impl) ListFileTypes() (list []string, err error) {
	list, err = i.store.ListFileTypes()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка типов файлов")
		return nil, err
	}
	return list, nil
}
