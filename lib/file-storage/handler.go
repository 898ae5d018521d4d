package filestorage

import (
	"bytes"
	"context"
	"io"

	"doc-analyzer-backend/config"
	"doc-analyzer-backend/db"
	filesdbstorage "doc-analyzer-backend/lib/file-storage/storage"
	dbmodels "doc-analyzer-backend/models/db"
	s3client "doc-analyzer-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadDocumentFile(ctx context.Context, documentID, fileName, contentType string, file []byte) error
	GetDocumentFile(ctx context.Context, documentID string) (fileName string, file []byte, err error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	store filesdbstorage.Provider
}

func (i impl) UploadDocumentFile(ctx context.Context, documentID, fileName, contentType string, file []byte) error {
	if !s3client.IsConfigured() {
		log.WithField("document_id", documentID).
			Warn("исходный файл документа не сохранен, файловое хранилище не настроено")
		return nil
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey := uuid.NewString()
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения файла в S3")
	}
	rec := dbmodels.FileStorage{
		Name:        fileName,
		DocumentID:  documentID,
		ObjectKey:   objectKey,
		ContentType: contentType,
	}
	_, err = i.store.SaveFile(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения метаданных файла")
	}
	return nil
}

func (i impl) GetDocumentFile(ctx context.Context, documentID string) (string, []byte, error) {
	if !s3client.IsConfigured() {
		return "", nil, errors.New("файловое хранилище не настроено")
	}
	rec, err := i.store.GetByDocumentID(documentID)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка поиска файла документа")
	}
	if rec == nil {
		return "", nil, errors.New("файл документа не найден")
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	file, err := io.ReadAll(object)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return rec.Name, file, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := s3client.Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s3client.Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
}
