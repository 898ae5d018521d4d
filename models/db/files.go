package dbmodels

import filesapimodels "doc-analyzer-backend/models/api/files"

// FileStorage хранит метаданные исходного файла документа, содержимое лежит в S3
type FileStorage struct {
	BaseModel
	Name        string
	DocumentID  string `gorm:"index"`
	ObjectKey   string `gorm:"type:varchar(64)"`
	ContentType string
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		DocumentID:  f.DocumentID,
		ContentType: f.ContentType,
	}
}
