package dbmodels

import (
	"time"

	documentapimodels "doc-analyzer-backend/models/api/document"

	"github.com/pkg/errors"
)

type Document struct {
	BaseModel
	Name       string        `gorm:"type:varchar(255)" comment:"Имя документа"`
	Content    string        `comment:"Текст документа"`
	FileType   string        `gorm:"type:varchar(64)" comment:"Тип файла"`
	UploadedAt time.Time     `gorm:"index" comment:"Дата загрузки"`
	Sets       []DocumentSet `gorm:"many2many:document_set_members;"`
	BatchRuns  []BatchRun    `gorm:"many2many:document_batch;"`
	Results    []Result
}

func (r Document) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя документа")
	}
	if r.Content == "" {
		return errors.New("не указано содержимое документа")
	}
	return nil
}

func (r Document) ToModel() documentapimodels.DocumentView {
	setNames := make([]string, 0, len(r.Sets))
	for _, set := range r.Sets {
		setNames = append(setNames, set.Name)
	}
	return documentapimodels.DocumentView{
		ID:         r.ID,
		UploadedAt: r.UploadedAt,
		Sets:       setNames,
		DocumentData: documentapimodels.DocumentData{
			Name:     r.Name,
			Content:  r.Content,
			FileType: r.FileType,
		},
	}
}
