package dbmodels

import (
	"time"

	"doc-analyzer-backend/models"
	batchapimodels "doc-analyzer-backend/models/api/batch"

	"github.com/pkg/errors"
)

type BatchRun struct {
	BaseModel
	Name            string `gorm:"type:varchar(255)"`
	Description     string
	Status          models.BatchRunStatus `gorm:"type:varchar(64);index" comment:"Статус пакетного запуска"`
	ScheduledFor    *time.Time            `gorm:"index" comment:"Запланированное время запуска"`
	CompletedAt     *time.Time
	RejectionReason string
	Documents       []Document `gorm:"many2many:document_batch;"`
	Prompts         []Prompt   `gorm:"many2many:prompt_batch;"`
	Results         []Result
}

func (r BatchRun) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя пакетного запуска")
	}
	if r.Status == "" {
		return errors.New("отсутствует статус")
	}
	return nil
}

func (r BatchRun) ToModel() batchapimodels.BatchRunView {
	return batchapimodels.BatchRunView{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Status:          r.Status,
		ScheduledFor:    r.ScheduledFor,
		CreatedAt:       r.CreatedAt,
		CompletedAt:     r.CompletedAt,
		RejectionReason: r.RejectionReason,
		DocumentCount:   len(r.Documents),
		PromptCount:     len(r.Prompts),
	}
}

func (r BatchRun) ToDetailsModel() batchapimodels.BatchRunDetailsView {
	view := batchapimodels.BatchRunDetailsView{
		BatchRunView: r.ToModel(),
		Documents:    make([]batchapimodels.RunDocumentView, 0, len(r.Documents)),
		Prompts:      make([]batchapimodels.RunPromptView, 0, len(r.Prompts)),
	}
	for _, doc := range r.Documents {
		setNames := make([]string, 0, len(doc.Sets))
		for _, set := range doc.Sets {
			setNames = append(setNames, set.Name)
		}
		view.Documents = append(view.Documents, batchapimodels.RunDocumentView{
			ID:   doc.ID,
			Name: doc.Name,
			Sets: setNames,
		})
	}
	for _, prompt := range r.Prompts {
		view.Prompts = append(view.Prompts, batchapimodels.RunPromptView{
			ID:      prompt.ID,
			Name:    prompt.Name,
			Content: prompt.Content,
		})
	}
	return view
}
