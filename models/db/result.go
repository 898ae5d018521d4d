package dbmodels

import (
	"fmt"

	resultapimodels "doc-analyzer-backend/models/api/result"
)

type Result struct {
	BaseModel
	DocumentID string `gorm:"index"`
	PromptID   string `gorm:"index"`
	BatchRunID string `gorm:"index"`
	Response   string `comment:"Сгенерированный ответ"`
	Document   *Document
	Prompt     *Prompt
	BatchRun   *BatchRun
	Feedback   []Feedback `gorm:"foreignKey:ResultID"`
}

func (r Result) ToModel() resultapimodels.ResultView {
	view := resultapimodels.ResultView{
		ID:            r.ID,
		DocumentID:    r.DocumentID,
		PromptID:      r.PromptID,
		BatchRunID:    r.BatchRunID,
		Response:      r.Response,
		CreatedAt:     r.CreatedAt,
		AvgRating:     AverageRating(r.Feedback),
		FeedbackCount: len(r.Feedback),
	}
	if r.Document != nil {
		view.DocumentName = r.Document.Name
	}
	if r.Prompt != nil {
		view.PromptName = r.Prompt.Name
	}
	if r.BatchRun != nil {
		view.BatchRunName = r.BatchRun.Name
	}
	return view
}

func (r Result) ToDetailsModel() resultapimodels.ResultDetailsView {
	view := resultapimodels.ResultDetailsView{
		ResultView: r.ToModel(),
		Feedback:   make([]resultapimodels.FeedbackView, 0, len(r.Feedback)),
	}
	for _, fb := range r.Feedback {
		view.Feedback = append(view.Feedback, fb.ToModel())
	}
	return view
}

// AverageRating для результата без оценок возвращает нечисловое значение "N/A"
func AverageRating(list []Feedback) string {
	if len(list) == 0 {
		return "N/A"
	}
	total := 0
	for _, fb := range list {
		total += fb.Rating
	}
	return fmt.Sprintf("%.2f", float64(total)/float64(len(list)))
}
