package resultapimodels

import (
	"time"

	apimodels "doc-analyzer-backend/models/api"

	"github.com/pkg/errors"
)

type ResultView struct {
	ID            string    `json:"id"`
	DocumentID    string    `json:"document_id"`
	DocumentName  string    `json:"document_name,omitempty"`
	PromptID      string    `json:"prompt_id"`
	PromptName    string    `json:"prompt_name,omitempty"`
	BatchRunID    string    `json:"batch_run_id"`
	BatchRunName  string    `json:"batch_run_name,omitempty"`
	Response      string    `json:"response"`
	CreatedAt     time.Time `json:"created_at"`
	AvgRating     string    `json:"avg_rating"` // "N/A" если оценок нет
	FeedbackCount int       `json:"feedback_count"`
}

type ResultDetailsView struct {
	ResultView
	Feedback []FeedbackView `json:"feedback"`
}

type ResultFilter struct {
	apimodels.Pagination
	BatchRunID string `json:"batch_run_id"`
	DocumentID string `json:"document_id"`
	PromptID   string `json:"prompt_id"`
	MinRating  int    `json:"min_rating"`
}

type FeedbackData struct {
	ResultID string `json:"result_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (r FeedbackData) Validate() error {
	if r.ResultID == "" {
		return errors.New("не указан результат")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("оценка должна быть от 1 до 5")
	}
	return nil
}

type FeedbackView struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
