package dbmodels

import (
	resultapimodels "doc-analyzer-backend/models/api/result"

	"github.com/pkg/errors"
)

type Feedback struct {
	BaseModel
	ResultID string `gorm:"index"`
	Rating   int    `comment:"Оценка 1-5"`
	Comment  string
}

func (r Feedback) Validate() error {
	if r.ResultID == "" {
		return errors.New("не указан результат")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("оценка должна быть от 1 до 5")
	}
	return nil
}

func (r Feedback) ToModel() resultapimodels.FeedbackView {
	return resultapimodels.FeedbackView{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
