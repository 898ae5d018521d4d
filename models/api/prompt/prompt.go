package promptapimodels

import (
	"time"

	apimodels "doc-analyzer-backend/models/api"

	"github.com/pkg/errors"
)

type PromptData struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (r PromptData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя промта")
	}
	if r.Content == "" {
		return errors.New("не указан текст промта")
	}
	return nil
}

type PromptView struct {
	ID string `json:"id"`
	PromptData
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Sets      []string  `json:"sets,omitempty"`
}

type PromptFilter struct {
	apimodels.Pagination
	Search   string `json:"search"`
	SearchIn string `json:"search_in"` // all/name/content
	SetID    string `json:"set_id"`
}
