package documentapimodels

import (
	"time"

	apimodels "doc-analyzer-backend/models/api"

	"github.com/pkg/errors"
)

type DocumentData struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	FileType string `json:"file_type"`
}

func (r DocumentData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя документа")
	}
	if r.Content == "" {
		return errors.New("не указано содержимое документа")
	}
	return nil
}

type DocumentView struct {
	ID string `json:"id"`
	DocumentData
	UploadedAt time.Time `json:"uploaded_at"`
	Sets       []string  `json:"sets,omitempty"` // имена наборов, в которые входит документ
}

type DocumentFilter struct {
	apimodels.Pagination
	Search   string `json:"search"`
	SearchIn string `json:"search_in"` // all/name/content/file_type
	FileType string `json:"file_type"`
	SetID    string `json:"set_id"`
}
