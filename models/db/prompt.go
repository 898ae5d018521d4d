package dbmodels

import (
	promptapimodels "doc-analyzer-backend/models/api/prompt"

	"github.com/pkg/errors"
)

type Prompt struct {
	BaseModel
	Name      string      `gorm:"type:varchar(255)" comment:"Имя промта"`
	Content   string      `comment:"Текст промта"`
	Sets      []PromptSet `gorm:"many2many:prompt_set_members;"`
	BatchRuns []BatchRun  `gorm:"many2many:prompt_batch;"`
	Results   []Result
}

func (r Prompt) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя промта")
	}
	if r.Content == "" {
		return errors.New("не указан текст промта")
	}
	return nil
}

func (r Prompt) ToModel() promptapimodels.PromptView {
	setNames := make([]string, 0, len(r.Sets))
	for _, set := range r.Sets {
		setNames = append(setNames, set.Name)
	}
	return promptapimodels.PromptView{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Sets:      setNames,
		PromptData: promptapimodels.PromptData{
			Name:    r.Name,
			Content: r.Content,
		},
	}
}
