package batchapimodels

import (
	"time"

	"doc-analyzer-backend/models"

	"github.com/pkg/errors"
)

// BatchRequestData запрос на пакетный запуск, требует одобрения администратором
type BatchRequestData struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	DocumentSetIDs []string `json:"document_set_ids"`
	PromptIDs      []string `json:"prompt_ids"`
	PromptSetIDs   []string `json:"prompt_set_ids"`
}

func (r BatchRequestData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя пакетного запуска")
	}
	if len(r.DocumentSetIDs) == 0 {
		return errors.New("не выбраны наборы документов")
	}
	if len(r.PromptIDs) == 0 && len(r.PromptSetIDs) == 0 {
		return errors.New("не выбраны промты")
	}
	return nil
}

// BatchScheduleData пакетный запуск с заданным временем, без одобрения
type BatchScheduleData struct {
	BatchRequestData
	ScheduledFor time.Time `json:"scheduled_for"`
}

func (r BatchScheduleData) Validate() error {
	if err := r.BatchRequestData.Validate(); err != nil {
		return err
	}
	if r.ScheduledFor.IsZero() {
		return errors.New("не указано время запуска")
	}
	return nil
}

// ManualRunData немедленный запуск по выбранным документам и промтам
type ManualRunData struct {
	Name        string   `json:"name"`
	DocumentIDs []string `json:"document_ids"`
	PromptIDs   []string `json:"prompt_ids"`
}

func (r ManualRunData) Validate() error {
	if len(r.DocumentIDs) == 0 {
		return errors.New("не выбраны документы")
	}
	if len(r.PromptIDs) == 0 {
		return errors.New("не выбраны промты")
	}
	return nil
}

type ApproveData struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

func (r ApproveData) Validate() error {
	if r.ScheduledFor.IsZero() {
		return errors.New("не указано время запуска")
	}
	return nil
}

type RejectData struct {
	Reason string `json:"reason"`
}

func (r RejectData) Validate() error {
	if r.Reason == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

type BatchRunView struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Description     string                `json:"description,omitempty"`
	Status          models.BatchRunStatus `json:"status"`
	ScheduledFor    *time.Time            `json:"scheduled_for,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
	DocumentCount   int                   `json:"document_count"`
	PromptCount     int                   `json:"prompt_count"`
}

type RunDocumentView struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Sets []string `json:"sets,omitempty"`
}

type RunPromptView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type BatchRunDetailsView struct {
	BatchRunView
	Documents []RunDocumentView `json:"documents"`
	Prompts   []RunPromptView   `json:"prompts"`
}
