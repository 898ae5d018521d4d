package db

import (
	"time"

	"doc-analyzer-backend/config"
	"doc-analyzer-backend/models"
	dbmodels "doc-analyzer-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// InitPreload заполняет пустую базу демонстрационными данными
func InitPreload() {
	if config.Conf.Database.PreloadOnStart == nil || !*config.Conf.Database.PreloadOnStart {
		return
	}
	var promptCount int64
	if err := DB.Model(&dbmodels.Prompt{}).Count(&promptCount).Error; err != nil {
		log.WithError(err).Error("ошибка проверки наличия демонстрационных данных")
		return
	}
	if promptCount > 0 {
		return
	}
	log.Info("предзаполнение демонстрационных данных")
	if err := fillSampleData(); err != nil {
		log.WithError(err).Error("ошибка предзаполнения демонстрационных данных")
		return
	}
	log.Info("демонстрационные данные заполнены")
}

func fillSampleData() error {
	yesterday := time.Now().Add(-24 * time.Hour)
	documents := []dbmodels.Document{
		{
			Name:       "Project Proposal.docx",
			Content:    "This project proposal outlines our plan to implement a new customer relationship management system. Key objectives include improving customer satisfaction by 25% and reducing response time by 40%. The implementation will require 6 months and a budget of $150,000. Risk factors include data migration challenges and staff training requirements.",
			FileType:   "docx",
			UploadedAt: yesterday,
		},
		{
			Name:       "Technical Specs.pdf",
			Content:    "System Requirements:\n- Python 3.11+\n- PostgreSQL 13+\n- 8GB RAM minimum\n- 100GB storage\n\nAPI Endpoints:\n- /api/v1/users\n- /api/v1/products\n- /api/v1/orders\n\nSecurity measures include OAuth2 authentication and rate limiting.",
			FileType:   "pdf",
			UploadedAt: yesterday,
		},
		{
			Name:       "Meeting Minutes.txt",
			Content:    "Date: 2024-03-15\nAttendees: John, Sarah, Mike\n\nAction Items:\n1. Sarah to complete security audit by March 30\n2. Mike to prepare user training materials\n3. John to coordinate with vendors\n\nNext meeting scheduled for March 22.",
			FileType:   "txt",
			UploadedAt: yesterday,
		},
	}
	if err := DB.Create(&documents).Error; err != nil {
		return err
	}

	prompts := []dbmodels.Prompt{
		{Name: "Document Summary", Content: "Please provide a concise summary of the main points in this document."},
		{Name: "Key Findings", Content: "What are the key findings or conclusions presented in this document?"},
		{Name: "Action Items", Content: "Please identify and list all action items or next steps mentioned in this document."},
		{Name: "Technical Analysis", Content: "Analyze the technical aspects discussed in this document, including any specifications, requirements, or implementation details."},
		{Name: "Risk Assessment", Content: "Identify and evaluate any risks, challenges, or potential issues mentioned in this document."},
	}
	if err := DB.Create(&prompts).Error; err != nil {
		return err
	}
	promptByName := map[string]dbmodels.Prompt{}
	for _, prompt := range prompts {
		promptByName[prompt.Name] = prompt
	}

	promptSets := []struct {
		name        string
		description string
		prompts     []string
	}{
		{"Basic Analysis", "Common prompts for basic document analysis", []string{"Document Summary", "Key Findings"}},
		{"Technical Review", "Prompts for technical document review", []string{"Technical Analysis", "Risk Assessment"}},
		{"Project Management", "Prompts for project management documents", []string{"Action Items", "Risk Assessment", "Key Findings"}},
	}
	for _, item := range promptSets {
		rec := dbmodels.PromptSet{
			Name:        item.name,
			Description: item.description,
		}
		for _, promptName := range item.prompts {
			if prompt, ok := promptByName[promptName]; ok {
				rec.Prompts = append(rec.Prompts, prompt)
			}
		}
		if err := DB.Create(&rec).Error; err != nil {
			return err
		}
	}

	docSet := dbmodels.DocumentSet{
		Name:        "Text Documents",
		Description: "Plain-text uploads picked up by the auto-query",
		Queries: []dbmodels.DocumentQuery{
			{
				Name:       "Auto-query for Text Documents",
				QueryType:  models.QueryFieldFileType,
				Operator:   models.QueryOperatorEquals,
				QueryValue: "txt",
			},
		},
	}
	if err := DB.Create(&docSet).Error; err != nil {
		return err
	}

	return fillSampleRuns(documents, prompts)
}

func fillSampleRuns(documents []dbmodels.Document, prompts []dbmodels.Prompt) error {
	now := time.Now()
	completedAt := now.Add(-6 * time.Hour)
	scheduledPast := now.Add(-7 * time.Hour)
	scheduledFuture := now.Add(16 * time.Hour)
	runs := []dbmodels.BatchRun{
		{
			Name:         "Q1 Documentation Review",
			Description:  "Comprehensive review of all Q1 project documentation including technical specs, meeting minutes, and project proposals.",
			Status:       models.BatchRunStatusCompleted,
			ScheduledFor: &scheduledPast,
			CompletedAt:  &completedAt,
		},
		{
			Name:         "Infrastructure Upgrade Impact",
			Description:  "Assessment of infrastructure upgrade impact across all system components.",
			Status:       models.BatchRunStatusPendingApproval,
			ScheduledFor: nil,
		},
		{
			Name:         "User Training Materials Review",
			Description:  "Comprehensive review of all user training materials and documentation.",
			Status:       models.BatchRunStatusApproved,
			ScheduledFor: &scheduledFuture,
		},
		{
			Name:            "Legacy System Comparison",
			Description:     "Comparative analysis between current system and legacy system documentation.",
			Status:          models.BatchRunStatusRejected,
			RejectionReason: "Legacy system documentation is outdated. Please obtain updated documentation before proceeding with the analysis.",
		},
	}
	for idx := range runs {
		run := &runs[idx]
		switch run.Status {
		case models.BatchRunStatusCompleted:
			run.Documents = documents
			run.Prompts = prompts
		case models.BatchRunStatusPendingApproval, models.BatchRunStatusApproved:
			run.Documents = documents[:2]
			run.Prompts = prompts[:2]
		}
		if err := DB.Create(run).Error; err != nil {
			return err
		}
		if run.Status != models.BatchRunStatusCompleted {
			continue
		}
		// результаты с оценками только для завершенного запуска
		for _, doc := range run.Documents {
			for _, prompt := range run.Prompts {
				result := dbmodels.Result{
					DocumentID: doc.ID,
					PromptID:   prompt.ID,
					BatchRunID: run.ID,
					Response:   "Sample result for " + doc.Name + " with prompt " + prompt.Name,
					Feedback: []dbmodels.Feedback{
						{Rating: 4, Comment: "Good analysis of the document content"},
					},
				}
				if err := DB.Create(&result).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
