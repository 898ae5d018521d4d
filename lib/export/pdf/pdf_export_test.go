package pdfexport

import (
	"bytes"
	"testing"
	"time"

	batchapimodels "doc-analyzer-backend/models/api/batch"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/stretchr/testify/require"
)

// шрифты в static/font не поставляются вместе с пакетом,
// отчет должен собираться и на встроенном шрифте
func TestGenerateRunReport(t *testing.T) {
	now := time.Now()
	run := batchapimodels.BatchRunDetailsView{
		BatchRunView: batchapimodels.BatchRunView{
			ID:            "run-1",
			Name:          "Weekly Analysis",
			Status:        "completed",
			CreatedAt:     now,
			CompletedAt:   &now,
			DocumentCount: 1,
			PromptCount:   2,
		},
	}
	doc := &dbmodels.Document{Name: "Annual Report"}
	prompt := &dbmodels.Prompt{Name: "Summarize"}
	results := []dbmodels.Result{
		{
			Document: doc,
			Prompt:   prompt,
			Response: "Processed document 'Annual Report' with prompt 'Summarize'",
			Feedback: []dbmodels.Feedback{{Rating: 4}, {Rating: 5}},
		},
		{
			Document: doc,
			Prompt:   prompt,
			Response: "second response",
		},
	}

	pdfFile, err := GenerateRunReport(run, results)
	require.Nil(t, err)
	require.True(t, bytes.HasPrefix(pdfFile, []byte("%PDF")))
}
