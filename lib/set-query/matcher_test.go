package setquery

import (
	"testing"

	"doc-analyzer-backend/models"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	t.Run("contains без учета регистра", func(t *testing.T) {
		require.True(t, Match("Annual Report 2024", models.QueryOperatorContains, "report"))
		require.True(t, Match("annual report", models.QueryOperatorContains, "REPORT"))
		require.False(t, Match("Annual Report", models.QueryOperatorContains, "invoice"))
	})

	t.Run("equals без учета регистра", func(t *testing.T) {
		require.True(t, Match("TXT", models.QueryOperatorEquals, "txt"))
		require.False(t, Match("txt", models.QueryOperatorEquals, "tx"))
	})

	t.Run("startswith", func(t *testing.T) {
		require.True(t, Match("Report_Q1.txt", models.QueryOperatorStartsWith, "report"))
		require.False(t, Match("Q1_Report.txt", models.QueryOperatorStartsWith, "report"))
	})

	t.Run("endswith", func(t *testing.T) {
		require.True(t, Match("report.TXT", models.QueryOperatorEndsWith, ".txt"))
		require.False(t, Match("report.pdf", models.QueryOperatorEndsWith, ".txt"))
	})

	t.Run("неизвестный оператор не совпадает", func(t *testing.T) {
		require.False(t, Match("report", "regex", "report"))
	})
}

func TestMatchDocument(t *testing.T) {
	doc := dbmodels.Document{
		Name:     "Annual Report",
		Content:  "Revenue grew in 2024",
		FileType: "txt",
	}

	t.Run("по имени", func(t *testing.T) {
		query := dbmodels.DocumentQuery{QueryType: models.QueryFieldName, Operator: models.QueryOperatorContains, QueryValue: "annual"}
		require.True(t, MatchDocument(doc, query))
	})

	t.Run("по содержимому", func(t *testing.T) {
		query := dbmodels.DocumentQuery{QueryType: models.QueryFieldContent, Operator: models.QueryOperatorContains, QueryValue: "revenue"}
		require.True(t, MatchDocument(doc, query))
	})

	t.Run("по типу файла", func(t *testing.T) {
		query := dbmodels.DocumentQuery{QueryType: models.QueryFieldFileType, Operator: models.QueryOperatorEquals, QueryValue: "TXT"}
		require.True(t, MatchDocument(doc, query))
	})

	t.Run("неизвестное поле не совпадает", func(t *testing.T) {
		query := dbmodels.DocumentQuery{QueryType: "uploaded_at", Operator: models.QueryOperatorEquals, QueryValue: "txt"}
		require.False(t, MatchDocument(doc, query))
	})
}

func TestMatchPrompt(t *testing.T) {
	prompt := dbmodels.Prompt{
		Name:    "Summarize",
		Content: "Summarize the document in three sentences",
	}

	t.Run("по имени", func(t *testing.T) {
		query := dbmodels.PromptQuery{QueryType: models.QueryFieldName, Operator: models.QueryOperatorStartsWith, QueryValue: "summ"}
		require.True(t, MatchPrompt(prompt, query))
	})

	t.Run("file_type для промта не совпадает", func(t *testing.T) {
		query := dbmodels.PromptQuery{QueryType: models.QueryFieldFileType, Operator: models.QueryOperatorEquals, QueryValue: "txt"}
		require.False(t, MatchPrompt(prompt, query))
	})
}
