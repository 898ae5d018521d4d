package setquery

import (
	"strings"

	"doc-analyzer-backend/models"
	dbmodels "doc-analyzer-backend/models/db"
)

// Match сравнивает значение поля с запросом без учета регистра.
// Неизвестный оператор никогда не совпадает.
func Match(fieldValue string, operator models.QueryOperator, queryValue string) bool {
	value := strings.ToLower(fieldValue)
	query := strings.ToLower(queryValue)
	switch operator {
	case models.QueryOperatorContains:
		return strings.Contains(value, query)
	case models.QueryOperatorEquals:
		return value == query
	case models.QueryOperatorStartsWith:
		return strings.HasPrefix(value, query)
	case models.QueryOperatorEndsWith:
		return strings.HasSuffix(value, query)
	}
	return false
}

// DocumentField возвращает значение поля документа, участвующее в сравнении
func DocumentField(doc dbmodels.Document, field models.QueryField) (value string, ok bool) {
	switch field {
	case models.QueryFieldName:
		return doc.Name, true
	case models.QueryFieldContent:
		return doc.Content, true
	case models.QueryFieldFileType:
		return doc.FileType, true
	}
	return "", false
}

// PromptField возвращает значение поля промта, участвующее в сравнении
func PromptField(prompt dbmodels.Prompt, field models.QueryField) (value string, ok bool) {
	switch field {
	case models.QueryFieldName:
		return prompt.Name, true
	case models.QueryFieldContent:
		return prompt.Content, true
	}
	return "", false
}

// MatchDocument проверяет документ по одному сохраненному запросу
func MatchDocument(doc dbmodels.Document, query dbmodels.DocumentQuery) bool {
	value, ok := DocumentField(doc, query.QueryType)
	if !ok {
		return false
	}
	return Match(value, query.Operator, query.QueryValue)
}

// MatchPrompt проверяет промт по одному сохраненному запросу
func MatchPrompt(prompt dbmodels.Prompt, query dbmodels.PromptQuery) bool {
	value, ok := PromptField(prompt, query.QueryType)
	if !ok {
		return false
	}
	return Match(value, query.Operator, query.QueryValue)
}
