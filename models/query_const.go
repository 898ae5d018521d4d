package models

type QueryOperator string

const (
	QueryOperatorContains   QueryOperator = "contains"
	QueryOperatorEquals     QueryOperator = "equals"
	QueryOperatorStartsWith QueryOperator = "startswith"
	QueryOperatorEndsWith   QueryOperator = "endswith"
)

func (o QueryOperator) IsValid() bool {
	switch o {
	case QueryOperatorContains, QueryOperatorEquals, QueryOperatorStartsWith, QueryOperatorEndsWith:
		return true
	}
	return false
}

type QueryField string

const (
	QueryFieldName     QueryField = "name"
	QueryFieldContent  QueryField = "content"
	QueryFieldFileType QueryField = "file_type"
)

// поля, по которым можно фильтровать документы
func DocumentQueryFields() []QueryField {
	return []QueryField{QueryFieldName, QueryFieldContent, QueryFieldFileType}
}

// поля, по которым можно фильтровать промты
func PromptQueryFields() []QueryField {
	return []QueryField{QueryFieldName, QueryFieldContent}
}

func (f QueryField) IsValidFor(allowed []QueryField) bool {
	for _, item := range allowed {
		if item == f {
			return true
		}
	}
	return false
}
