package filesapimodels

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DocumentID  string `json:"document_id"`
	ContentType string `json:"content_type"`
}
