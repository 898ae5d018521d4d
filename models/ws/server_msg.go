package wsmodels

const (
	EventRunStatus = "run_status"
)

// ServerMessage событие сервера, рассылается всем подключенным клиентам
type ServerMessage struct {
	Time  string `json:"time"` // время события
	Code  string `json:"code"` // код события
	RunID string `json:"run_id,omitempty"`
	Msg   string `json:"msg"` // текст события
}
