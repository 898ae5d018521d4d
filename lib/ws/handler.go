package ws

import (
	"time"

	wsclient "doc-analyzer-backend/lib/ws/client"
	connectionhub "doc-analyzer-backend/lib/ws/hub/connection-hub"
	"doc-analyzer-backend/models"
	wsmodels "doc-analyzer-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func InitWs(app *fiber.App) {
	app.Get("/", websocket.New(eventsHandler))
}

// @Summary События пакетных запусков
// @Tags Websocket
// @Description События смены статусов пакетных запусков
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func eventsHandler(c *websocket.Conn) {
	clientID := uuid.NewString()
	client := wsclient.NewClient(clientID, c)
	connectionhub.Instance.AddClient(clientID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(clientID)
	}()
	client.Dispatch()
}

// NotifyRunStatus рассылает смену статуса пакетного запуска
func NotifyRunStatus(runID string, status models.BatchRunStatus) {
	if connectionhub.Instance == nil {
		return
	}
	connectionhub.Instance.Broadcast(wsmodels.ServerMessage{
		Time:  time.Now().Format("02.01.2006 15:04:05"),
		Code:  wsmodels.EventRunStatus,
		RunID: runID,
		Msg:   string(status),
	})
}
