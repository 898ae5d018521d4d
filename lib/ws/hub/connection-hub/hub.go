package connectionhub

import (
	"sync"

	wsmodels "doc-analyzer-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
)

type Provider interface {
	AddClient(clientID string, conn *websocket.Conn)
	DeleteClient(clientID string)
	Broadcast(msg wsmodels.ServerMessage)
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[clientID]
}

func (i *impl) DeleteClient(clientID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[clientID]
	if !ok {
		return
	}
	delete(i.clients, clientID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(clientID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[clientID]
	if ok {
		oldSess.stop()
	}
	i.clients[clientID] = newSession(conn)
}

// Broadcast рассылает событие всем подключенным клиентам
func (i *impl) Broadcast(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for _, sess := range i.clients {
		select {
		case sess.sendCh <- msg:
		default:
			// клиент не успевает читать, событие пропускается
		}
	}
}
