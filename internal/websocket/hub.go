package websocket

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// EventType определяет типы событий протокола
type EventType string

const (
	// Клиент -> сервер
	EventJoinRoom    EventType = "join-room"
	EventLeaveRoom   EventType = "leave-room"
	EventSendMessage EventType = "send-message"

	// Сервер -> участники комнаты
	EventReceiveMessage EventType = "receive-message"
)

// Event — кадр протокола поверх websocket
type Event struct {
	Type    EventType       `json:"type"`
	RoomID  string          `json:"roomId,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessagePayload — содержимое send-message. Используется только для
// валидации: в комнату уходит исходный payload без изменений.
type MessagePayload struct {
	RoomID   string `json:"roomId"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
}

// Hub связывает живые соединения с реестром комнат и рассылает
// send-message всем участникам. Hub ничего не пишет в базу:
// единственный путь записи — Conversation API, рассылка здесь
// лишь быстрое уведомление поверх него.
type Hub struct {
	clients  map[uuid.UUID]*Client
	registry *RoomRegistry

	register   chan *Client
	unregister chan *Client
	events     chan sessionEvent

	// Контекст для graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

type sessionEvent struct {
	client *Client
	event  Event
}

// NewHub создает Hub поверх переданного реестра
func NewHub(registry *RoomRegistry) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		registry:   registry,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan sessionEvent),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run обрабатывает все события всех сессий в одной горутине:
// мутации реестра сериализованы, порядок рассылки в комнату
// совпадает с порядком прихода send-message.
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			// Закрываем соединения из той же горутины, что ими владеет
			for _, client := range h.clients {
				close(client.Send)
				client.Conn.Close()
			}
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case se := <-h.events:
			h.handleEvent(se.client, se.event)
		}
	}
}

// Stop останавливает hub; цикл Run закрывает оставшиеся соединения
func (h *Hub) Stop() {
	h.cancel()
}

// Register регистрирует нового клиента
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

// Unregister завершает сессию клиента
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

func (h *Hub) dispatch(client *Client, evt Event) {
	select {
	case h.events <- sessionEvent{client: client, event: evt}:
	case <-h.ctx.Done():
	}
}

func (h *Hub) registerClient(client *Client) {
	h.clients[client.ID] = client
	log.Printf("Client registered: %s (User: %s)", client.ID, client.UserID)
}

func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	// Снимаем членство во всех комнатах атомарно
	h.registry.DropSession(client.ID)
	delete(h.clients, client.ID)
	close(client.Send)

	log.Printf("Client unregistered: %s (User: %s)", client.ID, client.UserID)
}

func (h *Hub) handleEvent(client *Client, evt Event) {
	switch evt.Type {
	case EventJoinRoom:
		// roomID принимается как непрозрачный идентификатор,
		// авторизация пары выполняется на HTTP-слое
		if evt.RoomID == "" {
			return
		}
		h.registry.Join(client.ID, evt.RoomID)

	case EventLeaveRoom:
		if evt.RoomID == "" {
			return
		}
		h.registry.Leave(client.ID, evt.RoomID)

	case EventSendMessage:
		h.handleSendMessage(client, evt)

	default:
		log.Printf("Unknown event type: %s", evt.Type)
	}
}

// handleSendMessage валидирует payload и рассылает его без изменений
// как receive-message. Некорректные payload молча отбрасываются,
// соединение не рвётся.
func (h *Hub) handleSendMessage(client *Client, evt Event) {
	var payload MessagePayload
	if err := json.Unmarshal(evt.Payload, &payload); err != nil {
		log.Printf("Dropping malformed send-message from %s: %v", client.ID, err)
		return
	}

	if payload.RoomID == "" || payload.Sender == "" || payload.Receiver == "" || payload.Content == "" {
		log.Printf("Dropping send-message from %s: %v", client.ID, ErrInvalidEvent)
		return
	}

	out, err := json.Marshal(Event{
		Type:    EventReceiveMessage,
		Payload: evt.Payload,
	})
	if err != nil {
		return
	}

	// Пустая комната — не ошибка, рассылка просто никого не находит
	for _, sid := range h.registry.MembersOf(payload.RoomID) {
		member, ok := h.clients[sid]
		if !ok {
			continue
		}
		select {
		case member.Send <- out:
		default:
			log.Printf("Client %s send channel full", member.ID)
		}
	}
}
