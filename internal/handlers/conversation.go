package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mentorlink/internal/handlers/dto"
	"mentorlink/internal/middleware"
	"mentorlink/internal/models"
)

// MessageStore — то, что Conversation API требует от хранилища.
// Реализуется *database.Database, в тестах — in-memory двойником.
type MessageStore interface {
	SaveMessage(message *models.Message) error
	GetRoomMessages(roomID string) ([]models.Message, error)
	MarkMessagesRead(ids []uuid.UUID, receiverID uuid.UUID) error
}

// ConversationHandler — авторитетный путь записи и чтения истории.
// Realtime-рассылка идёт отдельным путём через hub и с хранилищем
// транзакционно не связана.
type ConversationHandler struct {
	store MessageStore
}

func NewConversationHandler(store MessageStore) *ConversationHandler {
	return &ConversationHandler{store: store}
}

// GetRoomMessages отдаёт историю комнаты по возрастанию created_at.
// Комната без сообщений — это пустой список, не 404.
func (h *ConversationHandler) GetRoomMessages(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	roomID := c.Param("roomId")

	if !models.IsRoomParticipant(roomID, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not a participant of this room"})
		return
	}

	messages, err := h.store.GetRoomMessages(roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	result := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		result[i] = formatMessageResponse(&messages[i])
	}

	c.JSON(http.StatusOK, result)
}

// SendMessage сохраняет сообщение. Клиент после успешного ответа сам
// эмитит send-message в сокет; подключённые участники получат
// уведомление мгновенно, остальные — при следующем чтении истории.
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiverID, err := uuid.Parse(req.Receiver)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid receiver id"})
		return
	}

	roomID := models.DirectRoomID(userID, receiverID)
	if req.RoomID != "" && req.RoomID != roomID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room id does not match participants"})
		return
	}

	message := &models.Message{
		SenderID:   userID,
		ReceiverID: receiverID,
		RoomID:     roomID,
		Content:    req.Content,
	}
	for _, a := range req.Attachments {
		message.Attachments = append(message.Attachments, models.Attachment{
			Name: a.Name,
			URL:  a.URL,
			Type: a.Type,
		})
	}

	if err := h.store.SaveMessage(message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	c.JSON(http.StatusOK, formatMessageResponse(message))
}

// MarkRead помечает сообщения прочитанными, только для их получателя
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.MarkMessagesRead(req.MessageIDs, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark messages read"})
		return
	}

	c.Status(http.StatusOK)
}

func formatMessageResponse(msg *models.Message) dto.MessageResponse {
	attachments := make([]dto.AttachmentPayload, len(msg.Attachments))
	for i, a := range msg.Attachments {
		attachments[i] = dto.AttachmentPayload{
			Name: a.Name,
			URL:  a.URL,
			Type: a.Type,
		}
	}

	return dto.MessageResponse{
		ID:          msg.ID,
		Sender:      msg.SenderID,
		Receiver:    msg.ReceiverID,
		RoomID:      msg.RoomID,
		Content:     msg.Content,
		Attachments: attachments,
		Read:        msg.Read,
		CreatedAt:   msg.CreatedAt,
	}
}
