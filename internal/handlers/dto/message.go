package dto

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentPayload — метаданные вложения в запросе и ответе
type AttachmentPayload struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// SendMessageRequest — тело POST /api/mentorship/messages
type SendMessageRequest struct {
	Receiver    string              `json:"receiver" binding:"required"`
	Content     string              `json:"content" binding:"required"`
	RoomID      string              `json:"roomId"`
	Attachments []AttachmentPayload `json:"attachments"`
}

// MessageResponse — сохранённое сообщение в ответах API
type MessageResponse struct {
	ID          uuid.UUID           `json:"id"`
	Sender      uuid.UUID           `json:"sender"`
	Receiver    uuid.UUID           `json:"receiver"`
	RoomID      string              `json:"roomId"`
	Content     string              `json:"content"`
	Attachments []AttachmentPayload `json:"attachments"`
	Read        bool                `json:"read"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// MarkReadRequest — тело PUT /api/mentorship/messages/read
type MarkReadRequest struct {
	MessageIDs []uuid.UUID `json:"message_ids" binding:"required,min=1"`
}

type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Grade     *int      `json:"grade,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}
