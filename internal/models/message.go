package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SenderID   uuid.UUID `gorm:"not null"`
	ReceiverID uuid.UUID `gorm:"not null"`
	RoomID     string    `gorm:"not null;index:idx_messages_room_created"`
	Content    string    `gorm:"not null"`
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"index:idx_messages_room_created"`

	// Связи
	Attachments []Attachment `gorm:"foreignKey:MessageID"`
	Sender      User         `gorm:"foreignKey:SenderID"`
	Receiver    User         `gorm:"foreignKey:ReceiverID"`
}

// Attachment хранит только метаданные вложения, сам файл лежит снаружи
type Attachment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	MessageID uuid.UUID `gorm:"not null;index"`
	Name      string
	URL       string
	Type      string
}

// DirectRoomID строит идентификатор комнаты для пары пользователей.
// Результат не зависит от порядка аргументов: оба участника
// получают один и тот же roomID.
func DirectRoomID(a, b uuid.UUID) string {
	x, y := a.String(), b.String()
	if y < x {
		x, y = y, x
	}
	return x + "_" + y
}

// IsRoomParticipant проверяет, что userID входит в пару, из которой собран roomID
func IsRoomParticipant(roomID string, userID uuid.UUID) bool {
	parts := strings.Split(roomID, "_")
	if len(parts) != 2 {
		return false
	}
	id := userID.String()
	return parts[0] == id || parts[1] == id
}
