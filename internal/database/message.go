package database

import (
	"time"

	"github.com/google/uuid"

	"mentorlink/internal/models"
)

// SaveMessage сохраняет сообщение вместе с метаданными вложений.
// Идентификатор и created_at присваиваются при записи.
func (d *Database) SaveMessage(message *models.Message) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	return d.db.Create(message).Error
}

// GetRoomMessages возвращает всю историю комнаты, старые сообщения первыми
func (d *Database) GetRoomMessages(roomID string) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Preload("Attachments").
		Find(&messages).Error

	if err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkMessagesRead помечает сообщения прочитанными. Отмечаются только
// сообщения, адресованные receiverID; чужие id молча игнорируются.
func (d *Database) MarkMessagesRead(ids []uuid.UUID, receiverID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return d.db.
		Model(&models.Message{}).
		Where("id IN ? AND receiver_id = ?", ids, receiverID).
		Update("read", true).Error
}
