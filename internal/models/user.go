package models

import (
	"time"

	"github.com/google/uuid"
)

// Role определяет уровень доступа пользователя
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// RoleAllowed проверяет, входит ли роль в список разрешённых
func RoleAllowed(r Role, allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         Role      `gorm:"not null;check:role IN ('student','mentor','admin')"`
	Grade        *int      // только для студентов, 6..12
	AvatarURL    string
	Bio          string
	MentorID     *uuid.UUID
	CreatedAt    time.Time

	// Связи
	Mentor   *User  `gorm:"foreignKey:MentorID"`
	Students []User `gorm:"foreignKey:MentorID"`
}
