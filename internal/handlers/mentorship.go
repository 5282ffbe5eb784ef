package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mentorlink/internal/handlers/dto"
	"mentorlink/internal/middleware"
	"mentorlink/internal/models"
)

// UserStore — операции над пользователями, нужные менторским ручкам
type UserStore interface {
	GetUser(id string) (*models.User, error)
	GetUsersByRole(role models.Role) ([]models.User, error)
	GetMentorStudents(mentorID string) ([]models.User, error)
	GetStudentMentor(studentID string) (*models.User, error)
	AssignMentor(studentID, mentorID string) error
	UnassignMentor(studentID string) error
}

type MentorshipHandler struct {
	store UserStore
}

func NewMentorshipHandler(store UserStore) *MentorshipHandler {
	return &MentorshipHandler{store: store}
}

// GetMentors возвращает всех менторов
func (h *MentorshipHandler) GetMentors(c *gin.Context) {
	mentors, err := h.store.GetUsersByRole(models.RoleMentor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get mentors"})
		return
	}
	c.JSON(http.StatusOK, formatUserList(mentors))
}

// GetStudents возвращает всех студентов
func (h *MentorshipHandler) GetStudents(c *gin.Context) {
	students, err := h.store.GetUsersByRole(models.RoleStudent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get students"})
		return
	}
	c.JSON(http.StatusOK, formatUserList(students))
}

// GetMentorStudents возвращает студентов ментора
func (h *MentorshipHandler) GetMentorStudents(c *gin.Context) {
	mentorID := c.Param("id")

	if _, err := h.store.GetUser(mentorID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "mentor not found"})
		return
	}

	students, err := h.store.GetMentorStudents(mentorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get students"})
		return
	}
	c.JSON(http.StatusOK, formatUserList(students))
}

// GetStudentMentor возвращает ментора студента. Студент может смотреть
// только своего ментора, менторам и админам доступны все.
func (h *MentorshipHandler) GetStudentMentor(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	role := c.MustGet(middleware.UserRoleKey).(models.Role)
	studentID := c.Param("id")

	if role == models.RoleStudent && studentID != userID.String() {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	mentor, err := h.store.GetStudentMentor(studentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	if mentor == nil {
		c.JSON(http.StatusOK, gin.H{"mentor": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mentor": formatUserInfo(mentor)})
}

// AssignMentor закрепляет ментора за студентом
func (h *MentorshipHandler) AssignMentor(c *gin.Context) {
	var req struct {
		StudentID string `json:"student_id" binding:"required"`
		MentorID  string `json:"mentor_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AssignMentor(req.StudentID, req.MentorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to assign mentor"})
		return
	}

	c.Status(http.StatusOK)
}

// UnassignMentor снимает закрепление
func (h *MentorshipHandler) UnassignMentor(c *gin.Context) {
	var req struct {
		StudentID string `json:"student_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UnassignMentor(req.StudentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to unassign mentor"})
		return
	}

	c.Status(http.StatusOK)
}

func formatUserInfo(u *models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Role:      string(u.Role),
		Grade:     u.Grade,
		AvatarURL: u.AvatarURL,
	}
}

func formatUserList(users []models.User) []dto.UserInfo {
	result := make([]dto.UserInfo, len(users))
	for i := range users {
		result[i] = formatUserInfo(&users[i])
	}
	return result
}
