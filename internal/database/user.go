package database

import (
	"errors"

	"mentorlink/internal/models"
)

var (
	ErrNotAMentor  = errors.New("user is not a mentor")
	ErrNotAStudent = errors.New("user is not a student")
)

func (d *Database) SaveUser(user *models.User) error {
	return d.db.Create(user).Error
}

func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsersByRole возвращает всех пользователей с данной ролью
func (d *Database) GetUsersByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := d.db.Where("role = ?", role).Order("name ASC").Find(&users).Error
	return users, err
}

// GetMentorStudents возвращает студентов, закреплённых за ментором
func (d *Database) GetMentorStudents(mentorID string) ([]models.User, error) {
	var students []models.User
	err := d.db.
		Where("mentor_id = ? AND role = ?", mentorID, models.RoleStudent).
		Order("name ASC").
		Find(&students).Error
	return students, err
}

// GetStudentMentor возвращает ментора студента, nil если не назначен
func (d *Database) GetStudentMentor(studentID string) (*models.User, error) {
	student, err := d.GetUser(studentID)
	if err != nil {
		return nil, err
	}
	if student.MentorID == nil {
		return nil, nil
	}
	return d.GetUser(student.MentorID.String())
}

// AssignMentor закрепляет ментора за студентом
func (d *Database) AssignMentor(studentID, mentorID string) error {
	mentor, err := d.GetUser(mentorID)
	if err != nil {
		return err
	}
	if mentor.Role != models.RoleMentor {
		return ErrNotAMentor
	}

	res := d.db.
		Model(&models.User{}).
		Where("id = ? AND role = ?", studentID, models.RoleStudent).
		Update("mentor_id", mentor.ID)
	if res.Error != nil {
		return res.Error
	}
	// Ничего не обновилось: такого студента нет либо это не студент
	if res.RowsAffected == 0 {
		return ErrNotAStudent
	}
	return nil
}

// UnassignMentor снимает закрепление ментора со студента
func (d *Database) UnassignMentor(studentID string) error {
	return d.db.
		Model(&models.User{}).
		Where("id = ?", studentID).
		Update("mentor_id", nil).Error
}
