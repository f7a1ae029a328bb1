package models

import (
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// AllowedQualifications is the fixed whitelist of IT-related qualifications
// a user may register or update their profile with.
var AllowedQualifications = []string{
	"B.Tech CSE",
	"B.Tech IT",
	"B.Sc IT",
	"BCA",
	"MCA",
	"M.Sc CS",
	"Diploma in CS/IT",
}

// IsAllowedQualification reports whether q belongs to AllowedQualifications.
func IsAllowedQualification(q string) bool {
	for _, allowed := range AllowedQualifications {
		if q == allowed {
			return true
		}
	}
	return false
}

type User struct {
	ID            string   `json:"id" gorm:"primaryKey;size:36"`
	FirstName     string   `json:"first_name" gorm:"not null;size:100"`
	LastName      string   `json:"last_name" gorm:"not null;size:100"`
	Email         string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Phone         string   `json:"phone" gorm:"not null;size:10"`
	Qualification string   `json:"qualification" gorm:"not null;size:100"`
	Role          UserRole `json:"role" gorm:"default:student;size:20"`
	AvatarURL     *string  `json:"avatar_url" gorm:"size:500"`

	// Password digest. Never serialized in responses.
	PasswordHash string `json:"-" gorm:"not null;size:64"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
