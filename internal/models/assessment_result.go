package models

import (
	"time"
)

// AssessmentResult is the immutable record of one grading event. One row is
// appended per submission, pass or fail; rows are never updated or deleted.
type AssessmentResult struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"not null;index;size:36"`
	Domain    string    `json:"domain" gorm:"not null;size:100"`
	StepOrder int       `json:"step_order" gorm:"not null"`
	Score     int       `json:"score" gorm:"not null"`
	Total     int       `json:"total" gorm:"not null"`
	Passed    bool      `json:"passed" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}
