package models

import (
	"time"

	"gorm.io/datatypes"
)

// Progress tracks one (user, domain) pair: which step orders are completed
// and the score recorded for each. Created lazily on first read or first
// submission; mutated only by passing submissions.
type Progress struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	UserID string `json:"user_id" gorm:"not null;size:36;uniqueIndex:idx_progress_user_domain"`
	Domain string `json:"domain" gorm:"not null;size:100;uniqueIndex:idx_progress_user_domain"`

	// CompletedSteps is a set of step orders; repeated passes of the same
	// step must not duplicate entries.
	CompletedSteps datatypes.JSONType[[]int]        `json:"completed_steps" gorm:"type:jsonb"`
	Scores         datatypes.JSONType[map[int]int]  `json:"scores" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Progress) TableName() string {
	return "progress"
}

// HasCompleted reports whether stepOrder is in the completed set.
func (p *Progress) HasCompleted(stepOrder int) bool {
	for _, done := range p.CompletedSteps.Data() {
		if done == stepOrder {
			return true
		}
	}
	return false
}
