package models

import (
	"time"

	"gorm.io/datatypes"
)

// Question is one quiz item attached to a roadmap step. AnswerIndex points
// into Options and is only consulted server-side during grading.
type Question struct {
	Prompt      string   `json:"q"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

// RoadmapStep is one unit of a roadmap. Order is 1-based and unique within
// a domain; step N is gated behind completion of step N-1.
type RoadmapStep struct {
	Order       int        `json:"order"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Videos      []string   `json:"videos"`
	Questions   []Question `json:"questions"`
}

// Roadmap holds the ordered step sequence for one learning domain. Seeded
// once at startup and read-only through the public interface afterwards.
type Roadmap struct {
	ID     string                               `json:"id" gorm:"primaryKey;size:36"`
	Domain string                               `json:"domain" gorm:"uniqueIndex;not null;size:100"`
	Steps  datatypes.JSONType[[]RoadmapStep]    `json:"steps" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// PublicQuestion is the outbound view of a Question with the answer key
// stripped. Callers submit answer indices and get a score back; they never
// see which option is correct.
type PublicQuestion struct {
	Prompt  string   `json:"q"`
	Options []string `json:"options"`
}

// PublicStep is the outbound view of a RoadmapStep.
type PublicStep struct {
	Order       int              `json:"order"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Videos      []string         `json:"videos"`
	Questions   []PublicQuestion `json:"questions"`
}

// Public strips correct-answer indices from every question of the step.
func (s RoadmapStep) Public() PublicStep {
	questions := make([]PublicQuestion, 0, len(s.Questions))
	for _, q := range s.Questions {
		questions = append(questions, PublicQuestion{Prompt: q.Prompt, Options: q.Options})
	}
	return PublicStep{
		Order:       s.Order,
		Title:       s.Title,
		Description: s.Description,
		Videos:      s.Videos,
		Questions:   questions,
	}
}
