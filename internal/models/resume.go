package models

import (
	"time"

	"gorm.io/datatypes"
)

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type ExperienceEntry struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Details  string `json:"details"`
}

type ProjectEntry struct {
	Name    string `json:"name"`
	Tech    string `json:"tech"`
	Link    string `json:"link"`
	Details string `json:"details"`
}

// Resume is one free-form resume document per user. Upserts fully replace
// the stored field values, there is no partial merge.
type Resume struct {
	ID      string `json:"id" gorm:"primaryKey;size:36"`
	UserID  string `json:"user_id" gorm:"uniqueIndex;not null;size:36"`
	Summary string `json:"summary" gorm:"type:text;not null"`

	Skills     datatypes.JSONType[[]string]          `json:"skills" gorm:"type:jsonb"`
	Education  datatypes.JSONType[[]EducationEntry]  `json:"education" gorm:"type:jsonb"`
	Experience datatypes.JSONType[[]ExperienceEntry] `json:"experience" gorm:"type:jsonb"`
	Projects   datatypes.JSONType[[]ProjectEntry]    `json:"projects" gorm:"type:jsonb"`
	Contact    datatypes.JSONType[map[string]string] `json:"contact" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
