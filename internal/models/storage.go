package models

import (
	"time"
)

// DefaultProfileID matches the single-profile UI: there is one recruiter
// configuration unless the client manages several explicitly.
const DefaultProfileID = "1"

// Profile schema versions. Version 1 repurposed columns from an older
// deployment (role held the recruiter name, sector held the job context,
// interview_type sometimes carried a JSON {type,difficulty} pair).
// Version 2 is the explicit schema; saves always write version 2.
const (
	ProfileSchemaLegacy  = 1
	ProfileSchemaCurrent = 2
)

// RecruiterProfile is the persisted Session Context.
type RecruiterProfile struct {
	ID            string `gorm:"primaryKey"`
	SchemaVersion int    `gorm:"not null;default:2"`

	RecruiterName string `gorm:"size:100"`
	Difficulty    string `gorm:"size:32"`
	InterviewType string
	CandidateName string `gorm:"size:100"`
	ContextFile   string `gorm:"type:text"`

	// Legacy columns kept so version-1 rows remain readable.
	Role   string `gorm:"size:100"`
	Sector string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InterviewQuestion is one write-once Question Record. Records accumulate
// indefinitely; the (recruiter, type, difficulty) key scopes the
// never-repeat memory across sessions.
type InterviewQuestion struct {
	ID            uint   `gorm:"primaryKey"`
	RecruiterName string `gorm:"size:100;index:idx_question_key"`
	InterviewType string `gorm:"index:idx_question_key"`
	Difficulty    string `gorm:"size:32;index:idx_question_key"`
	QuestionText  string `gorm:"type:text;not null"`
	Exported      bool   `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
}
