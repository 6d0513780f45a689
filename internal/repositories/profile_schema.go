package repositories

import (
	"encoding/json"
	"strings"

	"smarthire/interview/internal/models"
)

// legacyFallbackRecruiter is used when a version-1 row carries no usable
// recruiter name at all.
const legacyFallbackRecruiter = "SmartHire Recruiter"

// upgradeProfile normalizes a loaded row to the current schema. Version-1
// rows repurposed columns: role held the recruiter name, sector held the
// job context, and interview_type sometimes carried a JSON
// {"type":...,"difficulty":...} pair. The migration is pure so it can be
// tested without a database.
func upgradeProfile(row models.RecruiterProfile) models.RecruiterProfile {
	if row.SchemaVersion >= models.ProfileSchemaCurrent {
		row.SchemaVersion = models.ProfileSchemaCurrent
		return row
	}

	upgraded := models.RecruiterProfile{
		ID:            row.ID,
		SchemaVersion: models.ProfileSchemaCurrent,
		RecruiterName: row.Role,
		Difficulty:    "Medium",
		InterviewType: row.InterviewType,
		CandidateName: row.CandidateName,
		ContextFile:   strings.TrimSpace(row.Sector),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if upgraded.RecruiterName == "" {
		upgraded.RecruiterName = legacyFallbackRecruiter
	}

	if parsed, ok := parseLegacyInterviewType(row.InterviewType); ok {
		upgraded.InterviewType = parsed.Type
		upgraded.Difficulty = parsed.Difficulty
	}

	return upgraded
}

type legacyInterviewType struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// parseLegacyInterviewType decodes the JSON-packed interview_type written by
// old clients. A plain string is returned unchanged via ok=false.
func parseLegacyInterviewType(raw string) (legacyInterviewType, bool) {
	if !strings.HasPrefix(raw, "{") {
		return legacyInterviewType{}, false
	}
	var parsed legacyInterviewType
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return legacyInterviewType{}, false
	}
	if parsed.Type == "" {
		return legacyInterviewType{}, false
	}
	if parsed.Difficulty == "" {
		parsed.Difficulty = "Medium"
	}
	return parsed, true
}
