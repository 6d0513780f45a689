package utils

import "strings"

func NormalizeDifficulty(difficulty string) string {
	return strings.ToLower(strings.TrimSpace(difficulty))
}

func NormalizeInterviewType(interviewType string) string {
	return strings.ToLower(strings.TrimSpace(interviewType))
}
