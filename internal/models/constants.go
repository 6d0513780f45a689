package models

// contains all valid difficulty levels
var ValidDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// contains all valid interview types (in lowercase)
var ValidInterviewTypes = map[string]bool{
	"technical":    true,
	"behavioral":   true,
	"case study":   true,
	"cultural fit": true,
	"mixed":        true,
}

func ValidDifficultiesList() []string {
	return []string{"easy", "medium", "hard"}
}

func ValidInterviewTypesList() []string {
	return []string{"technical", "behavioral", "case study", "cultural fit", "mixed"}
}
