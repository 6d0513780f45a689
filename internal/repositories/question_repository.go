package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smarthire/interview/internal/models"
)

// QuestionRepository is the Question History Store: write-once question
// records, read back as an exclusion list keyed by
// (recruiter, interview type, difficulty).
type QuestionRepository struct {
	DB *gorm.DB
}

// PastQuestions returns up to limit previously generated questions for the
// key, oldest first. A limit of zero or less means no cap; when the cap
// trims, the oldest records are dropped so the denylist tracks recent
// sessions.
func (r *QuestionRepository) PastQuestions(ctx context.Context, recruiter, interviewType, difficulty string, limit int) ([]string, error) {
	var records []models.InterviewQuestion

	query := r.DB.WithContext(ctx).
		Where("recruiter_name = ? AND interview_type = ? AND difficulty = ?", recruiter, interviewType, difficulty).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch past questions: %w", err)
	}

	// restore chronological order
	questions := make([]string, len(records))
	for i, rec := range records {
		questions[len(records)-1-i] = rec.QuestionText
	}
	return questions, nil
}

// Record persists one generated question under its key.
func (r *QuestionRepository) Record(ctx context.Context, recruiter, interviewType, difficulty, text string) error {
	record := &models.InterviewQuestion{
		RecruiterName: recruiter,
		InterviewType: interviewType,
		Difficulty:    difficulty,
		QuestionText:  text,
	}
	if err := r.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to record question: %w", err)
	}
	return nil
}

// Unexported returns question records not yet exported, oldest first.
func (r *QuestionRepository) Unexported(ctx context.Context, limit int) ([]models.InterviewQuestion, error) {
	var records []models.InterviewQuestion

	query := r.DB.WithContext(ctx).Where("exported = ?", false).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch unexported questions: %w", err)
	}
	return records, nil
}

// MarkExported flags question records after a successful export run.
func (r *QuestionRepository) MarkExported(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.DB.WithContext(ctx).Model(&models.InterviewQuestion{}).
		Where("id IN ?", ids).
		Update("exported", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark questions exported: %w", err)
	}
	return nil
}
