package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"smarthire/interview/internal/models"
	"smarthire/interview/internal/repositories"
)

// QuestionExporterJob writes accumulated question records to JSONL files on
// a schedule, as an audit trail of what the recruiter persona has asked.
type QuestionExporterJob struct {
	questions *repositories.QuestionRepository
	config    *ExporterConfig
	logger    *zap.Logger
	cron      *cron.Cron
}

// ExporterConfig contains configuration for the exporter job
type ExporterConfig struct {
	Schedule  string // Cron schedule (e.g., "0 2 * * *" for 2 AM daily)
	ExportDir string // Directory to store exported files
	Enabled   bool
}

type exportRecord struct {
	RecruiterName string    `json:"recruiter_name"`
	InterviewType string    `json:"interview_type"`
	Difficulty    string    `json:"difficulty"`
	QuestionText  string    `json:"question_text"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewQuestionExporterJob(questions *repositories.QuestionRepository, config *ExporterConfig, logger *zap.Logger) *QuestionExporterJob {
	return &QuestionExporterJob{
		questions: questions,
		config:    config,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start begins the scheduled export job
func (job *QuestionExporterJob) Start() error {
	if !job.config.Enabled {
		job.logger.Info("question export is disabled, skipping scheduler")
		return nil
	}

	_, err := job.cron.AddFunc(job.config.Schedule, func() {
		if err := job.RunExport(context.Background()); err != nil {
			job.logger.Error("question export run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}

	job.cron.Start()
	job.logger.Info("question exporter started", zap.String("schedule", job.config.Schedule))
	return nil
}

// Stop stops the scheduled export job
func (job *QuestionExporterJob) Stop() {
	if job.cron != nil {
		job.cron.Stop()
	}
}

// RunExport performs a single export run.
func (job *QuestionExporterJob) RunExport(ctx context.Context) error {
	records, err := job.questions.Unexported(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to get unexported questions: %w", err)
	}
	if len(records) == 0 {
		job.logger.Info("no unexported questions found")
		return nil
	}

	data, err := ToJSONL(records)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(job.config.ExportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := filepath.Join(job.config.ExportDir,
		fmt.Sprintf("questions_%s.jsonl", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	ids := make([]uint, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	if err := job.questions.MarkExported(ctx, ids); err != nil {
		return err
	}

	job.logger.Info("exported question records",
		zap.Int("count", len(records)),
		zap.String("file", filename))
	return nil
}

// ToJSONL serializes question records as one JSON object per line.
func ToJSONL(records []models.InterviewQuestion) ([]byte, error) {
	var out []byte
	for i, rec := range records {
		line, err := json.Marshal(exportRecord{
			RecruiterName: rec.RecruiterName,
			InterviewType: rec.InterviewType,
			Difficulty:    rec.Difficulty,
			QuestionText:  rec.QuestionText,
			CreatedAt:     rec.CreatedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal question record: %w", err)
		}
		out = append(out, line...)
		if i < len(records)-1 {
			out = append(out, '\n')
		}
	}
	return out, nil
}
