package repositories

import (
	"context"
	"testing"

	"smarthire/interview/internal/testhelpers"
)

func TestPastQuestionsFiltersByKey(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &QuestionRepository{DB: db}
	ctx := context.Background()

	mustRecord(t, repo, "Ava", "Technical", "Medium", "What is a goroutine?")
	mustRecord(t, repo, "Ava", "Technical", "Medium", "Explain channels.")
	mustRecord(t, repo, "Ava", "Behavioral", "Medium", "Tell me about a conflict.")
	mustRecord(t, repo, "Ben", "Technical", "Medium", "What is a mutex?")

	questions, err := repo.PastQuestions(ctx, "Ava", "Technical", "Medium", 0)
	if err != nil {
		t.Fatalf("PastQuestions returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions for the key, got %d: %v", len(questions), questions)
	}
	if questions[0] != "What is a goroutine?" || questions[1] != "Explain channels." {
		t.Fatalf("expected chronological order, got %v", questions)
	}
}

func TestPastQuestionsCapKeepsRecent(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &QuestionRepository{DB: db}
	ctx := context.Background()

	mustRecord(t, repo, "Ava", "Technical", "Medium", "old one")
	mustRecord(t, repo, "Ava", "Technical", "Medium", "middle one")
	mustRecord(t, repo, "Ava", "Technical", "Medium", "new one")

	questions, err := repo.PastQuestions(ctx, "Ava", "Technical", "Medium", 2)
	if err != nil {
		t.Fatalf("PastQuestions returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected cap of 2, got %d", len(questions))
	}
	if questions[0] != "middle one" || questions[1] != "new one" {
		t.Fatalf("cap must drop the oldest record, got %v", questions)
	}
}

func TestPastQuestionsEmpty(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &QuestionRepository{DB: db}

	questions, err := repo.PastQuestions(context.Background(), "Nobody", "Technical", "Easy", 0)
	if err != nil {
		t.Fatalf("PastQuestions returned error: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %v", questions)
	}
}

func TestPastQuestionsFetchError(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &QuestionRepository{DB: db}
	testhelpers.DropQuestionTable(t, db)

	if _, err := repo.PastQuestions(context.Background(), "Ava", "Technical", "Medium", 0); err == nil {
		t.Fatalf("expected error when the question table is missing")
	}
}

func TestUnexportedAndMarkExported(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &QuestionRepository{DB: db}
	ctx := context.Background()

	mustRecord(t, repo, "Ava", "Technical", "Medium", "first")
	mustRecord(t, repo, "Ava", "Technical", "Medium", "second")

	pending, err := repo.Unexported(ctx, 0)
	if err != nil {
		t.Fatalf("Unexported returned error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 unexported records, got %d", len(pending))
	}

	if err := repo.MarkExported(ctx, []uint{pending[0].ID}); err != nil {
		t.Fatalf("MarkExported returned error: %v", err)
	}

	pending, err = repo.Unexported(ctx, 0)
	if err != nil {
		t.Fatalf("Unexported returned error: %v", err)
	}
	if len(pending) != 1 || pending[0].QuestionText != "second" {
		t.Fatalf("expected only the second record to remain pending, got %+v", pending)
	}
}

func TestMarkExportedNoIDs(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &QuestionRepository{DB: db}

	if err := repo.MarkExported(context.Background(), nil); err != nil {
		t.Fatalf("MarkExported with no ids must be a no-op, got %v", err)
	}
}

func mustRecord(t *testing.T, repo *QuestionRepository, recruiter, interviewType, difficulty, text string) {
	t.Helper()
	if err := repo.Record(context.Background(), recruiter, interviewType, difficulty, text); err != nil {
		t.Fatalf("failed to record question %q: %v", text, err)
	}
}
