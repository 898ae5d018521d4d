package processor

import (
	"context"
	"testing"

	"doc-analyzer-backend/models"
	resultapimodels "doc-analyzer-backend/models/api/result"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeRunStore struct {
	updates []map[string]interface{}
}

func (f *fakeRunStore) Update(id string, updMap map[string]interface{}) error {
	f.updates = append(f.updates, updMap)
	return nil
}

type fakeResultStore struct {
	results []dbmodels.Result
}

func (f *fakeResultStore) Create(rec dbmodels.Result) (string, error) {
	f.results = append(f.results, rec)
	return rec.ID, nil
}

func (f *fakeResultStore) GetByID(id string) (*dbmodels.Result, error) { return nil, nil }

func (f *fakeResultStore) List(filter resultapimodels.ResultFilter) ([]dbmodels.Result, int64, error) {
	return nil, 0, nil
}

func (f *fakeResultStore) ListAll(filter resultapimodels.ResultFilter) ([]dbmodels.Result, error) {
	return f.results, nil
}

func (f *fakeResultStore) ListByRunID(runID string) ([]dbmodels.Result, error) { return nil, nil }

func (f *fakeResultStore) SaveFeedback(rec dbmodels.Feedback) (string, error) { return "", nil }

type failingResponder struct {
	failFor string
}

func (r failingResponder) Respond(_ context.Context, doc dbmodels.Document, prompt dbmodels.Prompt) (string, error) {
	if r.failFor == "" || doc.Name == r.failFor {
		return "", errors.New("generation failed")
	}
	return "ok", nil
}

func makeRun(status models.BatchRunStatus, docCount, promptCount int) dbmodels.BatchRun {
	run := dbmodels.BatchRun{
		Name:   "test run",
		Status: status,
	}
	run.ID = "run-1"
	for i := 0; i < docCount; i++ {
		doc := dbmodels.Document{Name: "doc", Content: "content"}
		doc.ID = "doc-" + string(rune('a'+i))
		run.Documents = append(run.Documents, doc)
	}
	for i := 0; i < promptCount; i++ {
		prompt := dbmodels.Prompt{Name: "prompt", Content: "content"}
		prompt.ID = "prompt-" + string(rune('a'+i))
		run.Prompts = append(run.Prompts, prompt)
	}
	return run
}

func TestPlaceholderResponder(t *testing.T) {
	doc := dbmodels.Document{Name: "Annual Report"}
	prompt := dbmodels.Prompt{Name: "Summarize"}
	response, err := PlaceholderResponder{}.Respond(context.Background(), doc, prompt)
	require.Nil(t, err)
	require.Equal(t, "Processed document 'Annual Report' with prompt 'Summarize'", response)
}

func TestProcessRun(t *testing.T) {
	t.Run("результат на каждую пару документ-промт", func(t *testing.T) {
		runStore := &fakeRunStore{}
		resultStore := &fakeResultStore{}
		p := New(runStore, resultStore, PlaceholderResponder{}, nil)

		run := makeRun(models.BatchRunStatusPending, 3, 2)
		err := p.ProcessRun(context.Background(), run)
		require.Nil(t, err)

		require.Len(t, resultStore.results, 3*2)
		for _, rec := range resultStore.results {
			require.Equal(t, "run-1", rec.BatchRunID)
			require.NotEmpty(t, rec.Response)
		}

		require.Len(t, runStore.updates, 2)
		require.Equal(t, models.BatchRunStatusRunning, runStore.updates[0]["Status"])
		require.Equal(t, models.BatchRunStatusCompleted, runStore.updates[1]["Status"])
		require.NotNil(t, runStore.updates[1]["CompletedAt"])
	})

	t.Run("ошибка пары не прерывает запуск, но итог failed", func(t *testing.T) {
		runStore := &fakeRunStore{}
		resultStore := &fakeResultStore{}
		p := New(runStore, resultStore, failingResponder{failFor: "bad"}, nil)

		run := makeRun(models.BatchRunStatusPending, 1, 2)
		run.Documents[0].Name = "good"
		badDoc := dbmodels.Document{Name: "bad", Content: "content"}
		badDoc.ID = "doc-bad"
		run.Documents = append(run.Documents, badDoc)

		err := p.ProcessRun(context.Background(), run)
		require.Nil(t, err)

		// успешные пары сохранены
		require.Len(t, resultStore.results, 2)
		require.Equal(t, models.BatchRunStatusFailed, runStore.updates[len(runStore.updates)-1]["Status"])
		require.NotNil(t, runStore.updates[len(runStore.updates)-1]["CompletedAt"])
	})

	t.Run("все пары с ошибкой дают статус failed", func(t *testing.T) {
		runStore := &fakeRunStore{}
		resultStore := &fakeResultStore{}
		p := New(runStore, resultStore, failingResponder{}, nil)

		run := makeRun(models.BatchRunStatusApproved, 1, 1)
		err := p.ProcessRun(context.Background(), run)
		require.Nil(t, err)

		require.Empty(t, resultStore.results)
		require.Equal(t, models.BatchRunStatusFailed, runStore.updates[len(runStore.updates)-1]["Status"])
	})

	t.Run("отклоненный запуск не выполняется", func(t *testing.T) {
		runStore := &fakeRunStore{}
		resultStore := &fakeResultStore{}
		p := New(runStore, resultStore, PlaceholderResponder{}, nil)

		run := makeRun(models.BatchRunStatusRejected, 1, 1)
		err := p.ProcessRun(context.Background(), run)
		require.NotNil(t, err)
		require.Empty(t, runStore.updates)
		require.Empty(t, resultStore.results)
	})

	t.Run("завершенный запуск не выполняется повторно", func(t *testing.T) {
		runStore := &fakeRunStore{}
		resultStore := &fakeResultStore{}
		p := New(runStore, resultStore, PlaceholderResponder{}, nil)

		run := makeRun(models.BatchRunStatusCompleted, 1, 1)
		err := p.ProcessRun(context.Background(), run)
		require.NotNil(t, err)
		require.Empty(t, resultStore.results)
	})

	t.Run("события статусов рассылаются", func(t *testing.T) {
		runStore := &fakeRunStore{}
		resultStore := &fakeResultStore{}
		var statuses []models.BatchRunStatus
		p := New(runStore, resultStore, PlaceholderResponder{}, func(runID string, status models.BatchRunStatus) {
			statuses = append(statuses, status)
		})

		run := makeRun(models.BatchRunStatusPending, 1, 1)
		err := p.ProcessRun(context.Background(), run)
		require.Nil(t, err)
		require.Equal(t, []models.BatchRunStatus{models.BatchRunStatusRunning, models.BatchRunStatusCompleted}, statuses)
	})
}
