package batch

import (
	"context"
	"sync"
	"testing"
	"time"

	"doc-analyzer-backend/lib/batch/processor"
	"doc-analyzer-backend/models"
	apimodels "doc-analyzer-backend/models/api"
	resultapimodels "doc-analyzer-backend/models/api/result"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeBatchStore struct {
	mu      sync.Mutex
	due     []dbmodels.BatchRun
	updates []map[string]interface{}
}

func (f *fakeBatchStore) Create(rec dbmodels.BatchRun) (string, error) { return rec.ID, nil }

func (f *fakeBatchStore) GetByID(id string) (*dbmodels.BatchRun, error) { return nil, nil }

func (f *fakeBatchStore) List(filter apimodels.Pagination) ([]dbmodels.BatchRun, int64, error) {
	return nil, 0, nil
}

func (f *fakeBatchStore) ListDue(now time.Time) ([]dbmodels.BatchRun, error) { return f.due, nil }

func (f *fakeBatchStore) Update(id string, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updMap)
	return nil
}

func (f *fakeBatchStore) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

type fakeResultStore struct{}

func (f fakeResultStore) Create(rec dbmodels.Result) (string, error) { return rec.ID, nil }

func (f fakeResultStore) GetByID(id string) (*dbmodels.Result, error) { return nil, nil }

func (f fakeResultStore) List(filter resultapimodels.ResultFilter) ([]dbmodels.Result, int64, error) {
	return nil, 0, nil
}

func (f fakeResultStore) ListAll(filter resultapimodels.ResultFilter) ([]dbmodels.Result, error) {
	return nil, nil
}

func (f fakeResultStore) ListByRunID(runID string) ([]dbmodels.Result, error) { return nil, nil }

func (f fakeResultStore) SaveFeedback(rec dbmodels.Feedback) (string, error) { return "", nil }

type panicResponder struct {
	called chan struct{}
}

func (r panicResponder) Respond(_ context.Context, doc dbmodels.Document, prompt dbmodels.Prompt) (string, error) {
	close(r.called)
	panic("пустой ответ модели")
}

// паника при генерации ответа не должна ронять процесс,
// запуск остается в статусе running до ручного вмешательства
func TestProcessDuePanicRecover(t *testing.T) {
	run := dbmodels.BatchRun{
		Name:   "due run",
		Status: models.BatchRunStatusPending,
		Documents: []dbmodels.Document{
			{Name: "doc", Content: "content"},
		},
		Prompts: []dbmodels.Prompt{
			{Name: "prompt", Content: "content"},
		},
	}
	run.ID = "run-1"
	store := &fakeBatchStore{due: []dbmodels.BatchRun{run}}
	called := make(chan struct{})
	handler := impl{
		store:     store,
		processor: processor.New(store, fakeResultStore{}, panicResponder{called: called}, nil),
	}

	err := handler.ProcessDue(context.Background())
	require.Nil(t, err)

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("запуск не был выполнен")
	}
	// даем времени горутине отработать recover
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, store.updateCount())
}
