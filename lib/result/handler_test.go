package result

import (
	"testing"

	apimodels "doc-analyzer-backend/models/api"
	resultapimodels "doc-analyzer-backend/models/api/result"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeResultStore struct {
	results []dbmodels.Result
}

func (f *fakeResultStore) Create(rec dbmodels.Result) (string, error) { return rec.ID, nil }

func (f *fakeResultStore) GetByID(id string) (*dbmodels.Result, error) { return nil, nil }

func (f *fakeResultStore) List(filter resultapimodels.ResultFilter) ([]dbmodels.Result, int64, error) {
	page, limit := filter.GetPage()
	start := (page - 1) * limit
	if start > len(f.results) {
		start = len(f.results)
	}
	end := start + limit
	if end > len(f.results) {
		end = len(f.results)
	}
	return f.results[start:end], int64(len(f.results)), nil
}

func (f *fakeResultStore) ListAll(filter resultapimodels.ResultFilter) ([]dbmodels.Result, error) {
	return f.results, nil
}

func (f *fakeResultStore) ListByRunID(runID string) ([]dbmodels.Result, error) { return f.results, nil }

func (f *fakeResultStore) SaveFeedback(rec dbmodels.Feedback) (string, error) { return rec.ID, nil }

func makeResult(id string, ratings ...int) dbmodels.Result {
	rec := dbmodels.Result{Response: "ответ"}
	rec.ID = id
	for _, rating := range ratings {
		rec.Feedback = append(rec.Feedback, dbmodels.Feedback{Rating: rating})
	}
	return rec
}

func TestListMinRating(t *testing.T) {
	t.Run("порог сравнивается с лучшей из оценок", func(t *testing.T) {
		store := &fakeResultStore{results: []dbmodels.Result{
			makeResult("r1", 5, 1),
		}}
		handler := impl{store: store}

		list, rowCount, err := handler.List(resultapimodels.ResultFilter{MinRating: 4})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, int64(1), rowCount)
		require.Equal(t, "r1", list[0].ID)
	})

	t.Run("результат без оценок не проходит фильтр", func(t *testing.T) {
		store := &fakeResultStore{results: []dbmodels.Result{
			makeResult("r1"),
			makeResult("r2", 2),
		}}
		handler := impl{store: store}

		list, rowCount, err := handler.List(resultapimodels.ResultFilter{MinRating: 3})
		require.Nil(t, err)
		require.Empty(t, list)
		require.Equal(t, int64(0), rowCount)
	})

	t.Run("row_count и размер страниц согласованы", func(t *testing.T) {
		store := &fakeResultStore{results: []dbmodels.Result{
			makeResult("r1", 5),
			makeResult("r2", 2),
			makeResult("r3", 2, 5),
			makeResult("r4", 1),
		}}
		handler := impl{store: store}

		filter := resultapimodels.ResultFilter{MinRating: 4}
		filter.Pagination = apimodels.Pagination{Page: 1, Limit: 1}
		list, rowCount, err := handler.List(filter)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, int64(2), rowCount)
		require.Equal(t, "r1", list[0].ID)

		filter.Pagination = apimodels.Pagination{Page: 2, Limit: 1}
		list, rowCount, err = handler.List(filter)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, int64(2), rowCount)
		require.Equal(t, "r3", list[0].ID)

		filter.Pagination = apimodels.Pagination{Page: 3, Limit: 1}
		list, rowCount, err = handler.List(filter)
		require.Nil(t, err)
		require.Empty(t, list)
		require.Equal(t, int64(2), rowCount)
	})

	t.Run("без фильтра пагинация в хранилище", func(t *testing.T) {
		store := &fakeResultStore{results: []dbmodels.Result{
			makeResult("r1"),
			makeResult("r2", 3),
		}}
		handler := impl{store: store}

		list, rowCount, err := handler.List(resultapimodels.ResultFilter{})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, int64(2), rowCount)
	})
}
