package documentset

import (
	"testing"

	"doc-analyzer-backend/models"
	apimodels "doc-analyzer-backend/models/api"
	documentapimodels "doc-analyzer-backend/models/api/document"
	setapimodels "doc-analyzer-backend/models/api/set"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeSetStore struct {
	sets    map[string]*dbmodels.DocumentSet
	queries []dbmodels.DocumentQuery
}

func (f *fakeSetStore) Create(rec dbmodels.DocumentSet) (string, error) {
	rec.ID = "set-1"
	f.sets[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeSetStore) GetByID(id string) (*dbmodels.DocumentSet, error) {
	return f.sets[id], nil
}

func (f *fakeSetStore) List(filter apimodels.Pagination) ([]dbmodels.DocumentSet, int64, error) {
	return nil, 0, nil
}

func (f *fakeSetStore) ListWithQueries() ([]dbmodels.DocumentSet, error) {
	list := []dbmodels.DocumentSet{}
	for _, set := range f.sets {
		if len(set.Queries) > 0 {
			list = append(list, *set)
		}
	}
	return list, nil
}

func (f *fakeSetStore) AddMembers(id string, documents []dbmodels.Document) error {
	set := f.sets[id]
	set.Documents = append(set.Documents, documents...)
	return nil
}

func (f *fakeSetStore) AddQuery(rec dbmodels.DocumentQuery) (string, error) {
	rec.ID = "query-1"
	f.queries = append(f.queries, rec)
	set := f.sets[rec.SetID]
	set.Queries = append(set.Queries, rec)
	return rec.ID, nil
}

type fakeDocumentStore struct {
	documents   map[string]dbmodels.Document
	withoutSets []dbmodels.Document
}

func (f *fakeDocumentStore) Create(rec dbmodels.Document) (string, error) { return "", nil }

func (f *fakeDocumentStore) GetByID(id string) (*dbmodels.Document, error) { return nil, nil }

func (f *fakeDocumentStore) List(filter documentapimodels.DocumentFilter) ([]dbmodels.Document, int64, error) {
	return nil, 0, nil
}

func (f *fakeDocumentStore) ListWithoutSets() ([]dbmodels.Document, error) {
	return f.withoutSets, nil
}

func (f *fakeDocumentStore) ListByIDs(ids []string) ([]dbmodels.Document, error) {
	list := []dbmodels.Document{}
	for _, id := range ids {
		if doc, ok := f.documents[id]; ok {
			list = append(list, doc)
		}
	}
	return list, nil
}

func (f *fakeDocumentStore) ListFileTypes() ([]string, error) { return nil, nil }

func newDoc(id, name string) dbmodels.Document {
	doc := dbmodels.Document{Name: name, Content: "content", FileType: "txt"}
	doc.ID = id
	return doc
}

func newTestHandler() (*impl, *fakeSetStore, *fakeDocumentStore) {
	setStore := &fakeSetStore{sets: map[string]*dbmodels.DocumentSet{}}
	docStore := &fakeDocumentStore{documents: map[string]dbmodels.Document{}}
	return &impl{store: setStore, documentStore: docStore}, setStore, docStore
}

func TestAddMembers(t *testing.T) {
	t.Run("повторное добавление не дублирует состав", func(t *testing.T) {
		handler, setStore, docStore := newTestHandler()
		docStore.documents["doc-1"] = newDoc("doc-1", "first")
		docStore.documents["doc-2"] = newDoc("doc-2", "second")
		set := &dbmodels.DocumentSet{Name: "test"}
		set.ID = "set-1"
		setStore.sets["set-1"] = set

		err := handler.AddMembers("set-1", []string{"doc-1", "doc-2"})
		require.Nil(t, err)
		require.Len(t, setStore.sets["set-1"].Documents, 2)

		err = handler.AddMembers("set-1", []string{"doc-1", "doc-2"})
		require.Nil(t, err)
		require.Len(t, setStore.sets["set-1"].Documents, 2)

		// дубли в самом запросе тоже схлопываются
		err = handler.AddMembers("set-1", []string{"doc-1", "doc-1"})
		require.Nil(t, err)
		require.Len(t, setStore.sets["set-1"].Documents, 2)
	})

	t.Run("несуществующий документ отклоняется", func(t *testing.T) {
		handler, setStore, _ := newTestHandler()
		set := &dbmodels.DocumentSet{Name: "test"}
		set.ID = "set-1"
		setStore.sets["set-1"] = set

		err := handler.AddMembers("set-1", []string{"missing"})
		require.NotNil(t, err)
	})

	t.Run("несуществующий набор отклоняется", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		err := handler.AddMembers("missing", []string{"doc-1"})
		require.NotNil(t, err)
	})
}

func TestSyncQueries(t *testing.T) {
	t.Run("документы распределяются по авто-запросам", func(t *testing.T) {
		handler, setStore, docStore := newTestHandler()
		set := &dbmodels.DocumentSet{Name: "Text Documents"}
		set.ID = "set-1"
		set.Queries = []dbmodels.DocumentQuery{{
			SetID:      "set-1",
			QueryType:  models.QueryFieldFileType,
			Operator:   models.QueryOperatorEquals,
			QueryValue: "txt",
		}}
		setStore.sets["set-1"] = set
		docStore.withoutSets = []dbmodels.Document{
			newDoc("doc-1", "matching"),
			{BaseModel: dbmodels.BaseModel{ID: "doc-2"}, Name: "other", FileType: "pdf"},
		}

		err := handler.SyncQueries()
		require.Nil(t, err)
		require.Len(t, setStore.sets["set-1"].Documents, 1)
		require.Equal(t, "doc-1", setStore.sets["set-1"].Documents[0].ID)
	})

	t.Run("без документов вне наборов ничего не происходит", func(t *testing.T) {
		handler, setStore, _ := newTestHandler()
		err := handler.SyncQueries()
		require.Nil(t, err)
		require.Empty(t, setStore.sets)
	})
}

func TestCreate(t *testing.T) {
	t.Run("создание с начальным составом и запросом", func(t *testing.T) {
		handler, setStore, docStore := newTestHandler()
		docStore.documents["doc-1"] = newDoc("doc-1", "first")

		query := newQueryData()
		id, err := handler.Create(newSetData([]string{"doc-1"}, &query))
		require.Nil(t, err)
		require.Equal(t, "set-1", id)
		require.Len(t, setStore.sets["set-1"].Documents, 1)
		require.Len(t, setStore.sets["set-1"].Queries, 1)
	})

	t.Run("без имени отклоняется", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		data := newSetData(nil, nil)
		data.Name = ""
		_, err := handler.Create(data)
		require.NotNil(t, err)
	})

	t.Run("недопустимый оператор отклоняется", func(t *testing.T) {
		handler, _, _ := newTestHandler()
		query := newQueryData()
		query.Operator = "regex"
		_, err := handler.Create(newSetData(nil, &query))
		require.NotNil(t, err)
	})
}

func newQueryData() setapimodels.QueryData {
	return setapimodels.QueryData{
		Name:     "txt only",
		Field:    models.QueryFieldFileType,
		Operator: models.QueryOperatorEquals,
		Value:    "txt",
	}
}

func newSetData(memberIDs []string, query *setapimodels.QueryData) setapimodels.SetData {
	return setapimodels.SetData{
		Name:      "Text Documents",
		MemberIDs: memberIDs,
		Query:     query,
	}
}
