package documentset

import (
	"doc-analyzer-backend/db"
	documentsetstore "doc-analyzer-backend/lib/document-set/store"
	documentstore "doc-analyzer-backend/lib/document/store"
	setquery "doc-analyzer-backend/lib/set-query"
	"doc-analyzer-backend/models"
	apimodels "doc-analyzer-backend/models/api"
	setapimodels "doc-analyzer-backend/models/api/set"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data setapimodels.SetData) (id string, err error)
	List(filter apimodels.Pagination) (list []setapimodels.SetView, rowCount int64, err error)
	GetByID(id string) (view *setapimodels.SetDetailsView, err error)
	AddMembers(id string, documentIDs []string) error
	AddQuery(id string, data setapimodels.QueryData) (queryID string, err error)
	SyncQueries() error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:         documentsetstore.NewInstance(db.DB),
		documentStore: documentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         documentsetstore.Provider
	documentStore documentstore.Provider
}

func (i impl) Create(data setapimodels.SetData) (id string, err error) {
	if err = data.Validate(models.DocumentQueryFields()); err != nil {
		return "", err
	}
	rec := dbmodels.DocumentSet{
		Name:        data.Name,
		Description: data.Description,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления набора документов")
		return "", errors.New("ошибка добавления набора документов")
	}
	if len(data.MemberIDs) > 0 {
		err = i.AddMembers(id, data.MemberIDs)
		if err != nil {
			return "", err
		}
	}
	if data.Query != nil {
		_, err = i.AddQuery(id, *data.Query)
		if err != nil {
			return "", err
		}
	}
	return id, nil
}

func (i impl) List(filter apimodels.Pagination) (list []setapimodels.SetView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка наборов документов")
		return nil, 0, err
	}
	list = make([]setapimodels.SetView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) GetByID(id string) (view *setapimodels.SetDetailsView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("set_id", id).Error("ошибка поиска набора документов по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("набор документов не найден")
	}
	result := setapimodels.SetDetailsView{
		SetView:     rec.ToModel(),
		MemberIDs:   make([]string, 0, len(rec.Documents)),
		MemberNames: make([]string, 0, len(rec.Documents)),
		Queries:     make([]setapimodels.QueryView, 0, len(rec.Queries)),
	}
	for _, doc := range rec.Documents {
		result.MemberIDs = append(result.MemberIDs, doc.ID)
		result.MemberNames = append(result.MemberNames, doc.Name)
	}
	for _, query := range rec.Queries {
		result.Queries = append(result.Queries, query.ToModel())
	}
	return &result, nil
}

// AddMembers добавляет документы в набор, уже входящие в набор пропускаются
func (i impl) AddMembers(id string, documentIDs []string) error {
	logger := log.WithField("set_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска набора документов по ID")
		return err
	}
	if rec == nil {
		return errors.New("набор документов не найден")
	}
	existing := make(map[string]bool, len(rec.Documents))
	for _, doc := range rec.Documents {
		existing[doc.ID] = true
	}
	newIDs := make([]string, 0, len(documentIDs))
	for _, docID := range documentIDs {
		if !existing[docID] {
			existing[docID] = true
			newIDs = append(newIDs, docID)
		}
	}
	if len(newIDs) == 0 {
		return nil
	}
	documents, err := i.documentStore.ListByIDs(newIDs)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска документов по ID")
		return err
	}
	if len(documents) != len(newIDs) {
		return errors.New("часть документов не найдена")
	}
	err = i.store.AddMembers(id, documents)
	if err != nil {
		logger.WithError(err).Error("ошибка добавления документов в набор")
		return errors.New("ошибка добавления документов в набор")
	}
	return nil
}

func (i impl) AddQuery(id string, data setapimodels.QueryData) (queryID string, err error) {
	logger := log.WithField("set_id", id)
	if err = data.Validate(models.DocumentQueryFields()); err != nil {
		return "", err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска набора документов по ID")
		return "", err
	}
	if rec == nil {
		return "", errors.New("набор документов не найден")
	}
	queryID, err = i.store.AddQuery(dbmodels.DocumentQuery{
		SetID:      id,
		Name:       data.Name,
		QueryType:  data.Field,
		Operator:   data.Operator,
		QueryValue: data.Value,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка добавления запроса в набор")
		return "", errors.New("ошибка добавления запроса в набор")
	}
	return queryID, nil
}

// SyncQueries распределяет документы без набора по авто-запросам наборов
func (i impl) SyncQueries() error {
	documents, err := i.documentStore.ListWithoutSets()
	if err != nil {
		return errors.Wrap(err, "ошибка получения документов без набора")
	}
	if len(documents) == 0 {
		return nil
	}
	sets, err := i.store.ListWithQueries()
	if err != nil {
		return errors.Wrap(err, "ошибка получения наборов с запросами")
	}
	for _, set := range sets {
		matched := make([]dbmodels.Document, 0)
		for _, doc := range documents {
			for _, query := range set.Queries {
				if setquery.MatchDocument(doc, query) {
					matched = append(matched, doc)
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}
		err = i.store.AddMembers(set.ID, matched)
		if err != nil {
			return errors.Wrapf(err, "ошибка добавления документов в набор %s", set.ID)
		}
		log.WithFields(log.Fields{
			"set_id":    set.ID,
			"set_name":  set.Name,
			"doc_count": len(matched),
		}).Info("документы добавлены в набор по запросу")
	}
	return nil
}
