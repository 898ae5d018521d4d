package promptset

import (
	"doc-analyzer-backend/db"
	promptsetstore "doc-analyzer-backend/lib/prompt-set/store"
	promptstore "doc-analyzer-backend/lib/prompt/store"
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
	AddMembers(id string, promptIDs []string) error
	AddQuery(id string, data setapimodels.QueryData) (queryID string, err error)
	SyncQueries() error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:       promptsetstore.NewInstance(db.DB),
		promptStore: promptstore.NewInstance(db.DB),
	}
}

type impl struct {
	store       promptsetstore.Provider
	promptStore promptstore.Provider
}

func (i impl) Create(data setapimodels.SetData) (id string, err error) {
	if err = data.Validate(models.PromptQueryFields()); err != nil {
		return "", err
	}
	rec := dbmodels.PromptSet{
		Name:        data.Name,
		Description: data.Description,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления набора промтов")
		return "", errors.New("ошибка добавления набора промтов")
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
		log.WithError(err).Error("ошибка получения списка наборов промтов")
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
		log.WithError(err).WithField("set_id", id).Error("ошибка поиска набора промтов по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("набор промтов не найден")
	}
	result := setapimodels.SetDetailsView{
		SetView:     rec.ToModel(),
		MemberIDs:   make([]string, 0, len(rec.Prompts)),
		MemberNames: make([]string, 0, len(rec.Prompts)),
		Queries:     make([]setapimodels.QueryView, 0, len(rec.Queries)),
	}
	for _, prompt := range rec.Prompts {
		result.MemberIDs = append(result.MemberIDs, prompt.ID)
		result.MemberNames = append(result.MemberNames, prompt.Name)
	}
	for _, query := range rec.Queries {
		result.Queries = append(result.Queries, query.ToModel())
	}
	return &result, nil
}

// AddMembers добавляет промты в набор, уже входящие в набор пропускаются
func (i impl) AddMembers(id string, promptIDs []string) error {
	logger := log.WithField("set_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска набора промтов по ID")
		return err
	}
	if rec == nil {
		return errors.New("набор промтов не найден")
	}
	existing := make(map[string]bool, len(rec.Prompts))
	for _, prompt := range rec.Prompts {
		existing[prompt.ID] = true
	}
	newIDs := make([]string, 0, len(promptIDs))
	for _, promptID := range promptIDs {
		if !existing[promptID] {
			existing[promptID] = true
			newIDs = append(newIDs, promptID)
		}
	}
	if len(newIDs) == 0 {
		return nil
	}
	prompts, err := i.promptStore.ListByIDs(newIDs)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска промтов по ID")
		return err
	}
	if len(prompts) != len(newIDs) {
		return errors.New("часть промтов не найдена")
	}
	err = i.store.AddMembers(id, prompts)
	if err != nil {
		logger.WithError(err).Error("ошибка добавления промтов в набор")
		return errors.New("ошибка добавления промтов в набор")
	}
	return nil
}

func (i impl) AddQuery(id string, data setapimodels.QueryData) (queryID string, err error) {
	logger := log.WithField("set_id", id)
	if err = data.Validate(models.PromptQueryFields()); err != nil {
		return "", err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска набора промтов по ID")
		return "", err
	}
	if rec == nil {
		return "", errors.New("набор промтов не найден")
	}
	queryID, err = i.store.AddQuery(dbmodels.PromptQuery{
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

// SyncQueries распределяет промты без набора по авто-запросам наборов
func (i impl) SyncQueries() error {
	prompts, err := i.promptStore.ListWithoutSets()
	if err != nil {
		return errors.Wrap(err, "ошибка получения промтов без набора")
	}
	if len(prompts) == 0 {
		return nil
	}
	sets, err := i.store.ListWithQueries()
	if err != nil {
		return errors.Wrap(err, "ошибка получения наборов с запросами")
	}
	for _, set := range sets {
		matched := make([]dbmodels.Prompt, 0)
		for _, prompt := range prompts {
			for _, query := range set.Queries {
				if setquery.MatchPrompt(prompt, query) {
					matched = append(matched, prompt)
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}
		err = i.store.AddMembers(set.ID, matched)
		if err != nil {
			return errors.Wrapf(err, "ошибка добавления промтов в набор %s", set.ID)
		}
		log.WithFields(log.Fields{
			"set_id":       set.ID,
			"set_name":     set.Name,
			"prompt_count": len(matched),
		}).Info("промты добавлены в набор по запросу")
	}
	return nil
}
