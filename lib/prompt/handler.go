package prompt

import (
	"doc-analyzer-backend/db"
	promptstore "doc-analyzer-backend/lib/prompt/store"
	promptapimodels "doc-analyzer-backend/models/api/prompt"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data promptapimodels.PromptData) (id string, err error)
	Update(id string, data promptapimodels.PromptData) error
	List(filter promptapimodels.PromptFilter) (list []promptapimodels.PromptView, rowCount int64, err error)
	GetByID(id string) (view *promptapimodels.PromptView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: promptstore.NewInstance(db.DB),
	}
}

type impl struct {
	store promptstore.Provider
}

func (i impl) Create(data promptapimodels.PromptData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.Prompt{
		Name:    data.Name,
		Content: data.Content,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления промта")
		return "", errors.New("ошибка добавления промта")
	}
	return id, nil
}

func (i impl) Update(id string, data promptapimodels.PromptData) error {
	logger := log.WithField("prompt_id", id)
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска промта по ID")
		return err
	}
	if rec == nil {
		return errors.New("промт не найден")
	}
	updMap := map[string]interface{}{
		"Name":    data.Name,
		"Content": data.Content,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка изменения промта")
		return errors.New("ошибка изменения промта")
	}
	return nil
}

func (i impl) List(filter promptapimodels.PromptFilter) (list []promptapimodels.PromptView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка промтов")
		return nil, 0, err
	}
	list = make([]promptapimodels.PromptView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) GetByID(id string) (view *promptapimodels.PromptView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("prompt_id", id).Error("ошибка поиска промта по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("промт не найден")
	}
	result := rec.ToModel()
	return &result, nil
}
