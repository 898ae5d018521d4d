package result

import (
	"bytes"

	"doc-analyzer-backend/db"
	batchstore "doc-analyzer-backend/lib/batch/store"
	pdfexport "doc-analyzer-backend/lib/export/pdf"
	xlsexport "doc-analyzer-backend/lib/export/xls"
	resultstore "doc-analyzer-backend/lib/result/store"
	resultapimodels "doc-analyzer-backend/models/api/result"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(filter resultapimodels.ResultFilter) (list []resultapimodels.ResultView, rowCount int64, err error)
	GetByID(id string) (view *resultapimodels.ResultDetailsView, err error)
	AddFeedback(data resultapimodels.FeedbackData) (id string, err error)
	ExportXLSX(filter resultapimodels.ResultFilter) (*bytes.Buffer, error)
	ExportRunPDF(runID string) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:    resultstore.NewInstance(db.DB),
		runStore: batchstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    resultstore.Provider
	runStore batchstore.Provider
}

func (i impl) List(filter resultapimodels.ResultFilter) (list []resultapimodels.ResultView, rowCount int64, err error) {
	if filter.MinRating > 0 {
		return i.listByMinRating(filter)
	}
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка результатов")
		return nil, 0, err
	}
	list = make([]resultapimodels.ResultView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

// listByMinRating фильтр по оценке применяется до пагинации,
// row_count учитывает отфильтрованные записи на всех страницах
func (i impl) listByMinRating(filter resultapimodels.ResultFilter) (list []resultapimodels.ResultView, rowCount int64, err error) {
	recList, err := i.store.ListAll(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка результатов")
		return nil, 0, err
	}
	filtered := make([]dbmodels.Result, 0, len(recList))
	for _, rec := range recList {
		if hasMinRating(rec.Feedback, filter.MinRating) {
			filtered = append(filtered, rec)
		}
	}
	rowCount = int64(len(filtered))
	page, limit := filter.GetPage()
	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	list = make([]resultapimodels.ResultView, 0, end-start)
	for _, rec := range filtered[start:end] {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

// hasMinRating сравнивает лучшую из оценок результата с порогом,
// результаты без оценок не проходят фильтр
func hasMinRating(feedback []dbmodels.Feedback, minRating int) bool {
	maxRating := 0
	for _, fb := range feedback {
		if fb.Rating > maxRating {
			maxRating = fb.Rating
		}
	}
	return maxRating >= minRating
}

func (i impl) GetByID(id string) (view *resultapimodels.ResultDetailsView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("result_id", id).Error("ошибка поиска результата по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("результат не найден")
	}
	result := rec.ToDetailsModel()
	return &result, nil
}

func (i impl) AddFeedback(data resultapimodels.FeedbackData) (id string, err error) {
	logger := log.WithField("result_id", data.ResultID)
	if err = data.Validate(); err != nil {
		return "", err
	}
	rec, err := i.store.GetByID(data.ResultID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска результата по ID")
		return "", err
	}
	if rec == nil {
		return "", errors.New("результат не найден")
	}
	id, err = i.store.SaveFeedback(dbmodels.Feedback{
		ResultID: data.ResultID,
		Rating:   data.Rating,
		Comment:  data.Comment,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения оценки")
		return "", errors.New("ошибка сохранения оценки")
	}
	return id, nil
}

func (i impl) ExportXLSX(filter resultapimodels.ResultFilter) (*bytes.Buffer, error) {
	recList, err := i.store.ListAll(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка результатов")
		return nil, err
	}
	if filter.MinRating > 0 {
		filtered := make([]dbmodels.Result, 0, len(recList))
		for _, rec := range recList {
			if hasMinRating(rec.Feedback, filter.MinRating) {
				filtered = append(filtered, rec)
			}
		}
		recList = filtered
	}
	return xlsexport.Instance.ExportResultList(recList)
}

func (i impl) ExportRunPDF(runID string) (pdfFile []byte, err error) {
	logger := log.WithField("run_id", runID)
	run, err := i.runStore.GetByID(runID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пакетного запуска по ID")
		return nil, err
	}
	if run == nil {
		return nil, errors.New("пакетный запуск не найден")
	}
	recList, err := i.store.ListByRunID(runID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения результатов запуска")
		return nil, err
	}
	return pdfexport.GenerateRunReport(run.ToDetailsModel(), recList)
}
