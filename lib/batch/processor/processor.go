package processor

import (
	"context"
	"fmt"
	"time"

	yagptclient "doc-analyzer-backend/lib/ai/yagpt-client"
	resultstore "doc-analyzer-backend/lib/result/store"
	"doc-analyzer-backend/lib/utils/helpers"
	"doc-analyzer-backend/lib/utils/lock"
	"doc-analyzer-backend/models"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Responder генерирует ответ по паре документ-промт
type Responder interface {
	Respond(ctx context.Context, doc dbmodels.Document, prompt dbmodels.Prompt) (response string, err error)
}

// PlaceholderResponder ответ-заглушка вместо реальной обработки
type PlaceholderResponder struct{}

func (r PlaceholderResponder) Respond(_ context.Context, doc dbmodels.Document, prompt dbmodels.Prompt) (string, error) {
	return fmt.Sprintf("Processed document '%s' with prompt '%s'", doc.Name, prompt.Name), nil
}

// YaGptResponder генерация ответа через YandexGPT,
// одновременно выполняется только один запрос к ИИ
type YaGptResponder struct {
	Client yagptclient.Provider
}

func (r YaGptResponder) Respond(ctx context.Context, doc dbmodels.Document, prompt dbmodels.Prompt) (string, error) {
	if !lock.Resource.Acquire(ctx, "YaGptResponder.Respond") {
		return "", errors.New("контекст завершен до получения доступа к ИИ")
	}
	defer lock.Resource.Release("YaGptResponder.Respond")
	return r.Client.GenerateByPromtAndText(ctx, prompt.Content, doc.Content)
}

type RunUpdater interface {
	Update(id string, updMap map[string]interface{}) error
}

type Processor struct {
	runStore    RunUpdater
	resultStore resultstore.Provider
	responder   Responder
	onStatus    func(runID string, status models.BatchRunStatus)
}

func New(runStore RunUpdater, resultStore resultstore.Provider, responder Responder, onStatus func(runID string, status models.BatchRunStatus)) *Processor {
	return &Processor{
		runStore:    runStore,
		resultStore: resultStore,
		responder:   responder,
		onStatus:    onStatus,
	}
}

// ProcessRun выполняет пакетный запуск: по результату на каждую пару документ-промт.
// Ошибка отдельной пары логируется, запуск продолжается.
func (p *Processor) ProcessRun(ctx context.Context, run dbmodels.BatchRun) error {
	logger := log.WithFields(log.Fields{
		"run_id":   run.ID,
		"run_name": run.Name,
	})
	if !run.Status.CanTransit(models.BatchRunStatusRunning) {
		return errors.Errorf("запуск в статусе %v не может быть выполнен", run.Status)
	}
	err := p.setStatus(run.ID, models.BatchRunStatusRunning, nil)
	if err != nil {
		return errors.Wrap(err, "ошибка перевода запуска в статус running")
	}
	logger.WithFields(log.Fields{
		"doc_count":    len(run.Documents),
		"prompt_count": len(run.Prompts),
	}).Info("пакетный запуск начат")

	okCount := 0
	failCount := 0
	for _, doc := range run.Documents {
		// при остановке сервиса запуск остается в статусе running
		if helpers.IsContextDone(ctx) {
			return errors.New("обработка прервана, контекст завершен")
		}
		for _, prompt := range run.Prompts {
			if err = p.processPair(ctx, run.ID, doc, prompt); err != nil {
				failCount++
				logger.WithError(err).WithFields(log.Fields{
					"document": doc.Name,
					"prompt":   prompt.Name,
				}).Error("ошибка обработки документа")
				continue
			}
			okCount++
		}
	}

	// любая ошибка пары дает итоговый статус failed, успешные результаты сохраняются
	now := time.Now()
	finalStatus := models.BatchRunStatusCompleted
	if failCount > 0 {
		finalStatus = models.BatchRunStatusFailed
	}
	err = p.setStatus(run.ID, finalStatus, &now)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения итогового статуса запуска")
	}
	logger.WithFields(log.Fields{
		"status":     finalStatus,
		"ok_count":   okCount,
		"fail_count": failCount,
	}).Info("пакетный запуск завершен")
	return nil
}

func (p *Processor) processPair(ctx context.Context, runID string, doc dbmodels.Document, prompt dbmodels.Prompt) error {
	response, err := p.responder.Respond(ctx, doc, prompt)
	if err != nil {
		return errors.Wrap(err, "ошибка генерации ответа")
	}
	_, err = p.resultStore.Create(dbmodels.Result{
		DocumentID: doc.ID,
		PromptID:   prompt.ID,
		BatchRunID: runID,
		Response:   response,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения результата")
	}
	return nil
}

func (p *Processor) setStatus(runID string, status models.BatchRunStatus, completedAt *time.Time) error {
	updMap := map[string]interface{}{"Status": status}
	if completedAt != nil {
		updMap["CompletedAt"] = completedAt
	}
	err := p.runStore.Update(runID, updMap)
	if err != nil {
		return err
	}
	if p.onStatus != nil {
		p.onStatus(runID, status)
	}
	return nil
}
