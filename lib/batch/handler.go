package batch

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"doc-analyzer-backend/config"
	"doc-analyzer-backend/db"
	yagptclient "doc-analyzer-backend/lib/ai/yagpt-client"
	"doc-analyzer-backend/lib/batch/processor"
	batchstore "doc-analyzer-backend/lib/batch/store"
	documentsetstore "doc-analyzer-backend/lib/document-set/store"
	documentstore "doc-analyzer-backend/lib/document/store"
	promptsetstore "doc-analyzer-backend/lib/prompt-set/store"
	promptstore "doc-analyzer-backend/lib/prompt/store"
	resultstore "doc-analyzer-backend/lib/result/store"
	"doc-analyzer-backend/lib/smtp"
	"doc-analyzer-backend/lib/ws"
	"doc-analyzer-backend/models"
	apimodels "doc-analyzer-backend/models/api"
	batchapimodels "doc-analyzer-backend/models/api/batch"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateRequest(data batchapimodels.BatchRequestData) (id string, err error)
	CreateScheduled(data batchapimodels.BatchScheduleData) (id string, err error)
	ManualRun(ctx context.Context, data batchapimodels.ManualRunData) (id string, err error)
	List(filter apimodels.Pagination) (list []batchapimodels.BatchRunView, rowCount int64, err error)
	GetByID(id string) (view *batchapimodels.BatchRunDetailsView, err error)
	Approve(id string, data batchapimodels.ApproveData) error
	Reject(id string, data batchapimodels.RejectData) error
	ProcessDue(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	responder := newResponder()
	store := batchstore.NewInstance(db.DB)
	Instance = &impl{
		store:          store,
		documentStore:  documentstore.NewInstance(db.DB),
		docSetStore:    documentsetstore.NewInstance(db.DB),
		promptStore:    promptstore.NewInstance(db.DB),
		promptSetStore: promptsetstore.NewInstance(db.DB),
		processor:      processor.New(store, resultstore.NewInstance(db.DB), responder, ws.NotifyRunStatus),
	}
}

func newResponder() processor.Responder {
	cfg := config.Conf.AI
	if cfg.YaGptEnabled != nil && *cfg.YaGptEnabled && cfg.YaGptToken != "" {
		log.Info("генерация результатов через YandexGPT")
		return processor.YaGptResponder{
			Client: yagptclient.NewClient(cfg.YaGptToken, cfg.YaGptCatalogID),
		}
	}
	return processor.PlaceholderResponder{}
}

type impl struct {
	store          batchstore.Provider
	documentStore  documentstore.Provider
	docSetStore    documentsetstore.Provider
	promptStore    promptstore.Provider
	promptSetStore promptsetstore.Provider
	processor      *processor.Processor
}

// CreateRequest заявка на пакетный запуск, требует одобрения администратором
func (i impl) CreateRequest(data batchapimodels.BatchRequestData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	return i.createRun(data, models.BatchRunStatusPendingApproval, nil)
}

// CreateScheduled запуск с заданным временем, выполняется воркером без одобрения
func (i impl) CreateScheduled(data batchapimodels.BatchScheduleData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	return i.createRun(data.BatchRequestData, models.BatchRunStatusPending, &data.ScheduledFor)
}

func (i impl) createRun(data batchapimodels.BatchRequestData, status models.BatchRunStatus, scheduledFor *time.Time) (id string, err error) {
	documents, err := i.gatherDocuments(data.DocumentSetIDs)
	if err != nil {
		return "", err
	}
	prompts, err := i.gatherPrompts(data.PromptIDs, data.PromptSetIDs)
	if err != nil {
		return "", err
	}
	rec := dbmodels.BatchRun{
		Name:         data.Name,
		Description:  data.Description,
		Status:       status,
		ScheduledFor: scheduledFor,
		Documents:    documents,
		Prompts:      prompts,
	}
	if err = rec.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания пакетного запуска")
		return "", errors.New("ошибка создания пакетного запуска")
	}
	log.WithFields(log.Fields{
		"run_id":       id,
		"run_name":     data.Name,
		"status":       status,
		"doc_count":    len(documents),
		"prompt_count": len(prompts),
	}).Info("создан пакетный запуск")
	if status == models.BatchRunStatusPendingApproval {
		i.notifyApprovalRequested(rec, id)
	}
	return id, nil
}

// ManualRun немедленный запуск по выбранным документам и промтам,
// выполняется синхронно
func (i impl) ManualRun(ctx context.Context, data batchapimodels.ManualRunData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	documents, err := i.documentStore.ListByIDs(data.DocumentIDs)
	if err != nil {
		log.WithError(err).Error("ошибка поиска документов по ID")
		return "", err
	}
	if len(documents) != len(data.DocumentIDs) {
		return "", errors.New("часть документов не найдена")
	}
	prompts, err := i.promptStore.ListByIDs(data.PromptIDs)
	if err != nil {
		log.WithError(err).Error("ошибка поиска промтов по ID")
		return "", err
	}
	if len(prompts) != len(data.PromptIDs) {
		return "", errors.New("часть промтов не найдена")
	}
	name := data.Name
	if name == "" {
		name = fmt.Sprintf("Manual Run %s", time.Now().Format("02.01.2006 15:04:05"))
	}
	rec := dbmodels.BatchRun{
		Name:      name,
		Status:    models.BatchRunStatusPending,
		Documents: documents,
		Prompts:   prompts,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания пакетного запуска")
		return "", errors.New("ошибка создания пакетного запуска")
	}
	rec.ID = id
	err = i.processor.ProcessRun(ctx, rec)
	if err != nil {
		log.WithError(err).WithField("run_id", id).Error("ошибка выполнения пакетного запуска")
		return id, errors.New("ошибка выполнения пакетного запуска")
	}
	return id, nil
}

func (i impl) List(filter apimodels.Pagination) (list []batchapimodels.BatchRunView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пакетных запусков")
		return nil, 0, err
	}
	list = make([]batchapimodels.BatchRunView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) GetByID(id string) (view *batchapimodels.BatchRunDetailsView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("run_id", id).Error("ошибка поиска пакетного запуска по ID")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("пакетный запуск не найден")
	}
	result := rec.ToDetailsModel()
	return &result, nil
}

// Approve одобрение заявки с назначением времени запуска
func (i impl) Approve(id string, data batchapimodels.ApproveData) error {
	logger := log.WithField("run_id", id)
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пакетного запуска по ID")
		return err
	}
	if rec == nil {
		return errors.New("пакетный запуск не найден")
	}
	if !rec.Status.CanTransit(models.BatchRunStatusApproved) {
		return errors.Errorf("запуск в статусе %v не может быть одобрен", rec.Status)
	}
	err = i.store.Update(id, map[string]interface{}{
		"Status":       models.BatchRunStatusApproved,
		"ScheduledFor": data.ScheduledFor,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка одобрения пакетного запуска")
		return errors.New("ошибка одобрения пакетного запуска")
	}
	logger.WithField("scheduled_for", data.ScheduledFor).Info("пакетный запуск одобрен")
	ws.NotifyRunStatus(id, models.BatchRunStatusApproved)
	return nil
}

// Reject отклонение заявки с указанием причины, статус терминальный
func (i impl) Reject(id string, data batchapimodels.RejectData) error {
	logger := log.WithField("run_id", id)
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пакетного запуска по ID")
		return err
	}
	if rec == nil {
		return errors.New("пакетный запуск не найден")
	}
	if !rec.Status.CanTransit(models.BatchRunStatusRejected) {
		return errors.Errorf("запуск в статусе %v не может быть отклонен", rec.Status)
	}
	err = i.store.Update(id, map[string]interface{}{
		"Status":          models.BatchRunStatusRejected,
		"RejectionReason": data.Reason,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка отклонения пакетного запуска")
		return errors.New("ошибка отклонения пакетного запуска")
	}
	logger.WithField("reason", data.Reason).Info("пакетный запуск отклонен")
	ws.NotifyRunStatus(id, models.BatchRunStatusRejected)
	return nil
}

// ProcessDue выполняет запуски, чье время наступило, каждый в своей горутине
func (i impl) ProcessDue(ctx context.Context) error {
	list, err := i.store.ListDue(time.Now())
	if err != nil {
		return errors.Wrap(err, "ошибка получения запусков к выполнению")
	}
	for _, rec := range list {
		run := rec
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"run_id":      run.ID,
						"panic_stack": string(debug.Stack()),
					}).Errorf("panic: (%v)", r)
				}
			}()
			err := i.processor.ProcessRun(ctx, run)
			if err != nil {
				log.WithError(err).WithField("run_id", run.ID).Error("ошибка выполнения пакетного запуска")
			}
		}()
	}
	return nil
}

func (i impl) gatherDocuments(setIDs []string) (list []dbmodels.Document, err error) {
	seen := map[string]bool{}
	for _, setID := range setIDs {
		set, err := i.docSetStore.GetByID(setID)
		if err != nil {
			log.WithError(err).WithField("set_id", setID).Error("ошибка поиска набора документов по ID")
			return nil, err
		}
		if set == nil {
			return nil, errors.Errorf("набор документов %s не найден", setID)
		}
		for _, doc := range set.Documents {
			if !seen[doc.ID] {
				seen[doc.ID] = true
				list = append(list, doc)
			}
		}
	}
	if len(list) == 0 {
		return nil, errors.New("в выбранных наборах нет документов")
	}
	return list, nil
}

func (i impl) gatherPrompts(promptIDs, setIDs []string) (list []dbmodels.Prompt, err error) {
	seen := map[string]bool{}
	if len(promptIDs) > 0 {
		prompts, err := i.promptStore.ListByIDs(promptIDs)
		if err != nil {
			log.WithError(err).Error("ошибка поиска промтов по ID")
			return nil, err
		}
		if len(prompts) != len(promptIDs) {
			return nil, errors.New("часть промтов не найдена")
		}
		for _, prompt := range prompts {
			if !seen[prompt.ID] {
				seen[prompt.ID] = true
				list = append(list, prompt)
			}
		}
	}
	if len(setIDs) > 0 {
		sets, err := i.promptSetStore.ListByIDs(setIDs)
		if err != nil {
			log.WithError(err).Error("ошибка поиска наборов промтов по ID")
			return nil, err
		}
		if len(sets) != len(setIDs) {
			return nil, errors.New("часть наборов промтов не найдена")
		}
		for _, set := range sets {
			for _, prompt := range set.Prompts {
				if !seen[prompt.ID] {
					seen[prompt.ID] = true
					list = append(list, prompt)
				}
			}
		}
	}
	if len(list) == 0 {
		return nil, errors.New("не выбраны промты")
	}
	return list, nil
}

func (i impl) notifyApprovalRequested(rec dbmodels.BatchRun, id string) {
	notifyEmail := config.Conf.Smtp.NotifyEmail
	if notifyEmail == "" || smtp.Instance == nil || !smtp.Instance.IsConfigured() {
		return
	}
	message := fmt.Sprintf("Заявка на пакетный запуск \"%s\" (%s) ожидает одобрения.\nДокументов: %d, промтов: %d.",
		rec.Name, id, len(rec.Documents), len(rec.Prompts))
	err := smtp.Instance.SendEMail(notifyEmail, "заявка на пакетный запуск", message)
	if err != nil {
		log.WithError(err).Error("ошибка отправки уведомления о заявке")
	}
}
