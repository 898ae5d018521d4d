package batchworker

import (
	"context"
	"time"

	"doc-analyzer-backend/config"
	"doc-analyzer-backend/lib/batch"
	documentset "doc-analyzer-backend/lib/document-set"
	promptset "doc-analyzer-backend/lib/prompt-set"
	baseworker "doc-analyzer-backend/lib/utils/base-worker"
)

type workerImpl struct {
	baseworker.BaseImpl
}

// StartWorker периодическая задача: распределение документов и промтов
// по авто-запросам наборов и выполнение запусков, чье время наступило
func StartWorker(ctx context.Context, firstRunDelay time.Duration) {
	interval := time.Duration(config.Conf.Worker.IntervalInSec) * time.Second
	w := workerImpl{
		BaseImpl: *baseworker.NewInstance("BatchWorker", firstRunDelay, interval),
	}
	go w.Run(ctx, w.process)
}

func (i workerImpl) process(ctx context.Context) {
	logger := i.GetLogger()
	err := documentset.Instance.SyncQueries()
	if err != nil {
		logger.WithError(err).Error("ошибка распределения документов по наборам")
	}
	err = promptset.Instance.SyncQueries()
	if err != nil {
		logger.WithError(err).Error("ошибка распределения промтов по наборам")
	}
	err = batch.Instance.ProcessDue(ctx)
	if err != nil {
		logger.WithError(err).Error("ошибка выполнения запланированных запусков")
	}
}
