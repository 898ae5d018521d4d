package initializers

import (
	"context"
	"time"

	"doc-analyzer-backend/config"
	"doc-analyzer-backend/fiberlog"
	authhandler "doc-analyzer-backend/lib/auth"
	batchhandler "doc-analyzer-backend/lib/batch"
	batchworker "doc-analyzer-backend/lib/batch/worker"
	documenthandler "doc-analyzer-backend/lib/document"
	documentsethandler "doc-analyzer-backend/lib/document-set"
	xlsexport "doc-analyzer-backend/lib/export/xls"
	filestorage "doc-analyzer-backend/lib/file-storage"
	prompthandler "doc-analyzer-backend/lib/prompt"
	promptsethandler "doc-analyzer-backend/lib/prompt-set"
	resulthandler "doc-analyzer-backend/lib/result"
	"doc-analyzer-backend/lib/utils/lock"
	connectionhub "doc-analyzer-backend/lib/ws/hub/connection-hub"
	s3client "doc-analyzer-backend/s3"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	lock.InitResourceLock(ctx)
	filestorage.NewHandler()
	if s3client.IsConfigured() {
		if err := filestorage.Instance.MakeBucket(ctx); err != nil {
			log.WithError(err).Error("ошибка создания бакета для файлов документов")
		}
	}
	authhandler.NewHandler()
	documenthandler.NewHandler()
	prompthandler.NewHandler()
	documentsethandler.NewHandler()
	promptsethandler.NewHandler()
	xlsexport.NewHandler()
	resulthandler.NewHandler()
	batchhandler.NewHandler()
	go initWorkers(ctx)
}

// запускаем с промежутком в 10 сек чтоб размыть нагрузку
func initWorkers(ctx context.Context) {
	if config.Conf.Worker.BatchEnabled == nil || !*config.Conf.Worker.BatchEnabled {
		log.Info("воркер пакетных запусков отключен")
		return
	}
	if makeTimeGap(ctx) {
		// Задача распределения по наборам и выполнения запланированных запусков
		batchworker.StartWorker(ctx, time.Second*10)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
