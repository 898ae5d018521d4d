package db

import (
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Document{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Document")
	}
	if err := DB.AutoMigrate(&dbmodels.DocumentSet{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры DocumentSet")
	}
	if err := DB.AutoMigrate(&dbmodels.DocumentQuery{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры DocumentQuery")
	}
	if err := DB.AutoMigrate(&dbmodels.Prompt{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Prompt")
	}
	if err := DB.AutoMigrate(&dbmodels.PromptSet{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PromptSet")
	}
	if err := DB.AutoMigrate(&dbmodels.PromptQuery{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PromptQuery")
	}
	if err := DB.AutoMigrate(&dbmodels.BatchRun{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры BatchRun")
	}
	if err := DB.AutoMigrate(&dbmodels.Result{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Result")
	}
	if err := DB.AutoMigrate(&dbmodels.Feedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Feedback")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
