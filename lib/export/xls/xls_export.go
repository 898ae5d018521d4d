package xlsexport

import (
	"bytes"

	dbmodels "doc-analyzer-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportResultList(list []dbmodels.Result) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var resultHeaders = []string{"Документ", "Промт", "Пакетный запуск", "Ответ", "Средняя оценка", "Оценок", "Дата"}

func (i impl) ExportResultList(list []dbmodels.Result) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, resultHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeResultData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Результаты")
	return f.WriteToBuffer()
}

func writeResultData(f *excelize.File, sheet string, list []dbmodels.Result, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(resultHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Документ"
		col := 1
		if item.Document != nil {
			if err := writeColumn(f, sheet, col, row, item.Document.Name); err != nil {
				return row, err
			}
		}

		// "Промт"
		col++
		if item.Prompt != nil {
			if err := writeColumn(f, sheet, col, row, item.Prompt.Name); err != nil {
				return row, err
			}
		}

		// "Пакетный запуск"
		col++
		if item.BatchRun != nil {
			if err := writeColumn(f, sheet, col, row, item.BatchRun.Name); err != nil {
				return row, err
			}
		}

		// "Ответ"
		col++
		if err := writeColumn(f, sheet, col, row, item.Response); err != nil {
			return row, err
		}

		// "Средняя оценка"
		col++
		if err := writeColumn(f, sheet, col, row, dbmodels.AverageRating(item.Feedback)); err != nil {
			return row, err
		}

		// "Оценок"
		col++
		if err := writeColumn(f, sheet, col, row, len(item.Feedback)); err != nil {
			return row, err
		}

		// "Дата"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}
	}
	return row, nil
}
