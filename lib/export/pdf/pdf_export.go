package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	batchapimodels "doc-analyzer-backend/models/api/batch"
	dbmodels "doc-analyzer-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const fontDir = "static/font"

// setupFonts подключает utf-8 шрифт из static/font, при его отсутствии
// отчет собирается встроенным шрифтом без кириллицы
func setupFonts(pdf *fpdf.Fpdf) (family string) {
	if _, err := os.Stat(filepath.Join(fontDir, "Arial.ttf")); err != nil {
		return "Helvetica"
	}
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	return "Arial"
}

// GenerateRunReport формирует pdf-отчет по пакетному запуску с результатами
func GenerateRunReport(run batchapimodels.BatchRunDetailsView, results []dbmodels.Result) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateRunReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	pdf.AddPage()
	family := setupFonts(pdf)
	pdf.SetFont(family, "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, fmt.Sprintf("Batch Run: %s", run.Name), "", 1, "L", false, 0, "")

	pdf.SetFont(family, "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Status: %s", run.Status), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Created: %s", run.CreatedAt.Format("02.01.2006 15:04")), "", 1, "L", false, 0, "")
	if run.CompletedAt != nil {
		pdf.CellFormat(0, 7, fmt.Sprintf("Completed: %s", run.CompletedAt.Format("02.01.2006 15:04")), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Documents: %d, Prompts: %d, Results: %d", run.DocumentCount, run.PromptCount, len(results)), "", 1, "L", false, 0, "")
	if run.RejectionReason != "" {
		pdf.CellFormat(0, 7, fmt.Sprintf("Rejection reason: %s", run.RejectionReason), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for idx, item := range results {
		docName := ""
		if item.Document != nil {
			docName = item.Document.Name
		}
		promptName := ""
		if item.Prompt != nil {
			promptName = item.Prompt.Name
		}
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s / %s", idx+1, docName, promptName), "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
		pdf.MultiCell(0, 6, item.Response, "", "L", false)
		pdf.CellFormat(0, 6, fmt.Sprintf("Rating: %s (%d)", dbmodels.AverageRating(item.Feedback), len(item.Feedback)), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
