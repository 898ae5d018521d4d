package apiv1

import (
	"fmt"

	"doc-analyzer-backend/controllers"
	resulthandler "doc-analyzer-backend/lib/result"
	apimodels "doc-analyzer-backend/models/api"
	resultapimodels "doc-analyzer-backend/models/api/result"

	"github.com/gofiber/fiber/v2"
)

type resultApiController struct {
	controllers.BaseAPIController
}

func InitResultApiRouters(app *fiber.App) {
	controller := resultApiController{}
	app.Route("result", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.exportXLSX)
		router.Post("feedback", controller.addFeedback)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
		})
	})
	app.Route("batch_run/:id", func(router fiber.Router) {
		router.Get("report", controller.runReport)
	})
}

// @Summary Список результатов
// @Tags Результаты
// @Description Список результатов с фильтрами по запуску, документу, промту и минимальной оценке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 resultapimodels.ResultFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]resultapimodels.ResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/result/list [post]
func (c *resultApiController) list(ctx *fiber.Ctx) error {
	var payload resultapimodels.ResultFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := resulthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка результатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Результат
// @Tags Результаты
// @Description Результат с оценками
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=resultapimodels.ResultDetailsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/result/{id} [get]
func (c *resultApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := resulthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения результата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Оценка результата
// @Tags Результаты
// @Description Оценка результата от 1 до 5 с комментарием
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 resultapimodels.FeedbackData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/result/feedback [post]
func (c *resultApiController) addFeedback(ctx *fiber.Ctx) error {
	var payload resultapimodels.FeedbackData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := resulthandler.Instance.AddFeedback(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Экспорт результатов
// @Tags Результаты
// @Description Экспорт результатов в xlsx с учетом фильтров
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 resultapimodels.ResultFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/result/export [post]
func (c *resultApiController) exportXLSX(ctx *fiber.Ctx) error {
	var payload resultapimodels.ResultFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := resulthandler.Instance.ExportXLSX(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка экспорта результатов")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="results.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Отчет по запуску
// @Tags Результаты
// @Description Pdf-отчет по пакетному запуску с результатами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"run ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/batch_run/{id}/report [get]
func (c *resultApiController) runReport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, err := resulthandler.Instance.ExportRunPDF(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="run_%s.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}
