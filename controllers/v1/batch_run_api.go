package apiv1

import (
	"doc-analyzer-backend/controllers"
	batchhandler "doc-analyzer-backend/lib/batch"
	apimodels "doc-analyzer-backend/models/api"
	batchapimodels "doc-analyzer-backend/models/api/batch"

	"github.com/gofiber/fiber/v2"
)

type batchRunApiController struct {
	controllers.BaseAPIController
}

func InitBatchRunApiRouters(app *fiber.App) {
	controller := batchRunApiController{}
	app.Route("batch_run", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("request", controller.createRequest)
		router.Post("schedule", controller.createScheduled)
		router.Post("manual", controller.manualRun)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("approve", controller.approve)
			idRoute.Put("reject", controller.reject)
		})
	})
}

// @Summary Заявка на пакетный запуск
// @Tags Пакетные запуски
// @Description Заявка на пакетный запуск, ожидает одобрения администратором
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 batchapimodels.BatchRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/batch_run/request [post]
func (c *batchRunApiController) createRequest(ctx *fiber.Ctx) error {
	var payload batchapimodels.BatchRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := batchhandler.Instance.CreateRequest(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки на пакетный запуск")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Запланированный пакетный запуск
// @Tags Пакетные запуски
// @Description Пакетный запуск с заданным временем, выполняется без одобрения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 batchapimodels.BatchScheduleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/batch_run/schedule [post]
func (c *batchRunApiController) createScheduled(ctx *fiber.Ctx) error {
	var payload batchapimodels.BatchScheduleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := batchhandler.Instance.CreateScheduled(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания запланированного запуска")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Немедленный запуск
// @Tags Пакетные запуски
// @Description Немедленный запуск по выбранным документам и промтам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 batchapimodels.ManualRunData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/batch_run/manual [post]
func (c *batchRunApiController) manualRun(ctx *fiber.Ctx) error {
	var payload batchapimodels.ManualRunData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := batchhandler.Instance.ManualRun(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выполнения запуска")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список пакетных запусков
// @Tags Пакетные запуски
// @Description Список пакетных запусков
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]batchapimodels.BatchRunView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/batch_run/list [post]
func (c *batchRunApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := batchhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка запусков")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Пакетный запуск
// @Tags Пакетные запуски
// @Description Пакетный запуск с составом документов и промтов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=batchapimodels.BatchRunDetailsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/batch_run/{id} [get]
func (c *batchRunApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := batchhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения запуска")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Одобрение заявки
// @Tags Пакетные запуски
// @Description Одобрение заявки с назначением времени запуска
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 batchapimodels.ApproveData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/batch_run/{id}/approve [put]
func (c *batchRunApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload batchapimodels.ApproveData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = batchhandler.Instance.Approve(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка одобрения запуска")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонение заявки
// @Tags Пакетные запуски
// @Description Отклонение заявки с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 batchapimodels.RejectData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/batch_run/{id}/reject [put]
func (c *batchRunApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload batchapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = batchhandler.Instance.Reject(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения запуска")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
