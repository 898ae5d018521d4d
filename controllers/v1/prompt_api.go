package apiv1

import (
	"doc-analyzer-backend/controllers"
	prompthandler "doc-analyzer-backend/lib/prompt"
	apimodels "doc-analyzer-backend/models/api"
	promptapimodels "doc-analyzer-backend/models/api/prompt"

	"github.com/gofiber/fiber/v2"
)

type promptApiController struct {
	controllers.BaseAPIController
}

func InitPromptApiRouters(app *fiber.App) {
	controller := promptApiController{}
	app.Route("prompt", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
		})
	})
}

// @Summary Создание промта
// @Tags Промты
// @Description Создание промта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 promptapimodels.PromptData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt [post]
func (c *promptApiController) create(ctx *fiber.Ctx) error {
	var payload promptapimodels.PromptData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := prompthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания промта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменение промта
// @Tags Промты
// @Description Изменение промта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 promptapimodels.PromptData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt/{id} [put]
func (c *promptApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload promptapimodels.PromptData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = prompthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения промта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список промтов
// @Tags Промты
// @Description Список промтов с поиском и фильтрами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 promptapimodels.PromptFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]promptapimodels.PromptView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt/list [post]
func (c *promptApiController) list(ctx *fiber.Ctx) error {
	var payload promptapimodels.PromptFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := prompthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка промтов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Промт
// @Tags Промты
// @Description Промт по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=promptapimodels.PromptView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt/{id} [get]
func (c *promptApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := prompthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения промта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
