package apiv1

import (
	"doc-analyzer-backend/controllers"
	promptsethandler "doc-analyzer-backend/lib/prompt-set"
	apimodels "doc-analyzer-backend/models/api"
	setapimodels "doc-analyzer-backend/models/api/set"

	"github.com/gofiber/fiber/v2"
)

type promptSetApiController struct {
	controllers.BaseAPIController
}

func InitPromptSetApiRouters(app *fiber.App) {
	controller := promptSetApiController{}
	app.Route("prompt_set", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("members", controller.addMembers)
			idRoute.Post("query", controller.addQuery)
		})
	})
}

// @Summary Создание набора промтов
// @Tags Наборы промтов
// @Description Создание набора промтов с начальным составом и авто-запросом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 setapimodels.SetData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt_set [post]
func (c *promptSetApiController) create(ctx *fiber.Ctx) error {
	var payload setapimodels.SetData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := promptsethandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания набора промтов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список наборов промтов
// @Tags Наборы промтов
// @Description Список наборов промтов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]setapimodels.SetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt_set/list [post]
func (c *promptSetApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := promptsethandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка наборов промтов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Набор промтов
// @Tags Наборы промтов
// @Description Набор промтов с составом и авто-запросами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=setapimodels.SetDetailsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt_set/{id} [get]
func (c *promptSetApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := promptsethandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения набора промтов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Добавление промтов в набор
// @Tags Наборы промтов
// @Description Добавление промтов в набор, повторное добавление не дублирует состав
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 setapimodels.AddMembersRequest	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt_set/{id}/members [post]
func (c *promptSetApiController) addMembers(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload setapimodels.AddMembersRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = promptsethandler.Instance.AddMembers(id, payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления промтов в набор")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавление авто-запроса
// @Tags Наборы промтов
// @Description Добавление авто-запроса в набор промтов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 setapimodels.QueryData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/prompt_set/{id}/query [post]
func (c *promptSetApiController) addQuery(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload setapimodels.QueryData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	queryID, err := promptsethandler.Instance.AddQuery(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления запроса в набор")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(queryID))
}
