package apiv1

import (
	"doc-analyzer-backend/controllers"
	documentsethandler "doc-analyzer-backend/lib/document-set"
	apimodels "doc-analyzer-backend/models/api"
	setapimodels "doc-analyzer-backend/models/api/set"

	"github.com/gofiber/fiber/v2"
)

type documentSetApiController struct {
	controllers.BaseAPIController
}

func InitDocumentSetApiRouters(app *fiber.App) {
	controller := documentSetApiController{}
	app.Route("document_set", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("members", controller.addMembers)
			idRoute.Post("query", controller.addQuery)
		})
	})
}

// @Summary Создание набора документов
// @Tags Наборы документов
// @Description Создание набора документов с начальным составом и авто-запросом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 setapimodels.SetData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document_set [post]
func (c *documentSetApiController) create(ctx *fiber.Ctx) error {
	var payload setapimodels.SetData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := documentsethandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания набора документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список наборов документов
// @Tags Наборы документов
// @Description Список наборов документов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]setapimodels.SetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document_set/list [post]
func (c *documentSetApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := documentsethandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка наборов документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Набор документов
// @Tags Наборы документов
// @Description Набор документов с составом и авто-запросами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=setapimodels.SetDetailsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document_set/{id} [get]
func (c *documentSetApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := documentsethandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения набора документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Добавление документов в набор
// @Tags Наборы документов
// @Description Добавление документов в набор, повторное добавление не дублирует состав
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 setapimodels.AddMembersRequest	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document_set/{id}/members [post]
func (c *documentSetApiController) addMembers(ctx *fiber.Ctx) error {
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
	err = documentsethandler.Instance.AddMembers(id, payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления документов в набор")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавление авто-запроса
// @Tags Наборы документов
// @Description Добавление авто-запроса в набор документов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 setapimodels.QueryData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document_set/{id}/query [post]
func (c *documentSetApiController) addQuery(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload setapimodels.QueryData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	queryID, err := documentsethandler.Instance.AddQuery(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления запроса в набор")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(queryID))
}
