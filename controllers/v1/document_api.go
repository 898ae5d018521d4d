package apiv1

import (
	"fmt"
	"io"

	"doc-analyzer-backend/controllers"
	documenthandler "doc-analyzer-backend/lib/document"
	apimodels "doc-analyzer-backend/models/api"
	documentapimodels "doc-analyzer-backend/models/api/document"

	"github.com/gofiber/fiber/v2"
)

type documentApiController struct {
	controllers.BaseAPIController
}

func InitDocumentApiRouters(app *fiber.App) {
	controller := documentApiController{}
	app.Route("document", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("upload", controller.upload)
		router.Get("file_types", controller.fileTypes)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("file", controller.downloadFile)
		})
	})
}

// @Summary Создание документа
// @Tags Документы
// @Description Создание документа с текстовым содержимым
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 documentapimodels.DocumentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document [post]
func (c *documentApiController) create(ctx *fiber.Ctx) error {
	var payload documentapimodels.DocumentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := documenthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Загрузка документа файлом
// @Tags Документы
// @Description Загрузка документа файлом, содержимое сохраняется как текст
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"document file"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document/upload [post]
func (c *documentApiController) upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла")
	}
	id, err := documenthandler.Instance.Upload(ctx.UserContext(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), body)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список документов
// @Tags Документы
// @Description Список документов с поиском и фильтрами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 documentapimodels.DocumentFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document/list [post]
func (c *documentApiController) list(ctx *fiber.Ctx) error {
	var payload documentapimodels.DocumentFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := documenthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Документ
// @Tags Документы
// @Description Документ по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document/{id} [get]
func (c *documentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := documenthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Исходный файл документа
// @Tags Документы
// @Description Исходный файл документа из файлового хранилища
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document/{id}/file [get]
func (c *documentApiController) downloadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, file, err := documenthandler.Instance.DownloadFile(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла документа")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(file)
}

// @Summary Типы файлов
// @Tags Документы
// @Description Список типов файлов загруженных документов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document/file_types [get]
func (c *documentApiController) fileTypes(ctx *fiber.Ctx) error {
	list, err := documenthandler.Instance.ListFileTypes()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения типов файлов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
