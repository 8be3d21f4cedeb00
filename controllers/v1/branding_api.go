package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"jobboard-backend/controllers"
	brandinghandler "jobboard-backend/lib/branding"
	"jobboard-backend/middleware"
	apimodels "jobboard-backend/models/api"
	brandingapimodels "jobboard-backend/models/api/branding"
	jobapimodels "jobboard-backend/models/api/job"
)

type brandingApiController struct {
	controllers.BaseAPIController
}

// InitBrandingApiRouters router - группа /recruiter с проверкой роли
func InitBrandingApiRouters(router fiber.Router) {
	controller := brandingApiController{}
	router.Route("branding", func(brandingRoute fiber.Router) {
		brandingRoute.Get("", controller.get)
		brandingRoute.Post("", controller.upsert)
		brandingRoute.Patch("", controller.publish)
		brandingRoute.Post("media", controller.uploadMedia)
	})
}

func InitCareerPageApiRouters(app fiber.Router) {
	controller := brandingApiController{}
	app.Get("careers/:slug", controller.careerPage)
}

// @Summary Страница компании рекрутера
// @Tags Страница компании
// @Description Страница компании текущего рекрутера, 404 если еще не создана
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=brandingapimodels.BrandingView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/branding [get]
func (c *brandingApiController) get(ctx *fiber.Ctx) error {
	resp, err := brandinghandler.Instance.Get(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения страницы компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение страницы компании
// @Tags Страница компании
// @Description Создание или обновление страницы компании текущего рекрутера
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 brandingapimodels.BrandingData	true	"request body"
// @Success 200 {object} apimodels.Response{data=brandingapimodels.BrandingView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/branding [post]
func (c *brandingApiController) upsert(ctx *fiber.Ctx) error {
	var payload brandingapimodels.BrandingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := brandinghandler.Instance.Upsert(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения страницы компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Публикация страницы компании
// @Tags Страница компании
// @Description Опубликовать/снять с публикации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 brandingapimodels.PublishRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=brandingapimodels.BrandingView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/branding [patch]
func (c *brandingApiController) publish(ctx *fiber.Ctx) error {
	var payload brandingapimodels.PublishRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := brandinghandler.Instance.SetPublished(middleware.GetUserID(ctx), *payload.IsPublished)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка публикации страницы компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Загрузка лого/баннера
// @Tags Страница компании
// @Description multipart/form-data, поле file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind          query   string  true  "logo или banner"
// @Param   file          formData   file  true  "изображение"
// @Success 200 {object} apimodels.Response{data=brandingapimodels.MediaUploadView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/branding/media [post]
func (c *brandingApiController) uploadMedia(ctx *fiber.Ctx) error {
	file, info, err := c.GetFormFile(ctx, "file")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	defer file.Close()

	resp, err := brandinghandler.Instance.UploadMedia(ctx.UserContext(), middleware.GetUserID(ctx), ctx.Query("kind"), file, info)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки медиафайла страницы компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Публичная страница компании
// @Tags Страница компании
// @Description Опубликованная страница компании и ее открытые вакансии
// @Param   slug          		path    string  true  "адрес страницы"
// @Param   page            query   int     false  "страница, с 1"
// @Param   limit           query   int     false  "записей на странице, до 100"
// @Success 200 {object} apimodels.Response{data=brandingapimodels.CareerPageView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/careers/{slug} [get]
func (c *brandingApiController) careerPage(ctx *fiber.Ctx) error {
	filter, err := jobapimodels.ParseJobFilter(ctx.Queries())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := brandinghandler.Instance.CareerPage(ctx.Params("slug"), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения страницы компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
