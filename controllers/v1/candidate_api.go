package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"jobboard-backend/controllers"
	applicationhandler "jobboard-backend/lib/application"
	profilehandler "jobboard-backend/lib/profile"
	"jobboard-backend/middleware"
	apimodels "jobboard-backend/models/api"
	applicationapimodels "jobboard-backend/models/api/application"
	profileapimodels "jobboard-backend/models/api/profile"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

// InitCandidateApiRouters router - группа /candidate с проверкой роли
func InitCandidateApiRouters(router fiber.Router) {
	controller := candidateApiController{}
	router.Route("applications", func(applicationsRoute fiber.Router) {
		applicationsRoute.Get("", controller.applicationList)
		applicationsRoute.Put(":id/withdraw", controller.withdraw)
	})
	router.Route("profile", func(profileRoute fiber.Router) {
		profileRoute.Get("", controller.profileGet)
		profileRoute.Put("", controller.profileSave)
		profileRoute.Post("resume", controller.resumeUpload)
	})
}

// @Summary Мои отклики
// @Tags Кандидат
// @Description Отклики текущего кандидата с названиями вакансий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status          query   string  false  "статусы через запятую"
// @Param   page            query   int     false  "страница, с 1"
// @Param   limit           query   int     false  "записей на странице, до 100"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidate/applications [get]
func (c *candidateApiController) applicationList(ctx *fiber.Ctx) error {
	filter, err := applicationapimodels.ParseApplicationFilter(ctx.Queries())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	list, rowCount, err := applicationhandler.Instance.ListForCandidate(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Отозвать отклик
// @Tags Кандидат
// @Description Перевод отклика в статус WITHDRAWN
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidate/applications/{id}/withdraw [put]
func (c *candidateApiController) withdraw(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	err = applicationhandler.Instance.Withdraw(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отзыва отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Анкета кандидата
// @Tags Кандидат
// @Description Анкета текущего кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidate/profile [get]
func (c *candidateApiController) profileGet(ctx *fiber.Ctx) error {
	resp, err := profilehandler.Instance.Get(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения анкеты кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение анкеты кандидата
// @Tags Кандидат
// @Description Сохранение анкеты кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidate/profile [put]
func (c *candidateApiController) profileSave(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := profilehandler.Instance.Save(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения анкеты кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Загрузка резюме
// @Tags Кандидат
// @Description multipart/form-data, поле file (pdf, doc, docx)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file          formData   file  true  "резюме"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidate/profile/resume [post]
func (c *candidateApiController) resumeUpload(ctx *fiber.Ctx) error {
	file, info, err := c.GetFormFile(ctx, "file")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	defer file.Close()

	resp, err := profilehandler.Instance.UploadResume(ctx.UserContext(), middleware.GetUserID(ctx), file, info)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
