package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"jobboard-backend/controllers"
	applicationhandler "jobboard-backend/lib/application"
	jobhandler "jobboard-backend/lib/job"
	profilehandler "jobboard-backend/lib/profile"
	"jobboard-backend/middleware"
	apimodels "jobboard-backend/models/api"
	applicationapimodels "jobboard-backend/models/api/application"
	jobapimodels "jobboard-backend/models/api/job"
)

type recruiterApiController struct {
	controllers.BaseAPIController
}

// InitRecruiterApiRouters router - группа /recruiter с проверкой роли
func InitRecruiterApiRouters(router fiber.Router) {
	controller := recruiterApiController{}
	router.Route("jobs", func(jobsRoute fiber.Router) {
		jobsRoute.Get("", controller.jobList)
		jobsRoute.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.jobGet)
			idRoute.Get("pdf", controller.jobPdf)
			idRoute.Get("applications", controller.applicationList)
			idRoute.Get("applications/export", controller.applicationExport)
		})
	})
	router.Put("applications/:id/status", controller.applicationChangeStatus)
	router.Get("candidates/:id", controller.candidateProfile)
}

// @Summary Вакансии компании
// @Tags Рекрутер
// @Description Все вакансии страницы компании рекрутера, включая черновики. Параметры как у /api/jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search          query   string  false  "поиск по названию, описанию и навыкам"
// @Param   jobType         query   string  false  "типы занятости через запятую"
// @Param   page            query   int     false  "страница, с 1"
// @Param   limit           query   int     false  "записей на странице, до 100"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobListResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/jobs [get]
func (c *recruiterApiController) jobList(ctx *fiber.Ctx) error {
	filter, err := jobapimodels.ParseJobFilter(ctx.Queries())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := jobhandler.Instance.ListForRecruiter(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансия компании по ИД
// @Tags Рекрутер
// @Description Включая неопубликованные
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/jobs/{id} [get]
func (c *recruiterApiController) jobGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := jobhandler.Instance.GetForRecruiter(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансия в PDF
// @Tags Рекрутер
// @Description Печатная версия вакансии в цветах компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/jobs/{id}/pdf [get]
func (c *recruiterApiController) jobPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	data, fileName, err := jobhandler.Instance.ExportPDF(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки вакансии в PDF")
	}
	return c.SendAttachment(ctx, data, fileName, "application/pdf")
}

// @Summary Отклики на вакансию
// @Tags Рекрутер
// @Description Отклики на вакансию компании, новые сверху
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   status          query   string  false  "статусы через запятую"
// @Param   page            query   int     false  "страница, с 1"
// @Param   limit           query   int     false  "записей на странице, до 100"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/jobs/{id}/applications [get]
func (c *recruiterApiController) applicationList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	filter, err := applicationapimodels.ParseApplicationFilter(ctx.Queries())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	list, rowCount, err := applicationhandler.Instance.ListForJob(middleware.GetUserID(ctx), id, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузка откликов в Excel
// @Tags Рекрутер
// @Description Все отклики на вакансию одним файлом xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/jobs/{id}/applications/export [get]
func (c *recruiterApiController) applicationExport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	data, fileName, err := applicationhandler.Instance.ExportXLS(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки откликов в Excel")
	}
	return c.SendAttachment(ctx, data, fileName, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// @Summary Смена статуса отклика
// @Tags Рекрутер
// @Description Недопустимый переход - 400
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/applications/{id}/status [put]
func (c *recruiterApiController) applicationChangeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	var payload applicationapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	err = applicationhandler.Instance.ChangeStatus(middleware.GetUserID(ctx), id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Анкета кандидата
// @Tags Рекрутер
// @Description Анкета по ссылке из отклика, без email. Скрытая анкета - 404
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/recruiter/candidates/{id} [get]
func (c *recruiterApiController) candidateProfile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := profilehandler.Instance.GetPublic(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения анкеты кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
