package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"jobboard-backend/controllers"
	applicationhandler "jobboard-backend/lib/application"
	jobhandler "jobboard-backend/lib/job"
	"jobboard-backend/middleware"
	apimodels "jobboard-backend/models/api"
	applicationapimodels "jobboard-backend/models/api/application"
	jobapimodels "jobboard-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app fiber.Router) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.AuthorizationRequired(), middleware.RecruiterRequired(), controller.upsert)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("status", middleware.AuthorizationRequired(), middleware.RecruiterRequired(), controller.changeStatus)
			idRoute.Post("apply", middleware.AuthorizationRequired(), middleware.CandidateRequired(), controller.apply)
		})
	})
}

// @Summary Поиск вакансий
// @Tags Вакансии
// @Description Публичный поиск по опубликованным вакансиям
// @Param   search          query   string  false  "поиск по названию, описанию и навыкам"
// @Param   location        query   string  false  "локация, подстрока"
// @Param   jobType         query   string  false  "типы занятости через запятую"
// @Param   experienceLevel query   string  false  "уровни через запятую"
// @Param   page            query   int     false  "страница, с 1"
// @Param   limit           query   int     false  "записей на странице, до 100"
// @Param   sort            query   string  false  "date_desc, date_asc, title_asc, title_desc, applications_desc, applications_asc"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobListResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	filter, err := jobapimodels.ParseJobFilter(ctx.Queries())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := jobhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание/изменение вакансии
// @Tags Вакансии
// @Description Без id - создание, с id - обновление своей вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.UpsertResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs [post]
func (c *jobApiController) upsert(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := jobhandler.Instance.Upsert(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение вакансии по ИД
// @Tags Вакансии
// @Description Только опубликованные вакансии
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	resp, err := jobhandler.Instance.GetPublic(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Публикация вакансии
// @Tags Вакансии
// @Description Опубликовать/снять с публикации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 jobapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/{id}/status [put]
func (c *jobApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	var payload jobapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	err = jobhandler.Instance.ChangeActive(middleware.GetUserID(ctx), id, *payload.IsActive)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклик на вакансию
// @Tags Вакансии
// @Description Повторный отклик на ту же вакансию - 409 DUPLICATE_APPLICATION
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.ApplyRequest	false	"request body"
// @Success 201 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/{id}/apply [post]
func (c *jobApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	var payload applicationapimodels.ApplyRequest
	if len(ctx.Body()) != 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "")
		}
	}
	resp, err := applicationhandler.Instance.Apply(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклика на вакансию")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}
