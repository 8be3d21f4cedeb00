package controllers

import (
	"bytes"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/middleware"
	apimodels "jobboard-backend/models/api"
	dbmodels "jobboard-backend/models/db"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("ошибка распознавания запроса")
		return apperrors.Validation("invalid request body", nil)
	}
	return nil
}

// GetID ид из пути, ожидается uuid
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if _, err := uuid.Parse(value); err != nil {
		return "", apperrors.Validation("invalid path parameter", map[string]string{name: "must be a valid uuid"})
	}
	return value, nil
}

// GetFormFile файл из multipart формы, вызывающий закрывает файл
func (c *BaseAPIController) GetFormFile(ctx *fiber.Ctx, name string) (multipart.File, dbmodels.UploadFileInfo, error) {
	header, err := ctx.FormFile(name)
	if err != nil {
		return nil, dbmodels.UploadFileInfo{}, apperrors.Validation("file is required", map[string]string{name: "is required"})
	}
	file, err := header.Open()
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка при получении файла")
		return nil, dbmodels.UploadFileInfo{}, apperrors.Validation("unable to read file", map[string]string{name: "unable to read file"})
	}
	info := dbmodels.UploadFileInfo{
		FileName:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
	}
	return file, info, nil
}

// SendAttachment отдает файл на скачивание
func (c *BaseAPIController) SendAttachment(ctx *fiber.Ctx, data []byte, fileName, contentType string) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(data), len(data))
}

// SendError ошибки приложения отдаем как есть, остальные логируем и скрываем за INTERNAL_ERROR
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	return SendError(ctx, logger, err, msg)
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return GetLogger(ctx)
}

func SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Code == apperrors.CodeInternal {
			logger.WithError(err).Error(msg)
		}
		return ctx.Status(appErr.Code.HTTPStatus()).JSON(apimodels.NewAppError(appErr))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).
		JSON(apimodels.NewError(apperrors.CodeInternal, "internal server error"))
}

func GetLogger(ctx *fiber.Ctx) *log.Entry {
	fields := log.Fields{
		"method": ctx.Method(),
		"path":   ctx.Path(),
	}
	if requestID := ctx.Get(fiber.HeaderXRequestID); requestID != "" {
		fields["request_id"] = requestID
	}
	if userID := middleware.GetUserID(ctx); userID != "" {
		fields["user_id"] = userID
	}
	return log.WithFields(fields)
}

// ErrorHandler ошибки фибера (нет маршрута, слишком большое тело, паника) в общем формате ответа
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok {
		code := apperrors.CodeInternal
		switch fiberErr.Code {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			code = apperrors.CodeNotFound
		case fiber.StatusUnauthorized:
			code = apperrors.CodeUnauthorized
		case fiber.StatusForbidden:
			code = apperrors.CodeForbidden
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity:
			code = apperrors.CodeValidation
		}
		if code == apperrors.CodeInternal {
			GetLogger(ctx).WithError(err).Error("ошибка обработки запроса")
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(apimodels.NewError(code, "internal server error"))
		}
		return ctx.Status(fiberErr.Code).JSON(apimodels.NewError(code, fiberErr.Message))
	}
	return SendError(ctx, GetLogger(ctx), err, "ошибка обработки запроса")
}
