package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	apimodels "jobboard-backend/models/api"
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

var notifyClient = &http.Client{Timeout: 5 * time.Second}

// ErrNotify отправляет на addr уведомление о каждом ответе 5xx
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var resp apimodels.Response
		msg := string(c.Response().Body())
		if unmErr := json.Unmarshal(c.Response().Body(), &resp); unmErr == nil && resp.Error != nil {
			msg = resp.Error.Message
		}
		if err != nil {
			msg = err.Error()
		}

		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		notification := errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      path,
			Error:     msg,
			RequestID: c.Get(fiber.HeaderXRequestID),
		}
		go sendErrNotification(addr, notification)
		return err
	}
}

func sendErrNotification(addr string, notification errNotification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		log.WithError(err).Warn("ошибка формирования уведомления об ошибке")
		return
	}
	resp, err := notifyClient.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(string(payload)))
	if err != nil {
		log.WithError(err).Warn("ошибка отправки уведомления об ошибке")
		return
	}
	resp.Body.Close()
}
