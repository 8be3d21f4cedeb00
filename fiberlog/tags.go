package fiberlog

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid        = "pid"
	TagLatency    = "latency"
	TagStatus     = "status"
	TagMethod     = "method"
	TagPath       = "path"
	TagURL        = "url"
	TagIP         = "ip"
	TagUA         = "ua"
	TagBody       = "body"
	TagResBody    = "resBody"
	TagBytesSent  = "bytesSent"
	TagRoute      = "route"
	TagHost       = "host"
	RequestID     = "requestId"
	maxBodyLogLen = 2048
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, d *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagHost: func(c *fiber.Ctx, d *data) interface{} {
			return c.Hostname()
		},
		TagRoute: func(c *fiber.Ctx, d *data) interface{} {
			if r := c.Route(); r != nil {
				return r.Path
			}
			return ""
		},
		TagBytesSent: func(c *fiber.Ctx, d *data) interface{} {
			return len(c.Response().Body())
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			// файлы и пароли в лог не пишем
			if c.Is("multipart") || isAuthPath(c.Path()) {
				return ""
			}
			return truncate(string(c.Body()))
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			contentType := string(c.Response().Header.ContentType())
			if contentType != fiber.MIMEApplicationJSON && contentType != fiber.MIMEApplicationJSONCharsetUTF8 {
				return ""
			}
			if isAuthPath(c.Path()) {
				return ""
			}
			return truncate(string(c.Response().Body()))
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			id := c.Get(fiber.HeaderXRequestID)
			if id == "" {
				id = c.GetRespHeader(fiber.HeaderXRequestID)
			}
			return id
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/")
}

func truncate(value string) string {
	if len(value) > maxBodyLogLen {
		return value[:maxBodyLogLen] + "..."
	}
	return value
}
