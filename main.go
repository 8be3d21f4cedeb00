package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"jobboard-backend/config"
	"jobboard-backend/controllers"
	apiv1 "jobboard-backend/controllers/v1"
	"jobboard-backend/db"
	"jobboard-backend/fiberlog"
	"jobboard-backend/initializers"
	"jobboard-backend/middleware"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	bodyLimit := config.Conf.App.BodyLimitMb * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit:    bodyLimit,
		ErrorHandler: controllers.ErrorHandler,
	})
	app.Use(fiberRecover.New())

	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: swaggerFile,
		}))
	} else {
		log.Warn("swagger.json не найден, документация API отключена")
	}

	//api
	api := app.Group("/api")
	api.Use(requestid.New())
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	api.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	if config.Conf.ErrNotify.Addr != "" {
		api.Use(middleware.ErrNotify(config.Conf.ErrNotify.Addr))
	}
	api.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(api)
	apiv1.InitJobApiRouters(api)
	apiv1.InitCareerPageApiRouters(api)

	//рекрутер
	recruiter := api.Group("/recruiter", middleware.AuthorizationRequired(), middleware.RecruiterRequired())
	apiv1.InitRecruiterApiRouters(recruiter)
	apiv1.InitBrandingApiRouters(recruiter)

	//кандидат
	candidate := api.Group("/candidate", middleware.AuthorizationRequired(), middleware.CandidateRequired())
	apiv1.InitCandidateApiRouters(candidate)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		db.Close()
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
