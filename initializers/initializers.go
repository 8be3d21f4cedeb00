package initializers

import (
	"context"

	"jobboard-backend/config"
	"jobboard-backend/fiberlog"
	applicationhandler "jobboard-backend/lib/application"
	authhandler "jobboard-backend/lib/auth"
	brandinghandler "jobboard-backend/lib/branding"
	xlsexport "jobboard-backend/lib/export/xls"
	filestorage "jobboard-backend/lib/file-storage"
	jobhandler "jobboard-backend/lib/job"
	jobexpireworker "jobboard-backend/lib/job/expire-worker"
	profilehandler "jobboard-backend/lib/profile"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	authhandler.NewHandler()
	jobhandler.NewHandler()
	brandinghandler.NewHandler()
	applicationhandler.NewHandler()
	profilehandler.NewHandler()
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача снятия с публикации вакансий с истекшим сроком
	jobexpireworker.StartWorker(ctx)
}
