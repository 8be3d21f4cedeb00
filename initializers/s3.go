package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"jobboard-backend/config"
	s3client "jobboard-backend/s3"
)

func InitS3(ctx context.Context) {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName)
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, бакет медиафайлов не создан")
	}

	s3client.Client = minioClient
	log.Info("S3 клиент успешно инициализирован")
}
