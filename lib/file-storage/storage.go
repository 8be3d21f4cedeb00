package filestorage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"jobboard-backend/config"
	"jobboard-backend/db"
	filesdbstorage "jobboard-backend/lib/file-storage/storage"
	apperrors "jobboard-backend/lib/utils/app-errors"
	dbmodels "jobboard-backend/models/db"
	s3client "jobboard-backend/s3"
)

const maxFileSize = 10 * 1024 * 1024

type Provider interface {
	Upload(ctx context.Context, info dbmodels.UploadFileInfo, file io.Reader) (rec dbmodels.MediaFile, err error)
}

var Instance Provider

// objectStorage часть клиента minio, которой пользуемся
type objectStorage interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type impl struct {
	s3client   objectStorage
	store      filesdbstorage.Provider
	bucketName string
	publicURL  string
}

func NewHandler() {
	handler := &impl{
		store:      filesdbstorage.NewInstance(db.DB),
		bucketName: config.Conf.S3.BucketName,
		publicURL:  config.Conf.S3.PublicURL,
	}
	if s3client.Client != nil {
		handler.s3client = s3client.Client
	}
	Instance = handler
}

func (i impl) Upload(ctx context.Context, info dbmodels.UploadFileInfo, file io.Reader) (dbmodels.MediaFile, error) {
	logger := log.
		WithField("owner_id", info.OwnerID).
		WithField("file_type", info.FileType)
	if !info.FileType.IsValid() {
		return dbmodels.MediaFile{}, apperrors.Validation("invalid file", map[string]string{"kind": "unknown file kind"})
	}
	if !info.FileType.IsAllowedContent(info.ContentType) {
		return dbmodels.MediaFile{}, apperrors.Validation("invalid file", map[string]string{"file": "content type " + info.ContentType + " is not allowed"})
	}
	if info.Size <= 0 || info.Size > maxFileSize {
		return dbmodels.MediaFile{}, apperrors.Validation("invalid file", map[string]string{"file": fmt.Sprintf("size must be between 1 byte and %d MB", maxFileSize/1024/1024)})
	}
	if i.s3client == nil {
		return dbmodels.MediaFile{}, errors.New("клиент S3 не инициализирован")
	}

	objectKey := i.objectKey(info)
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectKey, file, info.Size, minio.PutObjectOptions{ContentType: info.ContentType})
	if err != nil {
		return dbmodels.MediaFile{}, errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	rec := dbmodels.MediaFile{
		OwnerID:     info.OwnerID,
		Kind:        info.FileType,
		Name:        info.FileName,
		ObjectKey:   objectKey,
		ContentType: info.ContentType,
		Size:        info.Size,
		URL:         i.objectURL(objectKey),
	}
	rec.ID, err = i.store.SaveFile(rec)
	if err != nil {
		return dbmodels.MediaFile{}, errors.Wrap(err, "ошибка сохранения информации о файле")
	}
	logger.
		WithField("object_key", objectKey).
		Info("файл загружен")
	return rec, nil
}

// objectKey <тип>/<владелец>/<uuid><расширение>
func (i impl) objectKey(info dbmodels.UploadFileInfo) string {
	ext := strings.ToLower(path.Ext(info.FileName))
	return fmt.Sprintf("%s/%s/%s%s", info.FileType, info.OwnerID, uuid.NewString(), ext)
}

func (i impl) objectURL(objectKey string) string {
	return strings.TrimRight(i.publicURL, "/") + "/" + i.bucketName + "/" + objectKey
}
