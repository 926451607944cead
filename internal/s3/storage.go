// Package s3 предоставляет функционал для хранения файлов в Amazon S3
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ErrObjectNotFound возвращается, если объекта с указанным ключом нет в бакете
var ErrObjectNotFound = errors.New("объект не найден в S3")

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// ObjectInfo описывает объект в бакете
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

type uploaderAPI interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

type downloaderAPI interface {
	DownloadWithContext(ctx context.Context, w io.WriterAt, input *s3.GetObjectInput, opts ...func(*s3manager.Downloader)) (int64, error)
}

type clientAPI interface {
	HeadObjectWithContext(ctx context.Context, input *s3.HeadObjectInput, opts ...request.Option) (*s3.HeadObjectOutput, error)
	DeleteObjectWithContext(ctx context.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error)
}

// Storage обертка над S3 для загрузки, скачивания и удаления файлов
type Storage struct {
	uploader   uploaderAPI
	downloader downloaderAPI
	client     clientAPI
	config     *Config
}

// NewStorage создает хранилище S3 по конфигурации
func NewStorage(config *Config) (*Storage, error) {
	if config.BucketName == "" {
		return nil, errors.New("не указано имя бакета S3")
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return newStorage(config, s3manager.NewUploader(sess), s3manager.NewDownloader(sess), s3.New(sess)), nil
}

func newStorage(config *Config, uploader uploaderAPI, downloader downloaderAPI, client clientAPI) *Storage {
	return &Storage{
		uploader:   uploader,
		downloader: downloader,
		client:     client,
		config:     config,
	}
}

// URL возвращает адрес объекта с указанным ключом
func (s *Storage) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.config.Endpoint, s.config.BucketName, key)
}

// UploadFile загружает содержимое reader в S3 и возвращает URL объекта
func (s *Storage) UploadFile(ctx context.Context, reader io.Reader, key string) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки: %w", err)
	}

	return s.URL(key), nil
}

// DownloadFile скачивает объект в w и возвращает число записанных байт
func (s *Storage) DownloadFile(ctx context.Context, w io.WriterAt, key string) (int64, error) {
	n, err := s.downloader.DownloadWithContext(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return 0, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return 0, fmt.Errorf("ошибка скачивания: %w", err)
	}

	return n, nil
}

// Stat возвращает сведения об объекте
func (s *Storage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	out, err := s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return ObjectInfo{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return ObjectInfo{}, fmt.Errorf("ошибка получения сведений об объекте: %w", err)
	}

	return ObjectInfo{
		Key:          key,
		Size:         aws.Int64Value(out.ContentLength),
		LastModified: aws.TimeValue(out.LastModified),
	}, nil
}

// DeleteFile удаляет файл из S3
func (s *Storage) DeleteFile(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ошибка удаления файла из S3: %w", err)
	}

	return nil
}

// isNotFound распознает ответы S3 об отсутствующем объекте
func isNotFound(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}
	switch aerr.Code() {
	case s3.ErrCodeNoSuchKey, "NotFound":
		return true
	}
	return false
}
