// Package backup выгружает файл плейлиста в объектное хранилище и восстанавливает его оттуда
package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/s3"
)

// ObjectStore хранилище, в которое выгружаются резервные копии
type ObjectStore interface {
	UploadFile(ctx context.Context, reader io.Reader, key string) (string, error)
	DownloadFile(ctx context.Context, w io.WriterAt, key string) (int64, error)
	Stat(ctx context.Context, key string) (s3.ObjectInfo, error)
	DeleteFile(ctx context.Context, key string) error
}

// Service управляет резервным копированием файла плейлиста
type Service struct {
	store ObjectStore
	key   string
}

// NewService создает сервис резервного копирования для объекта с ключом key
func NewService(store ObjectStore, key string) *Service {
	return &Service{
		store: store,
		key:   key,
	}
}

// Key возвращает ключ объекта резервной копии
func (s *Service) Key() string {
	return s.key
}

// PushResult содержит результат выгрузки
type PushResult struct {
	URL    string
	Size   int64
	Tracks int
}

// PullResult содержит результат восстановления
type PullResult struct {
	Path   string
	Size   int64
	Report *playlist.LoadReport
}

// Push выгружает файл плейлиста в хранилище.
// Перед выгрузкой файл проверяется разбором, чтобы не сохранить испорченную копию.
func (s *Service) Push(ctx context.Context, filePath string, progressCallback func(int64)) (*PushResult, error) {
	fileInfo, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("файл не найден: %s", filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	report, err := playlist.New("").LoadFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("файл плейлиста поврежден: %w", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	// Создаем reader с отслеживанием прогресса
	var reader io.Reader = file
	if progressCallback != nil {
		reader = &ProgressReader{
			Reader:     file,
			Size:       fileInfo.Size(),
			OnProgress: progressCallback,
		}
	}

	url, err := s.store.UploadFile(ctx, reader, s.key)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в S3: %w", err)
	}

	return &PushResult{
		URL:    url,
		Size:   fileInfo.Size(),
		Tracks: report.Loaded,
	}, nil
}

// Pull скачивает резервную копию и заменяет ею файл filePath.
// Копия сначала пишется во временный файл и проверяется, существующий файл
// заменяется только если копия разбирается как плейлист.
func (s *Service) Pull(ctx context.Context, filePath string) (*PullResult, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".playlist-*.json")
	if err != nil {
		return nil, fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := s.store.DownloadFile(ctx, tmp, s.key)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("ошибка записи временного файла: %w", closeErr)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка скачивания из S3: %w", err)
	}

	report, err := playlist.New("").LoadFromFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("резервная копия повреждена: %w", err)
	}

	if err := os.Chmod(tmpPath, playlist.FileMode); err != nil {
		return nil, fmt.Errorf("ошибка установки прав файла: %w", err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		return nil, fmt.Errorf("ошибка замены файла плейлиста: %w", err)
	}

	report.Path = filePath
	return &PullResult{
		Path:   filePath,
		Size:   size,
		Report: report,
	}, nil
}

// Info возвращает сведения о резервной копии в хранилище
func (s *Service) Info(ctx context.Context) (s3.ObjectInfo, error) {
	return s.store.Stat(ctx, s.key)
}

// Delete удаляет резервную копию из хранилища
func (s *Service) Delete(ctx context.Context) error {
	if _, err := s.store.Stat(ctx, s.key); err != nil {
		return err
	}
	if err := s.store.DeleteFile(ctx, s.key); err != nil {
		return fmt.Errorf("ошибка удаления резервной копии: %w", err)
	}
	return nil
}

// ProgressReader структура для отслеживания прогресса чтения
type ProgressReader struct {
	io.Reader
	Size       int64
	OnProgress func(int64)
	bytesRead  int64
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	pr.bytesRead += int64(n)
	if pr.OnProgress != nil {
		pr.OnProgress(pr.bytesRead)
	}
	return n, err
}

// FormatFileSize форматирует размер файла в читаемом виде
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
