package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/hazadus/go-playlist/internal/backup"
	"github.com/hazadus/go-playlist/internal/config"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/s3"
)

const (
	defaultConfigPath = "~/.playlist"
	version           = "1.0.0"
	corruptSuffix     = ".corrupt"
)

// Application хранит состояние приложения: конфигурацию и текущий плейлист
type Application struct {
	Config   *config.Config
	Playlist *playlist.Playlist

	// Точки расширения для интерактивных элементов и хранилища, подменяются в тестах
	openStore func() (backup.ObjectStore, error)
	spin      func(ctx context.Context, title string, action func(context.Context) error) error
	confirm   func(title string) (bool, error)
}

// NewApplication создает приложение и загружает плейлист из файла данных
func NewApplication(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config:    cfg,
		Playlist:  playlist.New(cfg.PlaylistName),
		openStore: func() (backup.ObjectStore, error) { return openS3Storage(cfg) },
		spin:      runWithSpinner,
		confirm:   askConfirmation,
	}

	if err := app.LoadData(); err != nil {
		if !isMalformed(err) {
			return nil, err
		}
		if qErr := app.quarantineDataFile(err); qErr != nil {
			return nil, qErr
		}
	}
	return app, nil
}

// quarantineDataFile переименовывает поврежденный файл данных, чтобы команды
// восстановления (load, pull, clear) могли работать с пустым плейлистом
func (app *Application) quarantineDataFile(loadErr error) error {
	corruptPath := app.Config.DataFile + corruptSuffix
	if err := os.Rename(app.Config.DataFile, corruptPath); err != nil {
		return fmt.Errorf("%w (не удалось переименовать файл: %v)", loadErr, err)
	}

	app.Playlist = playlist.New(app.Config.PlaylistName)
	fmt.Printf("⚠️  Файл данных поврежден: %v\n", loadErr)
	fmt.Printf("   Файл сохранен как %s, начинаем с пустого плейлиста.\n", corruptPath)
	fmt.Println("   Используйте команды 'load' или 'pull' для восстановления.")
	return nil
}

func isMalformed(err error) bool {
	var pErr *playlist.PersistenceError
	return errors.As(err, &pErr) && pErr.Kind == playlist.KindMalformed
}

// LoadData загружает плейлист из файла данных.
// Отсутствующий файл означает пустой плейлист.
func (app *Application) LoadData() error {
	report, err := app.Playlist.LoadFromFile(app.Config.DataFile)
	if err != nil {
		var pErr *playlist.PersistenceError
		if errors.As(err, &pErr) && pErr.Kind == playlist.KindNotFound {
			return nil
		}
		return fmt.Errorf("ошибка загрузки данных: %w", err)
	}

	for _, skipped := range report.Skipped {
		fmt.Printf("⚠️  Пропущена запись трека #%d в %s: %v\n", skipped.Index+1, app.Config.DataFile, skipped.Err)
	}
	return nil
}

// SaveData сохраняет плейлист в файл данных
func (app *Application) SaveData() error {
	return app.Playlist.SaveToFile(app.Config.DataFile)
}

// persist сохраняет изменения после успешной команды
func (app *Application) persist() error {
	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}
	return nil
}

func openS3Storage(cfg *config.Config) (backup.ObjectStore, error) {
	return s3.NewStorage(&s3.Config{
		Region:     cfg.AwsRegion,
		AccessKey:  cfg.AwsAccessKey,
		SecretKey:  cfg.AwsSecretKey,
		Endpoint:   cfg.AwsEndpoint,
		BucketName: cfg.AwsBucketName,
	})
}

func runWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	return spinner.New().Title(title).Context(ctx).ActionWithErr(action).Run()
}

func askConfirmation(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Да").
		Negative("Нет").
		Value(&confirmed).
		Run()
	return confirmed, err
}

func main() {
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	app, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации приложения: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := app.createRootCommand(ctx)
	err = rootCmd.Execute()
	stop()

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
