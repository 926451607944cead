package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/backup"
	"github.com/hazadus/go-playlist/internal/s3"
)

const backupTimeout = 5 * time.Minute

// createPushCommand создает команду push с привязкой к экземпляру приложения и контексту
func (app *Application) createPushCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the collection to S3",
		Long:  `Save the collection and upload the data file to the configured S3 bucket.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.pushBackup(ctx)
		},
	}
}

// createPullCommand создает команду pull с привязкой к экземпляру приложения и контексту
func (app *Application) createPullCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Restore the collection from S3",
		Long: `Download the backup from the configured S3 bucket and replace the data file.
The local file is kept if the backup cannot be downloaded or parsed.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.pullBackup(ctx)
		},
	}
}

// backupService создает сервис резервного копирования, если хранилище настроено
func (app *Application) backupService() (*backup.Service, error) {
	if !app.Config.HasStorage() {
		return nil, nil
	}

	store, err := app.openStore()
	if err != nil {
		return nil, fmt.Errorf("ошибка создания S3 хранилища: %w", err)
	}
	return backup.NewService(store, app.Config.BackupKey), nil
}

func (app *Application) pushBackup(ctx context.Context) error {
	service, err := app.backupService()
	if err != nil {
		return err
	}
	if service == nil {
		fmt.Println("❌ Хранилище S3 не настроено. Укажите aws_bucket_name в конфигурации.")
		return nil
	}

	if err := app.persist(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, backupTimeout)
	defer cancel()

	fmt.Printf("📤 Выгружаем плейлист в S3:\n")
	fmt.Printf("   Файл: %s\n", app.Config.DataFile)
	fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)
	fmt.Printf("   Ключ: %s\n", service.Key())

	var total int64
	result, err := service.Push(ctx, app.Config.DataFile, func(bytesRead int64) {
		total = bytesRead
		fmt.Printf("\r📊 Отправлено: %s", backup.FormatFileSize(total))
	})
	if total > 0 {
		fmt.Println()
	}
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("операция отменена: %w", ctx.Err())
		}
		return fmt.Errorf("ошибка выгрузки плейлиста: %w", err)
	}

	fmt.Printf("✅ Плейлист выгружен в S3!\n")
	fmt.Printf("   URL: %s\n", result.URL)
	fmt.Printf("   Размер: %s, треков: %d\n", backup.FormatFileSize(result.Size), result.Tracks)
	return nil
}

func (app *Application) pullBackup(ctx context.Context) error {
	service, err := app.backupService()
	if err != nil {
		return err
	}
	if service == nil {
		fmt.Println("❌ Хранилище S3 не настроено. Укажите aws_bucket_name в конфигурации.")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, backupTimeout)
	defer cancel()

	info, err := service.Info(ctx)
	if errors.Is(err, s3.ErrObjectNotFound) {
		fmt.Printf("😔 Резервная копия %s не найдена в бакете %s\n", service.Key(), app.Config.AwsBucketName)
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка получения информации о резервной копии: %w", err)
	}

	fmt.Printf("📥 Резервная копия: %s (%s, изменена %s)\n",
		info.Key, backup.FormatFileSize(info.Size), info.LastModified.Local().Format("02.01.2006 15:04"))

	var result *backup.PullResult
	err = app.spin(ctx, "Скачиваем резервную копию...", func(ctx context.Context) error {
		var pullErr error
		result, pullErr = service.Pull(ctx, app.Config.DataFile)
		return pullErr
	})
	if err != nil {
		return fmt.Errorf("ошибка восстановления плейлиста: %w", err)
	}

	if err := app.LoadData(); err != nil {
		return err
	}

	fmt.Printf("✅ Плейлист восстановлен из S3: %s\n", result.Path)
	fmt.Printf("   Загружено треков: %d\n", app.Playlist.Len())
	return nil
}

// createDeleteBackupCommand создает команду delete-backup с привязкой к экземпляру приложения и контексту
func (app *Application) createDeleteBackupCommand(ctx context.Context) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-backup",
		Short: "Delete the collection backup from S3",
		Long:  `Delete the backup object from the configured S3 bucket. The local data file is not touched.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.deleteBackup(ctx, yes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}

func (app *Application) deleteBackup(ctx context.Context, yes bool) error {
	service, err := app.backupService()
	if err != nil {
		return err
	}
	if service == nil {
		fmt.Println("❌ Хранилище S3 не настроено. Укажите aws_bucket_name в конфигурации.")
		return nil
	}

	if !yes {
		confirmed, err := app.confirm(fmt.Sprintf("Удалить резервную копию %s из S3?", service.Key()))
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("ошибка запроса подтверждения: %w", err)
		}
		if !confirmed {
			fmt.Println("🚫 Удаление отменено")
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, backupTimeout)
	defer cancel()

	err = service.Delete(ctx)
	if errors.Is(err, s3.ErrObjectNotFound) {
		fmt.Printf("😔 Резервная копия %s не найдена в бакете %s\n", service.Key(), app.Config.AwsBucketName)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("✅ Резервная копия %s удалена из S3\n", service.Key())
	return nil
}
