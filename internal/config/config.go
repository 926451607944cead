// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-playlist/internal/utils"
)

// Значения по умолчанию
const (
	DefaultDataFile     = "~/.playlist.json"
	DefaultPlaylistName = "Моя музыкальная коллекция"
	DefaultBackupKey    = "playlist.json"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	DataFile      string `yaml:"data_file"`     // Файл, в котором хранится плейлист между запусками
	PlaylistName  string `yaml:"playlist_name"` // Название нового плейлиста
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
	BackupKey     string `yaml:"backup_key"` // Ключ объекта резервной копии в бакете
}

// envOverrides сопоставляет переменные окружения полям конфигурации
var envOverrides = []struct {
	name  string
	field func(*Config) *string
}{
	{"PLAYLIST_DATA_FILE", func(c *Config) *string { return &c.DataFile }},
	{"PLAYLIST_NAME", func(c *Config) *string { return &c.PlaylistName }},
	{"PLAYLIST_BACKUP_KEY", func(c *Config) *string { return &c.BackupKey }},
	{"AWS_BUCKET_NAME", func(c *Config) *string { return &c.AwsBucketName }},
	{"AWS_ACCESS_KEY", func(c *Config) *string { return &c.AwsAccessKey }},
	{"AWS_SECRET_KEY", func(c *Config) *string { return &c.AwsSecretKey }},
	{"AWS_REGION", func(c *Config) *string { return &c.AwsRegion }},
	{"AWS_ENDPOINT", func(c *Config) *string { return &c.AwsEndpoint }},
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
// Переменные окружения (в том числе из .env) имеют приоритет над файлом.
func LoadConfig(filePath string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	path, err := utils.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Файла нет, остаемся на значениях по умолчанию
	case err != nil:
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
		}
	}

	for _, override := range envOverrides {
		if value, ok := os.LookupEnv(override.name); ok && value != "" {
			*override.field(config) = value
		}
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.DataFile == "" {
		config.DataFile = DefaultDataFile
	}
	if config.PlaylistName == "" {
		config.PlaylistName = DefaultPlaylistName
	}
	if config.BackupKey == "" {
		config.BackupKey = DefaultBackupKey
	}

	// Раскрываем тильду в пути к файлу данных
	config.DataFile, err = utils.ExpandHome(config.DataFile)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// HasStorage сообщает, настроено ли хранилище S3 для резервных копий
func (c *Config) HasStorage() bool {
	return c.AwsBucketName != ""
}
