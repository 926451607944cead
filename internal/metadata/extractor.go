// Package metadata строит треки плейлиста по тегам аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"

	"github.com/hazadus/go-playlist/internal/track"
)

// UnknownArtist подставляется, когда исполнителя нельзя определить ни по тегам, ни по имени файла
const UnknownArtist = "Неизвестный исполнитель"

// TrackMetadata хранит теги трека
type TrackMetadata struct {
	Artist string
	Title  string
	Album  string
	Genre  string
	Year   int
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker.
// Недостающие исполнитель и название берутся из имени source.
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	fallback := metadataFromFileName(source)

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return fallback
	}

	tags, err := tag.ReadFrom(reader)
	if err != nil {
		return fallback
	}

	result := TrackMetadata{
		Artist: strings.TrimSpace(tags.Artist()),
		Title:  strings.TrimSpace(tags.Title()),
		Album:  strings.TrimSpace(tags.Album()),
		Genre:  strings.TrimSpace(tags.Genre()),
		Year:   tags.Year(),
	}
	if result.Artist == "" {
		result.Artist = fallback.Artist
	}
	if result.Title == "" {
		result.Title = fallback.Title
	}

	return result
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return metadataFromFileName(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetDuration получает длительность MP3 файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// BuildTrack создает трек по тегам и длительности аудио файла.
// Нераспознанный жанр становится "Другое", год вне допустимого диапазона отбрасывается.
func (e *Extractor) BuildTrack(filePath string) (track.Track, error) {
	duration, err := e.GetDuration(filePath)
	if err != nil {
		return track.Track{}, fmt.Errorf("ошибка получения длительности: %w", err)
	}

	meta := e.ExtractFromFile(filePath)
	return meta.Track(duration)
}

// Track преобразует метаданные в трек заданной длительности
func (m TrackMetadata) Track(duration time.Duration) (track.Track, error) {
	opts := []track.Option{track.WithGenre(m.genre())}
	if m.Year >= track.MinYear && m.Year <= track.MaxYear {
		opts = append(opts, track.WithYear(m.Year))
	}

	return track.New(m.Title, m.Artist, duration, opts...)
}

func (m TrackMetadata) genre() track.Genre {
	if m.Genre == "" {
		return track.GenreOther
	}
	genre, err := track.ParseGenre(m.Genre)
	if err != nil {
		return track.GenreOther
	}
	return genre
}

// metadataFromFileName разбирает имя файла в формате "Artist - Title"
func metadataFromFileName(source string) TrackMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	artist, title, found := strings.Cut(nameWithoutExt, " - ")
	if found && strings.TrimSpace(artist) != "" && strings.TrimSpace(title) != "" {
		return TrackMetadata{
			Artist: strings.TrimSpace(artist),
			Title:  strings.TrimSpace(title),
		}
	}

	return TrackMetadata{
		Artist: UnknownArtist,
		Title:  strings.TrimSpace(nameWithoutExt),
	}
}
