// Package track содержит модель музыкального трека и его сериализацию
package track

import (
	"fmt"
	"strings"
	"time"
)

// Допустимый диапазон года выпуска
const (
	MinYear = 1900
	MaxYear = 2100
)

// Track неизменяемая запись о треке. Создается только через New или FromRecord.
type Track struct {
	title    string
	artist   string
	duration time.Duration
	genre    Genre
	year     int
	hasYear  bool
}

// Option задает необязательные поля трека
type Option func(*Track)

// WithGenre задает жанр трека
func WithGenre(genre Genre) Option {
	return func(t *Track) {
		t.genre = genre
	}
}

// WithYear задает год выпуска трека
func WithYear(year int) Option {
	return func(t *Track) {
		t.year = year
		t.hasYear = true
	}
}

// New создает трек и проверяет его поля
func New(title, artist string, duration time.Duration, opts ...Option) (Track, error) {
	t := Track{
		title:    title,
		artist:   artist,
		duration: duration.Truncate(time.Second),
		genre:    GenreOther,
	}
	for _, opt := range opts {
		opt(&t)
	}

	if strings.TrimSpace(t.title) == "" {
		return Track{}, &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}
	if strings.TrimSpace(t.artist) == "" {
		return Track{}, &ValidationError{Field: "artist", Err: ErrEmptyArtist}
	}
	if t.duration <= 0 {
		return Track{}, &ValidationError{Field: "duration", Err: ErrNonPositiveDuration}
	}
	if t.hasYear && (t.year < MinYear || t.year > MaxYear) {
		return Track{}, &ValidationError{
			Field: "year",
			Err:   fmt.Errorf("%w: %d (допустимо %d-%d)", ErrYearOutOfRange, t.year, MinYear, MaxYear),
		}
	}
	return t, nil
}

// Title возвращает название трека
func (t Track) Title() string { return t.title }

// Artist возвращает исполнителя
func (t Track) Artist() string { return t.artist }

// Duration возвращает длительность с точностью до секунды
func (t Track) Duration() time.Duration { return t.duration }

// Genre возвращает жанр
func (t Track) Genre() Genre { return t.genre }

// Year возвращает год выпуска и признак его наличия
func (t Track) Year() (int, bool) { return t.year, t.hasYear }

// DurationSeconds возвращает длительность в целых секундах
func (t Track) DurationSeconds() int {
	return int(t.duration / time.Second)
}

// FormattedDuration возвращает длительность в формате MM:SS.
// Минуты не переходят в часы: 3661 секунда выводится как 61:01.
func (t Track) FormattedDuration() string {
	return FormatDuration(t.duration)
}

// DisplayText возвращает строку для вывода трека в консоль
func (t Track) DisplayText() string {
	yearStr := ""
	if t.hasYear {
		yearStr = fmt.Sprintf(" (%d)", t.year)
	}
	return fmt.Sprintf("🎵 '%s' - %s%s [%s] ⏱ %s",
		t.title, t.artist, yearStr, t.genre.Label(), t.FormattedDuration())
}

func (t Track) String() string {
	return t.DisplayText()
}
