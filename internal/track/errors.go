package track

import (
	"errors"
	"fmt"
)

// Ошибки валидации трека
var (
	ErrEmptyTitle          = errors.New("название трека не может быть пустым")
	ErrEmptyArtist         = errors.New("имя исполнителя не может быть пустым")
	ErrNonPositiveDuration = errors.New("длительность должна быть положительной")
	ErrYearOutOfRange      = errors.New("некорректный год")
)

// ErrInvalidDuration возвращается при неверном формате строки длительности
var ErrInvalidDuration = errors.New("неверный формат длительности")

// ValidationError описывает нарушение инварианта трека
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("поле %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FormatError описывает строку длительности, которую не удалось разобрать
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: '%s'. Используйте MM:SS или HH:MM:SS", ErrInvalidDuration, e.Value)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidDuration
}
