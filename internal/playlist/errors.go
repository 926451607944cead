package playlist

import "fmt"

// ErrorKind вид ошибки сохранения или загрузки
type ErrorKind int

// Виды ошибок сохранения и загрузки
const (
	KindIO        ErrorKind = iota // Прочие ошибки ввода-вывода
	KindNotFound                   // Файл не найден
	KindMalformed                  // Файл не является корректным JSON плейлиста
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "файл не найден"
	case KindMalformed:
		return "ошибка формата JSON"
	default:
		return "ошибка ввода-вывода"
	}
}

// PersistenceError ошибка сохранения или загрузки плейлиста
type PersistenceError struct {
	Op   string // save или load
	Path string
	Kind ErrorKind
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SkippedRecord запись трека, пропущенная при загрузке
type SkippedRecord struct {
	Index int // Позиция записи в массиве tracks (с нуля)
	Err   error
}

// LoadReport результат загрузки плейлиста
type LoadReport struct {
	Path    string
	Name    string
	Loaded  int
	Skipped []SkippedRecord
}
