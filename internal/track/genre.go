package track

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGenre возвращается, когда жанр не удалось распознать
var ErrUnknownGenre = errors.New("неизвестный жанр")

// Genre музыкальный жанр
type Genre int

// Жанры перечислены в порядке объявления, этот порядок используется в статистике
const (
	GenreOther Genre = iota
	GenrePop
	GenreRock
	GenreJazz
	GenreHipHop
	GenreElectronic
	GenreClassical
	GenreCountry
	GenreRnB
	GenreMetal
	GenreIndie
)

type genreInfo struct {
	genre Genre
	name  string // Идентификатор, например HIP_HOP
	label string // Отображаемое название
}

var genreTable = []genreInfo{
	{GenrePop, "POP", "Поп"},
	{GenreRock, "ROCK", "Рок"},
	{GenreJazz, "JAZZ", "Джаз"},
	{GenreHipHop, "HIP_HOP", "Хип-хоп"},
	{GenreElectronic, "ELECTRONIC", "Электронная"},
	{GenreClassical, "CLASSICAL", "Классическая"},
	{GenreCountry, "COUNTRY", "Кантри"},
	{GenreRnB, "RNB", "R&B"},
	{GenreMetal, "METAL", "Метал"},
	{GenreIndie, "INDIE", "Инди"},
	{GenreOther, "OTHER", "Другое"},
}

// Genres возвращает все жанры в порядке объявления
func Genres() []Genre {
	genres := make([]Genre, len(genreTable))
	for i, info := range genreTable {
		genres[i] = info.genre
	}
	return genres
}

func (g Genre) info() genreInfo {
	for _, info := range genreTable {
		if info.genre == g {
			return info
		}
	}
	return genreTable[len(genreTable)-1]
}

// Name возвращает идентификатор жанра
func (g Genre) Name() string {
	return g.info().name
}

// Label возвращает отображаемое название жанра
func (g Genre) Label() string {
	return g.info().label
}

func (g Genre) String() string {
	return g.Label()
}

// GenreFromLabel находит жанр по отображаемому названию.
// Если совпадений нет, возвращается GenreOther.
func GenreFromLabel(label string) Genre {
	for _, info := range genreTable {
		if info.label == label {
			return info.genre
		}
	}
	return GenreOther
}

// ParseGenre находит жанр по идентификатору или по названию без учета регистра
func ParseGenre(s string) (Genre, error) {
	value := strings.TrimSpace(s)
	for _, info := range genreTable {
		if strings.EqualFold(info.name, value) {
			return info.genre, nil
		}
	}
	for _, info := range genreTable {
		if strings.EqualFold(info.label, value) {
			return info.genre, nil
		}
	}
	return GenreOther, fmt.Errorf("%w: '%s'. Доступные: %s", ErrUnknownGenre, s, strings.Join(GenreNames(), ", "))
}

// GenreNames возвращает идентификаторы всех жанров
func GenreNames() []string {
	names := make([]string, len(genreTable))
	for i, info := range genreTable {
		names[i] = info.name
	}
	return names
}
