package playlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hazadus/go-playlist/internal/track"
)

// SortKey критерий сортировки
type SortKey string

// Поддерживаемые критерии сортировки
const (
	SortByDurationKey SortKey = "duration"
	SortByTitleKey    SortKey = "title"
	SortByArtistKey   SortKey = "artist"
)

// SortKeys возвращает все критерии сортировки
func SortKeys() []SortKey {
	return []SortKey{SortByDurationKey, SortByTitleKey, SortByArtistKey}
}

// ParseSortKey разбирает критерий сортировки
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range SortKeys() {
		if k == key {
			return k, nil
		}
	}
	return "", fmt.Errorf("неизвестный критерий сортировки: '%s' (доступны duration, title, artist)", s)
}

// FindByArtist возвращает треки исполнителя без учета регистра и пробелов по краям запроса
func (p *Playlist) FindByArtist(artist string) []track.Track {
	query := normalizeArtist(artist)
	return p.filter(func(t track.Track) bool {
		return foldKey(t.Artist()) == query
	})
}

// FindByGenre возвращает треки указанного жанра
func (p *Playlist) FindByGenre(genre track.Genre) []track.Track {
	return p.filter(func(t track.Track) bool {
		return t.Genre() == genre
	})
}

// FindByYear возвращает треки указанного года. Треки без года не попадают в выборку.
func (p *Playlist) FindByYear(year int) []track.Track {
	return p.filter(func(t track.Track) bool {
		y, ok := t.Year()
		return ok && y == year
	})
}

// FindByDurationRange возвращает треки с длительностью в диапазоне [minSec, maxSec].
// Порядок границ не проверяется: при minSec > maxSec результат пуст.
func (p *Playlist) FindByDurationRange(minSec, maxSec int) []track.Track {
	return p.filter(func(t track.Track) bool {
		seconds := t.DurationSeconds()
		return seconds >= minSec && seconds <= maxSec
	})
}

func (p *Playlist) filter(match func(track.Track) bool) []track.Track {
	result := make([]track.Track, 0)
	for _, t := range p.tracks {
		if match(t) {
			result = append(result, t)
		}
	}
	return result
}

// SortByDuration сортирует треки по длительности
func (p *Playlist) SortByDuration(descending bool) {
	p.Sort(SortByDurationKey, descending)
}

// SortByTitle сортирует треки по названию без учета регистра
func (p *Playlist) SortByTitle(descending bool) {
	p.Sort(SortByTitleKey, descending)
}

// SortByArtist сортирует треки по исполнителю без учета регистра
func (p *Playlist) SortByArtist(descending bool) {
	p.Sort(SortByArtistKey, descending)
}

// Sort сортирует треки плейлиста на месте
func (p *Playlist) Sort(key SortKey, descending bool) {
	SortTracks(p.tracks, key, descending)
}

// SortTracks устойчиво сортирует срез треков. Равные элементы сохраняют
// взаимный порядок и при сортировке по убыванию.
func SortTracks(tracks []track.Track, key SortKey, descending bool) {
	var less func(a, b track.Track) bool
	switch key {
	case SortByDurationKey:
		less = func(a, b track.Track) bool { return a.DurationSeconds() < b.DurationSeconds() }
	case SortByTitleKey:
		less = func(a, b track.Track) bool { return foldKey(a.Title()) < foldKey(b.Title()) }
	case SortByArtistKey:
		less = func(a, b track.Track) bool { return foldKey(a.Artist()) < foldKey(b.Artist()) }
	default:
		return
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		if descending {
			return less(tracks[j], tracks[i])
		}
		return less(tracks[i], tracks[j])
	})
}
