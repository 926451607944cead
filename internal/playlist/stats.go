package playlist

import (
	"sort"
	"time"

	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/utils"
)

// GenreCount количество треков одного жанра
type GenreCount struct {
	Genre track.Genre
	Label string
	Count int
}

// YearCount количество треков одного года
type YearCount struct {
	Year  int
	Count int
}

// Statistics сводка по плейлисту
type Statistics struct {
	TotalTracks            int
	TotalDuration          time.Duration
	FormattedTotalDuration string
	Artists                int          // Уникальные исполнители без учета регистра
	Genres                 []GenreCount // Только жанры с треками, в порядке объявления жанров
	Years                  map[int]int  // Только треки с указанным годом
}

// SortedYears возвращает распределение по годам по возрастанию года
func (s Statistics) SortedYears() []YearCount {
	result := make([]YearCount, 0, len(s.Years))
	for year, count := range s.Years {
		result = append(result, YearCount{Year: year, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})
	return result
}

// TotalDuration возвращает суммарную длительность всех треков
func (p *Playlist) TotalDuration() time.Duration {
	total := 0
	for _, t := range p.tracks {
		total += t.DurationSeconds()
	}
	return time.Duration(total) * time.Second
}

// Statistics собирает статистику по плейлисту
func (p *Playlist) Statistics() Statistics {
	total := p.TotalDuration()
	stats := Statistics{
		TotalTracks:            len(p.tracks),
		TotalDuration:          total,
		FormattedTotalDuration: utils.FormatTotalDuration(total),
		Genres:                 make([]GenreCount, 0),
		Years:                  make(map[int]int),
	}

	artists := make(map[string]struct{})
	genres := make(map[track.Genre]int)
	for _, t := range p.tracks {
		artists[foldKey(t.Artist())] = struct{}{}
		genres[t.Genre()]++
		if year, ok := t.Year(); ok {
			stats.Years[year]++
		}
	}
	stats.Artists = len(artists)

	for _, g := range track.Genres() {
		if count := genres[g]; count > 0 {
			stats.Genres = append(stats.Genres, GenreCount{Genre: g, Label: g.Label(), Count: count})
		}
	}

	return stats
}
