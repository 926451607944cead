package playlist

import (
	"testing"
	"time"

	"github.com/hazadus/go-playlist/internal/track"
)

func TestTotalDuration(t *testing.T) {
	p := samplePlaylist(t)

	expected := time.Duration(355+294+324+183+348+120) * time.Second
	if p.TotalDuration() != expected {
		t.Errorf("Ожидалась длительность %v, получено %v", expected, p.TotalDuration())
	}

	if New("empty").TotalDuration() != 0 {
		t.Error("Длительность пустого плейлиста должна быть нулевой")
	}
}

func TestStatistics(t *testing.T) {
	p := samplePlaylist(t)
	stats := p.Statistics()

	if stats.TotalTracks != 6 {
		t.Errorf("Ожидалось 6 треков, получено %d", stats.TotalTracks)
	}
	if stats.FormattedTotalDuration != "0:27:04" {
		t.Errorf("Ожидалась длительность 0:27:04, получено %s", stats.FormattedTotalDuration)
	}
	// Queen и QUEEN считаются одним исполнителем
	if stats.Artists != 5 {
		t.Errorf("Ожидалось 5 исполнителей, получено %d", stats.Artists)
	}

	expectedGenres := []GenreCount{
		{Genre: track.GenrePop, Label: "Поп", Count: 2},
		{Genre: track.GenreRock, Label: "Рок", Count: 2},
		{Genre: track.GenreJazz, Label: "Джаз", Count: 1},
		{Genre: track.GenreOther, Label: "Другое", Count: 1},
	}
	if len(stats.Genres) != len(expectedGenres) {
		t.Fatalf("Ожидалось %d жанров, получено %d: %+v", len(expectedGenres), len(stats.Genres), stats.Genres)
	}
	sum := 0
	for i, expected := range expectedGenres {
		if stats.Genres[i] != expected {
			t.Errorf("Жанр %d: ожидалось %+v, получено %+v", i, expected, stats.Genres[i])
		}
		sum += stats.Genres[i].Count
	}
	if sum != stats.TotalTracks {
		t.Errorf("Сумма по жанрам %d не совпадает с числом треков %d", sum, stats.TotalTracks)
	}

	if len(stats.Years) != 5 {
		t.Errorf("Ожидалось 5 годов, получено %d", len(stats.Years))
	}
	if _, ok := stats.Years[0]; ok {
		t.Error("Трек без года не должен попадать в распределение по годам")
	}
}

func TestStatisticsSortedYears(t *testing.T) {
	p := New("years")
	p.AddTracks(
		mustTrack(t, "A", "X", 60, track.WithYear(1991)),
		mustTrack(t, "B", "X", 60, track.WithYear(1971)),
		mustTrack(t, "C", "X", 60, track.WithYear(2017)),
		mustTrack(t, "D", "X", 60, track.WithYear(1971)),
		mustTrack(t, "E", "X", 60),
	)

	years := p.Statistics().SortedYears()
	expected := []YearCount{{1971, 2}, {1991, 1}, {2017, 1}}
	if len(years) != len(expected) {
		t.Fatalf("Ожидалось %d годов, получено %d", len(expected), len(years))
	}
	for i := range expected {
		if years[i] != expected[i] {
			t.Errorf("Позиция %d: ожидалось %+v, получено %+v", i, expected[i], years[i])
		}
	}
}

func TestStatisticsEmpty(t *testing.T) {
	stats := New("empty").Statistics()

	if stats.TotalTracks != 0 || stats.Artists != 0 {
		t.Errorf("Ожидалась пустая статистика, получено %+v", stats)
	}
	if len(stats.Genres) != 0 || len(stats.Years) != 0 {
		t.Errorf("Распределения должны быть пустыми: %+v", stats)
	}
	if stats.FormattedTotalDuration != "0:00:00" {
		t.Errorf("Ожидалось 0:00:00, получено %s", stats.FormattedTotalDuration)
	}
}
