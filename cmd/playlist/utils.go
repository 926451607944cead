package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
)

const separatorWidth = 80

// printTracks выводит пронумерованный список треков
func printTracks(name string, tracks []track.Track) {
	if len(tracks) == 0 {
		fmt.Println("😔 Нет треков для отображения")
		return
	}

	fmt.Printf("\n📋 Плейлист '%s' (%d треков):\n", name, len(tracks))
	fmt.Println(strings.Repeat("=", separatorWidth))
	for i, t := range tracks {
		fmt.Printf("%3d. %s\n", i+1, t.DisplayText())
	}
	fmt.Println(strings.Repeat("=", separatorWidth))
}

// buildTrack собирает трек из пользовательского ввода.
// Пустой жанр означает "Другое", year равен nil, если год не указан.
func buildTrack(title, artist, durationText, genreText string, year *int) (track.Track, error) {
	duration, err := track.ParseDurationInput(durationText)
	if err != nil {
		return track.Track{}, err
	}

	opts := make([]track.Option, 0, 2)
	if strings.TrimSpace(genreText) != "" {
		genre, err := track.ParseGenre(genreText)
		if err != nil {
			return track.Track{}, err
		}
		opts = append(opts, track.WithGenre(genre))
	}
	if year != nil {
		opts = append(opts, track.WithYear(*year))
	}

	return track.New(title, artist, duration, opts...)
}

// describeLoadError формирует сообщение об ошибке загрузки плейлиста
func describeLoadError(path string, err error) string {
	var pErr *playlist.PersistenceError
	if errors.As(err, &pErr) {
		switch pErr.Kind {
		case playlist.KindNotFound:
			return fmt.Sprintf("❌ Файл не найден: %s", path)
		case playlist.KindMalformed:
			return fmt.Sprintf("❌ Ошибка формата JSON в файле: %s (%v)", path, pErr.Err)
		}
	}
	return fmt.Sprintf("❌ Ошибка при загрузке из файла %s: %v", path, err)
}
