package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/track"
)

type demoTrack struct {
	title    string
	artist   string
	duration time.Duration
	genre    track.Genre
	year     int // 0 - год неизвестен
}

var demoCatalog = []demoTrack{
	{"Bohemian Rhapsody", "Queen", 5*time.Minute + 55*time.Second, track.GenreRock, 1975},
	{"Smells Like Teen Spirit", "Nirvana", 5*time.Minute + 1*time.Second, track.GenreRock, 1991},
	{"Billie Jean", "Michael Jackson", 4*time.Minute + 54*time.Second, track.GenrePop, 1982},
	{"Shape of You", "Ed Sheeran", 3*time.Minute + 53*time.Second, track.GenrePop, 2017},
	{"Take Five", "Dave Brubeck", 5*time.Minute + 24*time.Second, track.GenreJazz, 1959},
	{"Hotel California", "Eagles", 6*time.Minute + 30*time.Second, track.GenreRock, 1976},
	{"Moonlight Sonata", "Beethoven", 15 * time.Minute, track.GenreClassical, 0},
	{"Lose Yourself", "Eminem", 5*time.Minute + 26*time.Second, track.GenreHipHop, 2002},
	{"Stairway to Heaven", "Led Zeppelin", 8*time.Minute + 2*time.Second, track.GenreRock, 1971},
	{"Imagine", "John Lennon", 3*time.Minute + 3*time.Second, track.GenrePop, 1971},
}

// demoTracks возвращает набор демонстрационных треков
func demoTracks() ([]track.Track, error) {
	tracks := make([]track.Track, 0, len(demoCatalog))
	for _, d := range demoCatalog {
		opts := []track.Option{track.WithGenre(d.genre)}
		if d.year != 0 {
			opts = append(opts, track.WithYear(d.year))
		}
		t, err := track.New(d.title, d.artist, d.duration, opts...)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания демонстрационного трека %q: %w", d.title, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// createDemoCommand создает команду demo с привязкой к экземпляру приложения
func (app *Application) createDemoCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Add demo tracks to the collection",
		Long:  `Append a number of well-known tracks to the collection.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.addDemoTracks(count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", len(demoCatalog), "Number of demo tracks to add")
	return cmd
}

func (app *Application) addDemoTracks(count int) error {
	if count < 1 {
		fmt.Println("❌ Количество треков должно быть положительным числом")
		return nil
	}

	tracks, err := demoTracks()
	if err != nil {
		return err
	}
	if count < len(tracks) {
		tracks = tracks[:count]
	}

	app.Playlist.AddTracks(tracks...)
	fmt.Printf("✅ Добавлено %d демонстрационных треков\n", len(tracks))
	fmt.Printf("📋 Теперь в плейлисте: %d треков\n", app.Playlist.Len())

	return app.persist()
}
