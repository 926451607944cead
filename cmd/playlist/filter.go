package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
)

const (
	defaultMinDuration = 0
	defaultMaxDuration = 86400 // 24 часа
)

type filterOptions struct {
	artist      string
	genre       string
	year        int
	minDuration int
	maxDuration int
	sortBy      string
	reverse     bool

	hasYear     bool
	hasDuration bool
}

// createFilterCommand создает команду filter с привязкой к экземпляру приложения
func (app *Application) createFilterCommand() *cobra.Command {
	var opts filterOptions

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter tracks by a single criterion",
		Long: `Filter tracks by artist, genre, year or duration range.
Only the first given criterion is applied, in that order of priority.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			opts.hasYear = cmd.Flags().Changed("year")
			opts.hasDuration = cmd.Flags().Changed("min-duration") || cmd.Flags().Changed("max-duration")
			app.filterTracks(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.artist, "artist", "a", "", "Filter by artist")
	cmd.Flags().StringVarP(&opts.genre, "genre", "g", "", "Filter by genre")
	cmd.Flags().IntVarP(&opts.year, "year", "y", 0, "Filter by year")
	cmd.Flags().IntVar(&opts.minDuration, "min-duration", defaultMinDuration, "Minimum duration (seconds)")
	cmd.Flags().IntVar(&opts.maxDuration, "max-duration", defaultMaxDuration, "Maximum duration (seconds)")
	cmd.Flags().StringVarP(&opts.sortBy, "sort-by", "s", "", "Sort key: duration, title or artist")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "Sort in descending order")

	return cmd
}

func (app *Application) filterTracks(opts filterOptions) {
	if app.Playlist.Len() == 0 {
		fmt.Println("😔 Плейлист пуст. Нет данных для фильтрации.")
		return
	}

	var sortKey playlist.SortKey
	if opts.sortBy != "" {
		key, err := playlist.ParseSortKey(opts.sortBy)
		if err != nil {
			fmt.Printf("❌ Ошибка: %v\n", err)
			return
		}
		sortKey = key
	}

	var filtered []track.Track
	switch {
	case opts.artist != "":
		filtered = app.Playlist.FindByArtist(opts.artist)
		fmt.Printf("🔍 Треки исполнителя '%s':\n", opts.artist)

	case opts.genre != "":
		genre, err := track.ParseGenre(opts.genre)
		if err != nil {
			fmt.Printf("❌ Ошибка: %v\n", err)
			return
		}
		filtered = app.Playlist.FindByGenre(genre)
		fmt.Printf("🔍 Треки жанра '%s':\n", genre.Label())

	case opts.hasYear:
		filtered = app.Playlist.FindByYear(opts.year)
		fmt.Printf("🔍 Треки %d года:\n", opts.year)

	case opts.hasDuration:
		if opts.minDuration > opts.maxDuration {
			fmt.Println("❌ Минимальная длительность не может быть больше максимальной")
			return
		}
		filtered = app.Playlist.FindByDurationRange(opts.minDuration, opts.maxDuration)
		fmt.Printf("🔍 Треки длительностью от %d до %d секунд:\n", opts.minDuration, opts.maxDuration)

	default:
		fmt.Println("⚠️  Укажите хотя бы один критерий фильтрации")
		return
	}

	if len(filtered) == 0 {
		fmt.Println("😔 Нет треков, соответствующих критериям фильтрации")
		return
	}

	if sortKey != "" {
		playlist.SortTracks(filtered, sortKey, opts.reverse)
	}

	printTracks("Результаты фильтрации", filtered)
}
