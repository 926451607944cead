package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// createStatsCommand создает команду stats с привязкой к экземпляру приложения
func (app *Application) createStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Long:  `Display track count, total duration, distinct artists and genre/year distributions.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			app.showStats()
		},
	}
}

func (app *Application) showStats() {
	if app.Playlist.Len() == 0 {
		fmt.Println("😔 Плейлист пуст. Нет данных для статистики.")
		return
	}

	stats := app.Playlist.Statistics()

	fmt.Printf("\n📊 Статистика плейлиста '%s':\n", app.Playlist.Name())
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Всего треков: %d\n", stats.TotalTracks)
	fmt.Printf("Общая длительность: %s\n", stats.FormattedTotalDuration)
	fmt.Printf("Уникальных исполнителей: %d\n", stats.Artists)

	if len(stats.Genres) > 0 {
		fmt.Println("\n📈 Распределение по жанрам:")
		for _, genre := range stats.Genres {
			fmt.Printf("  %s: %d\n", genre.Label, genre.Count)
		}
	}

	if len(stats.Years) > 0 {
		fmt.Println("\n📅 Распределение по годам:")
		for _, year := range stats.SortedYears() {
			fmt.Printf("  %d: %d\n", year.Year, year.Count)
		}
	}

	fmt.Println(strings.Repeat("=", 50))
}
