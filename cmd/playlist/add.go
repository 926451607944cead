package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	var title, artist, duration, genre string
	var year int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new track to the collection",
		Long: `Add a new track to the collection.
Duration accepts MM:SS, HH:MM:SS or a number of seconds.
Genre accepts an identifier (ROCK) or a label (Рок).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var yearPtr *int
			if cmd.Flags().Changed("year") {
				yearPtr = &year
			}
			return app.addTrack(title, artist, duration, genre, yearPtr)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Track title")
	cmd.Flags().StringVarP(&artist, "artist", "a", "", "Artist")
	cmd.Flags().StringVarP(&duration, "duration", "d", "", "Duration (MM:SS or HH:MM:SS)")
	cmd.Flags().StringVarP(&genre, "genre", "g", "OTHER", "Genre")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Release year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

// addTrack проверяет ввод, добавляет трек и сохраняет плейлист
func (app *Application) addTrack(title, artist, duration, genre string, year *int) error {
	t, err := buildTrack(title, artist, duration, genre, year)
	if err != nil {
		fmt.Printf("❌ Ошибка при добавлении трека: %v\n", err)
		return nil
	}

	app.Playlist.AddTrack(t)
	fmt.Printf("✅ Трек добавлен: %s\n", t.DisplayText())

	return app.persist()
}
