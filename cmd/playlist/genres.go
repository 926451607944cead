package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/track"
)

// createGenresCommand создает команду genres
func (app *Application) createGenresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List available music genres",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			printGenres()
		},
	}
}

func printGenres() {
	fmt.Println("\n🎵 Доступные музыкальные жанры:")
	fmt.Println(strings.Repeat("=", 30))
	for _, genre := range track.Genres() {
		fmt.Printf("  %-15s - %s\n", genre.Name(), genre.Label())
	}
	fmt.Println(strings.Repeat("=", 30))
}
