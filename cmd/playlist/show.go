package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// createShowCommand создает команду show с привязкой к экземпляру приложения
func (app *Application) createShowCommand() *cobra.Command {
	var sortBy string
	var reverse bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show all tracks in the collection",
		Long:  `Display all tracks. When a sort key is given the new order is saved.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.showTracks(sortBy, reverse)
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort-by", "s", "", "Sort key: duration, title or artist")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Sort in descending order")

	return cmd
}

func (app *Application) showTracks(sortBy string, reverse bool) error {
	if app.Playlist.Len() == 0 {
		fmt.Println("😔 Плейлист пуст. Используйте команду 'add' для добавления треков.")
		return nil
	}

	if sortBy != "" {
		key, err := playlist.ParseSortKey(sortBy)
		if err != nil {
			fmt.Printf("❌ Ошибка: %v\n", err)
			return nil
		}
		app.Playlist.Sort(key, reverse)
		if err := app.persist(); err != nil {
			return err
		}
	}

	printTracks(app.Playlist.Name(), app.Playlist.Tracks())
	return nil
}
