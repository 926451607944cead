package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// createRemoveCommand создает команду remove с привязкой к экземпляру приложения
func (app *Application) createRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [index]",
		Short: "Remove a track by its position",
		Long:  `Remove a track by its 1-based position as printed by the show command.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("❌ Ошибка: неверный индекс '%s'. Индекс должен быть числом.\n", args[0])
				return nil
			}
			return app.removeTrack(index)
		},
	}
}

func (app *Application) removeTrack(index int) error {
	if app.Playlist.Len() == 0 {
		fmt.Println("😔 Плейлист пуст. Нет треков для удаления.")
		return nil
	}

	if index < 1 || index > app.Playlist.Len() {
		fmt.Printf("❌ Неверный индекс. Допустимые значения: 1-%d\n", app.Playlist.Len())
		return nil
	}

	removed, _ := app.Playlist.TrackAt(index - 1)
	if !app.Playlist.RemoveTrackAt(index - 1) {
		fmt.Printf("❌ Не удалось удалить трек с индексом %d\n", index)
		return nil
	}

	fmt.Printf("✅ Трек удален: %s\n", removed.DisplayText())
	fmt.Printf("📋 Осталось треков: %d\n", app.Playlist.Len())
	return app.persist()
}

// createClearCommand создает команду clear с привязкой к экземпляру приложения
func (app *Application) createClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all tracks from the collection",
		Long:  `Remove all tracks. Asks for confirmation unless --yes is given.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.clearTracks(yes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}

func (app *Application) clearTracks(yes bool) error {
	if !yes {
		confirmed, err := app.confirm("Вы уверены, что хотите удалить все треки?")
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("ошибка запроса подтверждения: %w", err)
		}
		if !confirmed {
			fmt.Println("🚫 Очистка отменена")
			return nil
		}
	}

	app.Playlist.Clear()
	fmt.Println("✅ Коллекция треков очищена")
	return app.persist()
}
