package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createSaveCommand создает команду save с привязкой к экземпляру приложения
func (app *Application) createSaveCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the collection to a JSON file",
		Long:  `Export the current playlist to a JSON file.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			app.savePlaylist(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "playlist.json", "Output file name")
	return cmd
}

func (app *Application) savePlaylist(file string) {
	if app.Playlist.Len() == 0 {
		fmt.Println("⚠️  Плейлист пуст. Сохранение пустого плейлиста.")
	}

	if err := app.Playlist.SaveToFile(file); err != nil {
		fmt.Printf("❌ Ошибка при сохранении в файл %s: %v\n", file, err)
		return
	}
	fmt.Printf("✅ Плейлист сохранен в файл: %s\n", file)
}

// createLoadCommand создает команду load с привязкой к экземпляру приложения
func (app *Application) createLoadCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the collection from a JSON file",
		Long: `Replace the current playlist with the contents of a JSON file.
Invalid track records are skipped and reported.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.loadPlaylist(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "File to load")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (app *Application) loadPlaylist(file string) error {
	report, err := app.Playlist.LoadFromFile(file)
	if err != nil {
		fmt.Println(describeLoadError(file, err))
		return nil
	}

	for _, skipped := range report.Skipped {
		fmt.Printf("⚠️  Ошибка при загрузке трека #%d: %v\n", skipped.Index+1, skipped.Err)
	}
	fmt.Printf("✅ Плейлист загружен из файла: %s\n", file)
	fmt.Printf("   Загружено треков: %d\n", report.Loaded)

	return app.persist()
}
