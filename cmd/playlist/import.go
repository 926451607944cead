package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/metadata"
)

// createImportCommand создает команду import с привязкой к экземпляру приложения
func (app *Application) createImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file...]",
		Short: "Import tracks from MP3 files",
		Long: `Read ID3 tags and duration of MP3 files and add them as tracks.
Files that cannot be read are reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.importFiles(args)
		},
	}
}

func (app *Application) importFiles(paths []string) error {
	extractor := metadata.NewExtractor()

	imported := 0
	for _, path := range paths {
		t, err := extractor.BuildTrack(path)
		if err != nil {
			fmt.Printf("⚠️  Не удалось импортировать %s: %v\n", path, err)
			continue
		}
		app.Playlist.AddTrack(t)
		imported++
		fmt.Printf("✅ Трек добавлен: %s\n", t.DisplayText())
	}

	if imported == 0 {
		fmt.Println("😔 Ни один файл не был импортирован")
		return nil
	}

	fmt.Printf("📋 Импортировано треков: %d из %d\n", imported, len(paths))
	return app.persist()
}
