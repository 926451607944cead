package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "playlist",
		Short:         "Music collection manager",
		Long:          `A command line tool to manage a music track collection stored as a JSON playlist.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createShowCommand())
	rootCmd.AddCommand(app.createFilterCommand())
	rootCmd.AddCommand(app.createStatsCommand())
	rootCmd.AddCommand(app.createSaveCommand())
	rootCmd.AddCommand(app.createLoadCommand())
	rootCmd.AddCommand(app.createRemoveCommand())
	rootCmd.AddCommand(app.createClearCommand())
	rootCmd.AddCommand(app.createGenresCommand())
	rootCmd.AddCommand(app.createDemoCommand())
	rootCmd.AddCommand(app.createImportCommand())
	rootCmd.AddCommand(app.createPushCommand(ctx))
	rootCmd.AddCommand(app.createPullCommand(ctx))
	rootCmd.AddCommand(app.createDeleteBackupCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())
	rootCmd.AddCommand(app.createInteractiveCommand())

	return rootCmd
}
