package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/track"
)

const (
	actionAdd   = "add"
	actionShow  = "show"
	actionStats = "stats"
	actionDemo  = "demo"
	actionSave  = "save"
	actionExit  = "exit"
)

// createInteractiveCommand создает команду interactive с привязкой к экземпляру приложения
func (app *Application) createInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run the interactive prompt mode",
		Long:  `Run a menu driven session to add, show and save tracks without typing commands.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runInteractive()
		},
	}
}

func (app *Application) runInteractive() error {
	fmt.Println("🎵 Музыкальный менеджер - Интерактивный режим")

	for {
		action, err := askAction()
		if errors.Is(err, huh.ErrUserAborted) {
			action = actionExit
		} else if err != nil {
			return fmt.Errorf("ошибка выбора действия: %w", err)
		}

		if action == actionExit {
			fmt.Println("👋 Выход из интерактивного режима")
			return nil
		}

		if err := app.runAction(action); err != nil {
			return err
		}
	}
}

// runAction выполняет выбранное в меню действие
func (app *Application) runAction(action string) error {
	switch action {
	case actionAdd:
		return app.interactiveAdd()
	case actionShow:
		return app.showTracks("", false)
	case actionStats:
		app.showStats()
	case actionDemo:
		return app.addDemoTracks(len(demoCatalog))
	case actionSave:
		app.savePlaylist("playlist.json")
	}
	return nil
}

func askAction() (string, error) {
	var action string
	err := huh.NewSelect[string]().
		Title("Выберите действие").
		Options(
			huh.NewOption("Добавить трек", actionAdd),
			huh.NewOption("Показать плейлист", actionShow),
			huh.NewOption("Статистика", actionStats),
			huh.NewOption("Добавить демонстрационные треки", actionDemo),
			huh.NewOption("Сохранить в playlist.json", actionSave),
			huh.NewOption("Выход", actionExit),
		).
		Value(&action).
		Run()
	return action, err
}

func (app *Application) interactiveAdd() error {
	var title, artist, duration, year string
	genre := track.GenreOther.Name()

	genreOptions := make([]huh.Option[string], 0, len(track.Genres()))
	for _, g := range track.Genres() {
		genreOptions = append(genreOptions, huh.NewOption(g.Label(), g.Name()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Название").Value(&title).Validate(notBlank),
			huh.NewInput().Title("Исполнитель").Value(&artist).Validate(notBlank),
			huh.NewInput().Title("Длительность (MM:SS)").Value(&duration).
				Validate(func(s string) error {
					_, err := track.ParseDurationInput(s)
					return err
				}),
			huh.NewSelect[string]().Title("Жанр").Options(genreOptions...).Value(&genre),
			huh.NewInput().Title("Год (необязательно)").Value(&year),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("🚫 Добавление отменено")
			return nil
		}
		return fmt.Errorf("ошибка ввода трека: %w", err)
	}

	var yearPtr *int
	if strings.TrimSpace(year) != "" {
		y, err := strconv.Atoi(strings.TrimSpace(year))
		if err != nil {
			fmt.Printf("❌ Ошибка при добавлении трека: неверный год '%s'\n", year)
			return nil
		}
		yearPtr = &y
	}

	return app.addTrack(title, artist, duration, genre, yearPtr)
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("поле не может быть пустым")
	}
	return nil
}
