// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	playlist *playlist.Playlist
	saveFunc func() error // Функция для сохранения данных
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(p *playlist.Playlist, saveFunc func() error) *App {
	return &App{
		playlist: p,
		saveFunc: saveFunc,
	}
}

// Model возвращает корневую модель Bubble Tea
func (tuiApp *App) Model() tea.Model {
	return app.NewMainModel(tuiApp.playlist, tuiApp.saveFunc)
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	p := tea.NewProgram(tuiApp.Model(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
