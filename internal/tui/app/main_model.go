// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/tui/editor"
	"github.com/hazadus/go-playlist/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// EditorScreen - экран редактирования
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	playlist       *playlist.Playlist
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	editorModel    *editor.Model
	saveFunc       func() error // Функция для сохранения данных
	width, height  int
}

// NewMainModel создает новую главную модель
func NewMainModel(p *playlist.Playlist, saveFunc func() error) *MainModel {
	return &MainModel{
		playlist:       p,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(p, saveFunc),
		saveFunc:       saveFunc,
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tracklist.TrackEditMsg:
		return m, m.openEditor(msg.Index, msg.Track)

	case tracklist.TrackAddMsg:
		return m, m.openEditor(editor.NewTrackIndex, track.Track{})

	case editor.GoBackMsg:
		// Возвращаемся к списку треков и обновляем его
		if m.currentScreen == EditorScreen {
			m.currentScreen = TracklistScreen
			m.editorModel = nil
			m.tracklistModel.RefreshData()
		}
		return m, nil

	case editor.TrackSavedMsg:
		m.tracklistModel.RefreshData()
		return m, nil
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)

	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	}

	return m, cmd
}

// openEditor переключается на экран редактирования трека
func (m *MainModel) openEditor(index int, t track.Track) tea.Cmd {
	m.currentScreen = EditorScreen
	m.editorModel = editor.NewModel(m.playlist, index, t, m.saveFunc)
	if m.width > 0 {
		m.editorModel.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return m.editorModel.Init()
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}
