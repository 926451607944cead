package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/tui/editor"
	"github.com/hazadus/go-playlist/internal/tui/tracklist"
)

func testPlaylist(t *testing.T) *playlist.Playlist {
	t.Helper()
	tr, err := track.New("Test Track", "Test Artist", 3*time.Minute)
	if err != nil {
		t.Fatalf("Ошибка создания трека: %v", err)
	}
	p := playlist.New("test")
	p.AddTrack(tr)
	return p
}

func TestMainModelRouting(t *testing.T) {
	p := testPlaylist(t)
	model := NewMainModel(p, nil)

	if model.CurrentScreen() != TracklistScreen {
		t.Errorf("Начальный экран должен быть списком треков, получено %v", model.CurrentScreen())
	}
	if model.editorModel != nil {
		t.Error("Редактор не должен создаваться заранее")
	}

	first, _ := p.TrackAt(0)
	updated, _ := model.Update(tracklist.TrackEditMsg{Index: 0, Track: first})
	model = updated.(*MainModel)

	if model.CurrentScreen() != EditorScreen {
		t.Errorf("После TrackEditMsg ожидался экран редактора, получено %v", model.CurrentScreen())
	}
	if model.editorModel == nil {
		t.Fatal("Редактор должен быть создан после TrackEditMsg")
	}

	updated, _ = model.Update(editor.GoBackMsg{})
	model = updated.(*MainModel)

	if model.CurrentScreen() != TracklistScreen {
		t.Errorf("После GoBackMsg ожидался список треков, получено %v", model.CurrentScreen())
	}
	if model.editorModel != nil {
		t.Error("Редактор должен освобождаться после возврата")
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Ожидалась команда выхода после Ctrl+C")
	}
}

func TestMainModelAddTrackFlow(t *testing.T) {
	p := testPlaylist(t)
	model := NewMainModel(p, nil)

	updated, _ := model.Update(tracklist.TrackAddMsg{})
	model = updated.(*MainModel)
	if model.CurrentScreen() != EditorScreen {
		t.Fatalf("После TrackAddMsg ожидался экран редактора, получено %v", model.CurrentScreen())
	}

	// Вводим название в первое поле редактора
	for _, r := range "New" {
		updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		model = updated.(*MainModel)
	}
	if view := model.View(); view == "" {
		t.Error("Ожидалось непустое отображение редактора")
	}

	// Запоздалый GoBackMsg на экране списка ничего не ломает
	model.Update(editor.GoBackMsg{})
	model.Update(editor.GoBackMsg{})
	if model.CurrentScreen() != TracklistScreen {
		t.Errorf("Ожидался список треков, получено %v", model.CurrentScreen())
	}
	if p.Len() != 1 {
		t.Errorf("Без сохранения плейлист не должен меняться, треков: %d", p.Len())
	}
}

func TestMainModelView(t *testing.T) {
	model := NewMainModel(testPlaylist(t), nil)

	if model.View() == "" {
		t.Error("Ожидалось непустое отображение списка треков")
	}

	model.currentScreen = ScreenType(999)
	expectedError := "Неизвестный экран"
	if view := model.View(); view != expectedError {
		t.Errorf("Ожидалось '%s' для неизвестного экрана, получено '%s'", expectedError, view)
	}
}
