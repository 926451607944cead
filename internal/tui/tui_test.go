package tui

import (
	"strings"
	"testing"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/tui/app"
)

func TestNewAppModel(t *testing.T) {
	p := playlist.New("Мой плейлист")
	tuiApp := NewApp(p, nil)

	model, ok := tuiApp.Model().(*app.MainModel)
	if !ok {
		t.Fatalf("Ожидалась *app.MainModel, получено %T", tuiApp.Model())
	}
	if model.CurrentScreen() != app.TracklistScreen {
		t.Errorf("Приложение должно открываться со списка треков, получено %v", model.CurrentScreen())
	}
	if !strings.Contains(model.View(), "Треков: 0") {
		t.Errorf("Список пустого плейлиста должен показывать число треков:\n%s", model.View())
	}
}
