package editor

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
)

func mustTrack(t *testing.T, title, artist string, seconds int, opts ...track.Option) track.Track {
	t.Helper()
	tr, err := track.New(title, artist, time.Duration(seconds)*time.Second, opts...)
	if err != nil {
		t.Fatalf("Ошибка создания трека: %v", err)
	}
	return tr
}

func setFields(m *Model, values map[fieldType]string) {
	for field, value := range values {
		m.inputs[field].SetValue(value)
	}
}

var ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}

func TestNewModelPrefillsFields(t *testing.T) {
	p := playlist.New("test")
	tr := mustTrack(t, "Bohemian Rhapsody", "Queen", 355, track.WithGenre(track.GenreRock), track.WithYear(1975))
	p.AddTrack(tr)

	m := NewModel(p, 0, tr, nil)

	expected := map[fieldType]string{
		titleField:    "Bohemian Rhapsody",
		artistField:   "Queen",
		durationField: "05:55",
		genreField:    "Рок",
		yearField:     "1975",
	}
	for field, value := range expected {
		if m.inputs[field].Value() != value {
			t.Errorf("Поле %s: ожидалось %q, получено %q", fieldLabels[field], value, m.inputs[field].Value())
		}
	}
	if !strings.Contains(m.View(), "Редактирование трека #1") {
		t.Error("Заголовок должен содержать номер трека")
	}
}

func TestEditReplacesTrackInPlace(t *testing.T) {
	p := playlist.New("test")
	first := mustTrack(t, "One", "A", 60)
	p.AddTracks(first, mustTrack(t, "Two", "B", 120))

	saved := 0
	m := NewModel(p, 0, first, func() error {
		saved++
		return nil
	})
	setFields(m, map[fieldType]string{
		titleField:    "Uno",
		durationField: "1:02",
		genreField:    "jazz",
		yearField:     "1999",
	})

	_, cmd := m.Update(ctrlS)
	if cmd == nil {
		t.Fatalf("Ожидалась команда после сохранения, ошибка: %s", m.err)
	}

	if p.Len() != 2 {
		t.Fatalf("Редактирование не должно менять число треков, получено %d", p.Len())
	}
	updated, _ := p.TrackAt(0)
	if updated.Title() != "Uno" || updated.DurationSeconds() != 62 || updated.Genre() != track.GenreJazz {
		t.Errorf("Трек обновлен неверно: %s", updated.DisplayText())
	}
	if year, ok := updated.Year(); !ok || year != 1999 {
		t.Errorf("Ожидался год 1999, получено %d (%v)", year, ok)
	}
	if saved != 1 {
		t.Errorf("Ожидалось одно сохранение, получено %d", saved)
	}
	if m.success == "" || m.err != "" {
		t.Errorf("Ожидалось сообщение об успехе, err=%q", m.err)
	}
}

func TestAddNewTrack(t *testing.T) {
	p := playlist.New("test")
	m := NewModel(p, NewTrackIndex, track.Track{}, nil)

	if !strings.Contains(m.View(), "Новый трек") {
		t.Error("Заголовок должен сообщать о новом треке")
	}

	setFields(m, map[fieldType]string{
		titleField:    "Imagine",
		artistField:   "John Lennon",
		durationField: "183",
	})
	m.Update(ctrlS)

	if p.Len() != 1 {
		t.Fatalf("Ожидался 1 трек, получено %d (ошибка: %s)", p.Len(), m.err)
	}
	added, _ := p.TrackAt(0)
	if added.Genre() != track.GenreOther {
		t.Errorf("Пустой жанр должен стать Другое, получено %s", added.Genre())
	}
	if _, ok := added.Year(); ok {
		t.Error("Пустой год не должен задаваться")
	}

	// Повторное сохранение обновляет уже добавленный трек
	m.Update(ctrlS)
	if p.Len() != 1 {
		t.Errorf("Повторное сохранение не должно добавлять дубликат, треков: %d", p.Len())
	}
}

func TestSaveValidation(t *testing.T) {
	tests := []struct {
		name    string
		values  map[fieldType]string
		message string
	}{
		{
			name:    "пустое название",
			values:  map[fieldType]string{artistField: "A", durationField: "03:00"},
			message: "Название",
		},
		{
			name:    "пустой исполнитель",
			values:  map[fieldType]string{titleField: "T", durationField: "03:00"},
			message: "Исполнитель",
		},
		{
			name:    "неверная длительность",
			values:  map[fieldType]string{titleField: "T", artistField: "A", durationField: "3 минуты"},
			message: "неверный формат длительности",
		},
		{
			name:    "нулевая длительность",
			values:  map[fieldType]string{titleField: "T", artistField: "A", durationField: "00:00"},
			message: "положительной",
		},
		{
			name:    "неизвестный жанр",
			values:  map[fieldType]string{titleField: "T", artistField: "A", durationField: "03:00", genreField: "Шансон"},
			message: "неизвестный жанр",
		},
		{
			name:    "год вне диапазона",
			values:  map[fieldType]string{titleField: "T", artistField: "A", durationField: "03:00", yearField: "1801"},
			message: "некорректный год",
		},
		{
			name:    "год не число",
			values:  map[fieldType]string{titleField: "T", artistField: "A", durationField: "03:00", yearField: "давно"},
			message: "некорректный год",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := playlist.New("test")
			m := NewModel(p, NewTrackIndex, track.Track{}, nil)
			setFields(m, test.values)

			_, cmd := m.Update(ctrlS)
			if cmd != nil {
				t.Error("При ошибке проверки команда не ожидается")
			}
			if !strings.Contains(m.err, test.message) {
				t.Errorf("Ожидалась ошибка с '%s', получено: %s", test.message, m.err)
			}
			if p.Len() != 0 {
				t.Error("Некорректный трек не должен добавляться")
			}
		})
	}
}

func TestSaveFileError(t *testing.T) {
	p := playlist.New("test")
	m := NewModel(p, NewTrackIndex, track.Track{}, func() error { return errors.New("нет доступа") })
	setFields(m, map[fieldType]string{titleField: "T", artistField: "A", durationField: "03:00"})

	m.Update(ctrlS)

	if !strings.Contains(m.err, "нет доступа") {
		t.Errorf("Ожидалась ошибка сохранения, получено: %s", m.err)
	}
}

func TestFocusNavigation(t *testing.T) {
	m := NewModel(playlist.New("test"), NewTrackIndex, track.Track{}, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != int(numFields) {
		t.Errorf("Shift+Tab с первого поля должен перейти на кнопку, фокус: %d", m.focus)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 || !m.inputs[titleField].Focused() {
		t.Errorf("Tab с кнопки должен вернуться к первому полю, фокус: %d", m.focus)
	}
}

func TestEscGoesBack(t *testing.T) {
	m := NewModel(playlist.New("test"), NewTrackIndex, track.Track{}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Ожидалась команда возврата")
	}
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Errorf("Ожидалось GoBackMsg, получено %T", cmd())
	}
}
