package playlist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazadus/go-playlist/internal/track"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи тестового файла: %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "playlist.json")

	original := New("Моя музыкальная коллекция")
	original.AddTracks(
		mustTrack(t, "Bohemian Rhapsody", "Queen", 355, track.WithGenre(track.GenreRock), track.WithYear(1975)),
		mustTrack(t, "Без года", "Неизвестный", 61),
		mustTrack(t, "Crazy in Love", "Beyoncé", 236, track.WithGenre(track.GenreRnB), track.WithYear(2003)),
	)

	if err := original.SaveToFile(path); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}

	loaded := New("Пустой")
	report, err := loaded.LoadFromFile(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}

	if report.Loaded != 3 || len(report.Skipped) != 0 {
		t.Errorf("Ожидалось 3 загруженных трека без пропусков, получено %d и %d", report.Loaded, len(report.Skipped))
	}
	if loaded.Name() != original.Name() {
		t.Errorf("Ожидалось название %s, получено %s", original.Name(), loaded.Name())
	}

	want := original.Tracks()
	got := loaded.Tracks()
	if len(got) != len(want) {
		t.Fatalf("Ожидалось %d треков, получено %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("Трек %d отличается: %v != %v", i, want[i], got[i])
		}
	}
	if _, ok := got[1].Year(); ok {
		t.Error("Трек без года должен остаться без года")
	}
}

func TestSaveFormat(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "playlist.json")

	p := New("Коллекция")
	p.AddTracks(
		mustTrack(t, "Crazy in Love", "Beyoncé", 236, track.WithGenre(track.GenreRnB), track.WithYear(2003)),
		mustTrack(t, "Без года", "Аноним", 61),
	)
	if err := p.SaveToFile(path); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Ошибка чтения файла: %v", err)
	}
	content := string(data)

	expectedStrings := []string{
		`"playlist_name": "Коллекция"`,
		`"genre": "R&B"`,
		`"genre": "Другое"`,
		`"duration": "03:56"`,
		`"year": 2003`,
		`"year": null`,
		"\n  \"tracks\": [",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(content, expected) {
			t.Errorf("Файл не содержит ожидаемую строку '%s':\n%s", expected, content)
		}
	}
	if strings.Contains(content, `\u`) {
		t.Errorf("Символы не должны экранироваться:\n%s", content)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Сохраненный файл не является корректным JSON: %v", err)
	}
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "playlist.json")

	writeFile(t, path, `{
  "playlist_name": "Смешанный",
  "tracks": [
    {"title": "Good One", "artist": "A", "duration": "03:00", "genre": "Поп", "year": 1999},
    {"title": "Bad", "artist": "B", "duration": "bad", "genre": "Рок", "year": null},
    {"title": "Good Two", "artist": "C", "duration": "1:00:00", "genre": "Шансон"}
  ]
}`)

	p := New("Старое название")
	report, err := p.LoadFromFile(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}

	if report.Loaded != 2 {
		t.Errorf("Ожидалось 2 загруженных трека, получено %d", report.Loaded)
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("Ожидался 1 пропущенный трек, получено %d", len(report.Skipped))
	}
	if report.Skipped[0].Index != 1 {
		t.Errorf("Ожидался пропуск записи 1, получено %d", report.Skipped[0].Index)
	}
	var fErr *track.FormatError
	if !errors.As(report.Skipped[0].Err, &fErr) {
		t.Errorf("Ожидалась ошибка формата длительности, получено: %v", report.Skipped[0].Err)
	}

	assertTitles(t, p.Tracks(), "Good One", "Good Two")
	if p.Name() != "Смешанный" {
		t.Errorf("Ожидалось название 'Смешанный', получено %s", p.Name())
	}
	second, _ := p.TrackAt(1)
	if second.Genre() != track.GenreOther {
		t.Errorf("Неизвестный жанр должен стать Другое, получено %s", second.Genre())
	}
}

func TestLoadSkipsRecordsWithWrongTypes(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "playlist.json")

	writeFile(t, path, `{"tracks": [
		{"title": "Typed", "artist": "A", "duration": "03:00", "year": "1999"},
		"not a record",
		{"title": "", "artist": "A", "duration": "03:00"},
		{"title": "Old", "artist": "A", "duration": "03:00", "year": 1801},
		{"title": "Ok", "artist": "A", "duration": "03:00"}
	]}`)

	p := New("Название по умолчанию")
	report, err := p.LoadFromFile(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}

	if len(report.Skipped) != 4 || report.Loaded != 1 {
		t.Errorf("Ожидалось 1 загруженный и 4 пропущенных, получено %d и %d", report.Loaded, len(report.Skipped))
	}
	// Без playlist_name название сохраняется
	if p.Name() != "Название по умолчанию" {
		t.Errorf("Название не должно меняться, получено %s", p.Name())
	}
}

func TestLoadNotFound(t *testing.T) {
	p := New("test")
	p.AddTrack(mustTrack(t, "Keep", "Me", 60))

	_, err := p.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))

	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("Ожидалась PersistenceError, получено: %v", err)
	}
	if pErr.Kind != KindNotFound {
		t.Errorf("Ожидался вид ошибки 'файл не найден', получено: %s", pErr.Kind)
	}
	if p.Len() != 1 {
		t.Error("Состояние не должно меняться при ошибке загрузки")
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"пустой файл", ""},
		{"обрезанный JSON", `{"playlist_name": "x", "tracks": [`},
		{"массив вместо объекта", `[1, 2, 3]`},
		{"null", `null`},
		{"tracks не массив", `{"tracks": "oops"}`},
		{"tracks объект", `{"tracks": {"title": "x"}}`},
		{"playlist_name не строка", `{"playlist_name": 5, "tracks": []}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "broken.json")
			writeFile(t, path, test.content)

			p := New("test")
			p.AddTrack(mustTrack(t, "Keep", "Me", 60))

			_, err := p.LoadFromFile(path)
			var pErr *PersistenceError
			if !errors.As(err, &pErr) {
				t.Fatalf("Ожидалась PersistenceError, получено: %v", err)
			}
			if pErr.Kind != KindMalformed {
				t.Errorf("Ожидался вид ошибки 'ошибка формата JSON', получено: %s", pErr.Kind)
			}
			if p.Len() != 1 || p.Name() != "test" {
				t.Error("Состояние не должно меняться при ошибке разбора")
			}
		})
	}
}

func TestLoadDirectoryIsIOError(t *testing.T) {
	p := New("test")
	_, err := p.LoadFromFile(t.TempDir())

	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("Ожидалась PersistenceError, получено: %v", err)
	}
	if pErr.Kind != KindIO {
		t.Errorf("Ожидался вид ошибки 'ошибка ввода-вывода', получено: %s", pErr.Kind)
	}
}

func TestLoadNullTracks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	writeFile(t, path, `{"playlist_name": "Пустой", "tracks": null}`)

	p := New("test")
	p.AddTrack(mustTrack(t, "Old", "Track", 60))

	report, err := p.LoadFromFile(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}
	if report.Loaded != 0 || p.Len() != 0 {
		t.Errorf("Ожидался пустой плейлист, получено %d треков", p.Len())
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	p := New("test")
	err := p.SaveToFile(filepath.Join(t.TempDir(), "no", "such", "dir", "playlist.json"))

	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("Ожидалась PersistenceError, получено: %v", err)
	}
	if pErr.Op != "save" {
		t.Errorf("Ожидалась операция save, получено %s", pErr.Op)
	}
}
