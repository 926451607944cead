package playlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hazadus/go-playlist/internal/track"
)

var errNotObject = errors.New("ожидался JSON объект плейлиста")

// FileMode права, с которыми записывается файл плейлиста
const FileMode os.FileMode = 0644

// fileData структура JSON файла плейлиста
type fileData struct {
	PlaylistName string         `json:"playlist_name"`
	Tracks       []track.Record `json:"tracks"`
}

// rawFileData используется при загрузке, чтобы разбирать записи треков по одной
type rawFileData struct {
	PlaylistName *string           `json:"playlist_name"`
	Tracks       []json.RawMessage `json:"tracks"`
}

// Encode сериализует плейлист в JSON с отступами.
// Не-ASCII символы и & записываются как есть.
func (p *Playlist) Encode() ([]byte, error) {
	data := fileData{
		PlaylistName: p.name,
		Tracks:       make([]track.Record, len(p.tracks)),
	}
	for i, t := range p.tracks {
		data.Tracks[i] = t.ToRecord()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveToFile сохраняет плейлист в JSON файл, перезаписывая его целиком
func (p *Playlist) SaveToFile(path string) error {
	data, err := p.Encode()
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Kind: KindIO, Err: err}
	}
	if err := os.WriteFile(path, data, FileMode); err != nil {
		return &PersistenceError{Op: "save", Path: path, Kind: kindOf(err), Err: err}
	}
	return nil
}

// LoadFromFile загружает плейлист из JSON файла и заменяет им текущее состояние.
// Некорректные записи треков пропускаются и перечисляются в отчете.
// При ошибке чтения или разбора файла состояние не меняется.
func (p *Playlist) LoadFromFile(path string) (*LoadReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Kind: kindOf(err), Err: err}
	}

	report, err := p.Decode(data)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Kind: KindMalformed, Err: err}
	}
	report.Path = path
	return report, nil
}

// Decode разбирает JSON плейлиста и заменяет им текущее состояние.
// Документ должен быть объектом со строковым playlist_name и массивом tracks,
// иначе весь файл считается поврежденным. Некорректные записи внутри tracks пропускаются.
func (p *Playlist) Decode(data []byte) (*LoadReport, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, errNotObject
	}

	var raw rawFileData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	report := &LoadReport{Skipped: make([]SkippedRecord, 0)}
	tracks := make([]track.Track, 0, len(raw.Tracks))
	for i, msg := range raw.Tracks {
		t, err := decodeTrack(msg)
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedRecord{Index: i, Err: err})
			continue
		}
		tracks = append(tracks, t)
	}

	if raw.PlaylistName != nil {
		p.name = *raw.PlaylistName
	}
	p.tracks = tracks

	report.Name = p.name
	report.Loaded = len(tracks)
	return report, nil
}

func decodeTrack(msg json.RawMessage) (track.Track, error) {
	var rec track.Record
	if err := json.Unmarshal(msg, &rec); err != nil {
		return track.Track{}, fmt.Errorf("ошибка разбора записи трека: %w", err)
	}
	return track.FromRecord(rec)
}

func kindOf(err error) ErrorKind {
	if errors.Is(err, fs.ErrNotExist) {
		return KindNotFound
	}
	return KindIO
}
