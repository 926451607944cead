// Package playlist содержит упорядоченную коллекцию треков и операции над ней
package playlist

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/hazadus/go-playlist/internal/track"
)

// Playlist именованная упорядоченная коллекция треков.
// Дубликаты допустимы и различаются по позиции.
type Playlist struct {
	name   string
	tracks []track.Track
}

// New создает пустой плейлист
func New(name string) *Playlist {
	return &Playlist{
		name:   name,
		tracks: make([]track.Track, 0),
	}
}

// Name возвращает название плейлиста
func (p *Playlist) Name() string {
	return p.name
}

// SetName меняет название плейлиста
func (p *Playlist) SetName(name string) {
	p.name = name
}

// Len возвращает количество треков
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Tracks возвращает копию списка треков в текущем порядке
func (p *Playlist) Tracks() []track.Track {
	result := make([]track.Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// TrackAt возвращает трек по индексу (с нуля)
func (p *Playlist) TrackAt(index int) (track.Track, bool) {
	if index < 0 || index >= len(p.tracks) {
		return track.Track{}, false
	}
	return p.tracks[index], true
}

// AddTrack добавляет трек в конец плейлиста
func (p *Playlist) AddTrack(t track.Track) {
	p.tracks = append(p.tracks, t)
}

// AddTracks добавляет несколько треков, сохраняя их порядок
func (p *Playlist) AddTracks(tracks ...track.Track) {
	for _, t := range tracks {
		p.AddTrack(t)
	}
}

// RemoveTrackAt удаляет трек по индексу (с нуля).
// Возвращает false, если индекс вне диапазона.
func (p *Playlist) RemoveTrackAt(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	return true
}

// ReplaceTrackAt заменяет трек по индексу, сохраняя его позицию.
// Возвращает false, если индекс вне диапазона.
func (p *Playlist) ReplaceTrackAt(index int, t track.Track) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks[index] = t
	return true
}

// Clear удаляет все треки
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// foldKey приводит строку к виду для сравнения без учета регистра
func foldKey(s string) string {
	return cases.Fold().String(s)
}

// normalizeArtist готовит запрос по исполнителю к сравнению
func normalizeArtist(artist string) string {
	return foldKey(strings.TrimSpace(artist))
}
