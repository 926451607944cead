package track

// Record форма трека для записи в JSON
type Record struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	Genre    string `json:"genre"`
	Year     *int   `json:"year"`
}

// ToRecord сериализует трек. Жанр записывается отображаемым названием.
func (t Track) ToRecord() Record {
	rec := Record{
		Title:    t.title,
		Artist:   t.artist,
		Duration: t.FormattedDuration(),
		Genre:    t.genre.Label(),
	}
	if t.hasYear {
		year := t.year
		rec.Year = &year
	}
	return rec
}

// FromRecord восстанавливает трек из записи.
// Неизвестный или пустой жанр превращается в GenreOther без ошибки,
// год проверяется так же, как в New.
func FromRecord(rec Record) (Track, error) {
	duration, err := ParseDuration(rec.Duration)
	if err != nil {
		return Track{}, err
	}

	opts := []Option{WithGenre(GenreFromLabel(rec.Genre))}
	if rec.Year != nil {
		opts = append(opts, WithYear(*rec.Year))
	}
	return New(rec.Title, rec.Artist, duration, opts...)
}
