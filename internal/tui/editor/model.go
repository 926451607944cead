// Package editor содержит модель экрана редактирования трека для TUI
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// NewTrackIndex используется вместо индекса, когда редактор создает новый трек
const NewTrackIndex = -1

// TrackSavedMsg отправляется когда трек успешно сохранен
type TrackSavedMsg struct{}

// GoBackMsg отправляется при выходе из редактора
type GoBackMsg struct{}

// fieldType определяет тип поля для редактирования
type fieldType int

const (
	titleField fieldType = iota
	artistField
	durationField
	genreField
	yearField
	numFields
)

var fieldLabels = [numFields]string{"Название:", "Исполнитель:", "Длительность:", "Жанр:", "Год:"}

// Model представляет модель экрана редактирования трека
type Model struct {
	playlist *playlist.Playlist
	index    int
	inputs   []textinput.Model
	focus    int
	err      string
	success  string
	saveFunc func() error // Функция для сохранения данных в файл
}

// NewModel создает редактор трека с индексом index.
// Для нового трека передается NewTrackIndex и пустой трек.
func NewModel(p *playlist.Playlist, index int, trackToEdit track.Track, saveFunc func() error) *Model {
	inputs := make([]textinput.Model, numFields)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].PromptStyle = blurredStyle
		inputs[i].TextStyle = blurredStyle
	}

	inputs[titleField].Placeholder = "Введите название трека"
	inputs[artistField].Placeholder = "Введите исполнителя"
	inputs[durationField].Placeholder = "MM:SS, HH:MM:SS или секунды"
	inputs[genreField].Placeholder = strings.Join(track.GenreNames(), ", ")
	inputs[yearField].Placeholder = fmt.Sprintf("%d-%d, можно оставить пустым", track.MinYear, track.MaxYear)

	if index != NewTrackIndex {
		inputs[titleField].SetValue(trackToEdit.Title())
		inputs[artistField].SetValue(trackToEdit.Artist())
		inputs[durationField].SetValue(trackToEdit.FormattedDuration())
		inputs[genreField].SetValue(trackToEdit.Genre().Label())
		if year, ok := trackToEdit.Year(); ok {
			inputs[yearField].SetValue(strconv.Itoa(year))
		}
	}

	inputs[titleField].Focus()
	inputs[titleField].PromptStyle = focusedStyle
	inputs[titleField].TextStyle = focusedStyle

	return &Model{
		playlist: p,
		index:    index,
		inputs:   inputs,
		saveFunc: saveFunc,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.saveTrack()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Enter на кнопке "Сохранить"
			if s == "enter" && m.focus == len(m.inputs) {
				return m, m.saveTrack()
			}

			if s == "up" || s == "shift+tab" {
				m.focus--
			} else {
				m.focus++
			}

			if m.focus > len(m.inputs) {
				m.focus = 0
			} else if m.focus < 0 {
				m.focus = len(m.inputs)
			}

			return m, m.updateFocus()
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	// Обновляем активное поле ввода
	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focus {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
	return tea.Batch(cmds...)
}

// buildTrack собирает трек из значений полей
func (m *Model) buildTrack() (track.Track, error) {
	value := func(f fieldType) string {
		return strings.TrimSpace(m.inputs[f].Value())
	}

	duration, err := track.ParseDurationInput(value(durationField))
	if err != nil {
		return track.Track{}, err
	}

	opts := make([]track.Option, 0, 2)
	if genreText := value(genreField); genreText != "" {
		genre, err := track.ParseGenre(genreText)
		if err != nil {
			return track.Track{}, err
		}
		opts = append(opts, track.WithGenre(genre))
	}
	if yearText := value(yearField); yearText != "" {
		year, err := strconv.Atoi(yearText)
		if err != nil {
			return track.Track{}, fmt.Errorf("%w: '%s'", track.ErrYearOutOfRange, yearText)
		}
		opts = append(opts, track.WithYear(year))
	}

	return track.New(value(titleField), value(artistField), duration, opts...)
}

// saveTrack проверяет поля, обновляет плейлист и сохраняет его в файл.
// При успехе возвращает команду возврата к списку через секунду.
func (m *Model) saveTrack() tea.Cmd {
	m.success = ""

	t, err := m.buildTrack()
	if err != nil {
		m.err = describeError(err)
		return nil
	}

	if m.index == NewTrackIndex {
		m.playlist.AddTrack(t)
		m.index = m.playlist.Len() - 1
	} else if !m.playlist.ReplaceTrackAt(m.index, t) {
		m.err = "Трек больше не существует в плейлисте"
		return nil
	}

	if m.saveFunc != nil {
		if err := m.saveFunc(); err != nil {
			m.err = fmt.Sprintf("Ошибка сохранения в файл: %v", err)
			return nil
		}
	}

	m.err = ""
	m.success = "Трек успешно сохранен!"

	return tea.Batch(
		func() tea.Msg { return TrackSavedMsg{} },
		tea.Tick(time.Second, func(time.Time) tea.Msg {
			return GoBackMsg{}
		}),
	)
}

// describeError переводит ошибку проверки трека в сообщение для пользователя
func describeError(err error) string {
	var vErr *track.ValidationError
	if errors.As(err, &vErr) {
		switch vErr.Field {
		case "title":
			return "Поле 'Название' не может быть пустым"
		case "artist":
			return "Поле 'Исполнитель' не может быть пустым"
		case "duration":
			return "Длительность должна быть положительной"
		}
	}
	return fmt.Sprintf("Ошибка: %v", err)
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	heading := "Новый трек"
	if m.index != NewTrackIndex {
		heading = fmt.Sprintf("Редактирование трека #%d", m.index+1)
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	saveButton := "[ Сохранить ]"
	if m.focus == len(m.inputs) {
		saveButton = focusedStyle.Render(saveButton)
	} else {
		saveButton = blurredStyle.Render(saveButton)
	}
	b.WriteString(saveButton)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	if m.success != "" {
		b.WriteString(successStyle.Render(m.success))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Ctrl+S: сохранить • Esc: отмена"))

	return b.String()
}
