// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
	errorStyle        = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("196"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// TrackEditMsg отправляется при выборе трека для редактирования
type TrackEditMsg struct {
	Index int
	Track track.Track
}

// TrackAddMsg отправляется при добавлении нового трека
type TrackAddMsg struct{}

// trackItem реализует интерфейс list.Item для трека.
// index хранит позицию трека в плейлисте и не меняется при фильтрации списка.
type trackItem struct {
	index int
	track track.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.track.Artist(), i.track.Title())
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	fmt.Fprint(w, renderItem(i, index == m.Index()))
}

// renderItem форматирует строку в виде таблицы: № | Исполнитель | Название | Жанр | Год | Длительность
func renderItem(i trackItem, selected bool) string {
	year := "    "
	if y, ok := i.track.Year(); ok {
		year = fmt.Sprintf("%4d", y)
	}
	str := fmt.Sprintf("%-4d %-20s %-40s %-12s %s %s",
		i.index+1,
		utils.TruncateString(i.track.Artist(), 20),
		utils.TruncateString(i.track.Title(), 40),
		i.track.Genre().Label(),
		year,
		i.track.FormattedDuration())

	if selected {
		return selectedItemStyle.Render("> " + str)
	}
	return itemStyle.Render(str)
}

// Model представляет модель экрана списка треков
type Model struct {
	list       list.Model
	playlist   *playlist.Playlist
	saveFunc   func() error
	sortKey    int // Индекс в playlist.SortKeys(), -1 пока сортировка не выбрана
	descending bool
	status     string
	err        string
	quitting   bool
}

// NewModel создает новую модель списка треков
func NewModel(p *playlist.Playlist, saveFunc func() error) *Model {
	l := list.New(buildItems(p), trackItemDelegate{}, 0, 0)
	l.Title = p.Name()
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:     l,
		playlist: p,
		saveFunc: saveFunc,
		sortKey:  -1,
	}
}

func buildItems(p *playlist.Playlist) []list.Item {
	tracks := p.Tracks()
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{index: i, track: t}
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет данные модели без пересоздания
func (m *Model) RefreshData() {
	m.list.Title = m.playlist.Name()
	m.list.SetItems(buildItems(m.playlist))
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 5) // Оставляем место для статуса и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат строке поиска
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter", "e":
			if item, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return TrackEditMsg{Index: item.index, Track: item.track}
				}
			}
			return m, nil

		case "a":
			return m, func() tea.Msg {
				return TrackAddMsg{}
			}

		case "d":
			m.deleteSelected()
			return m, nil

		case "s":
			m.sortKey = (m.sortKey + 1) % len(playlist.SortKeys())
			m.applySort()
			return m, nil

		case "r":
			if m.sortKey < 0 {
				m.sortKey = 0
			}
			m.descending = !m.descending
			m.applySort()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) selected() (trackItem, bool) {
	item, ok := m.list.SelectedItem().(trackItem)
	return item, ok
}

// deleteSelected удаляет выбранный трек из плейлиста и сохраняет изменения
func (m *Model) deleteSelected() {
	item, ok := m.selected()
	if !ok {
		return
	}
	if !m.playlist.RemoveTrackAt(item.index) {
		m.err = "Трек уже удален"
		return
	}
	m.RefreshData()
	m.persist(fmt.Sprintf("Трек '%s' удален", item.track.Title()))
}

// applySort сортирует плейлист по текущему критерию и сохраняет порядок
func (m *Model) applySort() {
	key := playlist.SortKeys()[m.sortKey]
	m.playlist.Sort(key, m.descending)
	m.RefreshData()

	direction := "по возрастанию"
	if m.descending {
		direction = "по убыванию"
	}
	m.persist(fmt.Sprintf("Сортировка: %s, %s", key, direction))
}

func (m *Model) persist(status string) {
	if m.saveFunc != nil {
		if err := m.saveFunc(); err != nil {
			m.err = fmt.Sprintf("Ошибка сохранения в файл: %v", err)
			m.status = ""
			return
		}
	}
	m.err = ""
	m.status = status
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Треков: %d • Общая длительность: %s",
		m.playlist.Len(), utils.FormatTotalDuration(m.playlist.TotalDuration()))))
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter/e: редактировать • a: добавить • d: удалить • s: сортировка • r: обратный порядок • q: выход"))
	return b.String()
}
