package cmd

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/teamport/log"
	"github.com/ardnew/teamport/team"
)

// viewHolder names the holder of a team shown by [View].
const viewHolder = "viewer"

// View shows a parsed team in an interactive table.
type View struct {
	Input `embed:""`

	programOptions []tea.ProgramOption `kong:"-"`
}

// Run executes the view command.
func (c *View) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	run := runID()
	logger := log.With(slog.String("run", run))

	defer func(err *error) {
		if *err != nil {
			*err = ErrView.Wrap(*err).With(slog.String("run", run))
		}
	}(&err)

	tm, err := c.load(ctx, logger)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(stdout(ctx)),
		tea.WithAltScreen(),
	}

	// The export already consumed stdin; read keys from the terminal.
	if c.Source == stdinSource {
		opts = append(opts, tea.WithInputTTY())
	}

	opts = append(opts, c.programOptions...)

	_, err = tea.NewProgram(newViewModel(ctx, c.Source, tm), opts...).Run()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "team loaded",
		slog.Int("entries", len(tm)),
		slog.String("holder", viewHolder),
	)

	return nil
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// viewChrome is the number of lines used around the table: title, detail
// panel border, and hint.
const viewChrome = 4

var viewColumns = []table.Column{
	{Title: "#", Width: 2},
	{Title: "Species", Width: 14},
	{Title: "Form", Width: 8},
	{Title: "Item", Width: 16},
	{Title: "Ability", Width: 14},
	{Title: "Nature", Width: 8},
	{Title: "Lv", Width: 3},
	{Title: "Moves", Width: 40},
}

// viewModel is the Bubble Tea model for the view command.
type viewModel struct {
	source string
	team   team.Team
	table  table.Model
	detail []string // formatted export block per entry
}

func newViewModel(ctx context.Context, source string, tm team.Team) viewModel {
	rows := make([]table.Row, len(tm))
	detail := make([]string, len(tm))

	for i, e := range tm {
		rows[i] = entryRow(i, e)

		var sb strings.Builder
		_ = team.Team{e}.Format(ctx, &sb)
		detail[i] = strings.TrimRight(sb.String(), "\n")
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("4"))

	t := table.New(
		table.WithColumns(viewColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(len(rows), 1)+1),
		table.WithStyles(styles),
	)

	return viewModel{
		source: source,
		team:   tm,
		table:  t,
		detail: detail,
	}
}

func entryRow(i int, e *team.Entry) table.Row {
	var item, ability, nature string

	if e.HeldItem != nil {
		item = e.HeldItem.Name
	}

	if e.Ability != nil {
		ability = e.Ability.Name
	}

	if e.Nature != nil {
		nature = e.Nature.Name
	}

	moves := make([]string, len(e.Moves))
	for j, m := range e.Moves {
		moves[j] = m.Name
	}

	return table.Row{
		strconv.Itoa(i + 1),
		e.Species.Name,
		e.Form,
		item,
		ability,
		nature,
		strconv.Itoa(e.Level),
		strings.Join(moves, ", "),
	}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Leave room for the detail panel of the tallest entry.
		rows := msg.Height - viewChrome - m.detailHeight()
		m.table.SetHeight(max(rows, 2))
		m.table.SetWidth(msg.Width)

		return m, nil
	}

	var cmd tea.Cmd

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m viewModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.source + " (" + strconv.Itoa(len(m.team)) + " entries)"))
	sb.WriteByte('\n')
	sb.WriteString(m.table.View())
	sb.WriteByte('\n')

	if i := m.table.Cursor(); i >= 0 && i < len(m.detail) {
		sb.WriteString(detailStyle.Render(m.detail[i]))
		sb.WriteByte('\n')
	}

	sb.WriteString(hintStyle.Render("↑/↓ select • q quit"))

	return sb.String()
}

func (m viewModel) detailHeight() int {
	n := 0
	for _, d := range m.detail {
		n = max(n, lipgloss.Height(d))
	}

	return n
}
