package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pmakowski/twinsight/internal/app"
	"github.com/pmakowski/twinsight/internal/cli/formatter"
)

func newWatchCmd(a *App) *cobra.Command {
	var interval time.Duration
	var barWidth int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live progress chart that refreshes on an interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.IsInteractive() {
				return fmt.Errorf("watch requires an interactive terminal; use `twinsight progress` instead")
			}

			width := barWidth
			if width == 0 {
				width = a.Config.BarWidth
			}

			model := newWatchModel(a, width, interval)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "Refresh interval")
	cmd.Flags().IntVar(&barWidth, "bar-width", 0, "Bar width in cells (default from config)")

	return cmd
}

type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

var watchKeys = watchKeyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type watchRefreshMsg struct {
	content string
	err     error
}

type watchTickMsg struct{}

type watchModel struct {
	app      *App
	barWidth int
	interval time.Duration

	spinner spinner.Model
	loading bool
	content string
	err     error
}

func newWatchModel(a *App, barWidth int, interval time.Duration) *watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleHeader
	return &watchModel{
		app:      a,
		barWidth: barWidth,
		interval: interval,
		spinner:  sp,
		loading:  true,
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd(), m.tickCmd())
}

func (m *watchModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.app.Monitor.Run(context.Background(), app.NewMonitorRequest())
		if err != nil {
			return watchRefreshMsg{err: err}
		}
		return watchRefreshMsg{content: formatter.RenderGantt(resp, m.barWidth)}
	}
}

func (m *watchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return watchTickMsg{} })
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, watchKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, watchKeys.Refresh):
			m.loading = true
			return m, m.refreshCmd()
		}
		return m, nil

	case watchRefreshMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.content = msg.content
		}
		return m, nil

	case watchTickMsg:
		m.loading = true
		return m, tea.Batch(m.refreshCmd(), m.tickCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *watchModel) View() string {
	var status string
	switch {
	case m.err != nil:
		status = formatter.StyleLightRed.Render("error: " + m.err.Error())
	case m.loading:
		status = m.spinner.View() + formatter.Dim(" refreshing…")
	default:
		status = formatter.Dim(fmt.Sprintf("refreshing every %s", m.interval))
	}

	help := formatter.Dim("r refresh · q quit")

	return m.content + "\n" + status + "\n" + help + "\n"
}
