package main

import (
	"fmt"
	"time"

	"nitvon/internal/config"
	"nitvon/internal/game"
	"nitvon/internal/market"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const tuiTradeAmount = 50

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	gainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))

	helpTUIStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

type tickMsg time.Time

type dashboardModel struct {
	store      *game.Store
	sim        *market.Simulator
	desk       *market.Desk
	news       *market.Ticker
	table      table.Model
	every      time.Duration
	statusLine string
	headline   market.Headline
}

func newDashboardModel(store *game.Store, sim *market.Simulator, every time.Duration) dashboardModel {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Symbol", Width: 8},
		{Title: "Name", Width: 16},
		{Title: "Price", Width: 14},
		{Title: "Change", Width: 9},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#3C3C3C")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#EEEEEE")).
		Background(lipgloss.Color("#5F5F87")).
		Bold(true)
	t.SetStyles(styles)

	news := market.NewTicker(0)
	m := dashboardModel{
		store:      store,
		sim:        sim,
		desk:       market.NewDesk(sim, store, 0),
		news:       news,
		table:      t,
		every:      every,
		statusLine: "Pick a coin and press b to buy or s to sell.",
		headline:   news.Next(),
	}
	m.refreshRows()
	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return m.tick()
}

func (m dashboardModel) tick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *dashboardModel) refreshRows() {
	quotes := m.sim.Quotes()
	rows := make([]table.Row, 0, len(quotes))
	for _, q := range quotes {
		change := fmt.Sprintf("%+.2f%%", q.Change)
		if q.Change >= 0 {
			change = gainStyle.Render(change)
		} else {
			change = lossStyle.Render(change)
		}
		rows = append(rows, table.Row{q.Icon, q.Symbol, q.Name, formatMoney(q.Price), change})
	}
	m.table.SetRows(rows)
}

func (m *dashboardModel) trade(typ game.TradeType) {
	row := m.table.SelectedRow()
	if row == nil {
		return
	}
	symbol := row[1]
	out, err := m.desk.Execute(symbol, typ, tuiTradeAmount)
	if err != nil {
		m.statusLine = lossStyle.Render(err.Error())
		return
	}
	verdict := fmt.Sprintf("%s %s for $%d: %+.2f (+%d XP)",
		typ, symbol, tuiTradeAmount, out.Profit, out.XPGained)
	if out.Profit > 0 {
		m.statusLine = gainStyle.Render(verdict)
	} else {
		m.statusLine = lossStyle.Render(verdict)
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "b":
			m.trade(game.TradeBuy)
			return m, nil
		case "s":
			m.trade(game.TradeSell)
			return m, nil
		}

	case tickMsg:
		// The level-up banner lives for one tick.
		if m.store.Snapshot().ShowLevelUpModal {
			m.store.SetShowLevelUpModal(false)
		}
		m.sim.Tick()
		m.refreshRows()
		m.headline = m.news.Next()
		return m, m.tick()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) View() string {
	s := m.store.Snapshot()
	p := s.Player

	profile := fmt.Sprintf("%s  |  Lv %d %s  |  %d XP\nPortfolio %s   Coins %d   Streak %d",
		p.Name, p.Level, p.Rank, p.XP, formatMoney(p.Portfolio), p.Coins, s.Stats.CurrentStreak)
	if s.ShowLevelUpModal {
		profile += "\n" + titleStyle.Render(fmt.Sprintf("LEVEL UP! You are now level %d.", p.Level))
	}

	sentiment := statusStyle
	switch m.headline.Sentiment {
	case "bullish":
		sentiment = gainStyle
	case "bearish":
		sentiment = lossStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("NITVON MARKET"),
		panelStyle.Render(profile),
		m.table.View(),
		sentiment.Render("NEWS: "+m.headline.Text),
		statusStyle.Render(m.statusLine),
		helpTUIStyle.Render("up/down: pick coin  b: buy $50  s: sell $50  q: quit"),
	) + "\n"
}

func newPlayCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the live trading dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			store.StartGame()
			sim := market.NewSimulator(cfg.MarketVolatility, 0, nil)
			sim.Tick()

			p := tea.NewProgram(newDashboardModel(store, sim, cfg.MarketTickEvery), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
