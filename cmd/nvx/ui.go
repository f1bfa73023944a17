package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nitvon/internal/events"
	"nitvon/internal/game"
	"nitvon/internal/leaderboard"
	"nitvon/internal/market"
	"nitvon/internal/scamgame"
	"nitvon/internal/shop"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func printInfo(msg string) {
	neutral.Println(msg)
}

func promptRequired(label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		printWarn(label + " is required.")
	}
}

func promptChoice(label string, options []string, defaultValue string) (string, error) {
	normalized := make(map[string]struct{}, len(options))
	for _, opt := range options {
		normalized[strings.ToLower(strings.TrimSpace(opt))] = struct{}{}
	}
	for {
		fmt.Printf("%s (%s) [%s]: ", label, strings.Join(options, "/"), defaultValue)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.ToLower(strings.TrimSpace(text))
		if text == "" {
			text = strings.ToLower(strings.TrimSpace(defaultValue))
		}
		if _, ok := normalized[text]; ok {
			return text, nil
		}
		printWarn("Invalid option. Please pick one of the listed values.")
	}
}

func promptFloat(label string, min float64) (float64, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			printWarn("Enter a valid number.")
			continue
		}
		if v <= min {
			printWarn(fmt.Sprintf("Value must be > %.2f", min))
			continue
		}
		return v, nil
	}
}

func promptInt(label string, min int) (int, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			printWarn("Enter a whole number.")
			continue
		}
		if v < min {
			printWarn(fmt.Sprintf("Value must be >= %d", min))
			continue
		}
		return v, nil
	}
}

func argOrPrompt(args []string, idx int, label string) (string, error) {
	if idx < len(args) && strings.TrimSpace(args[idx]) != "" {
		return args[idx], nil
	}
	return promptRequired(label)
}

func argOrChoice(args []string, idx int, label string, options []string, defaultValue string) (string, error) {
	if idx < len(args) {
		v := strings.ToLower(strings.TrimSpace(args[idx]))
		for _, opt := range options {
			if v == opt {
				return v, nil
			}
		}
		return "", fmt.Errorf("%s must be one of: %s", strings.ToLower(label), strings.Join(options, ", "))
	}
	return promptChoice(label, options, defaultValue)
}

func argOrFloat(args []string, idx int, label string, min float64) (float64, error) {
	if idx < len(args) {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[idx]), 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number", strings.ToLower(label))
		}
		if v <= min {
			return 0, fmt.Errorf("%s must be > %.2f", strings.ToLower(label), min)
		}
		return v, nil
	}
	return promptFloat(label, min)
}

func renderIntro(s game.GameState) {
	accent.Println("\n== WELCOME TO NITVON ==")
	fmt.Println("Nitvon the penguin is your guide to the wild world of crypto.")
	fmt.Printf("You start with %s in your portfolio and %d coins.\n",
		formatMoney(s.Player.Portfolio), s.Player.Coins)
	fmt.Println("Trade smart, dodge the scams, and climb the ranks.")
	fmt.Printf("Sessions played so far: %d\n\n", s.Stats.GamesPlayed)
}

func renderStatus(s game.GameState) {
	p := s.Player
	accent.Printf("\n== %s ==\n", strings.ToUpper(p.Name))
	fmt.Printf("Rank:       %s\n", p.Rank)
	fmt.Printf("Level:      %d (%d/%d XP)\n", p.Level, p.XP, game.NextLevelXP(p.Level))
	fmt.Printf("Progress:   %.1f%% to next level\n", game.XPProgress(p.XP, p.Level))
	fmt.Printf("Portfolio:  %s\n", colorizeMoney(p.Portfolio, false))
	fmt.Printf("Coins:      %d\n", p.Coins)
	fmt.Printf("Trades:     %d total, %d wins (%d%% success)\n",
		p.TotalTrades, p.SuccessfulTrades, game.SuccessRate(p))
	fmt.Printf("Streak:     %d (best %d)\n", s.Stats.CurrentStreak, s.Stats.BestTradingStreak)
	fmt.Printf("High water: %s\n", formatMoney(s.Stats.HighestPortfolio))

	unlocked := 0
	for _, a := range s.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	fmt.Printf("Badges:     %d/%d unlocked\n\n", unlocked, len(s.Achievements))
}

func renderTradeOutcome(out market.TradeOutcome, s game.GameState) {
	t := out.Trade
	accent.Printf("\n== %s %s ==\n", strings.ToUpper(string(t.Type)), t.Symbol)
	fmt.Printf("Amount:    %s @ %s\n", formatMoney(t.Amount), formatMoney(t.Price))
	fmt.Printf("Result:    %s\n", colorizeMoney(out.Profit, true))
	fmt.Printf("XP gained: +%d\n", out.XPGained)
	fmt.Printf("Portfolio: %s\n", formatMoney(s.Player.Portfolio))
	if out.Profit > 0 {
		printSuccess(out.Message)
	} else {
		printWarn(out.Message)
	}
	fmt.Println()
}

func renderHistory(trades []game.Trade) {
	accent.Println("\n== TRADE HISTORY ==")
	if len(trades) == 0 {
		printInfo("No trades yet. Try: nvx trade buy BTC 50")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("When", "Side", "Symbol", "Amount", "Price", "P/L")
	for _, t := range trades {
		table.Append(
			t.Timestamp.Local().Format("2006-01-02 15:04"),
			strings.ToUpper(string(t.Type)),
			t.Symbol,
			formatMoney(t.Amount),
			formatMoney(t.Price),
			colorizeMoney(t.Profit, true),
		)
	}
	table.Render()
	fmt.Println()
}

func renderShopItems(items []shop.Item) {
	accent.Println("\n== NITVON SHOP ==")
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Category", "Rarity", "Price")
	for _, it := range items {
		table.Append(it.ID, it.Name, string(it.Category), string(it.Rarity),
			fmt.Sprintf("%d coins", it.Price))
	}
	table.Render()
	fmt.Println()
}

func renderLeaderboard(entries []leaderboard.Entry) {
	accent.Println("\n== TRADER STANDINGS ==")
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("#", "Trader", "Rank", "Level", "Portfolio")
	for _, e := range entries {
		name := e.Name
		if e.IsCurrentPlayer {
			name = accent.Sprint(name + " (you)")
		}
		table.Append(strconv.Itoa(e.Position), name, e.Rank,
			strconv.Itoa(e.Level), formatMoney(e.Portfolio))
	}
	table.Render()
	fmt.Println()
}

func renderAchievements(achievements []game.Achievement) {
	accent.Println("\n== ACHIEVEMENTS ==")
	for _, a := range achievements {
		mark := neutral.Sprint("[ ]")
		when := ""
		if a.Unlocked {
			mark = success.Sprint("[x]")
			if a.UnlockedAt != nil {
				when = " (" + a.UnlockedAt.Local().Format("2006-01-02") + ")"
			}
		}
		fmt.Printf("%s %s %s%s\n    %s\n", mark, a.Icon, a.Name, when, a.Description)
	}
	fmt.Println()
}

func renderSettings(s game.GameSettings) {
	accent.Println("\n== SETTINGS ==")
	fmt.Printf("Sound:         %s\n", onOff(s.SoundEnabled))
	fmt.Printf("Music:         %s\n", onOff(s.MusicEnabled))
	fmt.Printf("Notifications: %s\n", onOff(s.Notifications))
	fmt.Printf("Difficulty:    %s\n", s.Difficulty)
	fmt.Printf("Theme:         %s\n\n", s.Theme)
}

func renderScamProject(p scamgame.Project) {
	accent.Printf("\n== SCAM OR LEGIT: %s ==\n", p.Name)
	fmt.Println(p.Description)
	fmt.Println()
	for _, f := range p.Features {
		fmt.Printf("  * %s\n", f)
	}
	fmt.Println()
}

func renderScamVerdict(v scamgame.Verdict) {
	if v.Correct {
		printSuccess(fmt.Sprintf("Correct call! +%d XP, +%d coins.", v.XPGained, v.CoinsGained))
	} else {
		printWarn(fmt.Sprintf("Wrong call. +%d XP for trying.", v.XPGained))
	}
	if v.Project.IsScam && len(v.Project.RedFlags) > 0 {
		danger.Println("Red flags you should have spotted:")
		for _, f := range v.Project.RedFlags {
			fmt.Printf("  ! %s\n", f)
		}
	}
	fmt.Println()
}

func renderEvent(e events.Event) {
	accent.Printf("\n== %s ==\n", strings.ToUpper(e.Title))
	fmt.Printf("[%s / %s] %s\n\n", e.Type, e.Severity, e.Description)
	for i, c := range e.Choices {
		fmt.Printf("  %d. %s\n     %s\n", i+1, c.Text, c.Description)
	}
	fmt.Println()
}

func renderEventResult(res events.Result, s game.GameState) {
	fmt.Printf("%s\n", res.Choice.Description)
	fmt.Printf("XP gained:  +%d\n", res.XPGained)
	fmt.Printf("Portfolio:  %s (%s)\n\n",
		formatMoney(s.Player.Portfolio), colorizeMoney(res.PortfolioDelta, true))
}

func colorizeMoney(v float64, signed bool) string {
	text := formatMoney(v)
	if signed && v > 0 {
		text = "+" + text
	}
	switch {
	case v > 0:
		return success.Sprint(text)
	case v < 0:
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}

func formatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := int64(v)
	frac := int64((v-float64(whole))*100 + 0.5)
	if frac >= 100 {
		whole++
		frac -= 100
	}
	return fmt.Sprintf("%s$%s.%02d", sign, comma(whole), frac)
}

func comma(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
