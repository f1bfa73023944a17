package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nitvon/internal/config"
	"nitvon/internal/events"
	"nitvon/internal/game"
	"nitvon/internal/leaderboard"
	"nitvon/internal/market"
	"nitvon/internal/scamgame"
	"nitvon/internal/shop"
	"nitvon/internal/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadGameFromEnv()

	root := &cobra.Command{
		Use:          "nvx",
		Short:        "Nitvon crypto-trading game",
		SilenceUsage: true,
	}

	root.AddCommand(
		newStartCmd(&cfg),
		newStatusCmd(&cfg),
		newTradeCmd(&cfg),
		newHistoryCmd(&cfg),
		newShopCmd(&cfg),
		newLeaderboardCmd(&cfg),
		newQuizCmd(&cfg),
		newEventCmd(&cfg),
		newAchievementsCmd(&cfg),
		newSettingsCmd(&cfg),
		newResetCmd(&cfg),
		newPlayCmd(&cfg),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openGame loads the saved state into a store wired for persistence.
// The returned closer flushes nothing; every mutation is already saved.
func openGame(cfg *config.GameConfig) (*game.Store, func(), error) {
	path := cfg.SavePath
	if path == "" {
		var err error
		path, err = storage.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}
	snapshots, err := storage.Open(path, nil)
	if err != nil {
		return nil, nil, err
	}
	store := game.NewStore(snapshots.Load(context.Background()), nil)
	snapshots.Attach(store)
	return store, func() { _ = snapshots.Close() }, nil
}

func newStartCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new session and meet Nitvon",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			store.StartGame()
			renderIntro(store.Snapshot())
			return nil
		},
	}
}

func newStatusCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your trader profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			renderStatus(store.Snapshot())
			return nil
		},
	}
}

func newTradeCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "trade [buy|sell] [symbol] [amount]",
		Short: "Execute a simulated trade",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			side, err := argOrChoice(args, 0, "Side", []string{"buy", "sell"}, "buy")
			if err != nil {
				return err
			}
			symbol, err := argOrPrompt(args, 1, "Symbol")
			if err != nil {
				return err
			}
			symbol = strings.ToUpper(strings.TrimSpace(symbol))
			amount, err := argOrFloat(args, 2, "Amount ($)", 50)
			if err != nil {
				return err
			}

			sim := market.NewSimulator(cfg.MarketVolatility, 0, nil)
			sim.Tick()
			desk := market.NewDesk(sim, store, 0)
			out, err := desk.Execute(symbol, game.TradeType(side), amount)
			if err != nil {
				return err
			}
			renderTradeOutcome(out, store.Snapshot())
			return nil
		},
	}
}

func newHistoryCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			renderHistory(store.Snapshot().TradingHistory)
			return nil
		},
	}
}

func newShopCmd(cfg *config.GameConfig) *cobra.Command {
	shopCmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy shop items",
	}
	shopCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shop items",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderShopItems(shop.Items())
			return nil
		},
	})
	shopCmd.AddCommand(&cobra.Command{
		Use:   "buy [item_id]",
		Short: "Buy an item",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			id, err := argOrPrompt(args, 0, "Item id")
			if err != nil {
				return err
			}
			receipt, err := shop.New(store).Purchase(strings.TrimSpace(id))
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Bought %s for %d coins. Balance: %d coins.",
				receipt.Item.Name, receipt.CoinsSpent, receipt.Balance))
			if receipt.CoinsGained > 0 {
				printSuccess(fmt.Sprintf("Pack opened: +%d coins.", receipt.CoinsGained))
			}
			return nil
		},
	})
	return shopCmd
}

func newLeaderboardCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the trader standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			renderLeaderboard(leaderboard.Standings(store.Snapshot().Player))
			return nil
		},
	}
}

func newQuizCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Play a scam-detector round",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			quiz := scamgame.NewQuiz(store, 0)
			project := quiz.Next()
			renderScamProject(project)

			answer, err := promptChoice("Is this a scam?", []string{"yes", "no"}, "yes")
			if err != nil {
				return err
			}
			verdict, err := quiz.Answer(project.ID, answer == "yes")
			if err != nil {
				return err
			}
			renderScamVerdict(verdict)
			return nil
		},
	}
}

func newEventCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "event",
		Short: "Face a random market event",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			event := events.NewPicker(0).Next()
			renderEvent(event)

			n, err := promptInt(fmt.Sprintf("Your move (1-%d)", len(event.Choices)), 1)
			if err != nil {
				return err
			}
			if n < 1 || n > len(event.Choices) {
				return fmt.Errorf("choice out of range")
			}
			res, err := events.Resolve(store, event.ID, event.Choices[n-1].ID)
			if err != nil {
				return err
			}
			renderEventResult(res, store.Snapshot())
			return nil
		},
	}
}

func newAchievementsCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			renderAchievements(store.Snapshot().Achievements)
			return nil
		},
	}
}

func newSettingsCmd(cfg *config.GameConfig) *cobra.Command {
	var (
		sound         string
		music         string
		notifications string
		difficulty    string
		theme         string
	)
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change game settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			patch := game.SettingsPatch{}
			changed := false
			if b, ok := parseBoolFlag(sound); ok {
				patch.SoundEnabled = &b
				changed = true
			}
			if b, ok := parseBoolFlag(music); ok {
				patch.MusicEnabled = &b
				changed = true
			}
			if b, ok := parseBoolFlag(notifications); ok {
				patch.Notifications = &b
				changed = true
			}
			if difficulty != "" {
				if difficulty != "easy" && difficulty != "medium" && difficulty != "hard" {
					return fmt.Errorf("difficulty must be easy, medium or hard")
				}
				patch.Difficulty = &difficulty
				changed = true
			}
			if theme != "" {
				if theme != "dark" && theme != "light" && theme != "auto" {
					return fmt.Errorf("theme must be dark, light or auto")
				}
				patch.Theme = &theme
				changed = true
			}
			if changed {
				store.UpdateSettings(patch)
				printSuccess("Settings updated.")
			}
			renderSettings(store.Snapshot().Settings)
			return nil
		},
	}
	cmd.Flags().StringVar(&sound, "sound", "", "enable or disable sound (true|false)")
	cmd.Flags().StringVar(&music, "music", "", "enable or disable music (true|false)")
	cmd.Flags().StringVar(&notifications, "notifications", "", "enable or disable notifications (true|false)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "set difficulty (easy|medium|hard)")
	cmd.Flags().StringVar(&theme, "theme", "", "set theme (dark|light|auto)")
	return cmd
}

func newResetCmd(cfg *config.GameConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset all progress (settings survive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := promptChoice("Wipe all progress?", []string{"yes", "no"}, "no")
			if err != nil {
				return err
			}
			if confirm != "yes" {
				printWarn("Reset cancelled.")
				return nil
			}

			store, closeGame, err := openGame(cfg)
			if err != nil {
				return err
			}
			defer closeGame()

			store.ResetGame()
			printSuccess("Fresh start. Good luck out there.")
			return nil
		},
	}
}

func parseBoolFlag(v string) (bool, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
