package cmd

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/bot"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/intent"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/output"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/stats"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive study session",
	Long: `Start an interactive chat with EduBot.

Type requests in plain language ("quiz me on biology", "make 5
flashcards about Spanish verbs", "start a 25 minute pomodoro") and
EduBot walks you through the rest. Type /help for session commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return chatRun(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func chatRun(ctx context.Context) error {
	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}

	ui.VerboseLog("provider: %s", viper.GetString("provider"))

	controller := bot.NewController(bot.NewSession(), gen)
	if debug || viper.GetBool("debug") {
		controller.SetDebug(true)
	}

	fmt.Fprintf(ui.Out, "%s %s\n\n", output.Cyan("EduBot:"), bot.Greeting)
	fmt.Fprintln(ui.Out, "Type /help for session commands, /quit to leave.")
	fmt.Fprintln(ui.Out)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(ui.Out, "You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := runSlashCommand(controller, input); quit {
				break
			}
			continue
		}

		if ui.Verbose {
			kind, _ := intent.Classify(input)
			ui.VerboseLog("intent: %s", kind)
		}

		response := controller.HandleTurn(ctx, input)
		fmt.Fprintf(ui.Out, "\n%s %s\n\n", output.Cyan("EduBot:"), response)
	}
	return scanner.Err()
}

// runSlashCommand executes a session command. Reports whether the chat
// loop should exit.
func runSlashCommand(controller *bot.Controller, input string) bool {
	fields := strings.Fields(input)
	command, args := fields[0], fields[1:]

	switch command {
	case "/quit", "/exit":
		fmt.Fprintln(ui.Out, "Happy studying! 👋")
		return true

	case "/help":
		printChatHelp()

	case "/history":
		showHistory(controller.Session(), strings.Join(args, " "))

	case "/clear-history":
		controller.Session().ClearHistory()
		ui.Success("Study history cleared")

	case "/stats":
		showStats(controller.Session())

	case "/pomodoro":
		// Bare /pomodoro reports the running timer; with minutes it
		// starts one (default 25 when none is running).
		if len(args) == 0 {
			if remaining, ok := controller.Session().PomodoroRemaining(time.Now()); ok {
				ui.Info("Pomodoro timer: %02d:%02d remaining", int(remaining.Minutes()), int(remaining.Seconds())%60)
				return false
			}
			fmt.Fprintf(ui.Out, "\n%s %s\n\n", output.Cyan("EduBot:"), controller.StartPomodoro(25))
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			ui.Error("Usage: /pomodoro [minutes]")
			return false
		}
		fmt.Fprintf(ui.Out, "\n%s %s\n\n", output.Cyan("EduBot:"), controller.StartPomodoro(n))

	case "/cancel-timer":
		if controller.CancelPomodoro() {
			ui.Success("Pomodoro timer cancelled")
		} else {
			ui.Info("No Pomodoro timer is running")
		}

	default:
		ui.Error("Unknown command: %s (try /help)", command)
	}
	return false
}

func printChatHelp() {
	fmt.Fprintln(ui.Out, "Session commands:")
	table := ui.Table([]string{"Command", "Description"})
	table.Append([]string{"/history [query]", "Show study history, optionally filtered by topic"})
	table.Append([]string{"/clear-history", "Clear the study history"})
	table.Append([]string{"/stats", "Show study statistics"})
	table.Append([]string{"/pomodoro [minutes]", "Show the running timer, or start one"})
	table.Append([]string{"/cancel-timer", "Cancel the running Pomodoro timer"})
	table.Append([]string{"/quit", "Leave the chat"})
	table.Render()

	fmt.Fprintln(ui.Out)
	fmt.Fprintln(ui.Out, "Things you can ask:")
	for _, example := range []string{
		"quiz me on the French Revolution",
		"make 5 flashcards about Spanish verbs",
		"create a study plan for organic chemistry",
		"start a pomodoro for 25 minutes",
		"solve 2x + 3 = 11",
		"summarize this: <paste a passage>",
	} {
		fmt.Fprintf(ui.Out, "  %s\n", example)
	}
}

func showHistory(session *bot.Session, query string) {
	var records []models.StudySession
	if query != "" {
		records = session.SearchHistory(query)
	} else {
		records = session.History(viper.GetInt("history.limit"))
	}

	if len(records) == 0 {
		ui.Info("No study sessions recorded yet")
		return
	}

	table := ui.Table([]string{"When", "Activity", "Topic", "Score", "Duration"})
	for _, rec := range records {
		table.Append([]string{
			rec.Timestamp.Format(time.Kitchen),
			output.ActivityColor(rec.Type),
			rec.Topic,
			rec.Score,
			rec.Duration,
		})
	}
	table.Render()
}

func showStats(session *bot.Session) {
	summary := stats.Summarize(session.History(0))
	if summary.TotalSessions == 0 {
		ui.Info("No study sessions recorded yet")
		return
	}

	fmt.Fprintf(ui.Out, "Total sessions: %d\n", summary.TotalSessions)
	for _, kind := range []models.ActivityKind{models.ActivityQuiz, models.ActivityFlashcard, models.ActivityStudyPlan, models.ActivityPomodoro} {
		if n := summary.SessionsByType[kind]; n > 0 {
			fmt.Fprintf(ui.Out, "  %s: %d\n", output.ActivityColor(kind), n)
		}
	}
	if summary.QuizzesScored > 0 {
		rounded := math.Round(summary.AverageQuiz*10) / 10
		fmt.Fprintf(ui.Out, "Average quiz score: %s\n", output.ScoreColor(rounded))
	}
	if summary.FocusMinutes > 0 {
		fmt.Fprintf(ui.Out, "Focus time: %d minutes\n", summary.FocusMinutes)
	}
}
