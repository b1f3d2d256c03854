package cmd

import (
	"github.com/spf13/cobra"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/bot"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP stdio server exposing study tools",
	Long: `Start an MCP (Model Context Protocol) server on stdio.

This lets MCP clients generate quizzes, flashcards, and study plans
through edubot. Configure in your client with:

  {
    "mcpServers": {
      "edubot": { "command": "edubot", "args": ["mcp"] }
    }
  }

Available tools: edubot_generate_quiz, edubot_generate_flashcards,
edubot_study_plan, edubot_summarize, edubot_solve_math,
edubot_study_history, edubot_study_stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		gen, err := newGenerator(ctx)
		if err != nil {
			return err
		}
		srv := mcp.NewServer(gen, bot.NewSession())
		return srv.ServeStdio(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
