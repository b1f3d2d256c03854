// Package mcp exposes EduBot's study tools over the Model Context
// Protocol so other agents can generate quizzes, flashcards, and study
// plans through the same core the chat surface uses.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/bot"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/llm"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/parse"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/stats"
)

// Server wraps the generation boundary and a session and exposes them
// as MCP tools. One server serves one session, matching the
// one-conversation-per-session model of the chat surface.
type Server struct {
	gen     llm.Generator
	session *bot.Session
	now     func() time.Time
}

// NewServer creates the MCP server wrapper.
func NewServer(gen llm.Generator, session *bot.Session) *Server {
	return &Server{
		gen:     gen,
		session: session,
		now:     time.Now,
	}
}

// MCPServer returns a configured mcp-go server with all tools registered.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer("edubot", "1.0.0", server.WithToolCapabilities(true))

	// Register all tools
	srv.AddTool(s.generateQuizTool())
	srv.AddTool(s.generateFlashcardsTool())
	srv.AddTool(s.studyPlanTool())
	srv.AddTool(s.summarizeTool())
	srv.AddTool(s.solveMathTool())
	srv.AddTool(s.studyHistoryTool())
	srv.AddTool(s.studyStatsTool())

	return srv
}

// ServeStdio starts the stdio transport, blocking until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := s.MCPServer()
	stdioServer := server.NewStdioServer(srv)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

func (s *Server) generateQuizTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("edubot_generate_quiz",
		mcp.WithDescription("Generate a multiple-choice quiz on a topic. Returns a JSON array of questions with options A-D, the correct answer, and an explanation."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Topic to quiz on")),
		mcp.WithNumber("count", mcp.Description("Number of questions, 1-5 (default 3)")),
	)
	return tool, s.handleGenerateQuiz
}

func (s *Server) handleGenerateQuiz(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}
	count := request.GetInt("count", 3)
	if count < 1 || count > 5 {
		return mcp.NewToolResultError("count must be between 1 and 5"), nil
	}

	system, user := llm.BuildQuizPrompt(topic, count)
	text, err := s.gen.Generate(ctx, system, user)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("quiz generation failed: %v", err)), nil
	}

	questions := parse.Quiz(text)
	if len(questions) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("generation produced no usable questions for topic %q", topic)), nil
	}
	s.session.LogActivity(s.now(), models.ActivityQuiz, topic, "", "")

	type questionOut struct {
		Question    string            `json:"question"`
		Options     map[string]string `json:"options"`
		Answer      string            `json:"answer"`
		Explanation string            `json:"explanation,omitempty"`
	}
	out := make([]questionOut, len(questions))
	for i, q := range questions {
		out[i] = questionOut{
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal questions: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) generateFlashcardsTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("edubot_generate_flashcards",
		mcp.WithDescription("Generate study flashcards on a topic. Returns the cards in Front:/Back: text form."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Topic for the cards")),
		mcp.WithNumber("count", mcp.Description("Number of cards, 1-10 (default 5)")),
	)
	return tool, s.handleGenerateFlashcards
}

func (s *Server) handleGenerateFlashcards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}
	count := request.GetInt("count", 5)
	if count < 1 || count > 10 {
		return mcp.NewToolResultError("count must be between 1 and 10"), nil
	}

	system, user := llm.BuildFlashcardsPrompt(topic, count)
	text, err := s.gen.Generate(ctx, system, user)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("flashcard generation failed: %v", err)), nil
	}

	cards := parse.Flashcards(text)
	if len(cards) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("generation produced no usable cards for topic %q", topic)), nil
	}
	s.session.LogActivity(s.now(), models.ActivityFlashcard, topic, "", "")

	return mcp.NewToolResultText(parse.FormatFlashcards(cards)), nil
}

func (s *Server) studyPlanTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("edubot_study_plan",
		mcp.WithDescription("Create a day-by-day study plan for a topic."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Topic to plan for")),
		mcp.WithNumber("days", mcp.Description("Plan length in days, 1-14 (default 7)")),
	)
	return tool, s.handleStudyPlan
}

func (s *Server) handleStudyPlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}
	days := request.GetInt("days", 7)
	if days < 1 || days > 14 {
		return mcp.NewToolResultError("days must be between 1 and 14"), nil
	}

	system, user := llm.BuildStudyPlanPrompt(topic, days)
	text, err := s.gen.Generate(ctx, system, user)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("study plan generation failed: %v", err)), nil
	}
	s.session.LogActivity(s.now(), models.ActivityStudyPlan, topic, "", "")

	return mcp.NewToolResultText(text), nil
}

func (s *Server) summarizeTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("edubot_summarize",
		mcp.WithDescription("Summarize a passage into 1-2 concise sentences."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to summarize")),
	)
	return tool, s.handleSummarize
}

func (s *Server) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	system, user := llm.BuildSummarizePrompt(text)
	summary, err := s.gen.Generate(ctx, system, user)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summarization failed: %v", err)), nil
	}
	return mcp.NewToolResultText(summary), nil
}

func (s *Server) solveMathTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("edubot_solve_math",
		mcp.WithDescription("Solve a math problem step by step."),
		mcp.WithString("problem", mcp.Required(), mcp.Description("Problem statement")),
	)
	return tool, s.handleSolveMath
}

func (s *Server) handleSolveMath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	problem, err := request.RequireString("problem")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: problem"), nil
	}

	system, user := llm.BuildMathPrompt(problem)
	solution, err := s.gen.Generate(ctx, system, user)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("math solving failed: %v", err)), nil
	}
	return mcp.NewToolResultText(solution), nil
}

func (s *Server) studyHistoryTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("edubot_study_history",
		mcp.WithDescription("List recent study sessions. Returns a JSON array with type, topic, timestamp, and optional score and duration."),
		mcp.WithNumber("limit", mcp.Description("Maximum records to return (default 10)")),
	)
	return tool, s.handleStudyHistory
}

func (s *Server) handleStudyHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)

	type recordOut struct {
		ID        string `json:"id"`
		Type      string `json:"type"`
		Topic     string `json:"topic"`
		Duration  string `json:"duration,omitempty"`
		Score     string `json:"score,omitempty"`
		Timestamp string `json:"timestamp"`
	}

	history := s.session.History(limit)
	out := make([]recordOut, len(history))
	for i, rec := range history {
		out[i] = recordOut{
			ID:        rec.ID,
			Type:      string(rec.Type),
			Topic:     rec.Topic,
			Duration:  rec.Duration,
			Score:     rec.Score,
			Timestamp: rec.Timestamp.Format(time.RFC3339),
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal history: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) studyStatsTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("edubot_study_stats",
		mcp.WithDescription("Aggregate statistics over the study history: sessions per activity, average quiz score, total focus minutes."),
	)
	return tool, s.handleStudyStats
}

func (s *Server) handleStudyStats(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary := stats.Summarize(s.session.History(0))

	byType := make(map[string]int, len(summary.SessionsByType))
	for kind, n := range summary.SessionsByType {
		byType[string(kind)] = n
	}

	out := struct {
		TotalSessions  int            `json:"total_sessions"`
		SessionsByType map[string]int `json:"sessions_by_type"`
		QuizzesScored  int            `json:"quizzes_scored"`
		AverageQuiz    float64        `json:"average_quiz_percent"`
		FocusMinutes   int            `json:"focus_minutes"`
	}{
		TotalSessions:  summary.TotalSessions,
		SessionsByType: byType,
		QuizzesScored:  summary.QuizzesScored,
		AverageQuiz:    summary.AverageQuiz,
		FocusMinutes:   summary.FocusMinutes,
	}

	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal stats: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
