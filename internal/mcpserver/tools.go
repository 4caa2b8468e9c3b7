package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/verte-zerg/lumicalc/internal/calc"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "calculator."

// Tool names
const (
	ToolPress    = ToolPrefix + "press"
	ToolClear    = ToolPrefix + "clear"
	ToolScreen   = ToolPrefix + "screen"
	ToolEvaluate = ToolPrefix + "evaluate"
)

func screenResult(s calc.State) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(s.Screen())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// PressTool presses keypad buttons on the session calculator.
type PressTool struct {
	session *Session
	log     *log.Logger
}

// NewPressTool creates a new press tool
func NewPressTool(session *Session, logger *log.Logger) *PressTool {
	return &PressTool{session: session, log: logger}
}

// GetTool returns the MCP tool definition
func (t *PressTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPress,
		mcp.WithDescription("Press calculator keypad buttons in order and return the display. "+
			"Labels: 0-9 . AC +/- % + - × ÷ = (aliases: * x /)."),
		mcp.WithString("buttons", mcp.Required(), mcp.Description("Space separated button labels, e.g. \"7 + 3 =\"")),
	)
}

// Handle processes the tool request
func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	labels := strings.Fields(mcp.ParseString(req, "buttons", ""))
	if len(labels) == 0 {
		return mcp.NewToolResultError("buttons parameter is required"), nil
	}
	state, err := t.session.Press(labels)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press buttons: %v", err)), nil
	}
	t.log.Debug("buttons pressed", "buttons", strings.Join(labels, " "), "current", state.Current)
	return screenResult(state)
}

// ClearTool resets the session calculator.
type ClearTool struct {
	session *Session
}

// NewClearTool creates a new clear tool
func NewClearTool(session *Session) *ClearTool {
	return &ClearTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClear,
		mcp.WithDescription("Press AC and return the display"),
	)
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return screenResult(t.session.Clear())
}

// ScreenTool reads the display without pressing anything.
type ScreenTool struct {
	session *Session
}

// NewScreenTool creates a new screen tool
func NewScreenTool(session *Session) *ScreenTool {
	return &ScreenTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *ScreenTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolScreen,
		mcp.WithDescription("Return the current calculator display"),
	)
}

// Handle processes the tool request
func (t *ScreenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return screenResult(t.session.State())
}

// EvaluateTool runs the two-operand evaluator without touching the session.
type EvaluateTool struct{}

// NewEvaluateTool creates a new evaluate tool
func NewEvaluateTool() *EvaluateTool {
	return &EvaluateTool{}
}

// GetTool returns the MCP tool definition
func (t *EvaluateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Evaluate previous <operator> current with 12 significant digits"),
		mcp.WithString("previous", mcp.Description("Left operand; empty means no pending operand")),
		mcp.WithString("current", mcp.Required(), mcp.Description("Right operand")),
		mcp.WithString("operator", mcp.Description("One of + - × ÷ (aliases * x /); empty means none")),
	)
}

// Handle processes the tool request
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current := mcp.ParseString(req, "current", "")
	if current == "" {
		return mcp.NewToolResultError("current parameter is required"), nil
	}
	op, err := calc.ParseOperator(mcp.ParseString(req, "operator", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := calc.Evaluate(mcp.ParseString(req, "previous", ""), current, op)
	return mcp.NewToolResultText(result), nil
}
