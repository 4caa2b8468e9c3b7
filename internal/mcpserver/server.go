// Package mcpserver exposes the calculator as MCP tools over stdio.
package mcpserver

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
)

// Server serves one calculator session to an MCP client.
type Server struct {
	mcpServer *server.MCPServer
	session   *Session
	log       *log.Logger
}

// New creates a server with all calculator tools registered.
func New(name, version string, logger *log.Logger) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(name, version),
		session:   NewSession(),
		log:       logger,
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	pressTool := NewPressTool(s.session, s.log)
	s.mcpServer.AddTool(pressTool.GetTool(), pressTool.Handle)

	clearTool := NewClearTool(s.session)
	s.mcpServer.AddTool(clearTool.GetTool(), clearTool.Handle)

	screenTool := NewScreenTool(s.session)
	s.mcpServer.AddTool(screenTool.GetTool(), screenTool.Handle)

	evaluateTool := NewEvaluateTool()
	s.mcpServer.AddTool(evaluateTool.GetTool(), evaluateTool.Handle)
}

// Serve blocks serving MCP over stdin/stdout.
func (s *Server) Serve() error {
	s.log.Info("serving calculator over stdio")
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}
