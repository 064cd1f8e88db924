package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/usuarios-api/internal/users"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the user collection as tools.
type Server struct {
	store users.Store
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server backed by store.
func NewServer(store users.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"usuarios",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listUsersTool, s.handleListUsers)
	s.mcp.AddTool(getUserTool, s.handleGetUser)
	s.mcp.AddTool(createUserTool, s.handleCreateUser)
	s.mcp.AddTool(updateUserTool, s.handleUpdateUser)
	s.mcp.AddTool(deleteUserTool, s.handleDeleteUser)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
