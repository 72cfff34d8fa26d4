package mcp

import (
	"context"
	"database/sql"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pranavb/lockin/internal/config"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"agenda_get": {
		def:     agendaToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAgenda },
	},
	"gaps_compute": {
		def:     gapsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGaps },
	},
	"grid_get": {
		def:     gridToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGrid },
	},
	"block_add": {
		def:     blockAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBlockAdd },
	},
	"block_update": {
		def:     blockUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBlockUpdate },
	},
	"block_delete": {
		def:     blockDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBlockDelete },
	},
	"block_list": {
		def:     blockListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBlockList },
	},
	"todo_add": {
		def:     todoAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTodoAdd },
	},
	"todo_toggle": {
		def:     todoToggleToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTodoToggle },
	},
	"todo_delete": {
		def:     todoDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTodoDelete },
	},
	"todo_list": {
		def:     todoListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTodoList },
	},
	"timetable_get": {
		def:     timetableGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTimetableGet },
	},
	"timetable_set": {
		def:     timetableSetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTimetableSet },
	},
	"timetable_reset": {
		def:     timetableResetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTimetableReset },
	},
	"timetable_digitize": {
		def:     digitizeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDigitize },
	},
	"music_get": {
		def:     musicGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMusicGet },
	},
	"music_set": {
		def:     musicSetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMusicSet },
	},
	"settings_get": {
		def:     settingsGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSettingsGet },
	},
	"settings_set": {
		def:     settingsSetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSettingsSet },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with Lockin tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(db *sql.DB, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"lockin",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(db, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	// Register tools (skip disabled)
	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(db *sql.DB, cfg *config.Config, version string) error {
	s := NewServer(db, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
