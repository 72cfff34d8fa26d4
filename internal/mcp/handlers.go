package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/digitize"
	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db        *sql.DB
	cfg       *config.Config
	extractor ops.TimetableExtractor
}

// NewHandlers creates a new Handlers instance. The digitizer is only
// wired when API keys are configured; without keys the digitize tool
// reports INVALID_REQUEST instead of failing at startup.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	h := &Handlers{db: db, cfg: cfg}
	if len(cfg.GeminiAPIKeys) > 0 {
		if client, err := digitize.NewClient(cfg.GeminiAPIKeys, cfg.DigitizeModel); err == nil {
			h.extractor = client
		}
	}
	return h
}

// Request types for each tool

// AgendaRequest represents the arguments for agenda_get.
type AgendaRequest struct {
	Day string `json:"day"`
}

// GapsRequest represents the arguments for gaps_compute.
type GapsRequest struct {
	Day string `json:"day"`
}

// GridRequest represents the arguments for grid_get.
type GridRequest struct {
	SlotMinutes int      `json:"slot_minutes,omitempty"`
	Days        []string `json:"days,omitempty"`
}

// BlockAddRequest represents the arguments for block_add.
type BlockAddRequest struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
	Color string `json:"color,omitempty"`
}

// BlockUpdateRequest represents the arguments for block_update.
type BlockUpdateRequest struct {
	ID    string  `json:"id"`
	Day   string  `json:"day,omitempty"`
	Start string  `json:"start,omitempty"`
	End   string  `json:"end,omitempty"`
	Title string  `json:"title,omitempty"`
	Note  *string `json:"note,omitempty"`
	Color *string `json:"color,omitempty"`
}

// BlockDeleteRequest represents the arguments for block_delete.
type BlockDeleteRequest struct {
	ID string `json:"id"`
}

// BlockListRequest represents the arguments for block_list.
type BlockListRequest struct {
	Day string `json:"day,omitempty"`
}

// TodoAddRequest represents the arguments for todo_add.
type TodoAddRequest struct {
	Text string `json:"text"`
}

// TodoToggleRequest represents the arguments for todo_toggle.
type TodoToggleRequest struct {
	ID string `json:"id"`
}

// TodoDeleteRequest represents the arguments for todo_delete.
type TodoDeleteRequest struct {
	ID string `json:"id"`
}

// TimetableSetRequest represents the arguments for timetable_set.
type TimetableSetRequest struct {
	WeekJSON string `json:"week_json"`
}

// DigitizeRequest represents the arguments for timetable_digitize.
type DigitizeRequest struct {
	Path string `json:"path"`
}

// MusicSetRequest represents the arguments for music_set.
type MusicSetRequest struct {
	URL string `json:"url"`
}

// SettingsSetRequest represents the arguments for settings_set.
// Omitted fields keep their stored values.
type SettingsSetRequest struct {
	MusicURL             *string `json:"music_url,omitempty"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
	ReminderLeadMinutes  *int    `json:"reminder_lead_minutes,omitempty"`
}

// HandleAgenda handles the agenda_get tool call.
func (h *Handlers) HandleAgenda(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AgendaRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Agenda(h.db, h.cfg, ops.AgendaInput{Day: input.Day})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleGaps handles the gaps_compute tool call.
func (h *Handlers) HandleGaps(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GapsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Gaps(h.db, h.cfg, ops.GapsInput{Day: input.Day})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleGrid handles the grid_get tool call.
func (h *Handlers) HandleGrid(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GridRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Grid(h.db, h.cfg, ops.GridInput{
		SlotMinutes: input.SlotMinutes,
		Days:        input.Days,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBlockAdd handles the block_add tool call.
func (h *Handlers) HandleBlockAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BlockAddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BlockAdd(h.db, ops.BlockAddInput{
		Day:   input.Day,
		Start: input.Start,
		End:   input.End,
		Title: input.Title,
		Note:  input.Note,
		Color: input.Color,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBlockUpdate handles the block_update tool call.
func (h *Handlers) HandleBlockUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BlockUpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BlockUpdate(h.db, ops.BlockUpdateInput{
		ID:    input.ID,
		Day:   input.Day,
		Start: input.Start,
		End:   input.End,
		Title: input.Title,
		Note:  input.Note,
		Color: input.Color,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBlockDelete handles the block_delete tool call.
func (h *Handlers) HandleBlockDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BlockDeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BlockDelete(h.db, ops.BlockDeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBlockList handles the block_list tool call.
func (h *Handlers) HandleBlockList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BlockListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BlockList(h.db, ops.BlockListInput{Day: input.Day})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTodoAdd handles the todo_add tool call.
func (h *Handlers) HandleTodoAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TodoAddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.TodoAdd(h.db, ops.TodoAddInput{Text: input.Text})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTodoToggle handles the todo_toggle tool call.
func (h *Handlers) HandleTodoToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TodoToggleRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.TodoToggle(h.db, ops.TodoToggleInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTodoDelete handles the todo_delete tool call.
func (h *Handlers) HandleTodoDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TodoDeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.TodoDelete(h.db, ops.TodoDeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTodoList handles the todo_list tool call.
func (h *Handlers) HandleTodoList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.TodoList(h.db)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTimetableGet handles the timetable_get tool call.
func (h *Handlers) HandleTimetableGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.TimetableGet(h.db)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTimetableSet handles the timetable_set tool call.
func (h *Handlers) HandleTimetableSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TimetableSetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.TimetableSet(h.db, ops.TimetableSetInput{JSON: []byte(input.WeekJSON)})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTimetableReset handles the timetable_reset tool call.
func (h *Handlers) HandleTimetableReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.TimetableReset(h.db)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDigitize handles the timetable_digitize tool call.
func (h *Handlers) HandleDigitize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DigitizeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Digitize(ctx, h.db, h.extractor, ops.DigitizeInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleMusicGet handles the music_get tool call.
func (h *Handlers) HandleMusicGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.MusicGet(h.db)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleMusicSet handles the music_set tool call.
func (h *Handlers) HandleMusicSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MusicSetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.MusicSet(h.db, ops.MusicSetInput{URL: input.URL})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSettingsGet handles the settings_get tool call.
func (h *Handlers) HandleSettingsGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.SettingsGet(h.db, h.cfg)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSettingsSet handles the settings_set tool call.
func (h *Handlers) HandleSettingsSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SettingsSetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.SettingsSet(h.db, h.cfg, ops.SettingsSetInput{
		MusicURL:             input.MusicURL,
		NotificationsEnabled: input.NotificationsEnabled,
		ReminderLeadMinutes:  input.ReminderLeadMinutes,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if planErr, ok := err.(*errors.PlanError); ok {
		errorObj := map[string]any{
			"code":    planErr.Code,
			"message": planErr.Message,
			"status":  planErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if planErr.Code != errors.ErrInternal && planErr.Details != nil {
			errorObj["details"] = planErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
