package web

import (
	"database/sql"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/ops"
	"github.com/pranavb/lockin/internal/timetable"
)

// maxUploadBytes caps timetable image uploads.
const maxUploadBytes = 10 << 20

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	db        *sql.DB
	cfg       *config.Config
	renderer  *Renderer
	extractor ops.TimetableExtractor
}

// todayData assembles the full today-page data for a day.
func (h *Handlers) todayData(day string) (*TodayPageData, error) {
	agenda, err := ops.Agenda(h.db, h.cfg, ops.AgendaInput{Day: day})
	if err != nil {
		return nil, err
	}
	todos, err := ops.TodoList(h.db)
	if err != nil {
		return nil, err
	}
	music, err := ops.MusicGet(h.db)
	if err != nil {
		return nil, err
	}

	return &TodayPageData{
		PageData: PageData{
			Title:   agenda.Day,
			Version: h.renderer.version,
			Nav:     "today",
		},
		Day:      agenda.Day,
		Days:     timetable.Weekdays,
		Agenda:   agenda,
		Todos:    todos,
		MusicURL:     music.URL,
		MusicSet:     music.Set,
		FocusMinutes: h.cfg.FocusMinutes,
	}, nil
}

// HandleToday handles GET /today — the merged agenda for one day.
func (h *Handlers) HandleToday(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if day == "" {
		day = time.Now().Weekday().String()
	}

	data, err := h.todayData(day)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	h.renderer.renderPage(w, r, "today", *data)
}

// HandleWeek handles GET /week — the slot grid for the whole week.
func (h *Handlers) HandleWeek(w http.ResponseWriter, r *http.Request) {
	input := ops.GridInput{
		SlotMinutes: parseIntParam(r, "slot", 0),
	}

	grid, err := ops.Grid(h.db, h.cfg, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "week", WeekPageData{
		PageData: PageData{
			Title:   "Week",
			Version: h.renderer.version,
			Nav:     "week",
		},
		Grid: grid,
	})
}

// HandleBlocks handles GET /blocks — list user blocks with the create form.
func (h *Handlers) HandleBlocks(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")

	result, err := ops.BlockList(h.db, ops.BlockListInput{Day: day})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "blocks", BlocksPageData{
		PageData: PageData{
			Title:   "Blocks",
			Version: h.renderer.version,
			Nav:     "blocks",
		},
		Day:   day,
		Days:  timetable.Weekdays,
		Items: result.Items,
		Total: result.Total,
	})
}

// HandleBlockCreate handles POST /blocks — create a user block from the form.
func (h *Handlers) HandleBlockCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	input := ops.BlockAddInput{
		Day:   r.FormValue("day"),
		Start: r.FormValue("start"),
		End:   r.FormValue("end"),
		Title: r.FormValue("title"),
		Note:  r.FormValue("note"),
		Color: r.FormValue("color"),
	}

	result, err := ops.BlockAdd(h.db, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	redirectOrJSON(w, r, "/blocks", map[string]any{
		"id":  result.ID,
		"day": result.Day,
	})
}

// HandleBlockDelete handles POST /blocks/{id}/delete.
func (h *Handlers) HandleBlockDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("block ID is required"))
		return
	}

	result, err := ops.BlockDelete(h.db, ops.BlockDeleteInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	redirectOrJSON(w, r, "/blocks", map[string]any{
		"deleted": result.Deleted,
		"id":      id,
	})
}

// HandleTodoAdd handles POST /todos.
func (h *Handlers) HandleTodoAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	result, err := ops.TodoAdd(h.db, ops.TodoAddInput{Text: r.FormValue("text")})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		h.renderTodoFragment(w, r)
		return
	}

	redirectOrJSON(w, r, todayURL(r), map[string]any{"id": result.Todo.ID})
}

// HandleTodoToggle handles POST /todos/{id}/toggle.
func (h *Handlers) HandleTodoToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("todo ID is required"))
		return
	}

	result, err := ops.TodoToggle(h.db, ops.TodoToggleInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		h.renderTodoFragment(w, r)
		return
	}

	redirectOrJSON(w, r, todayURL(r), map[string]any{
		"id":   result.Todo.ID,
		"done": result.Todo.Done,
	})
}

// HandleTodoDelete handles POST /todos/{id}/delete.
func (h *Handlers) HandleTodoDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("todo ID is required"))
		return
	}

	result, err := ops.TodoDelete(h.db, ops.TodoDeleteInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		h.renderTodoFragment(w, r)
		return
	}

	redirectOrJSON(w, r, todayURL(r), map[string]any{"deleted": result.Deleted})
}

// renderTodoFragment renders just the todo-list block of the today page,
// for partial swaps after a todo mutation.
func (h *Handlers) renderTodoFragment(w http.ResponseWriter, r *http.Request) {
	day := r.FormValue("day")
	if day == "" {
		day = time.Now().Weekday().String()
	}
	data, err := h.todayData(day)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	h.renderer.renderBlock(w, http.StatusOK, "today", "todo-list", *data)
}

// HandleTimetable handles GET /timetable — show the active fixed timetable.
func (h *Handlers) HandleTimetable(w http.ResponseWriter, r *http.Request) {
	result, err := ops.TimetableGet(h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "timetable", TimetablePageData{
		PageData: PageData{
			Title:   "Timetable",
			Version: h.renderer.version,
			Nav:     "timetable",
		},
		Source:          result.Source,
		Days:            timetable.Weekdays,
		Week:            result.Week,
		DigitizeEnabled: h.extractor != nil,
	})
}

// HandleTimetableSet handles POST /timetable — replace the stored
// timetable from a pasted JSON payload.
func (h *Handlers) HandleTimetableSet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	payload := strings.TrimSpace(r.FormValue("week_json"))
	if payload == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("week_json is required"))
		return
	}

	result, err := ops.TimetableSet(h.db, ops.TimetableSetInput{JSON: []byte(payload)})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	redirectOrJSON(w, r, "/timetable", map[string]any{
		"days":    result.Days,
		"records": result.Records,
	})
}

// HandleTimetableReset handles POST /timetable/reset.
func (h *Handlers) HandleTimetableReset(w http.ResponseWriter, r *http.Request) {
	result, err := ops.TimetableReset(h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	redirectOrJSON(w, r, "/timetable", map[string]any{"source": result.Source})
}

// HandleDigitize handles POST /timetable/digitize — extract a timetable
// from an uploaded image and adopt it.
func (h *Handlers) HandleDigitize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid upload"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("image file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.renderer.renderError(w, r, errors.NewInternal(err))
		return
	}

	result, err := ops.Digitize(r.Context(), h.db, h.extractor, ops.DigitizeInput{
		Data:   data,
		Format: formatFromName(header.Filename),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	redirectOrJSON(w, r, "/timetable", map[string]any{
		"days":    result.Days,
		"records": result.Records,
	})
}

// HandleMusicSet handles POST /music — save the focus-music URL.
func (h *Handlers) HandleMusicSet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	result, err := ops.MusicSet(h.db, ops.MusicSetInput{URL: r.FormValue("url")})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	redirectOrJSON(w, r, todayURL(r), map[string]any{"url": result.URL})
}

// redirectOrJSON completes a mutating request: HTMX gets an HX-Redirect
// header, JSON clients get the payload, everyone else a 302.
func redirectOrJSON(w http.ResponseWriter, r *http.Request, location string, payload map[string]any) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusOK)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, payload)
		return
	}

	http.Redirect(w, r, location, http.StatusFound)
}

// todayURL preserves the day the form was submitted from.
func todayURL(r *http.Request) string {
	if day := r.FormValue("day"); day != "" {
		if canonical, err := timetable.NormalizeDay(day); err == nil {
			return "/today?day=" + strings.ToLower(canonical)
		}
	}
	return "/today"
}

// formatFromName maps an uploaded filename to a Gemini image format.
// Unknown extensions pass through empty and are rejected downstream.
func formatFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".webp":
		return "webp"
	}
	return ""
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
