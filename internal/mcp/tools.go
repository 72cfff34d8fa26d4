package mcp

import "github.com/mark3labs/mcp-go/mcp"

var agendaToolDef = mcp.NewTool("agenda_get",
	mcp.WithDescription("Get the merged schedule for one day: fixed timetable entries, user blocks, and the derived free-time blocks (Deep Work / Focus Block), sorted by start time."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name or 3-letter prefix, e.g. 'Monday' or 'mon'")),
)

var gapsToolDef = mcp.NewTool("gaps_compute",
	mcp.WithDescription("Compute just the free-time blocks for one day within the lock-in window."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name or 3-letter prefix")),
)

var gridToolDef = mcp.NewTool("grid_get",
	mcp.WithDescription("Render the weekly agenda as a slot grid. Each cell reports whether it is covered and, on an entry's start slot, the entry and its row span."),
	mcp.WithNumber("slot_minutes", mcp.Description("Slot size in minutes (default from config, normally 60)")),
	mcp.WithArray("days", mcp.Description("Weekday names to include (default: the full week)"),
		mcp.Items(map[string]any{"type": "string"})),
)

var blockAddToolDef = mcp.NewTool("block_add",
	mcp.WithDescription("Create a user block. Fails with OVERLAP if it collides with a fixed timetable entry; overlap between user blocks is allowed."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Weekday name or 3-letter prefix")),
	mcp.WithString("start", mcp.Required(), mcp.Description("Start time HH:MM")),
	mcp.WithString("end", mcp.Required(), mcp.Description("End time HH:MM (exclusive)")),
	mcp.WithString("title", mcp.Required(), mcp.Description("Block title")),
	mcp.WithString("note", mcp.Description("Optional markdown note")),
	mcp.WithString("color", mcp.Description("Optional display color")),
)

var blockUpdateToolDef = mcp.NewTool("block_update",
	mcp.WithDescription("Edit a user block. Omitted fields keep their stored values; note and color can be cleared by passing an empty string explicitly."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Block ID")),
	mcp.WithString("day", mcp.Description("New weekday")),
	mcp.WithString("start", mcp.Description("New start time HH:MM")),
	mcp.WithString("end", mcp.Description("New end time HH:MM")),
	mcp.WithString("title", mcp.Description("New title")),
	mcp.WithString("note", mcp.Description("New note")),
	mcp.WithString("color", mcp.Description("New color")),
)

var blockDeleteToolDef = mcp.NewTool("block_delete",
	mcp.WithDescription("Delete a user block by ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Block ID")),
)

var blockListToolDef = mcp.NewTool("block_list",
	mcp.WithDescription("List user blocks, for one day or the whole week."),
	mcp.WithString("day", mcp.Description("Weekday name (default: all days)")),
)

var todoAddToolDef = mcp.NewTool("todo_add",
	mcp.WithDescription("Add a to-do item."),
	mcp.WithString("text", mcp.Required(), mcp.Description("To-do text")),
)

var todoToggleToolDef = mcp.NewTool("todo_toggle",
	mcp.WithDescription("Toggle a to-do's done state."),
	mcp.WithString("id", mcp.Required(), mcp.Description("To-do ID")),
)

var todoDeleteToolDef = mcp.NewTool("todo_delete",
	mcp.WithDescription("Delete a to-do by ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("To-do ID")),
)

var todoListToolDef = mcp.NewTool("todo_list",
	mcp.WithDescription("List all to-dos with a count of the ones still open."),
)

var timetableGetToolDef = mcp.NewTool("timetable_get",
	mcp.WithDescription("Get the active fixed timetable and its source ('stored' or the built-in 'default')."),
)

var timetableSetToolDef = mcp.NewTool("timetable_set",
	mcp.WithDescription("Replace the stored fixed timetable wholesale from a per-weekday JSON object. Unknown day keys are dropped and missing record fields are filled with defaults."),
	mcp.WithString("week_json", mcp.Required(), mcp.Description("JSON object keyed by weekday, each value an array of {time, end, title, type, location}")),
)

var timetableResetToolDef = mcp.NewTool("timetable_reset",
	mcp.WithDescription("Drop the stored timetable so reads fall back to the built-in default."),
)

var digitizeToolDef = mcp.NewTool("timetable_digitize",
	mcp.WithDescription("Extract a timetable from an image file via Gemini and adopt it as the stored timetable. Requires Gemini API keys in the config."),
	mcp.WithString("path", mcp.Required(), mcp.Description("Path to a png/jpeg/webp timetable image")),
)

var musicGetToolDef = mcp.NewTool("music_get",
	mcp.WithDescription("Get the saved focus-music URL."),
)

var musicSetToolDef = mcp.NewTool("music_set",
	mcp.WithDescription("Save the focus-music URL. Only absolute http(s) URLs are accepted."),
	mcp.WithString("url", mcp.Required(), mcp.Description("Absolute http or https URL")),
)

var settingsGetToolDef = mcp.NewTool("settings_get",
	mcp.WithDescription("Get the persisted settings: focus-music URL, reminder notifications toggle, and reminder lead minutes."),
)

var settingsSetToolDef = mcp.NewTool("settings_set",
	mcp.WithDescription("Update persisted settings. Omitted fields keep their stored values."),
	mcp.WithString("music_url", mcp.Description("Absolute http or https focus-music URL")),
	mcp.WithBoolean("notifications_enabled", mcp.Description("Whether class reminders fire desktop notifications")),
	mcp.WithNumber("reminder_lead_minutes", mcp.Description("Minutes before an entry that its reminder fires (0-1439)")),
)
