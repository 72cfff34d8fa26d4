package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/digitize"
	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/notify"
	"github.com/pranavb/lockin/internal/ops"
	"github.com/pranavb/lockin/internal/schedule"
	"github.com/pranavb/lockin/internal/timer"
	"github.com/pranavb/lockin/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "lockin",
		Usage:   "Personal daily planner",
		Version: Version,
		Commands: []*cli.Command{
			todayCmd(db, cfg),
			weekCmd(db, cfg),
			gapsCmd(db, cfg),
			addCmd(db),
			editCmd(db),
			rmCmd(db),
			blocksCmd(db),
			todoCmd(db),
			timetableCmd(db),
			digitizeCmd(db, cfg),
			timerCmd(cfg),
			watchCmd(db, cfg),
			musicCmd(db),
			settingsCmd(db, cfg),
			serveCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// currentDay returns today's weekday name.
func currentDay() string {
	return time.Now().Weekday().String()
}

// todayCmd creates the today command.
func todayCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "today",
		Usage:     "Show the merged agenda for a day (default: today)",
		ArgsUsage: "[day]",
		Action: func(c *cli.Context) error {
			day := currentDay()
			if c.NArg() > 0 {
				day = c.Args().First()
			}

			output, err := ops.Agenda(db, cfg, ops.AgendaInput{Day: day})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// weekCmd creates the week command.
func weekCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "week",
		Usage: "Show the weekly slot grid",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "slot", Aliases: []string{"s"}, Usage: "Slot size in minutes"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Grid(db, cfg, ops.GridInput{SlotMinutes: c.Int("slot")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// gapsCmd creates the gaps command.
func gapsCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "gaps",
		Usage:     "Show the free-time blocks for a day (default: today)",
		ArgsUsage: "[day]",
		Action: func(c *cli.Context) error {
			day := currentDay()
			if c.NArg() > 0 {
				day = c.Args().First()
			}

			output, err := ops.Gaps(db, cfg, ops.GapsInput{Day: day})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// addCmd creates the add command.
func addCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a user block",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "day", Aliases: []string{"d"}, Usage: "Weekday (default: today)"},
			&cli.StringFlag{Name: "start", Aliases: []string{"s"}, Required: true, Usage: "Start time HH:MM"},
			&cli.StringFlag{Name: "end", Aliases: []string{"e"}, Required: true, Usage: "End time HH:MM"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Required: true, Usage: "Block title"},
			&cli.StringFlag{Name: "note", Aliases: []string{"n"}, Usage: "Markdown note"},
			&cli.StringFlag{Name: "color", Usage: "Display color"},
		},
		Action: func(c *cli.Context) error {
			day := c.String("day")
			if day == "" {
				day = currentDay()
			}

			output, err := ops.BlockAdd(db, ops.BlockAddInput{
				Day:   day,
				Start: c.String("start"),
				End:   c.String("end"),
				Title: c.String("title"),
				Note:  c.String("note"),
				Color: c.String("color"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// editCmd creates the edit command.
func editCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a user block",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "day", Aliases: []string{"d"}, Usage: "New weekday"},
			&cli.StringFlag{Name: "start", Aliases: []string{"s"}, Usage: "New start time HH:MM"},
			&cli.StringFlag{Name: "end", Aliases: []string{"e"}, Usage: "New end time HH:MM"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title"},
			&cli.StringFlag{Name: "note", Aliases: []string{"n"}, Usage: "New note (empty clears)"},
			&cli.StringFlag{Name: "color", Usage: "New color (empty clears)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("block id is required"))
			}

			input := ops.BlockUpdateInput{
				ID:    c.Args().First(),
				Day:   c.String("day"),
				Start: c.String("start"),
				End:   c.String("end"),
				Title: c.String("title"),
			}
			if c.IsSet("note") {
				note := c.String("note")
				input.Note = &note
			}
			if c.IsSet("color") {
				color := c.String("color")
				input.Color = &color
			}

			output, err := ops.BlockUpdate(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// rmCmd creates the rm command.
func rmCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Remove a user block",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("block id is required"))
			}

			output, err := ops.BlockDelete(db, ops.BlockDeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// blocksCmd creates the blocks command.
func blocksCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "blocks",
		Usage: "List user blocks",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "day", Aliases: []string{"d"}, Usage: "Limit to one weekday"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.BlockList(db, ops.BlockListInput{Day: c.String("day")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// todoCmd creates the todo command with its subcommands.
func todoCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "Manage to-dos",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a to-do",
				ArgsUsage: "<text>",
				Action: func(c *cli.Context) error {
					text := strings.Join(c.Args().Slice(), " ")
					output, err := ops.TodoAdd(db, ops.TodoAddInput{Text: text})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "done",
				Usage:     "Toggle a to-do's done state",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("todo id is required"))
					}
					output, err := ops.TodoToggle(db, ops.TodoToggleInput{ID: c.Args().First()})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "rm",
				Usage:     "Remove a to-do",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("todo id is required"))
					}
					output, err := ops.TodoDelete(db, ops.TodoDeleteInput{ID: c.Args().First()})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "list",
				Usage: "List all to-dos",
				Action: func(c *cli.Context) error {
					output, err := ops.TodoList(db)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// timetableCmd creates the timetable command with its subcommands.
func timetableCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "timetable",
		Usage: "Manage the fixed weekly timetable",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the active timetable",
				Action: func(c *cli.Context) error {
					output, err := ops.TimetableGet(db)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "set",
				Usage: "Replace the timetable from a JSON file (or stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "JSON file path"},
				},
				Action: func(c *cli.Context) error {
					var payload []byte
					if path := c.String("path"); path != "" {
						data, err := os.ReadFile(path)
						if err != nil {
							return outputError(errors.NewInvalidRequest(err.Error()))
						}
						payload = data
					} else if stdinHasData() {
						data, err := readStdin()
						if err != nil {
							return outputError(errors.NewInternal(err))
						}
						payload = []byte(data)
					} else {
						return outputError(errors.NewInvalidRequest("provide --path or pipe JSON via stdin"))
					}

					output, err := ops.TimetableSet(db, ops.TimetableSetInput{JSON: payload})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "reset",
				Usage: "Drop the stored timetable and fall back to the default",
				Action: func(c *cli.Context) error {
					output, err := ops.TimetableReset(db)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// digitizeCmd creates the digitize command.
func digitizeCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "digitize",
		Usage:     "Extract a timetable from an image via Gemini and adopt it",
		ArgsUsage: "<image-path>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("image path is required"))
			}

			extractor, err := digitize.NewClient(cfg.GeminiAPIKeys, cfg.DigitizeModel)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Digitize(c.Context, db, extractor, ops.DigitizeInput{
				Path: c.Args().First(),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// timerCmd creates the timer command.
func timerCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "timer",
		Usage:     "Run a focus-session countdown in the terminal",
		ArgsUsage: "[minutes]",
		Action: func(c *cli.Context) error {
			minutes := cfg.FocusMinutes
			if c.NArg() > 0 {
				n, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return outputError(errors.NewInvalidRequest("minutes must be a number"))
				}
				minutes = n
			}

			return runTimer(minutes)
		},
	}
}

// runTimer drives the countdown loop until completion or interrupt.
func runTimer(minutes int) error {
	var t timer.Timer
	if err := t.Start(minutes); err != nil {
		return outputError(errors.NewInvalidRequest(err.Error()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	// The blocklist is informational only; nothing is enforced.
	fmt.Println("  sites blocked during focus: Instagram, Twitter/X, Reddit")
	fmt.Printf("  %s  focus\n", timer.FormatSeconds(t.Remaining()))
	for {
		select {
		case <-ctx.Done():
			t.Stop()
			fmt.Println("\n  session cancelled")
			return nil
		case <-ticker.C:
			done := t.Tick()
			fmt.Printf("\r  %s  focus", timer.FormatSeconds(t.Remaining()))
			if done {
				fmt.Println("\n  session complete")
				// Best-effort chime; a missing daemon is not an error.
				_ = notify.Desktop{}.Notify("Focus session complete", fmt.Sprintf("%d minutes done", minutes))
				return nil
			}
		}
	}
}

// watchCmd creates the watch command.
func watchCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Run the class reminder watcher in the foreground",
		Action: func(c *cli.Context) error {
			agenda := func(day string) ([]schedule.Entry, error) {
				out, err := ops.Agenda(db, cfg, ops.AgendaInput{Day: day})
				if err != nil {
					return nil, err
				}
				entries := make([]schedule.Entry, 0, len(out.Entries))
				for _, v := range out.Entries {
					start, err := schedule.ParseClock(v.Start)
					if err != nil {
						continue
					}
					end, err := schedule.ParseClock(v.End)
					if err != nil {
						continue
					}
					entries = append(entries, schedule.Entry{
						Interval: schedule.Interval{Start: start, End: end},
						Title:    v.Title,
						Kind:     schedule.Kind(v.Kind),
						Location: v.Location,
					})
				}
				return entries, nil
			}

			settings, err := ops.SettingsGet(db, cfg)
			if err != nil {
				return outputError(err)
			}

			sinks := []notify.Notifier{notify.Banner{W: os.Stdout}}
			if settings.NotificationsEnabled {
				sinks = append(sinks, notify.Desktop{})
			} else {
				fmt.Println("desktop notifications are off (enable with: lockin settings --notifications on)")
			}

			scanner := notify.NewScanner(agenda, settings.ReminderLeadMinutes, sinks...)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Printf("watching: reminders fire %d min before each entry\n", settings.ReminderLeadMinutes)
			scanner.Watch(ctx)
			return nil
		},
	}
}

// settingsCmd creates the settings command.
func settingsCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Show or update persisted settings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "notifications", Usage: "Turn reminder notifications on or off"},
			&cli.IntFlag{Name: "lead", Usage: "Reminder lead time in minutes"},
			&cli.StringFlag{Name: "music", Usage: "Focus-music URL"},
		},
		Action: func(c *cli.Context) error {
			input := ops.SettingsSetInput{}
			if c.IsSet("notifications") {
				switch strings.ToLower(c.String("notifications")) {
				case "on", "true":
					enabled := true
					input.NotificationsEnabled = &enabled
				case "off", "false":
					enabled := false
					input.NotificationsEnabled = &enabled
				default:
					return outputError(errors.NewInvalidRequest("notifications must be on or off"))
				}
			}
			if c.IsSet("lead") {
				lead := c.Int("lead")
				input.ReminderLeadMinutes = &lead
			}
			if c.IsSet("music") {
				music := c.String("music")
				input.MusicURL = &music
			}

			if input.NotificationsEnabled == nil && input.ReminderLeadMinutes == nil && input.MusicURL == nil {
				output, err := ops.SettingsGet(db, cfg)
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			}

			output, err := ops.SettingsSet(db, cfg, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// musicCmd creates the music command.
func musicCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "music",
		Usage:     "Show or set the focus-music URL",
		ArgsUsage: "[url]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				output, err := ops.MusicGet(db)
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			}

			output, err := ops.MusicSet(db, ops.MusicSetInput{URL: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (overrides config)"},
			&cli.IntFlag{Name: "port", Usage: "Port (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			bind := cfg.WebBind
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			port := cfg.WebPort
			if c.IsSet("port") {
				port = c.Int("port")
			}

			srv := web.NewServer(db, cfg, Version, bind, port)
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if planErr, ok := err.(*errors.PlanError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", planErr.Code, planErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
