package digitize

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/timetable"
)

// timetablePrompt instructs the model to read a timetable image and
// emit the per-weekday JSON shape that timetable.CoerceJSON accepts.
const timetablePrompt = `You are analyzing a university/college timetable image. Extract ALL the scheduled classes and return them in a structured JSON format.

For each class entry, extract:
- time: Start time in 24-hour format (HH:MM), e.g., "09:00"
- end: End time in 24-hour format (HH:MM), e.g., "09:50"
- title: Course code and name (e.g., "MATH F102" or "CS F111")
- type: Class type and section (e.g., "L1", "T8", "P4" for Lecture/Tutorial/Practical)
- location: Room/location (e.g., "F104", "G208", "A222")

IMPORTANT RULES:
1. Parse the ENTIRE timetable - don't miss any classes
2. If a class spans multiple hours, set the correct end time
3. Use 24-hour time format
4. If location is unclear, use empty string ""
5. Return ONLY valid JSON, no markdown, no explanation

Return the data as a JSON object with days as keys:
{
  "Monday": [
    { "time": "09:00", "end": "09:50", "title": "MATH F102", "type": "L3", "location": "F104" }
  ],
  "Tuesday": [],
  "Wednesday": [],
  "Thursday": [],
  "Friday": [],
  "Saturday": [],
  "Sunday": []
}`

// Client extracts structured timetables from images via Gemini. One
// extraction runs at a time; a second concurrent call fails fast with
// BUSY instead of queueing behind a slow upstream request.
type Client struct {
	keys  []string
	model string
	mu    sync.Mutex
}

// NewClient builds a digitization client. At least one API key is
// required; a key is picked at random for each request.
func NewClient(keys []string, model string) (*Client, error) {
	if len(keys) == 0 {
		return nil, errors.NewInvalidRequest("digitization requires at least one Gemini API key")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Client{keys: keys, model: model}, nil
}

// Extract sends the image to Gemini and parses the response into a
// week. format is the bare image format name ("png", "jpeg", "webp").
func (c *Client) Extract(ctx context.Context, image []byte, format string) (timetable.Week, error) {
	if !c.mu.TryLock() {
		return nil, errors.NewBusy("a digitization is already in progress")
	}
	defer c.mu.Unlock()

	key := c.keys[rand.IntN(len(c.keys))]
	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, errors.NewDigitizeFailed(err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SetTemperature(0.1)
	model.SetTopK(1)
	model.SetTopP(1)
	model.SetMaxOutputTokens(8192)

	resp, err := model.GenerateContent(ctx,
		genai.Text(timetablePrompt),
		genai.ImageData(format, image),
	)
	if err != nil {
		return nil, errors.NewDigitizeFailed(err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.NewDigitizeFailed(nil)
	}

	return parsePayload(text)
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// parsePayload turns raw model output into a coerced week. Models
// sometimes wrap the JSON in markdown fences despite the prompt.
func parsePayload(text string) (timetable.Week, error) {
	cleaned := stripFences(text)
	week, err := timetable.CoerceJSON([]byte(cleaned))
	if err != nil {
		return nil, errors.NewDigitizeFailed(err)
	}
	return week, nil
}

func stripFences(s string) string {
	if strings.Contains(s, "```json") {
		s = strings.ReplaceAll(s, "```json", "")
		s = strings.ReplaceAll(s, "```", "")
	} else if strings.Contains(s, "```") {
		s = strings.ReplaceAll(s, "```", "")
	}
	return strings.TrimSpace(s)
}
