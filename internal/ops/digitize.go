package ops

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/timetable"
)

// TimetableExtractor turns a timetable image into a structured week.
// internal/digitize provides the Gemini-backed implementation; tests
// substitute fakes.
type TimetableExtractor interface {
	Extract(ctx context.Context, image []byte, format string) (timetable.Week, error)
}

// imageFormats maps file extensions to the formats the extractor
// accepts.
var imageFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".webp": "webp",
}

// DigitizeInput contains parameters for the Digitize operation. Either
// Path or Data must be set; Format is required with Data and inferred
// from the extension with Path.
type DigitizeInput struct {
	Path   string
	Data   []byte
	Format string // "png", "jpeg", "webp"
}

// DigitizeOutput contains the result of the Digitize operation.
type DigitizeOutput struct {
	Days    int            `json:"days"`
	Records int            `json:"records"`
	Week    timetable.Week `json:"week"`
}

// Digitize extracts a structured timetable from an image and adopts it
// as the stored fixed timetable. Adoption happens only on full success:
// an extraction or storage failure leaves the previous timetable
// untouched.
func Digitize(ctx context.Context, database *sql.DB, extractor TimetableExtractor, input DigitizeInput) (*DigitizeOutput, error) {
	if extractor == nil {
		return nil, errors.NewInvalidRequest("digitization is not configured: no Gemini API keys")
	}

	image := input.Data
	format := strings.ToLower(strings.TrimSpace(input.Format))

	if len(image) == 0 {
		if strings.TrimSpace(input.Path) == "" {
			return nil, errors.NewInvalidRequest("image path or data is required")
		}
		ext := strings.ToLower(filepath.Ext(input.Path))
		inferred, ok := imageFormats[ext]
		if !ok {
			return nil, errors.NewInvalidRequest("unsupported image type: " + ext)
		}
		if format == "" {
			format = inferred
		}
		data, err := os.ReadFile(input.Path)
		if err != nil {
			return nil, errors.NewInvalidRequest("cannot read image: " + err.Error())
		}
		image = data
	}
	if format == "" {
		return nil, errors.NewInvalidRequest("image format is required")
	}

	week, err := extractor.Extract(ctx, image, format)
	if err != nil {
		return nil, err
	}

	if err := db.ReplaceTimetable(database, week); err != nil {
		return nil, err
	}

	return &DigitizeOutput{
		Days:    countDays(week),
		Records: countRecords(week),
		Week:    week,
	}, nil
}
