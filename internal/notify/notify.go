package notify

import (
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
)

// Notifier delivers one reminder to the user.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends reminders through the OS notification daemon.
type Desktop struct{}

func (Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Banner writes reminders to a terminal stream, for sessions without a
// notification daemon.
type Banner struct {
	W io.Writer
}

func (b Banner) Notify(title, body string) error {
	_, err := fmt.Fprintf(b.W, "\n==> %s\n    %s\n", title, body)
	return err
}
