package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"patri/internal/domain"
	"patri/internal/theme"
	"patri/logging"
)

// Reader turns terminal lines into inbound events. The grammar mirrors what
// a chat client would deliver:
//
//	pdf <case-id>        occurrence report document
//	photo [group]        a photo, optionally part of a media group
//	voice <text>         a voice note that transcribes to <text>
//	loc <lat> <lon>      a location share
//	tap <data>           press the inline button with that callback data
//	anything else        a plain text message (including /commands)
type Reader struct {
	in      io.Reader
	out     io.Writer
	publish func(domain.Event) error
	userID  int64
}

// NewReader creates a console reader for the given operator id
func NewReader(in io.Reader, out io.Writer, userID int64, publish func(domain.Event) error) *Reader {
	return &Reader{in: in, out: out, publish: publish, userID: userID}
}

// Run reads lines until EOF or context cancellation
func (r *Reader) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ev, err := r.parse(line)
		if err != nil {
			fmt.Fprintln(r.out, theme.ErrorStyle.Render("✗ "+err.Error()))
			continue
		}
		if err := r.publish(ev); err != nil {
			logging.Logger.Error("Failed to publish event", "error", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("console input failed: %w", err)
	}
	return nil
}

func (r *Reader) parse(line string) (domain.Event, error) {
	fields := strings.Fields(line)
	ev := domain.Event{UserID: r.userID}

	switch fields[0] {
	case "pdf":
		if len(fields) != 2 {
			return ev, fmt.Errorf("usage: pdf <case-id>")
		}
		ev.Kind = domain.EventDocument
		ev.File = domain.FileRef("pdf:" + fields[1])

	case "photo":
		if len(fields) > 2 {
			return ev, fmt.Errorf("usage: photo [group]")
		}
		ev.Kind = domain.EventPhoto
		ev.File = domain.FileRef("photo:" + uuid.New().String())
		if len(fields) == 2 {
			ev.GroupID = fields[1]
		}

	case "voice":
		if len(fields) < 2 {
			return ev, fmt.Errorf("usage: voice <text>")
		}
		ev.Kind = domain.EventVoice
		ev.File = domain.FileRef("voice:" + strings.Join(fields[1:], " "))

	case "loc":
		if len(fields) != 3 {
			return ev, fmt.Errorf("usage: loc <lat> <lon>")
		}
		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return ev, fmt.Errorf("bad latitude %q", fields[1])
		}
		lon, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return ev, fmt.Errorf("bad longitude %q", fields[2])
		}
		ev.Kind = domain.EventLocation
		ev.Latitude = lat
		ev.Longitude = lon

	case "tap":
		if len(fields) != 2 {
			return ev, fmt.Errorf("usage: tap <data>")
		}
		ev.Kind = domain.EventCallback
		ev.Callback = fields[1]

	default:
		ev.Kind = domain.EventText
		ev.Text = line
	}
	return ev, nil
}
