// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-request-inbox/models"
)

// DefaultMaxEventSize bounds the data of a single event. A refresh carries
// the whole collection on one line, so the bound is generous.
const DefaultMaxEventSize = 64 << 20

// Event is one server-sent event.
type Event struct {
	// Name is the value of the "event:" field, empty when absent.
	Name string
	// Data is the "data:" lines of the event joined with "\n".
	Data string
}

// EventReader splits a text/event-stream body into events. Lines starting
// with ":" are comments (keepalives) and are skipped, as are the "id:" and
// "retry:" fields and unknown fields. Blocks without data lines produce no
// event.
type EventReader struct {
	reader  *bufio.Reader
	maxSize int
}

// NewEventReader wraps r with DefaultMaxEventSize.
func NewEventReader(r io.Reader) *EventReader {
	return NewEventReaderSize(r, DefaultMaxEventSize)
}

// NewEventReaderSize wraps r, limiting each event to maxSize bytes. A
// non-positive maxSize selects DefaultMaxEventSize.
func NewEventReaderSize(r io.Reader, maxSize int) *EventReader {
	if maxSize <= 0 {
		maxSize = DefaultMaxEventSize
	}
	return &EventReader{
		reader:  bufio.NewReaderSize(r, 64*1024),
		maxSize: maxSize,
	}
}

// ErrEventTooLarge is returned for an event over the reader limit. The
// event is consumed up to its closing blank line and only its name is
// returned; the reader stays usable.
var ErrEventTooLarge = errors.New("sse event too large")

// Read returns the next event. It returns io.EOF once the body ends; a
// final event not followed by a blank line is still returned first.
func (e *EventReader) Read() (Event, error) {
	var (
		name     string
		data     []string
		size     int
		hasData  bool
		tooLarge bool
	)

	for {
		line, overflow, err := e.readLine(e.maxSize - size)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if tooLarge {
					return Event{Name: name}, ErrEventTooLarge
				}
				if hasData {
					return Event{Name: name, Data: strings.Join(data, "\n")}, nil
				}
			}
			return Event{}, err
		}

		if overflow {
			tooLarge = true
			data = nil
			continue
		}

		if line == "" {
			if tooLarge {
				return Event{Name: name}, ErrEventTooLarge
			}
			if hasData {
				return Event{Name: name, Data: strings.Join(data, "\n")}, nil
			}
			name = ""
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			name = value
		case "data":
			if tooLarge {
				continue
			}
			if hasData {
				size++
			}
			size += len(value)
			data = append(data, value)
			hasData = true
		}
	}
}

// readLine returns one line without its terminator. A line longer than
// limit is drained and reported as overflow with no content. A trailing
// partial line at EOF is returned with a nil error; the next call reports
// io.EOF.
func (e *EventReader) readLine(limit int) (string, bool, error) {
	var (
		sb       strings.Builder
		overflow bool
	)
	for {
		chunk, isPrefix, err := e.reader.ReadLine()
		if err != nil {
			if overflow && errors.Is(err, io.EOF) {
				return "", true, nil
			}
			return "", false, err
		}
		if !overflow {
			if len(chunk) > 0 && sb.Len()+len(chunk) > limit {
				overflow = true
				sb.Reset()
			} else {
				sb.Write(chunk)
			}
		}
		if !isPrefix {
			return sb.String(), overflow, nil
		}
	}
}

// WriteEvent writes ev in text/event-stream framing. Multi-line data is
// split into one "data:" line per line.
func WriteEvent(w io.Writer, ev Event) error {
	var sb strings.Builder
	if ev.Name != "" {
		sb.WriteString("event: ")
		sb.WriteString(ev.Name)
		sb.WriteByte('\n')
	}
	for _, line := range strings.Split(ev.Data, "\n") {
		sb.WriteString("data: ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteComment writes a comment line, used as a keepalive.
func WriteComment(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, ": %s\n\n", text)
	return err
}

// WriteFrame encodes frame and writes it as an event named after its type.
func WriteFrame(w io.Writer, frame models.Frame) error {
	data, err := models.EncodeFrame(frame)
	if err != nil {
		return err
	}
	return WriteEvent(w, Event{Name: string(frame.Type()), Data: string(data)})
}
