// Package ui reports conversion progress to the user.
//
// The converters describe what happened through a Reporter: one Info
// line per accepted or extracted image, one Warn line per skipped one,
// and a final Success line. How those lines look depends on the Format.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/arthur-debert/pngico/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Level classifies a reported line
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarn    Level = "warn"
	LevelSuccess Level = "success"
)

// Reporter receives user-facing progress lines
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
}

// NewReporter creates a reporter writing to w in the given format.
// FormatAuto inspects w when it is a terminal file.
func NewReporter(format Format, w io.Writer) (Reporter, error) {
	switch format {
	case FormatAuto:
		if file, ok := w.(*os.File); ok {
			return NewReporter(DetectFormat(file), w)
		}
		return NewReporter(FormatText, w)
	case FormatTerminal:
		return newTerminalReporter(w), nil
	case FormatText:
		return &textReporter{out: w}, nil
	case FormatJSON:
		return &jsonReporter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// terminalReporter keeps pterm's prefixes and colors the message with
// the lipgloss palette of the styles package
type terminalReporter struct {
	info    *pterm.PrefixPrinter
	warn    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
}

func newTerminalReporter(w io.Writer) *terminalReporter {
	plain := pterm.NewStyle()
	return &terminalReporter{
		info:    pterm.Info.WithWriter(w).WithMessageStyle(plain),
		warn:    pterm.Warning.WithWriter(w).WithMessageStyle(plain),
		success: pterm.Success.WithWriter(w).WithMessageStyle(plain),
	}
}

func (r *terminalReporter) Info(msg string) {
	r.info.Println(styles.GetStyle(styles.Muted).Render(msg))
}

func (r *terminalReporter) Warn(msg string) {
	r.warn.Println(styles.GetStyle(styles.Warning).Render(msg))
}

func (r *terminalReporter) Success(msg string) {
	r.success.Println(styles.GetStyle(styles.Success).Render(msg))
}

type textReporter struct {
	out io.Writer
}

func (r *textReporter) Info(msg string)    { fmt.Fprintln(r.out, msg) }
func (r *textReporter) Warn(msg string)    { fmt.Fprintln(r.out, "warning: "+msg) }
func (r *textReporter) Success(msg string) { fmt.Fprintln(r.out, msg) }

type jsonReporter struct {
	enc *json.Encoder
}

type jsonLine struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func (r *jsonReporter) Info(msg string)    { _ = r.enc.Encode(jsonLine{LevelInfo, msg}) }
func (r *jsonReporter) Warn(msg string)    { _ = r.enc.Encode(jsonLine{LevelWarn, msg}) }
func (r *jsonReporter) Success(msg string) { _ = r.enc.Encode(jsonLine{LevelSuccess, msg}) }

// Line is one message kept by a Recorder
type Line struct {
	Level   Level
	Message string
}

// Recorder keeps reported lines in memory
type Recorder struct {
	mu    sync.Mutex
	Lines []Line
}

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, Line{Level: level, Message: msg})
}

func (r *Recorder) Info(msg string)    { r.add(LevelInfo, msg) }
func (r *Recorder) Warn(msg string)    { r.add(LevelWarn, msg) }
func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }

// Messages returns the messages reported at level
func (r *Recorder) Messages(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, l := range r.Lines {
		if l.Level == level {
			out = append(out, l.Message)
		}
	}
	return out
}

// Discard drops every line
var Discard Reporter = discard{}

type discard struct{}

func (discard) Info(string)    {}
func (discard) Warn(string)    {}
func (discard) Success(string) {}
