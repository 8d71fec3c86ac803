// Package term implements the interactive terminal frontend: the login
// prompt and the administrator and customer menus. It is presentation glue
// only; every decision is delegated to the services.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fleetdesk/internal/app/services/auth"
	"fleetdesk/internal/app/services/fleet"
	"fleetdesk/internal/app/services/policy"
	"fleetdesk/internal/app/services/rental"
	"fleetdesk/internal/app/services/report"
	"fleetdesk/internal/domain/shared/interval"
)

// Term wraps line-based prompting over a reader/writer pair so the menus
// can be driven by tests as well as a real terminal.
type Term struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Term {
	return &Term{in: bufio.NewScanner(in), out: out}
}

func (t *Term) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// Prompt prints a label and returns the next trimmed input line. The second
// result is false once input is exhausted.
func (t *Term) Prompt(label string) (string, bool) {
	fmt.Fprint(t.out, label)
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

// PromptDate re-prompts until the input parses as YYYY-MM-DD, returning the
// accepted text. False when input runs out.
func (t *Term) PromptDate(label string) (string, bool) {
	for {
		text, ok := t.Prompt(label)
		if !ok {
			return "", false
		}
		if _, err := interval.ParseDate(text); err == nil {
			return text, true
		}
		t.Printf("Invalid date. Use the YYYY-MM-DD format.\n")
	}
}

// promptInt returns the fallback when the operator keeps the field empty
// and reports invalid numbers without aborting the flow.
func (t *Term) promptInt(label string, fallback int) (int, bool) {
	text, ok := t.Prompt(label)
	if !ok {
		return fallback, false
	}
	if text == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		t.Printf("Invalid value, keeping %d.\n", fallback)
		return fallback, true
	}
	return n, true
}

func (t *Term) promptFloat(label string, fallback float64) (float64, bool) {
	text, ok := t.Prompt(label)
	if !ok {
		return fallback, false
	}
	if text == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		t.Printf("Invalid value, keeping %v.\n", fallback)
		return fallback, true
	}
	return v, true
}

// promptText keeps the fallback on an empty line.
func (t *Term) promptText(label, fallback string) (string, bool) {
	text, ok := t.Prompt(label)
	if !ok {
		return fallback, false
	}
	if text == "" {
		return fallback, true
	}
	return text, true
}

// Menus binds the frontend to the application services.
type Menus struct {
	Term    *Term
	Auth    *auth.Service
	Rental  *rental.Service
	Fleet   *fleet.Service
	Policy  *policy.Service
	Reports *report.Service
}
