package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates how a result box is drawn
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

func (t ResultType) String() string {
	switch t {
	case ResultSuccess:
		return "SUCCESS"
	case ResultFailure:
		return "FAILED"
	case ResultWarning:
		return "WARNING"
	default:
		return fmt.Sprintf("ResultType(%d)", t)
	}
}

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType
	Title   string   // e.g., "Tooltip placed"
	Details []Param  // Key-value details to display, in order
	Error   error    // Error (for failure results)
	Hints   []string // Follow-up suggestions
	Width   int      // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// AddHint appends a follow-up suggestion
func (r *Result) AddHint(hint string) *Result {
	r.Hints = append(r.Hints, hint)
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var (
		color  lipgloss.Color
		title  lipgloss.Style
		marker string
	)
	switch r.Type {
	case ResultFailure:
		color, title, marker = ErrorColor, ErrorTitleStyle, FailureMarker
	case ResultWarning:
		color, title, marker = WarningColor, WarningTitleStyle, WarningMarker
	default:
		color, title, marker = SuccessColor, SuccessTitleStyle, SuccessMarker
	}

	lines := []string{
		"",
		title.Render(fmt.Sprintf("   %s  %s  ─  %s", marker, r.Type, r.Title)),
		"",
	}

	for _, d := range r.Details {
		key := ResultKeyStyle.Render(fmt.Sprintf("   %s:", d.Key))
		lines = append(lines, key+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Hints) > 0 {
		hints := []string{HintTitleStyle.Render("Hints:"), ""}
		for _, h := range r.Hints {
			hints = append(hints, HintItemStyle.Render("  • "+h))
		}
		lines = append(lines, HintBoxStyle(width).Render(strings.Join(hints, "\n")), "")
	}

	return BoxStyle(width, color).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
