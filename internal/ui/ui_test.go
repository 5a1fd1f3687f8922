package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{10, MinTerminalWidth},
		{80, 80},
		{300, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeaderKeepsParamOrder(t *testing.T) {
	out := ansi.Strip(NewHeader("placement", "focusguide place",
		Param{Key: "Target", Value: "10,20 100x40"},
		Param{Key: "Anchor", Value: "bottomLeft"},
	).SetWidth(70).Render())

	if !strings.Contains(out, "PLACEMENT") {
		t.Errorf("title not upper-cased:\n%s", out)
	}
	target, anchor := strings.Index(out, "Target:"), strings.Index(out, "Anchor:")
	if target < 0 || anchor < 0 || target > anchor {
		t.Errorf("params out of order:\n%s", out)
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Tooltip placed", Param{Key: "Top", Value: "264"}),
			want:   []string{SuccessMarker, "SUCCESS", "Tooltip placed", "Top:", "264"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Tooltip hidden").AddHint("pass a tooltip size"),
			want:   []string{WarningMarker, "WARNING", "Hints:", "pass a tooltip size"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Locate failed", errors.New("boom")),
			want:   []string{FailureMarker, "FAILED", "Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(tt.result.SetWidth(80).Render())
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render() missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	Table{
		Header: []string{"Anchor", "Top"},
		Rows:   [][]string{{"top", "16"}, {"bottom", "264"}},
		Footer: "(2 anchors)",
	}.Render(&buf)

	out := buf.String()
	for _, w := range []string{"ANCHOR", "bottom", "264", "(2 anchors)"} {
		if !strings.Contains(out, w) {
			t.Errorf("table missing %q:\n%s", w, out)
		}
	}
}

func TestTableRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table{Header: []string{"Anchor"}}.Render(&buf)
	if got := buf.String(); got != "(0 rows)\n" {
		t.Errorf("Render() = %q, want %q", got, "(0 rows)\n")
	}
}
