package tui

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/fit"
	"github.com/young1lin/tablo/internal/grid/peaker"
	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/grid/text"
	"github.com/young1lin/tablo/internal/style"
	"github.com/young1lin/tablo/internal/table"
)

func sampleData(rows int) records.Table {
	data := [][]string{{"id", "description"}}
	for i := 1; i < rows; i++ {
		data = append(data, []string{fmt.Sprint(i), "a fairly long description"})
	}
	return records.FromRows(data)
}

func sized(m Model, width, height int) Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(Model)
}

func TestNewModel(t *testing.T) {
	model := NewModel()

	if model.ready {
		t.Error("NewModel() should not be ready before data arrives")
	}
	if model.mode != fit.ModeWrap {
		t.Errorf("NewModel().mode = %v, want wrap", model.mode)
	}
	if model.strategy != peaker.Max {
		t.Errorf("NewModel().strategy = %v, want max", model.strategy)
	}
	if model.lines != nil {
		t.Error("NewModel() should not render anything without data")
	}
}

func TestWithData(t *testing.T) {
	model := NewModel(table.WithTheme(style.ASCII())).WithData("fruit.csv", records.FromRows([][]string{{"a", "bb"}}))

	if !model.ready {
		t.Error("WithData() should make the model ready")
	}
	want := []string{"+-+--+", "|a|bb|", "+-+--+"}
	if fmt.Sprint(model.lines) != fmt.Sprint(want) {
		t.Errorf("lines = %q, want %q", model.lines, want)
	}
	if model.total != 6 {
		t.Errorf("total = %d, want 6", model.total)
	}
}

func TestRefitFollowsTerminalWidth(t *testing.T) {
	base := NewModel(table.WithTheme(style.ASCII())).WithData("data", sampleData(3))

	for _, mode := range []fit.WidthMode{fit.ModeTruncate, fit.ModeWrap} {
		model := base
		model.mode = mode
		model = sized(model, 20, 40)

		if model.err != nil {
			t.Fatalf("%s: refit error = %v", mode, model.err)
		}
		if model.total > 20 {
			t.Errorf("%s: total = %d, want at most 20", mode, model.total)
		}
		for _, line := range model.lines {
			if w := text.Width(line); w != model.total {
				t.Errorf("%s: line %q has width %d, want %d", mode, line, w, model.total)
			}
		}
	}
}

func TestRefitLeavesRoomForMargin(t *testing.T) {
	margin := config.NewMargin(2, 2, 1, 1)
	model := NewModel(table.WithTheme(style.ASCII()), table.WithMargin(margin)).WithData("data", sampleData(3))
	model.fitHeight = true
	model = sized(model, 20, 14)

	if model.err != nil {
		t.Fatalf("refit error = %v", model.err)
	}
	if model.total != 16 {
		t.Errorf("total = %d, want 16", model.total)
	}
	for _, line := range model.lines {
		if w := text.Width(line); w != 20 {
			t.Errorf("line %q has width %d, want 20", line, w)
		}
	}
	if len(model.lines) != model.bodyHeight() {
		t.Errorf("lines = %d, want %d", len(model.lines), model.bodyHeight())
	}
}

func TestRefitTruncateUsesSuffix(t *testing.T) {
	model := NewModel(table.WithTheme(style.ASCII())).WithData("data", records.FromRows([][]string{{"Hello World"}}))
	model.mode = fit.ModeTruncate
	model = sized(model, 8, 10)

	if len(model.lines) != 3 || model.lines[1] != "|Hello…|" {
		t.Errorf("lines = %q, want the cell truncated with …", model.lines)
	}
}

func TestRefitIncreaseFillsTheTerminal(t *testing.T) {
	model := NewModel(table.WithTheme(style.ASCII())).WithData("data", records.FromRows([][]string{{"a"}}))
	model.mode = fit.ModeIncrease
	model = sized(model, 12, 10)

	if model.total != 12 {
		t.Errorf("total = %d, want 12", model.total)
	}
}

func TestRefitHeight(t *testing.T) {
	model := NewModel(table.WithTheme(style.ASCII())).WithData("data", records.FromRows([][]string{{"a\nb\nc\nd"}}))
	model = sized(model, 40, 5)
	if len(model.lines) != 6 {
		t.Fatalf("lines = %d, want 6 without height fitting", len(model.lines))
	}

	model.fitHeight = true
	model = model.refit()
	if len(model.lines) != model.bodyHeight() {
		t.Errorf("lines = %d, want %d with height fitting", len(model.lines), model.bodyHeight())
	}
}

func TestRefitError(t *testing.T) {
	model := NewModel(table.WithSpan(config.Pos(0, 0), 1, 5)).WithData("data", records.FromRows([][]string{{"a"}}))

	if !errors.Is(model.err, config.ErrInvalidPosition) {
		t.Errorf("err = %v, want ErrInvalidPosition", model.err)
	}
}

func TestClampOffset(t *testing.T) {
	model := NewModel()
	model.height = 5
	model.lines = make([]string, 10)

	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{4, 4},
		{7, 7},
		{50, 7},
	}
	for _, tt := range tests {
		if got := model.clampOffset(tt.in); got != tt.want {
			t.Errorf("clampOffset(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	if got := splitLines(""); got != nil {
		t.Errorf("splitLines(\"\") = %q, want nil", got)
	}
	if got := splitLines("a\nb"); len(got) != 2 {
		t.Errorf("splitLines() = %q, want two lines", got)
	}
}
