package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Component: ComponentExpense, Output: &buf})

	logger.Info("Expense added", FieldExpenseID, 3)

	out := buf.String()
	if !strings.Contains(out, "component=expense") || !strings.Contains(out, "expense_id=3") {
		t.Fatalf("unexpected log line: %q", out)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Component: ComponentApp, Output: &buf})

	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestWithComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Component: ComponentApp, Output: &buf}).
		WithComponent(ComponentReport).
		WithFields(NewFields().WithOperation(OpExport).WithError(errors.New("boom")).WithError(nil))

	if logger.Component() != ComponentReport {
		t.Fatalf("expected report component, got %s", logger.Component())
	}
	logger.Error("Export failed")

	out := buf.String()
	for _, want := range []string{"component=report", "operation=export", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestLogFieldsExpense(t *testing.T) {
	f := NewFields().WithExpense("01-01-2025", "Food", 2.5, "").WithTotal(10)
	if len(f.ToSlice()) != 10 {
		t.Fatalf("expected 5 key/value pairs, got %v", f.ToSlice())
	}
	if f[FieldCategory] != "Food" || f[FieldTotal] != 10.0 {
		t.Fatalf("unexpected fields: %v", f)
	}
}

func TestLogFieldsReportAndEvent(t *testing.T) {
	f := NewFields().WithReport("/tmp/r.pdf", 3, 1).WithEvent("expense.created", "m-1").
		WithExpenseID(7).WithRemoved(2)
	if f[FieldPath] != "/tmp/r.pdf" || f[FieldRows] != 3 || f[FieldPages] != 1 {
		t.Fatalf("unexpected report fields: %v", f)
	}
	if f[FieldEventType] != "expense.created" || f[FieldMessageID] != "m-1" {
		t.Fatalf("unexpected event fields: %v", f)
	}
	if f[FieldExpenseID] != int64(7) || f[FieldRemoved] != int64(2) {
		t.Fatalf("unexpected id fields: %v", f)
	}
}

func TestForComponentUsesDefaultHandler(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	SetDefault(New(Config{Level: slog.LevelInfo, Component: ComponentApp, Output: &buf}))

	ForComponent(ComponentStorage).Info("Expense saved")

	if !strings.Contains(buf.String(), "component=storage") {
		t.Fatalf("expected storage component in %q", buf.String())
	}
}
