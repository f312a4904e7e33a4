package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/core"
	"budget/internal/ledger/memory"
	applog "budget/internal/log"
	"budget/internal/report"
	"budget/internal/services"
)

type testApp struct {
	app    *App
	store  *memory.Store
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	logs   *bytes.Buffer
	dir    string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir := t.TempDir()
	exporter, err := report.NewExporter(dir, "", "₹")
	require.NoError(t, err)

	store := memory.New()
	var stdout, stderr, logs bytes.Buffer
	logger := applog.New(applog.Config{Component: applog.ComponentApp, Output: &logs})
	app := NewApp(services.NewExpenseService(store, nil), exporter, "₹", logger, &stdout, &stderr)
	return &testApp{app: app, store: store, stdout: &stdout, stderr: &stderr, logs: &logs, dir: dir}
}

func (ta *testApp) run(args ...string) int {
	ta.stdout.Reset()
	ta.stderr.Reset()
	return ta.app.Run(context.Background(), args)
}

func TestRun_AddListTotal(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, ExitOK, ta.run("add", "-date", "01-01-2025", "-category", "Food", "-amount", "10.50", "-description", "lunch"))
	assert.Contains(t, ta.stdout.String(), "Added expense 1. Total: ₹10.50")

	require.Equal(t, ExitOK, ta.run("add", "-date", "02-01-2025", "-category", "Rent", "-amount", "20.25"))
	require.Equal(t, ExitOK, ta.run("add", "-date", "03-01-2025", "-category", "Misc", "-amount", "5"))

	require.Equal(t, ExitOK, ta.run("list"))
	lines := strings.Split(strings.TrimSpace(ta.stdout.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "S.No"))
	assert.Equal(t, []string{"1", "1", "01-01-2025", "Food", "10.50", "lunch"}, strings.Fields(lines[1]))
	assert.Equal(t, "Total: ₹35.75", lines[4])

	require.Equal(t, ExitOK, ta.run("total"))
	assert.Equal(t, "Your total expenses are: ₹35.75\n", ta.stdout.String())
}

func TestRun_AddValidation(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, ExitInvalid, ta.run("add", "-date", "01-01-2025", "-amount", "3"))
	assert.Contains(t, ta.stderr.String(), "Please fill in all required fields.")

	assert.Equal(t, ExitInvalid, ta.run("add", "-date", "01-01-2025", "-category", "Food", "-amount", "abc"))
	assert.Contains(t, ta.stderr.String(), "Amount must be a number.")

	assert.Equal(t, ExitInvalid, ta.run("add", "-bogus"))
	assert.Equal(t, 0, ta.store.Len())
}

func TestRun_DeleteByID(t *testing.T) {
	ta := newTestApp(t)
	for i := 0; i < 3; i++ {
		require.Equal(t, ExitOK, ta.run("add", "-date", "d", "-category", "c", "-amount", "2"))
	}

	require.Equal(t, ExitOK, ta.run("delete", "1", "3"))
	assert.Equal(t, "Deleted 2 expense(s). Total: ₹2.00\n", ta.stdout.String())
	assert.Equal(t, 1, ta.store.Len())

	assert.Equal(t, ExitInvalid, ta.run("delete"))
	assert.Contains(t, ta.stderr.String(), "Please select a record to delete.")

	assert.Equal(t, ExitInvalid, ta.run("delete", "x"))
	assert.Contains(t, ta.stderr.String(), `invalid id "x"`)
}

func TestRun_DeleteMatch(t *testing.T) {
	ta := newTestApp(t)
	for i := 0; i < 2; i++ {
		require.Equal(t, ExitOK, ta.run("add", "-date", "d", "-category", "c", "-amount", "9.99", "-description", "dup"))
	}
	require.Equal(t, ExitOK, ta.run("add", "-date", "d", "-category", "c", "-amount", "1"))

	require.Equal(t, ExitOK, ta.run("delete-match", "-date", "d", "-category", "c", "-amount", "9.99", "-description", "dup"))
	assert.Equal(t, "Deleted 2 expense(s). Total: ₹1.00\n", ta.stdout.String())

	assert.Equal(t, ExitInvalid, ta.run("delete-match", "-date", "d"))
}

func TestRun_Export(t *testing.T) {
	ta := newTestApp(t)
	path := filepath.Join(ta.dir, report.DefaultFileName)

	require.Equal(t, ExitOK, ta.run("export"))
	assert.Contains(t, ta.stdout.String(), "No expenses to export.")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.Equal(t, ExitOK, ta.run("add", "-date", "d", "-category", "c", "-amount", "3"))
	require.Equal(t, ExitOK, ta.run("export"))
	assert.Contains(t, ta.stdout.String(), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRun_Usage(t *testing.T) {
	ta := newTestApp(t)
	assert.Equal(t, ExitInvalid, ta.run())
	assert.Contains(t, ta.stderr.String(), "usage: budget")

	assert.Equal(t, ExitInvalid, ta.run("frobnicate"))
	assert.Contains(t, ta.stderr.String(), `unknown command "frobnicate"`)

	assert.Equal(t, ExitOK, ta.run("help"))
	assert.Contains(t, ta.stdout.String(), "commands:")
}

type failingExporter struct{}

func (failingExporter) Export(context.Context, []core.Row, float64) (string, error) {
	return "", os.ErrPermission
}

func TestRun_ExportFailure(t *testing.T) {
	ta := newTestApp(t)
	ta.app.exporter = failingExporter{}
	require.Equal(t, ExitOK, ta.run("add", "-date", "d", "-category", "c", "-amount", "3"))

	assert.Equal(t, ExitFailure, ta.run("export"))
	assert.Contains(t, ta.stderr.String(), "Error: permission denied")
	assert.Contains(t, ta.logs.String(), "component=cli")
	assert.Contains(t, ta.logs.String(), "error_type=export_error")
}
