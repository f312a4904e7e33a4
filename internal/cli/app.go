package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"budget/internal/core"
	applog "budget/internal/log"
	"budget/internal/services"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitInvalid = 2
)

const usage = `usage: budget <command> [arguments]

commands:
  add -date DD-MM-YYYY -category NAME -amount N [-description TEXT]
  list
  delete ID [ID...]
  delete-match -date DD-MM-YYYY -category NAME -amount N [-description TEXT]
  total
  export
`

// Exporter renders the current rows and total to a report file.
type Exporter interface {
	Export(ctx context.Context, rows []core.Row, total float64) (string, error)
}

// App is the presentation layer: it turns subcommands into expense service
// calls and prints their results.
type App struct {
	service  *services.ExpenseService
	exporter Exporter
	currency string
	logger   *applog.Logger
	stdout   io.Writer
	stderr   io.Writer
}

func NewApp(service *services.ExpenseService, exporter Exporter, currency string, logger *applog.Logger, stdout, stderr io.Writer) *App {
	return &App{
		service:  service,
		exporter: exporter,
		currency: currency,
		logger:   logger.WithComponent(applog.ComponentCLI),
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Run executes one subcommand and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return ExitInvalid
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "add":
		err = a.add(ctx, rest)
	case "list":
		err = a.list(ctx)
	case "delete":
		err = a.delete(ctx, rest)
	case "delete-match":
		err = a.deleteMatch(ctx, rest)
	case "total":
		err = a.total(ctx)
	case "export":
		err = a.export(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.stdout, usage)
		return ExitOK
	default:
		fmt.Fprintf(a.stderr, "unknown command %q\n\n%s", cmd, usage)
		return ExitInvalid
	}
	return a.report(ctx, args[0], err)
}

// report maps errors onto user-facing messages and exit codes.
func (a *App) report(ctx context.Context, cmd string, err error) int {
	var ve *core.ValidationError
	var usageErr *usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, core.ErrNoData):
		fmt.Fprintln(a.stdout, "No Data: No expenses to export.")
		return ExitOK
	case errors.As(err, &ve) && ve.Kind == core.MissingField:
		fmt.Fprintln(a.stderr, "Input Error: Please fill in all required fields.")
		return ExitInvalid
	case errors.As(err, &ve) && ve.Kind == core.NotNumeric:
		fmt.Fprintln(a.stderr, "Invalid Input: Amount must be a number.")
		return ExitInvalid
	case errors.As(err, &usageErr):
		fmt.Fprintln(a.stderr, usageErr.msg)
		return ExitInvalid
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	}

	errorType := applog.ErrorTypeInternal
	if cmd == "export" {
		errorType = applog.ErrorTypeExport
	}
	a.logger.WithFields(applog.NewFields().
		WithOperation(cmd).
		WithErrorType(errorType).
		WithError(err)).ErrorContext(ctx, "Command failed")
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return ExitFailure
}

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

type expenseFlags struct {
	date, category, amount, description string
}

func (a *App) parseExpenseFlags(name string, args []string) (expenseFlags, error) {
	var f expenseFlags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&f.date, "date", "", "expense date (DD-MM-YYYY)")
	fs.StringVar(&f.category, "category", "", "expense category")
	fs.StringVar(&f.amount, "amount", "", "expense amount")
	fs.StringVar(&f.description, "description", "", "optional description")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return f, err
		}
		return f, &usageError{msg: err.Error()}
	}
	if fs.NArg() > 0 {
		return f, &usageError{msg: fmt.Sprintf("%s: unexpected arguments %v", name, fs.Args())}
	}
	return f, nil
}

func (a *App) add(ctx context.Context, args []string) error {
	f, err := a.parseExpenseFlags("add", args)
	if err != nil {
		return err
	}
	e, err := a.service.AddExpense(ctx, f.date, f.category, f.amount, f.description)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Added expense %d. %s\n", e.ID, a.totalLabel(a.service.Total()))
	return nil
}

func (a *App) list(ctx context.Context) error {
	snap, err := a.service.Snapshot(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "S.No\tID\tDate\tCategory\tAmount\tDescription")
	for _, r := range snap.Rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			r.Seq, r.ID, r.Date, r.Category, core.FormatAmount(r.Amount), r.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, a.totalLabel(snap.Total))
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "No Selection: Please select a record to delete."}
	}
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("delete: invalid id %q", arg)}
		}
		ids = append(ids, id)
	}

	removed, err := a.service.DeleteExpense(ctx, ids...)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Deleted %d expense(s). %s\n", removed, a.totalLabel(a.service.Total()))
	return nil
}

func (a *App) deleteMatch(ctx context.Context, args []string) error {
	f, err := a.parseExpenseFlags("delete-match", args)
	if err != nil {
		return err
	}
	if f.date == "" || f.category == "" || f.amount == "" {
		return &core.ValidationError{Kind: core.MissingField, Field: "selection"}
	}
	amount, err := core.ParseAmount(f.amount)
	if err != nil {
		return err
	}

	removed, err := a.service.DeleteMatching(ctx, f.date, f.category, amount, f.description)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Deleted %d expense(s). %s\n", removed, a.totalLabel(a.service.Total()))
	return nil
}

func (a *App) total(ctx context.Context) error {
	total, err := a.service.CurrentTotal(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Your total expenses are: %s\n", core.FormatTotal(a.currency, total))
	return nil
}

func (a *App) export(ctx context.Context) error {
	snap, err := a.service.Snapshot(ctx)
	if err != nil {
		return err
	}
	path, err := a.exporter.Export(ctx, snap.Rows, snap.Total)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "PDF saved to:\n%s\n", path)
	return nil
}

func (a *App) totalLabel(total float64) string {
	return "Total: " + core.FormatTotal(a.currency, total)
}
