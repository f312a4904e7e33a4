package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldExpenseID   = "expense_id"
	FieldDate        = "date"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldRemoved     = "removed"
	FieldTotal       = "total"
	FieldPath        = "path"
	FieldRows        = "rows"
	FieldPages       = "pages"
	FieldEventType   = "event_type"
	FieldMessageID   = "message_id"
	FieldExchange    = "exchange"
	FieldQueue       = "queue"
	FieldBackend     = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentExpense = "expense"
	ComponentStorage = "storage"
	ComponentReport  = "report"
	ComponentAMQP    = "amqp"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpDelete   = "delete"
	OpExport   = "export"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeExport        = "export_error"
	ErrorTypeMessaging     = "messaging_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds the error message, skipping nil errors
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithExpense adds the four displayed expense fields
func (f LogFields) WithExpense(date, category string, amount float64, description string) LogFields {
	f[FieldDate] = date
	f[FieldCategory] = category
	f[FieldAmount] = amount
	f[FieldDescription] = description
	return f
}

func (f LogFields) WithExpenseID(id int64) LogFields {
	f[FieldExpenseID] = id
	return f
}

func (f LogFields) WithRemoved(removed int64) LogFields {
	f[FieldRemoved] = removed
	return f
}

func (f LogFields) WithTotal(total float64) LogFields {
	f[FieldTotal] = total
	return f
}

// WithReport adds where a report was written and its size
func (f LogFields) WithReport(path string, rows, pages int) LogFields {
	f[FieldPath] = path
	f[FieldRows] = rows
	f[FieldPages] = pages
	return f
}

// WithEvent adds the type and id of a published ledger event
func (f LogFields) WithEvent(eventType, messageID string) LogFields {
	f[FieldEventType] = eventType
	f[FieldMessageID] = messageID
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
