// Package engine dispatches parsed statements against a database catalog.
package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	dberr "litedb/internal/domain/errors"
	"litedb/internal/domain/schema"
	"litedb/internal/parser"
	"litedb/internal/query"
)

// Engine routes statements to schema creation or row insertion. It holds no
// state of its own beyond the catalog reference and registered observers;
// one engine serves one session, and callers serialize access.
type Engine struct {
	db        *schema.Database
	observers []Observer
}

// New creates an engine over an explicitly constructed catalog.
func New(db *schema.Database) *Engine {
	return &Engine{db: db, observers: make([]Observer, 0)}
}

// Database returns the catalog this engine mutates.
func (e *Engine) Database() *schema.Database { return e.db }

// Execute parses and dispatches one SQL string, returning a human-readable
// outcome or a typed error. Every code path returns; nothing panics across
// this boundary.
func (e *Engine) Execute(sql string) (string, error) {
	id := uuid.New().String()

	e.notify(Event{Type: EventParseStart, StatementID: id, Data: sql})
	stmt, err := parser.Parse(sql)
	if err != nil {
		return "", err
	}
	e.notify(Event{Type: EventParseEnd, StatementID: id, Data: fmt.Sprintf("%T", stmt)})

	e.notify(Event{Type: EventExecStart, StatementID: id})
	msg, err := e.Dispatch(stmt)
	e.notify(Event{Type: EventExecEnd, StatementID: id, Data: map[string]any{
		"ok":      err == nil,
		"message": msg,
	}})
	return msg, err
}

// Dispatch routes an already-parsed statement. SELECT and DELETE are stub
// acknowledgments; any other unsupported shape is a typed NotImplemented.
func (e *Engine) Dispatch(stmt *parser.Statement) (string, error) {
	switch {
	case stmt.CreateTable != nil:
		return e.createTable(stmt)
	case stmt.Insert != nil:
		return e.insert(stmt)
	case stmt.Select != nil:
		return "SELECT statement executed.", nil
	case stmt.Delete != nil:
		return "DELETE statement executed.", nil
	default:
		return "", dberr.NotImplemented("SQL statement not supported yet")
	}
}

func (e *Engine) createTable(stmt *parser.Statement) (string, error) {
	cq, err := query.NewCreateQuery(stmt)
	if err != nil {
		return "", err
	}
	if e.db.ContainsTable(cq.TableName) {
		return "", dberr.Generalf("table %q already exists", cq.TableName)
	}
	e.db.Tables[cq.TableName] = schema.NewTable(cq.TableName, cq.Columns)
	return fmt.Sprintf("Table %q created", cq.TableName), nil
}

func (e *Engine) insert(stmt *parser.Statement) (string, error) {
	iq, err := query.NewInsertQuery(stmt)
	if err != nil {
		return "", err
	}
	t, err := e.db.Table(iq.TableName)
	if err != nil {
		return "", err
	}

	cols := iq.Columns
	if len(cols) == 0 {
		// INSERT INTO t VALUES (...): the translator preserves the empty
		// list, expansion to declaration order happens here.
		cols = t.ColumnNames()
	}

	var missing []string
	for _, name := range cols {
		if !t.ContainsColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", dberr.Generalf(
			"columns not found in table %q: %s", iq.TableName, strings.Join(missing, ", "))
	}

	inserted := 0
	for _, row := range iq.Rows {
		if len(row) != len(cols) {
			return "", dberr.Generalf(
				"%d values for %d columns", len(row), len(cols))
		}
		if err := t.ValidateUniqueConstraint(cols, row); err != nil {
			return "", err
		}
		if err := t.InsertRow(cols, row); err != nil {
			return "", err
		}
		inserted++
	}
	return fmt.Sprintf("%d row(s) inserted into %q", inserted, iq.TableName), nil
}

// AddObserver registers an observer for statement lifecycle events.
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer.
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

func (e *Engine) notify(event Event) {
	event.Timestamp = timeNow()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
