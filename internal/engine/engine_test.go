package engine

import (
	"strings"
	"testing"

	dberr "litedb/internal/domain/errors"
	"litedb/internal/domain/schema"
)

func newTestEngine() *Engine {
	return New(schema.NewDatabase("test"))
}

func exec(t *testing.T, e *Engine, sql string) string {
	t.Helper()
	msg, err := e.Execute(sql)
	if err != nil {
		t.Fatalf("Execute(%q) error: %v", sql, err)
	}
	return msg
}

func TestCreateTable(t *testing.T) {
	e := newTestEngine()
	msg := exec(t, e, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL);")
	if !strings.Contains(msg, "created") {
		t.Errorf("Unexpected message: %q", msg)
	}
	if !e.Database().ContainsTable("users") {
		t.Error("Catalog does not contain users")
	}
}

func TestCreateTableDuplicateName(t *testing.T) {
	e := newTestEngine()
	exec(t, e, "CREATE TABLE users (id INTEGER PRIMARY KEY);")

	_, err := e.Execute("CREATE TABLE users (other TEXT);")
	if err == nil {
		t.Fatal("Expected already-exists error, got nil")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Unexpected error: %v", err)
	}

	// Catalog still holds the first definition.
	tbl, _ := e.Database().Table("users")
	if len(tbl.Columns) != 1 || tbl.Columns[0].Name != "id" {
		t.Errorf("First definition lost: %+v", tbl.Columns)
	}
}

func TestCreateTableMultiplePrimaryKeysNoTableConstructed(t *testing.T) {
	e := newTestEngine()
	_, err := e.Execute("CREATE TABLE t (a INTEGER PRIMARY KEY, b TEXT PRIMARY KEY);")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if e.Database().ContainsTable("t") {
		t.Error("Table was constructed despite translation failure")
	}
}

func TestInsert(t *testing.T) {
	e := newTestEngine()
	exec(t, e, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL);")
	msg := exec(t, e, "INSERT INTO users (name) VALUES ('josh');")
	if !strings.Contains(msg, "1 row(s) inserted") {
		t.Errorf("Unexpected message: %q", msg)
	}

	tbl, _ := e.Database().Table("users")
	if tbl.LastRowID != 1 {
		t.Errorf("Expected LastRowID 1, got %d", tbl.LastRowID)
	}
}

func TestInsertIntoMissingTable(t *testing.T) {
	e := newTestEngine()
	_, err := e.Execute("INSERT INTO ghosts (name) VALUES ('x');")
	if err == nil {
		t.Fatal("Expected table-not-found error, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestInsertUnknownColumns(t *testing.T) {
	e := newTestEngine()
	exec(t, e, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);")

	_, err := e.Execute("INSERT INTO users (name, age, height) VALUES ('x', 1, 2);")
	if err == nil {
		t.Fatal("Expected missing-columns error, got nil")
	}
	if !strings.Contains(err.Error(), "age") || !strings.Contains(err.Error(), "height") {
		t.Errorf("Error should name every missing column: %v", err)
	}

	tbl, _ := e.Database().Table("users")
	if tbl.RowCount() != 0 {
		t.Error("Row store mutated despite missing columns")
	}
}

func TestInsertCountMismatch(t *testing.T) {
	e := newTestEngine()
	exec(t, e, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);")

	_, err := e.Execute("INSERT INTO users (name) VALUES ('a', 'b');")
	if err == nil {
		t.Fatal("Expected count mismatch error, got nil")
	}
	if !strings.Contains(err.Error(), "2 values for 1 columns") {
		t.Errorf("Error should state both counts: %v", err)
	}
}

func TestInsertWithoutColumnListUsesDeclarationOrder(t *testing.T) {
	e := newTestEngine()
	exec(t, e, "CREATE TABLE pts (id INTEGER PRIMARY KEY, x REAL, y REAL);")
	exec(t, e, "INSERT INTO pts VALUES (1, 0.5, 1.5);")

	tbl, _ := e.Database().Table("pts")
	if tbl.Rows["x"].Reals[1] != 0.5 || tbl.Rows["y"].Reals[1] != 1.5 {
		t.Errorf("Values misassigned: x=%v y=%v", tbl.Rows["x"].Reals, tbl.Rows["y"].Reals)
	}
}

func TestInsertMultipleRows(t *testing.T) {
	e := newTestEngine()
	exec(t, e, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);")
	msg := exec(t, e, "INSERT INTO users (name) VALUES ('a'), ('b'), ('c');")
	if !strings.Contains(msg, "3 row(s)") {
		t.Errorf("Unexpected message: %q", msg)
	}
	tbl, _ := e.Database().Table("users")
	if tbl.LastRowID != 3 {
		t.Errorf("Expected LastRowID 3, got %d", tbl.LastRowID)
	}
}

func TestSelectStub(t *testing.T) {
	e := newTestEngine()
	msg := exec(t, e, "SELECT * FROM users;")
	if msg != "SELECT statement executed." {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestDeleteStub(t *testing.T) {
	e := newTestEngine()
	msg := exec(t, e, "DELETE FROM users WHERE id = 1;")
	if msg != "DELETE statement executed." {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestUpdateNotImplemented(t *testing.T) {
	e := newTestEngine()
	_, err := e.Execute("UPDATE users SET name = 'josh' WHERE id = 1;")
	if err == nil {
		t.Fatal("Expected not-implemented error, got nil")
	}
	if kind, ok := dberr.KindOf(err); !ok || kind != dberr.KindNotImplemented {
		t.Errorf("Expected NotImplemented kind, got %v", err)
	}
}

func TestMultipleStatementsRejected(t *testing.T) {
	e := newTestEngine()
	_, err := e.Execute("SELECT * FROM a; SELECT * FROM b;")
	if err == nil {
		t.Fatal("Expected SQL error, got nil")
	}
	if kind, ok := dberr.KindOf(err); !ok || kind != dberr.KindSQL {
		t.Errorf("Expected SQL kind, got %v", err)
	}
}
