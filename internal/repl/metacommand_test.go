package repl

import (
	"strings"
	"testing"

	dberr "litedb/internal/domain/errors"
	"litedb/internal/domain/schema"
)

func testDB() *schema.Database {
	db := schema.NewDatabase("test")
	db.Tables["contacts"] = schema.NewTable("contacts", []schema.ColumnDef{
		{Name: "id", Type: schema.DataTypeInteger, PrimaryKey: true},
		{Name: "email", Type: schema.DataTypeText, NotNull: true, Unique: true},
	})
	return db
}

func TestNewMetaCommand(t *testing.T) {
	tests := []struct {
		line string
		want MetaKind
	}{
		{".exit", MetaExit},
		{".quit", MetaExit},
		{".help", MetaHelp},
		{".open database.db", MetaOpen},
		{".tables", MetaTables},
		{".schema contacts", MetaSchema},
		{".dump contacts", MetaDump},
		{".ast SELECT * FROM t;", MetaAST},
		{".bogus", MetaUnknown},
	}
	for _, tt := range tests {
		if got := NewMetaCommand(tt.line); got.Kind != tt.want {
			t.Errorf("%q: expected kind %d, got %d", tt.line, tt.want, got.Kind)
		}
	}
}

func TestHandleHelp(t *testing.T) {
	out, err := HandleMetaCommand(NewMetaCommand(".help"), testDB())
	if err != nil {
		t.Fatalf("HandleMetaCommand error: %v", err)
	}
	if !strings.Contains(out, ".exit") {
		t.Errorf("Help text incomplete: %q", out)
	}
}

func TestHandleOpenAcknowledged(t *testing.T) {
	out, err := HandleMetaCommand(NewMetaCommand(".open stuff.db"), testDB())
	if err != nil {
		t.Fatalf("HandleMetaCommand error: %v", err)
	}
	if !strings.Contains(out, "To be implemented") {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestHandleTables(t *testing.T) {
	out, err := HandleMetaCommand(NewMetaCommand(".tables"), testDB())
	if err != nil {
		t.Fatalf("HandleMetaCommand error: %v", err)
	}
	if !strings.Contains(out, "contacts") {
		t.Errorf("Table listing missing contacts: %q", out)
	}
}

func TestHandleSchema(t *testing.T) {
	out, err := HandleMetaCommand(NewMetaCommand(".schema contacts"), testDB())
	if err != nil {
		t.Fatalf("HandleMetaCommand error: %v", err)
	}
	for _, want := range []string{"id", "Integer", "email", "Text"} {
		if !strings.Contains(out, want) {
			t.Errorf("Schema output missing %q: %q", want, out)
		}
	}
}

func TestHandleSchemaMissingTable(t *testing.T) {
	_, err := HandleMetaCommand(NewMetaCommand(".schema nothere"), testDB())
	if err == nil {
		t.Fatal("Expected table-not-found error, got nil")
	}
}

func TestHandleAST(t *testing.T) {
	out, err := HandleMetaCommand(NewMetaCommand(".ast SELECT id FROM contacts;"), testDB())
	if err != nil {
		t.Fatalf("HandleMetaCommand error: %v", err)
	}
	if !strings.Contains(out, "contacts") {
		t.Errorf("AST dump missing table name: %q", out)
	}
}

func TestHandleUnknown(t *testing.T) {
	_, err := HandleMetaCommand(NewMetaCommand(".frobnicate"), testDB())
	if err == nil {
		t.Fatal("Expected unknown-command error, got nil")
	}
	if kind, ok := dberr.KindOf(err); !ok || kind != dberr.KindUnknownCommand {
		t.Errorf("Expected UnknownCommand kind, got %v", err)
	}
}
