package repl

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	dberr "litedb/internal/domain/errors"
	"litedb/internal/domain/schema"
	"litedb/internal/parser"
)

// MetaKind enumerates the dot-prefixed commands the REPL understands.
type MetaKind int

const (
	MetaExit MetaKind = iota
	MetaHelp
	MetaOpen
	MetaTables
	MetaSchema
	MetaDump
	MetaAST
	MetaUnknown
)

// MetaCommand is a parsed dot command.
type MetaCommand struct {
	Kind MetaKind
	Args []string
	Raw  string
}

// NewMetaCommand splits a dot-prefixed line into command and arguments.
func NewMetaCommand(line string) MetaCommand {
	fields := strings.Fields(line)
	cmd := MetaCommand{Raw: line}
	if len(fields) > 1 {
		cmd.Args = fields[1:]
	}
	switch fields[0] {
	case ".exit", ".quit":
		cmd.Kind = MetaExit
	case ".help":
		cmd.Kind = MetaHelp
	case ".open":
		cmd.Kind = MetaOpen
	case ".tables":
		cmd.Kind = MetaTables
	case ".schema":
		cmd.Kind = MetaSchema
	case ".dump":
		cmd.Kind = MetaDump
	case ".ast":
		cmd.Kind = MetaAST
	default:
		cmd.Kind = MetaUnknown
	}
	return cmd
}

// HandleMetaCommand executes a meta command against the catalog and returns
// its printable output.
func HandleMetaCommand(cmd MetaCommand, db *schema.Database) (string, error) {
	switch cmd.Kind {
	case MetaHelp:
		return helpText, nil
	case MetaOpen:
		// No durable storage; acknowledged so scripts written against the
		// original front end do not error out.
		return "To be implemented: " + cmd.Raw, nil
	case MetaTables:
		return listTables(db), nil
	case MetaSchema:
		if len(cmd.Args) != 1 {
			return "", dberr.UnknownCommand("usage: .schema <table>")
		}
		t, err := db.Table(cmd.Args[0])
		if err != nil {
			return "", err
		}
		var b strings.Builder
		t.RenderSchema(&b)
		return b.String(), nil
	case MetaDump:
		if len(cmd.Args) != 1 {
			return "", dberr.UnknownCommand("usage: .dump <table>")
		}
		t, err := db.Table(cmd.Args[0])
		if err != nil {
			return "", err
		}
		var b strings.Builder
		t.RenderData(&b)
		return b.String(), nil
	case MetaAST:
		if len(cmd.Args) == 0 {
			return "", dberr.UnknownCommand("usage: .ast <statement>")
		}
		stmt, err := parser.Parse(strings.Join(cmd.Args, " "))
		if err != nil {
			return "", err
		}
		out, err := json.MarshalIndent(stmt, "", "  ")
		if err != nil {
			return "", dberr.Internalf("cannot render statement tree: %v", err)
		}
		return string(out), nil
	default:
		return "", dberr.UnknownCommand("unknown command or invalid arguments, enter '.help'")
	}
}

const helpText = `Special commands:
.help             display this message
.tables           list tables in the catalog
.schema <table>   show a table's columns and constraints
.dump <table>     show a table's rows
.ast <statement>  show the parsed statement tree
.open <filename>  reopen a persistent database (not implemented)
.exit             quit`

func listTables(db *schema.Database) string {
	var b strings.Builder
	tw := tablewriter.NewWriter(&b)
	tw.SetHeader([]string{"Table", "Columns", "Rows"})
	tw.SetAutoFormatHeaders(false)
	for _, name := range db.TableNames() {
		t := db.Tables[name]
		tw.Append([]string{
			name,
			strconv.Itoa(len(t.Columns)),
			strconv.Itoa(t.RowCount()),
		})
	}
	tw.Render()
	return b.String()
}
