package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar below is the generic parsed-statement tree the engine
// consumes. The core pattern-matches on statement shape and extracts fields
// by name; it never re-derives SQL syntax from text.

// Script is one REPL submission: one or more ';'-separated statements.
type Script struct {
	Statements []*Statement `parser:"@@ ( ';' @@ )* ';'?"`
}

// Statement is the closed set of statement shapes. Exactly one field is
// non-nil after a successful parse.
type Statement struct {
	CreateTable *CreateTableStatement `parser:"@@"`
	Insert      *InsertStatement      `parser:"| @@"`
	Select      *SelectStatement      `parser:"| @@"`
	Delete      *DeleteStatement      `parser:"| @@"`
	Update      *UpdateStatement      `parser:"| @@"`
}

// CreateTableStatement: CREATE TABLE name (col TYPE [options], ...)
type CreateTableStatement struct {
	Name    string        `parser:"'CREATE' 'TABLE' @Ident"`
	Columns []*ColumnDecl `parser:"'(' @@ ( ',' @@ )* ')'"`
}

// ColumnDecl is one column declaration: name, type, declared options in
// source order.
type ColumnDecl struct {
	Name    string          `parser:"@Ident"`
	Type    *TypeName       `parser:"@@"`
	Options []*ColumnOption `parser:"@@*"`
}

// TypeName is a declared type, optionally sized: VARCHAR(255), DECIMAL(10,2).
type TypeName struct {
	Name string `parser:"@Ident"`
	Args []int  `parser:"( '(' @Number ( ',' @Number )* ')' )?"`
}

// ColumnOption is one declared constraint on a column.
type ColumnOption struct {
	PrimaryKey bool `parser:"@('PRIMARY' 'KEY')"`
	NotNull    bool `parser:"| @('NOT' 'NULL')"`
	Unique     bool `parser:"| @'UNIQUE'"`
}

// InsertStatement: INSERT INTO name [(cols)] VALUES (row), (row), ...
// The column list is preserved exactly as supplied; an absent list stays
// empty here and is expanded by the dispatcher.
type InsertStatement struct {
	Table   string      `parser:"'INSERT' 'INTO' @Ident"`
	Columns []string    `parser:"( '(' @Ident ( ',' @Ident )* ')' )?"`
	Rows    []*ValueRow `parser:"'VALUES' @@ ( ',' @@ )*"`
}

// ValueRow is one parenthesized literal tuple.
type ValueRow struct {
	Values []*Literal `parser:"'(' @@ ( ',' @@ )* ')'"`
}

// Literal is the closed set of value kinds an INSERT may carry. Exactly one
// field is set. Anything else is a parse error, never a silent drop.
type Literal struct {
	Number *string `parser:"@Number"`
	Str    *string `parser:"| @String"`
	Bool   *string `parser:"| @('TRUE' | 'FALSE')"`
	Null   bool    `parser:"| @'NULL'"`
	Ident  *string `parser:"| @Ident"`
}

// SelectStatement: SELECT */cols FROM name [WHERE cond]. Execution is a stub
// contract; the shape exists so the dispatcher can acknowledge it.
type SelectStatement struct {
	Star   bool       `parser:"'SELECT' ( @'*'"`
	Fields []string   `parser:"| @Ident ( ',' @Ident )* )"`
	Table  string     `parser:"'FROM' @Ident"`
	Where  *Condition `parser:"( 'WHERE' @@ )?"`
}

// DeleteStatement: DELETE FROM name [WHERE cond]. Stub contract.
type DeleteStatement struct {
	Table string     `parser:"'DELETE' 'FROM' @Ident"`
	Where *Condition `parser:"( 'WHERE' @@ )?"`
}

// UpdateStatement parses so the dispatcher can answer "not implemented"
// instead of a parse error.
type UpdateStatement struct {
	Table string        `parser:"'UPDATE' @Ident"`
	Set   []*Assignment `parser:"'SET' @@ ( ',' @@ )*"`
	Where *Condition    `parser:"( 'WHERE' @@ )?"`
}

// Assignment is one SET column = literal pair.
type Assignment struct {
	Column string   `parser:"@Ident '='"`
	Value  *Literal `parser:"@@"`
}

// Condition is a single column-operator-literal comparison.
type Condition struct {
	Column   string   `parser:"@Ident"`
	Operator string   `parser:"@('=' | '<' | '>')"`
	Value    *Literal `parser:"@@"`
}

var sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(CREATE|TABLE|INSERT|INTO|VALUES|SELECT|FROM|WHERE|DELETE|UPDATE|SET|PRIMARY|KEY|NOT|NULL|UNIQUE|TRUE|FALSE)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `-?\d+(\.\d+)?`},
	{Name: "String", Pattern: `'[^']*'`},
	{Name: "Punct", Pattern: `[(),;*=<>]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var sqlParser = participle.MustBuild[Script](
	participle.Lexer(sqlLexer),
	participle.CaseInsensitive("Keyword"),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
