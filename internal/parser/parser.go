// Package parser turns SQL text into the generic statement tree consumed by
// the engine. The grammar is declarative (participle); the rest of the
// system only ever pattern-matches on the resulting shapes.
package parser

import (
	pkgerrors "github.com/pkg/errors"

	dberr "litedb/internal/domain/errors"
)

// Parse parses exactly one statement. Submitting more than one statement in
// a single string is an SQL error, mirroring the one-statement-per-call
// contract of the REPL.
func Parse(input string) (*Statement, error) {
	script, err := sqlParser.ParseString("", input)
	if err != nil {
		return nil, dberr.SQL(pkgerrors.Wrap(err, "parse"))
	}
	if n := len(script.Statements); n > 1 {
		return nil, dberr.SQLf("Expected a single query statement, but there are %d", n)
	}
	return script.Statements[0], nil
}
