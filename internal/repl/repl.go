// Package repl is the interactive front end: line editing, history, meta
// commands, and result printing. It is a collaborator of the engine, not
// part of it; everything here is presentation.
package repl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	dberr "litedb/internal/domain/errors"
	"litedb/internal/domain/schema"
	"litedb/internal/engine"
)

const prompt = "litedb> "

// Start runs the read-eval-print loop against the given catalog until the
// user exits. The catalog outlives the loop; state is session-scoped only
// because nothing persists it.
func Start(db *schema.Database) error {
	eng := engine.New(db)
	eng.AddObserver(engine.NewLoggingObserver())

	histFile := os.Getenv("LITEDB_HISTORY")
	if histFile == "" {
		histFile = filepath.Join(os.TempDir(), "litedb_history")
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render(prompt),
		HistoryFile:     histFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return dberr.IO(err)
	}
	defer l.Close()

	fmt.Println(banner())

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return dberr.IO(err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			cmd := NewMetaCommand(line)
			if cmd.Kind == MetaExit {
				break
			}
			out, err := HandleMetaCommand(cmd, db)
			if err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
				continue
			}
			fmt.Println(out)
			continue
		}

		out, err := eng.Execute(line)
		if err != nil {
			slog.Debug("statement failed", "input", line, "error", err)
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}
		fmt.Println(out)
	}
	return nil
}

func banner() string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render("litedb - transient in-memory database"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Enter .help for usage hints, .exit to quit."))
	return b.String()
}
