// Package cli is the interactive front end, lines typed with a number
// are kept as the program, anything else runs right away
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/navionguy/flatbasic/ast"
	"github.com/navionguy/flatbasic/evaluator"
	"github.com/navionguy/flatbasic/filelist"
	"github.com/navionguy/flatbasic/lexer"
	"github.com/navionguy/flatbasic/object"
	"github.com/navionguy/flatbasic/parser"
	"github.com/navionguy/flatbasic/token"
)

const prompt = ""

// Session is the state kept between lines the user types
type Session struct {
	store   *Store
	term    object.Console
	display object.Display
	dir     string // where LOAD and SAVE look
	trace   bool
}

// New returns a Session printing to term, display may be nil
func New(term object.Console, display object.Display, dir string) *Session {
	return &Session{
		store:   NewStore(),
		term:    term,
		display: display,
		dir:     dir,
	}
}

// SetTrace sets the starting state of TRON/TROFF
func (s *Session) SetTrace(on bool) {
	s.trace = on
}

// Start begins interacting with the user, returns when they quit
// history is loaded from and saved to histPath when it is set
func Start(s *Session, histPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if len(histPath) > 0 {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s.term.Println("OK")
	for {
		input, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		if len(strings.TrimSpace(input)) > 0 {
			ln.AppendHistory(input)
		}

		if s.execCommand(input) {
			return nil
		}
	}
}

// execCommand handles one line of input, returns true when it is time to quit
func (s *Session) execCommand(input string) bool {
	tokens := lexer.Tokenize(input)
	if len(tokens) == 0 {
		return false
	}

	if isDigit(tokens[0][0]) {
		s.editLine(tokens, input)
		return false
	}

	switch token.Upper(tokens[0]) {
	case "QUIT", "SYSTEM":
		return true
	case "RUN":
		s.runLines(s.store.Lines())
	case "LIST":
		for _, l := range s.store.Lines() {
			s.term.Println(l)
		}
	case "NEW":
		s.store.Clear()
	case "CHECK":
		if p := s.checkLines(s.store.Lines()); p != nil {
			s.term.Println(fmt.Sprintf("%d statements", p.Len()))
		}
	case "FILES":
		s.listFiles()
	case "LOAD":
		s.loadFile(tokens[1:])
	case "SAVE":
		s.saveFile(tokens[1:])
	case "TRON":
		s.trace = true
	case "TROFF":
		s.trace = false
	default:
		s.runLines([]string{input})
	}

	s.term.Println("OK")
	return false
}

// a line starting with a number goes into the program
// a number on its own deletes that line
func (s *Session) editLine(tokens []string, input string) {
	num, err := strconv.Atoi(tokens[0])
	if err != nil {
		s.giveError(fmt.Sprintf("Syntax error, bad line number %s", tokens[0]))
		return
	}

	if len(tokens) == 1 {
		s.store.Delete(num)
		return
	}

	s.store.Set(num, strings.TrimSpace(input))
}

// checkLines parses and reports any errors
// the program comes back only if it is clean
func (s *Session) checkLines(lines []string) *ast.Program {
	p := parser.New(lines)
	prog := p.ParseProgram()

	for _, e := range p.Errors() {
		s.term.Println(e.Error())
	}

	if len(p.Errors()) > 0 {
		return nil
	}
	return prog
}

// runLines executes against a fresh environment
func (s *Session) runLines(lines []string) {
	prog := s.checkLines(lines)
	if prog == nil {
		return
	}

	env := object.NewEnvironment(s.term, s.display)
	env.SetTrace(s.trace)

	if err := evaluator.Run(prog, env); err != nil {
		s.giveError(err.Error())
	}
}

// listFiles shows the programs and directories LOAD can see
func (s *Session) listFiles() {
	fl := filelist.NewFileList()
	if err := fl.Build(os.DirFS(s.dir), "."); err != nil {
		s.giveError(err.Error())
		return
	}

	for _, n := range fl.Names() {
		s.term.Println(n)
	}
}

func (s *Session) loadFile(args []string) {
	if len(args) != 1 {
		s.giveError("Syntax error, LOAD needs a file name")
		return
	}

	buf, err := os.ReadFile(filepath.Join(s.dir, args[0]))
	if err != nil {
		s.giveError(err.Error())
		return
	}

	store := NewStore()
	for _, l := range parser.SplitLines(string(buf)) {
		tokens := lexer.Tokenize(l)
		if len(tokens) == 0 {
			continue
		}

		num, err := strconv.Atoi(tokens[0])
		if err != nil {
			s.giveError(fmt.Sprintf("%s is not numbered, can't load", l))
			return
		}
		store.Set(num, strings.TrimSpace(l))
	}

	s.store = store
}

func (s *Session) saveFile(args []string) {
	if len(args) != 1 {
		s.giveError("Syntax error, SAVE needs a file name")
		return
	}

	body := strings.Join(s.store.Lines(), "\n") + "\n"
	if err := os.WriteFile(filepath.Join(s.dir, args[0]), []byte(body), 0o644); err != nil {
		s.giveError(err.Error())
	}
}

func (s *Session) giveError(msg string) {
	s.term.Println(msg)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
