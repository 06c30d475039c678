package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/navionguy/flatbasic/mocks"
	"github.com/stretchr/testify/assert"
)

func TestExecCommand(t *testing.T) {
	tests := []struct {
		inp string
		exp []string
	}{
		{inp: "", exp: []string{}},
		{inp: "20 PRINT X * Y", exp: []string{}},
		{inp: "10 LET X = 5", exp: []string{}},
		{inp: "15 LET Y = 2", exp: []string{}},
		{inp: "LIST", exp: []string{"10 LET X = 5", "15 LET Y = 2", "20 PRINT X * Y", "OK"}},
		{inp: "RUN", exp: []string{"10.0", "OK"}},
		{inp: "15 LET Y = 3", exp: []string{}},
		{inp: "run", exp: []string{"15.0", "OK"}},
		{inp: "15", exp: []string{}},
		{inp: "RUN", exp: []string{"Undefined variable Y in PRINT at statement 1", "OK"}},
		{inp: "PRINT 2 + 4 * 2", exp: []string{"12.0", "OK"}},
		{inp: "PRINT X", exp: []string{"Undefined variable X in PRINT at statement 0", "OK"}},
		{inp: "nerf", exp: []string{"nerf\nError [Line 0]: Unknown statement nerf", "OK"}},
		{inp: "1x PRINT 1", exp: []string{"Syntax error, bad line number 1x"}},
		{inp: "CHECK", exp: []string{"2 statements", "OK"}},
		{inp: "30 NEXT I", exp: []string{}},
		{inp: "CHECK", exp: []string{"30 NEXT I\nError [Line 2]: NEXT without FOR", "OK"}},
		{inp: "NEW", exp: []string{"OK"}},
		{inp: "LIST", exp: []string{"OK"}},
		{inp: "TRON", exp: []string{"OK"}},
		{inp: "PRINT 1", exp: []string{"[0]1.0", "OK"}},
		{inp: "TROFF", exp: []string{"OK"}},
		{inp: "PRINT 1", exp: []string{"1.0", "OK"}},
	}

	s := New(mocks.NewMockTerm(), nil, t.TempDir())
	for _, tt := range tests {
		trm := mocks.NewMockTerm()
		s.term = trm

		quit := s.execCommand(tt.inp)

		assert.False(t, quit, tt.inp)
		assert.Equal(t, tt.exp, trm.Output(), tt.inp)
	}
}

func TestQuit(t *testing.T) {
	s := New(mocks.NewMockTerm(), nil, ".")

	assert.True(t, s.execCommand("quit"))
	assert.True(t, s.execCommand("SYSTEM"))
}

func TestGraphicsInRepl(t *testing.T) {
	md := &mocks.MockDisplay{}
	s := New(mocks.NewMockTerm(), md, ".")

	s.execCommand("10 SCREEN 13")
	s.execCommand("20 PLOT 1 , 1 , 8")
	s.execCommand("RUN")

	if assert.NotNil(t, md.Surface) {
		assert.Len(t, md.Surface.Pixels, 1)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := New(mocks.NewMockTerm(), nil, dir)

	s.execCommand("20 PRINT 2")
	s.execCommand("10 PRINT 1")
	s.execCommand("SAVE prog.bas")

	buf, err := os.ReadFile(filepath.Join(dir, "prog.bas"))
	assert.NoError(t, err)
	assert.Equal(t, "10 PRINT 1\n20 PRINT 2\n", string(buf))

	s.execCommand("NEW")
	s.execCommand("LOAD prog.bas")
	assert.Equal(t, []string{"10 PRINT 1", "20 PRINT 2"}, s.store.Lines())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "loose.bas"), []byte("PRINT 1\n"), 0o644))

	tests := []struct {
		inp string
		exp string
	}{
		{inp: "LOAD", exp: "Syntax error, LOAD needs a file name"},
		{inp: "SAVE", exp: "Syntax error, SAVE needs a file name"},
		{inp: "LOAD loose.bas", exp: "PRINT 1 is not numbered, can't load"},
	}

	for _, tt := range tests {
		trm := mocks.NewMockTerm()
		s := New(trm, nil, dir)
		s.store.Set(10, "10 PRINT 1")

		s.execCommand(tt.inp)

		assert.Equal(t, []string{tt.exp, "OK"}, trm.Output(), tt.inp)
		assert.Equal(t, 1, s.store.Len(), "a failed load keeps the program")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "b.bas"), []byte("10 END\n"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("text"), 0o644))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "games"), 0o755))

	trm := mocks.NewMockTerm()
	s := New(trm, nil, dir)
	s.execCommand("FILES")

	assert.Equal(t, []string{"games<DIR>", "b.bas", "OK"}, trm.Output())
}
