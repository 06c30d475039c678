package filelist

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

var testDir = fstest.MapFS{
	"short.bas":            {Data: []byte("10 PRINT 1\n")},
	"test.bas":             {Data: []byte("10 PRINT 2\n")},
	"alongername.BAS":      {Data: []byte("10 PRINT 3\n")},
	"notes.txt":            {Data: []byte("not a program")},
	".hidden.bas":          {Data: []byte("10 PRINT 4\n")},
	"subdir/test1.bas":     {Data: []byte("10 PRINT 5\n")},
	"asubdir/test2.bas":    {Data: []byte("10 PRINT 6\n")},
	".git/config":          {Data: []byte("")},
	"aamenu.bas":           {Data: []byte("10 PRINT 7\n")},
	"asubdir/deep/end.bas": {Data: []byte("10 END\n")},
}

func Test_Build(t *testing.T) {
	fl := NewFileList()

	err := fl.Build(testDir, ".")

	assert.NoError(t, err)
	assert.Equal(t, []string{"asubdir<DIR>", "subdir<DIR>", "aamenu.bas", "alongername.BAS", "short.bas", "test.bas"}, fl.Names())
}

func Test_BuildSubdir(t *testing.T) {
	fl := NewFileList()

	assert.NoError(t, fl.Build(testDir, "asubdir"))
	assert.Equal(t, []string{"deep<DIR>", "test2.bas"}, fl.Names())
}

func Test_BuildError(t *testing.T) {
	fl := NewFileList()

	assert.Error(t, fl.Build(testDir, "nowhere"))
	assert.Error(t, fl.Build(testDir, "short.bas"))
}

func Test_BuildResets(t *testing.T) {
	fl := NewFileList()

	assert.NoError(t, fl.Build(testDir, "."))
	assert.NoError(t, fl.Build(testDir, "subdir"))
	assert.Equal(t, []string{"test1.bas"}, fl.Names())
}

func Test_FilesJSON(t *testing.T) {
	fl := NewFileList()
	assert.Equal(t, "[]", string(fl.JSON()))

	assert.NoError(t, fl.Build(testDir, "asubdir"))
	assert.Equal(t, `[{"name":"deep","isdir":true},{"name":"test2.bas","isdir":false}]`, string(fl.JSON()))
}

func Test_IsDotFile(t *testing.T) {
	tests := []struct {
		inp string
		exp bool
	}{
		{inp: "prog.bas", exp: false},
		{inp: "dir/prog.bas", exp: false},
		{inp: ".prog.bas", exp: true},
		{inp: "dir/.hidden/prog.bas", exp: true},
		{inp: "../prog.bas", exp: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.exp, IsDotFile(tt.inp), tt.inp)
	}
}

func Test_IsProgram(t *testing.T) {
	assert.True(t, IsProgram("a.bas"))
	assert.True(t, IsProgram("A.BAS"))
	assert.False(t, IsProgram("a.txt"))
	assert.False(t, IsProgram("bas"))
}
