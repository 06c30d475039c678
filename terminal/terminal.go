package terminal

import (
	"bufio"
	"io"
)

// Terminal holds the output stream and provides the console a program prints to
type Terminal struct {
	out *bufio.Writer
	err error
}

// New creates a new Terminal writing to w
func New(w io.Writer) *Terminal {
	return &Terminal{out: bufio.NewWriter(w)}
}

// Println prints the string followed by a newline
func (t *Terminal) Println(msg string) {
	t.Print(msg + "\n")
	t.Flush()
}

// Print sends the passed string to the output, no newline
func (t *Terminal) Print(msg string) {
	if t.err != nil {
		return
	}
	_, t.err = t.out.WriteString(msg)
}

// Flush pushes out anything still buffered
func (t *Terminal) Flush() error {
	if t.err == nil {
		t.err = t.out.Flush()
	}
	return t.err
}

// Err returns the first write error seen, output stops after one
func (t *Terminal) Err() error {
	return t.err
}
