package mocks

import (
	"bytes"
	"errors"
)

// MockWriter collects what is written until FailAfter writes, then fails
type MockWriter struct {
	FailAfter int // writes allowed before failing, < 0 never fails
	writes    int
	buf       bytes.Buffer
}

// NewWriter returns a MockWriter that never fails
func NewWriter() *MockWriter {
	return &MockWriter{FailAfter: -1}
}

func (mw *MockWriter) Write(p []byte) (int, error) {
	if (mw.FailAfter >= 0) && (mw.writes >= mw.FailAfter) {
		return 0, errors.New("disk full")
	}
	mw.writes++
	return mw.buf.Write(p)
}

// String returns everything written so far
func (mw *MockWriter) String() string {
	return mw.buf.String()
}
