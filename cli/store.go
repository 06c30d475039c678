package cli

import (
	"github.com/google/btree"
)

// Line is one numbered program line as it was typed
type Line struct {
	Number int
	Text   string
}

// Less orders lines by their number
func (l Line) Less(than btree.Item) bool {
	return l.Number < (than.(Line)).Number
}

// Store keeps the program being edited, ordered by line number
type Store struct {
	code *btree.BTree
}

// NewStore returns an empty Store
func NewStore() *Store {
	return &Store{code: btree.New(4)}
}

// Set adds a line, replacing any line with the same number
func (s *Store) Set(num int, text string) {
	s.code.ReplaceOrInsert(Line{Number: num, Text: text})
}

// Delete removes a line, reports false if there was no such line
func (s *Store) Delete(num int) bool {
	return s.code.Delete(Line{Number: num}) != nil
}

// Len returns the number of lines
func (s *Store) Len() int {
	return s.code.Len()
}

// Clear removes every line
func (s *Store) Clear() {
	s.code.Clear(false)
}

// Lines returns the program text in line number order
func (s *Store) Lines() []string {
	lines := make([]string, 0, s.code.Len())
	s.code.Ascend(
		func(item btree.Item) bool {
			lines = append(lines, item.(Line).Text)
			return true
		})
	return lines
}
