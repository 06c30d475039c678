package object

import (
	"sort"
	"strings"
)

// Environment is the state of a single run of a program
// a new one is needed for every run, nothing in here is
// shared with the parsed program
type Environment struct {
	store   map[string]float64 // variables, keyed by upper case name
	loops   map[int]float64    // progress of active FOR loops, keyed by statement index
	counter int                // index of the next statement to execute
	term    Console            // where PRINT output goes
	display Display            // source of drawing surfaces, may be nil
	surface Surface            // open drawing surface, nil until SCREEN 13

	traceOn bool // is tracing turned on
}

// NewEnvironment creates the state for one run
// display may be nil when no graphics are available
func NewEnvironment(term Console, display Display) *Environment {
	return &Environment{
		store:   make(map[string]float64),
		loops:   make(map[int]float64),
		term:    term,
		display: display,
	}
}

// Get attempts to retrieve a variable, false if it was never assigned
func (e *Environment) Get(name string) (float64, bool) {
	v, ok := e.store[strings.ToUpper(name)]
	return v, ok
}

// Set stores a variable, creating it if needed
func (e *Environment) Set(name string, val float64) {
	e.store[strings.ToUpper(name)] = val
}

// Delete removes a variable, used when a loop variable goes out of scope
func (e *Environment) Delete(name string) {
	delete(e.store, strings.ToUpper(name))
}

// Names returns the names of all assigned variables, sorted
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for n := range e.store {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Counter returns the index of the next statement to execute
func (e *Environment) Counter() int {
	return e.counter
}

// SetCounter transfers control to statement index i
func (e *Environment) SetCounter(i int) {
	e.counter = i
}

// LoopProgress returns the current count of the FOR statement at idx
// false means the loop hasn't been entered
func (e *Environment) LoopProgress(idx int) (float64, bool) {
	v, ok := e.loops[idx]
	return v, ok
}

// SetLoopProgress saves the current count of the FOR statement at idx
func (e *Environment) SetLoopProgress(idx int, v float64) {
	e.loops[idx] = v
}

// ClearLoop forgets the FOR statement at idx, the next visit starts over
func (e *Environment) ClearLoop(idx int) {
	delete(e.loops, idx)
}

// Terminal allows access to the output console
func (e *Environment) Terminal() Console {
	return e.term
}

// Display returns the source of drawing surfaces, nil if there is none
func (e *Environment) Display() Display {
	return e.display
}

// Surface returns the open drawing surface, nil until one is opened
func (e *Environment) Surface() Surface {
	return e.surface
}

// SetSurface saves the surface SCREEN opened
func (e *Environment) SetSurface(s Surface) {
	e.surface = s
}

// SetTrace turns it on or off
func (e *Environment) SetTrace(on bool) {
	e.traceOn = on
}

// GetTrace returns true if we are tracing
func (e *Environment) GetTrace() bool {
	return e.traceOn
}
