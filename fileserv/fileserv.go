package fileserv

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/navionguy/flatbasic/filelist"
	"github.com/navionguy/flatbasic/parser"
)

// route names, handy for finding them again
const (
	ListRt   = "list"
	SourceRt = "source"
	CheckRt  = "check"
)

// fileSource serves the programs found in src
// programs are parsed to check them, never run
type fileSource struct {
	src fs.FS
}

// checkError is one parse error in a check report
type checkError struct {
	Line    int    `json:"line"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

// checkStatement is one parsed statement and the labels that reach it
type checkStatement struct {
	Index     int      `json:"index"`
	Labels    []string `json:"labels"`
	Statement string   `json:"statement"`
}

// checkReport is what the check route sends back
type checkReport struct {
	Name       string           `json:"name"`
	Statements int              `json:"statements"`
	Labels     []string         `json:"labels"`
	Listing    []checkStatement `json:"listing"`
	Errors     []checkError     `json:"errors"`
}

// NewRouter builds a router serving the programs in dir
func NewRouter(dir string) *mux.Router {
	rtr := mux.NewRouter()
	WrapFileSources(rtr, os.DirFS(dir))
	return rtr
}

// WrapFileSources builds the mux routes to the programs in src
func WrapFileSources(rtr *mux.Router, src fs.FS) {
	fsrc := &fileSource{src: src}

	rtr.Use(logRequests)
	rtr.HandleFunc("/programs", fsrc.sendDirectory).Methods(http.MethodGet).Name(ListRt)
	rtr.HandleFunc("/programs/{file:.+}/check", fsrc.checkFile).Methods(http.MethodGet).Name(CheckRt)
	rtr.HandleFunc("/programs/{file:.+}", fsrc.serveFile).Methods(http.MethodGet).Name(SourceRt)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// sendDirectory sends the listing of the top directory
func (fsrc fileSource) sendDirectory(w http.ResponseWriter, r *http.Request) {
	fsrc.sendListing(w, ".")
}

func (fsrc fileSource) sendListing(w http.ResponseWriter, dir string) {
	fl := filelist.NewFileList()

	if err := fl.Build(fsrc.src, dir); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(fl.JSON())
}

// serveFile sends a program's source, or the listing if it is a directory
func (fsrc fileSource) serveFile(w http.ResponseWriter, r *http.Request) {
	fname := mux.Vars(r)["file"]

	st, ok := fsrc.stat(w, fname)
	if !ok {
		return
	}

	if st.IsDir() {
		fsrc.sendListing(w, fname)
		return
	}

	buf, err := fsrc.readFile(w, fname)
	if err != nil {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(buf)
}

// checkFile parses the program and reports what it found
func (fsrc fileSource) checkFile(w http.ResponseWriter, r *http.Request) {
	fname := mux.Vars(r)["file"]

	st, ok := fsrc.stat(w, fname)
	if !ok {
		return
	}

	if st.IsDir() {
		http.Error(w, "not a program", http.StatusBadRequest)
		return
	}

	buf, err := fsrc.readFile(w, fname)
	if err != nil {
		return
	}

	p := parser.NewFromString(string(buf))
	prog := p.ParseProgram()

	rpt := checkReport{
		Name:       fname,
		Statements: prog.Len(),
		Labels:     prog.Labels(),
		Listing:    []checkStatement{},
		Errors:     []checkError{},
	}

	for i := 0; i < prog.Len(); i++ {
		lbls := prog.LabelsAt(i)
		if lbls == nil {
			lbls = []string{}
		}
		rpt.Listing = append(rpt.Listing, checkStatement{Index: i, Labels: lbls, Statement: prog.Statement(i).String()})
	}

	for _, pe := range p.Errors() {
		rpt.Errors = append(rpt.Errors, checkError{Line: pe.Line, Source: pe.Source, Message: pe.Message})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rpt)
}

// stat checks the name is allowed and exists, writing the error response if not
func (fsrc fileSource) stat(w http.ResponseWriter, fname string) (fs.FileInfo, bool) {
	if filelist.IsDotFile(fname) {
		w.WriteHeader(http.StatusForbidden)
		return nil, false
	}

	if !fs.ValidPath(fname) {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	st, err := fs.Stat(fsrc.src, fname)
	if err != nil {
		w.WriteHeader(statusFor(err))
		return nil, false
	}

	return st, true
}

func (fsrc fileSource) readFile(w http.ResponseWriter, fname string) ([]byte, error) {
	buf, err := fs.ReadFile(fsrc.src, fname)
	if err != nil {
		w.WriteHeader(statusFor(err))
	}
	return buf, err
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, os.ErrPermission):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
