package filelist

import (
	"encoding/json"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ProgramExt marks the files that hold programs
const ProgramExt = ".bas"

// dirEntry holds information about a directory entry from the file system
type dirEntry struct {
	Name   string `json:"name"`
	Subdir bool   `json:"isdir"`
}

// FileList holds the array of entries
type FileList struct {
	Files []dirEntry
}

type fileSorter struct {
	list *FileList
}

// NewFileList builds a new list of files in a directory
func NewFileList() *FileList {
	return &FileList{}
}

// JSON returns the file list formatted as JSON, always an array
func (fl *FileList) JSON() []byte {
	if len(fl.Files) == 0 {
		return []byte("[]")
	}
	res, _ := json.Marshal(fl.Files)
	return res
}

// AddFile takes a directory entry and adds it to the file list
// only sub-directories and programs are kept, dot files never are
func (fl *FileList) AddFile(file fs.DirEntry) {
	if IsDotFile(file.Name()) {
		return
	}

	if !file.IsDir() && !IsProgram(file.Name()) {
		return
	}

	fl.Files = append(fl.Files, dirEntry{Name: file.Name(), Subdir: file.IsDir()})
}

// Build reads dir from fsys and builds a sorted list of its entries
func (fl *FileList) Build(fsys fs.FS, dir string) error {
	fl.Files = fl.Files[:0]

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fl.AddFile(e)
	}

	srt := &fileSorter{list: fl}
	sort.Sort(srt)

	return nil
}

// Names returns the entries in order, directories marked the way FILES shows them
func (fl *FileList) Names() []string {
	var names []string
	for _, f := range fl.Files {
		if f.Subdir {
			names = append(names, f.Name+"<DIR>")
			continue
		}
		names = append(names, f.Name)
	}
	return names
}

// IsProgram reports whether name looks like a program file
func IsProgram(name string) bool {
	return strings.EqualFold(path.Ext(name), ProgramExt)
}

// IsDotFile reports whether any element of the slash separated name starts with a period
func IsDotFile(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// Len is a part of the sort.Interface
// returns the number file entries
func (fs *fileSorter) Len() int {
	return len(fs.list.Files)
}

// Swap is part of sort.Interface
// change two elements
func (fs *fileSorter) Swap(i, j int) {
	fs.list.Files[i], fs.list.Files[j] = fs.list.Files[j], fs.list.Files[i]
}

// Less is part of sort.Interface
// directories come first, then by name
func (fs *fileSorter) Less(i, j int) bool {
	if fs.list.Files[i].Subdir && !fs.list.Files[j].Subdir {
		return true
	}

	if !fs.list.Files[i].Subdir && fs.list.Files[j].Subdir {
		return false
	}

	return strings.Compare(fs.list.Files[i].Name, fs.list.Files[j].Name) == -1
}
