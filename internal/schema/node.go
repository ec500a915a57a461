package schema

// Kind identifies the variant of a [Node].
type Kind int

const (
	KindDirectory Kind = iota
	KindFileList
	KindEmptyFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFileList:
		return "filelist"
	case KindEmptyFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node is one entry value of the schema. The set of implementations is closed
// to this package.
type Node interface {
	Kind() Kind
	node()
}

// Entry is a named [Node] within a [Directory].
type Entry struct {
	Name string
	Node Node
}

// Directory is a directory whose entries are materialized recursively.
type Directory struct {
	Entries []Entry
}

// FileList is a directory containing only the listed empty files.
type FileList struct {
	Files []string
}

// EmptyFile is a single empty file, no directory is created for it.
type EmptyFile struct{}

func (*Directory) Kind() Kind { return KindDirectory }
func (*FileList) Kind() Kind  { return KindFileList }
func (EmptyFile) Kind() Kind  { return KindEmptyFile }

func (*Directory) node() {}
func (*FileList) node()  {}
func (EmptyFile) node()  {}

// Dir returns a new [Directory] holding the given entries. Entries sharing a
// name collapse into one: the first position is kept, the last node wins.
func Dir(entries ...Entry) *Directory {
	d := &Directory{Entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		d.Set(e.Name, e.Node)
	}

	return d
}

// Files returns a new [FileList] holding the given filenames.
func Files(names ...string) *FileList {
	files := make([]string, len(names))
	copy(files, names)

	return &FileList{Files: files}
}

// E is shorthand for constructing an [Entry].
func E(name string, n Node) Entry {
	return Entry{Name: name, Node: n}
}

// Set adds or replaces the node for name. A replaced entry keeps its position.
// It is intended for use while building a schema only.
func (d *Directory) Set(name string, n Node) {
	for i := range d.Entries {
		if d.Entries[i].Name == name {
			d.Entries[i].Node = n

			return
		}
	}
	d.Entries = append(d.Entries, Entry{Name: name, Node: n})
}

// Walk calls fn for every entry of the tree in materialization order, passing
// the slash-separated path of the entry relative to the root. Filenames of a
// [FileList] are reported as [EmptyFile] entries below their directory.
func (d *Directory) Walk(fn func(relPath string, n Node) error) error {
	return walk("", d, fn)
}

// Count returns the number of directories and files the tree describes,
// including the directories of every [FileList].
func (d *Directory) Count() (dirs, files int) {
	d.Walk(func(_ string, n Node) error { //nolint:errcheck
		if n.Kind() == KindEmptyFile {
			files++
		} else {
			dirs++
		}

		return nil
	})

	return dirs, files
}

func walk(prefix string, d *Directory, fn func(string, Node) error) error {
	for _, e := range d.Entries {
		rel := e.Name
		if prefix != "" {
			rel = prefix + "/" + e.Name
		}

		if err := fn(rel, e.Node); err != nil {
			return err
		}

		switch n := e.Node.(type) {
		case *Directory:
			if err := walk(rel, n, fn); err != nil {
				return err
			}

		case *FileList:
			for _, f := range n.Files {
				if err := fn(rel+"/"+f, EmptyFile{}); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
