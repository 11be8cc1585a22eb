package model

// Path represents a file system path.
type Path string

// Source is a Go file that carries at least one decorator directive.
type Source struct {
	Origin  Path
	Package string
}

// Decoration describes one applied directive.
type Decoration struct {
	Position  string
	Function  string
	Receiver  string
	Decorator string
	Rule      string
	Override  string
	Async     bool
}

// QualifiedName returns Function, prefixed by the receiver type for methods.
func (d Decoration) QualifiedName() string {
	if d.Receiver == "" {
		return d.Function
	}

	return "(" + d.Receiver + ")." + d.Function
}

// FileResult holds the transformed source of one file.
type FileResult struct {
	Source      Source
	Output      []byte
	Decorations []Decoration
}

// Overlay is the JSON document consumed by `go build -overlay`.
type Overlay struct {
	Replace map[string]string `json:"Replace"`
}
