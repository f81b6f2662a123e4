package stream

import (
	"bufio"
	"context"
	"io"
	"os"
)

// FromReader creates a tree whose nodes are the consecutive lines of r,
// terminators included, as siblings under an implicit root. Lines are read
// lazily, one per pull, so the resource is never materialized.
func FromReader(r io.Reader) *Tree[string] {
	return &Tree[string]{
		create: func(_ context.Context) Iterator[Node[string]] {
			return &lineIter{reader: bufio.NewReader(r), root: &ident{}}
		},
	}
}

// FromFile creates a tree from the lines of the file at path. The file is
// opened on the first pull and closed when the iterator is closed, so an
// abandoned consumer releases it via Close.
func FromFile(path string) *Tree[string] {
	return &Tree[string]{
		create: func(_ context.Context) Iterator[Node[string]] {
			return &fileLineIter{path: path}
		},
	}
}

type lineIter struct {
	reader *bufio.Reader
	root   *ident
	done   bool
}

func (it *lineIter) Next(_ context.Context) (Node[string], bool, error) {
	var zero Node[string]
	if it.done {
		return zero, false, nil
	}
	line, err := it.reader.ReadString('\n')
	if err == io.EOF {
		it.done = true
		if line == "" {
			return zero, false, nil
		}
		// Final line without a terminator.
		return Node[string]{Value: line, id: &ident{parent: it.root}}, true, nil
	}
	if err != nil {
		it.done = true
		return zero, false, err
	}
	return Node[string]{Value: line, id: &ident{parent: it.root}}, true, nil
}

func (it *lineIter) Close() error { return nil }

type fileLineIter struct {
	path  string
	file  *os.File
	lines *lineIter
	done  bool
}

func (it *fileLineIter) Next(ctx context.Context) (Node[string], bool, error) {
	var zero Node[string]
	if it.done {
		return zero, false, nil
	}
	if it.file == nil {
		f, err := os.Open(it.path)
		if err != nil {
			it.done = true
			return zero, false, err
		}
		it.file = f
		it.lines = &lineIter{reader: bufio.NewReader(f), root: &ident{}}
	}
	n, ok, err := it.lines.Next(ctx)
	if err != nil || !ok {
		it.done = true
	}
	return n, ok, err
}

func (it *fileLineIter) Close() error {
	if it.file != nil {
		f := it.file
		it.file = nil
		return f.Close()
	}
	return nil
}
