package bundle

import (
	"fmt"
	"path/filepath"

	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/parse"
)

// Source loads the token documents a resolver document names.
type Source interface {
	Load(name string) (*ir.Node, error)
}

// FileSource loads documents from disk relative to a base directory.
type FileSource struct {
	Dir string
}

func (s FileSource) Load(name string) (*ir.Node, error) {
	res, err := parse.File(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, err
	}
	return res.Node, nil
}

// MapSource serves documents from memory, keyed by name.
type MapSource map[string]*ir.Node

func (s MapSource) Load(name string) (*ir.Node, error) {
	n, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("no document %q", name)
	}
	return n.Clone(), nil
}
