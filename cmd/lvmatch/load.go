package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmatch/graphio"
	"github.com/katalvlaran/lvmatch/labeled"
	"github.com/katalvlaran/lvmatch/store"
)

// catalogPrefix marks a graph reference that names a catalog entry instead
// of a file, e.g. "catalog:web".
const catalogPrefix = "catalog:"

// loadGraph reads the graph named by ref: a catalog entry, a .yaml/.yml file,
// or a file in the text format. "-" reads the text format from stdin.
func (in *Input) loadGraph(ref string, stdin io.Reader) (*labeled.Graph[int], error) {
	if name, ok := strings.CutPrefix(ref, catalogPrefix); ok {
		s, err := in.openCatalog()
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.Get(name)
	}
	if ref == "-" {
		return graphio.Read(stdin, graphio.ParseInt)
	}

	f, err := os.Open(ref)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var g *labeled.Graph[int]
	if isYAML(ref) {
		g, err = graphio.ReadYAML[int](f)
	} else {
		g, err = graphio.Read(f, graphio.ParseInt)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}

	return g, nil
}

// writeGraph writes g to path (stdout when empty), picking the format from
// the extension.
func writeGraph(path string, stdout io.Writer, g *labeled.Graph[int]) error {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if isYAML(path) {
		return graphio.WriteYAML(w, g)
	}

	return graphio.Write(w, g, nil)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (in *Input) openCatalog() (*store.Store, error) {
	return store.Open(in.cfg.Catalog.Path, store.WithTimeout(in.cfg.Catalog.Timeout))
}
