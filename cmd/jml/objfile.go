package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonml/encode"
)

var docSep = []byte("\n---\n")

// getDocs reads path, or stdin for "-", and decodes each document in it.
func getDocs(cc *cli.Context, path string, opts ...encode.DecodeOption) ([]any, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return decodeDocs(d, opts...)
}

func decodeDocs(d []byte, opts ...encode.DecodeOption) ([]any, error) {
	var res []any
	for i, doc := range bytes.Split(d, docSep) {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		v, err := encode.Decode(doc, opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, v)
	}
	return res, nil
}

// forEachDoc calls f on every document of files, or of stdin when there are
// no files, writing a separator between outputs.
func forEachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(doc any, w io.Writer) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	w := cc.Out
	n := 0
	for _, file := range files {
		docs, err := getDocs(cc, file, cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, doc := range docs {
			if n > 0 {
				if _, err := w.Write(docSep[1:]); err != nil {
					return err
				}
			}
			if err := f(doc, w); err != nil {
				return fmt.Errorf("error processing %s document %d: %w", file, i, err)
			}
			n++
		}
	}
	return nil
}
