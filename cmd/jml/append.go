package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonml"
	"github.com/signadot/jsonml/encode"
	"github.com/signadot/jsonml/jpath"
)

func appendCmd(cfg *AppendConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Append.Parse(cc, args)
	if err != nil {
		cfg.Append.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: append requires one argument, a value", cli.ErrUsage)
	}
	p, err := jpath.Parse(cfg.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var onAppend jsonml.OnAppend
	if cfg.Verbose {
		onAppend = reportAppend(os.Stderr)
	}
	return forEachDoc(cfg.MainConfig, cc, args[1:], func(doc any, w io.Writer) error {
		// decoded per document so documents never share children
		child, err := appendValue(cfg, args[0])
		if err != nil {
			return err
		}
		target, err := jpath.Resolve(doc, p)
		if err != nil {
			return err
		}
		if err := jsonml.AppendChild(target, child, onAppend); err != nil {
			return err
		}
		return encode.Encode(doc, w, cfg.encOpts(w)...)
	})
}

func appendValue(cfg *AppendConfig, arg string) (any, error) {
	if cfg.String {
		return arg, nil
	}
	v, err := encode.Decode([]byte(arg), cfg.decodeOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode value (use -s for text): %w", cli.ErrUsage, err)
	}
	return v, nil
}

func reportAppend(w io.Writer) jsonml.OnAppend {
	return func(parent *[]any, child any) error {
		_, err := fmt.Fprintf(w, "appended <%s> to <%s>\n", jsonml.GetTagName(child), jsonml.GetTagName(parent))
		return err
	}
}
