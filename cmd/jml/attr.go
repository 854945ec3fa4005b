package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonml"
	"github.com/signadot/jsonml/encode"
	"github.com/signadot/jsonml/jpath"
)

func attr(cfg *AttrConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Attr.Parse(cc, args)
	if err != nil {
		cfg.Attr.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var (
		keys, vals []string
		files      []string
	)
	for i, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			files = args[i:]
			break
		}
		if k == "" {
			return fmt.Errorf("%w: empty attribute name in %q", cli.ErrUsage, arg)
		}
		keys = append(keys, k)
		vals = append(vals, v)
	}
	if len(keys) == 0 {
		return fmt.Errorf("%w: attr requires at least one key=value argument", cli.ErrUsage)
	}
	p, err := jpath.Parse(cfg.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachDoc(cfg.MainConfig, cc, files, func(doc any, w io.Writer) error {
		target, err := jpath.Resolve(doc, p)
		if err != nil {
			return err
		}
		for i, k := range keys {
			if err := jsonml.SetAttribute(target, k, vals[i]); err != nil {
				return err
			}
		}
		return encode.Encode(doc, w, cfg.encOpts(w)...)
	})
}
