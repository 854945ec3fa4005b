package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonml"
	"github.com/signadot/jsonml/encode"
	"github.com/signadot/jsonml/jpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an element path", cli.ErrUsage)
	}
	if count(cfg.Key != "", cfg.Children, cfg.Tag) > 1 {
		return fmt.Errorf("%w: must specify at most one of -a -c -t", cli.ErrUsage)
	}
	p, err := jpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachDoc(cfg.MainConfig, cc, args[1:], func(doc any, w io.Writer) error {
		target, err := jpath.Resolve(doc, p)
		if err != nil {
			return err
		}
		switch {
		case cfg.Tag:
			_, err = fmt.Fprintln(w, jsonml.GetTagName(target))
			return err
		case cfg.Key != "":
			v, err := jsonml.GetAttribute(target, cfg.Key)
			if err != nil {
				return err
			}
			return encode.Encode(v, w, cfg.dataOpts()...)
		case cfg.Children:
			kids := jsonml.GetChildren(target)
			if kids == nil {
				kids = []any{}
			}
			return encode.Encode(kids, w, cfg.dataOpts()...)
		}
		if err := encode.Encode(target, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
