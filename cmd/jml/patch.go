package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonml/encode"
	"github.com/signadot/jsonml/patch"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	return forEachDoc(cfg.MainConfig, cc, args[1:], func(doc any, w io.Writer) error {
		res, err := p.Apply(doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", args[1], err)
		}
		if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}

func getPatch(cfg *PatchConfig, arg string) (*patch.Patch, error) {
	d := []byte(arg)
	if cfg.File {
		var err error
		d, err = os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	res, err := patch.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return res, nil
}
