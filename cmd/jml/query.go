package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonml/encode"
	"github.com/signadot/jsonml/ir"
	"github.com/signadot/jsonml/query"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachDoc(cfg.MainConfig, cc, args[1:], func(doc any, w io.Writer) error {
		root, err := ir.FromAny(doc)
		if err != nil {
			return err
		}
		hits, err := query.Select(root, q)
		if err != nil {
			return fmt.Errorf("error executing query %s: %w", q, err)
		}
		for _, hit := range hits {
			v, err := hit.ToAny()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "# /%s\n", hit.Path()); err != nil {
				return err
			}
			if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
		return nil
	})
}
