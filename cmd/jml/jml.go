package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonml/encode"
	"github.com/signadot/jsonml/internal/config"
)

func jmlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	defaults, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Defaults = &defaults
	if err := cfg.openOut(cc); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		cfg.closeOut()
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return nil, nil
}

// outPath is the -o file, given the suffix of the output format when it
// has none.
func (cfg *MainConfig) outPath() string {
	if cfg.Out == "" || cfg.Out == "-" || filepath.Ext(cfg.Out) != "" {
		return cfg.Out
	}
	_, out := cfg.formats()
	return cfg.Out + encode.FormatSuffix(out)
}

func (cfg *MainConfig) openOut(cc *cli.Context) error {
	path := cfg.outPath()
	if path == "" || path == "-" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil
}

func (cfg *MainConfig) closeOut() error {
	if cfg.CloseOut == nil {
		return nil
	}
	err := cfg.CloseOut()
	cfg.CloseOut = nil
	return err
}
