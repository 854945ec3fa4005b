package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout), given the output format suffix when it has none",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jml").
		WithSynopsis("jml [opts] command [opts]").
		WithDescription("jml is a tool for working with JsonML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jmlMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			AppendCommand(cfg),
			AttrCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view JsonML documents, one element per line, in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithOpts(opts...).
		WithSynopsis("get [-a key] [-c] [-t] <path> [files]").
		WithDescription("get an element, one of its attributes, its children or its tag").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func AppendCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AppendConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("append").
		WithAliases("a", "ap").
		WithOpts(opts...).
		WithSynopsis("append [-p path] [-s] [-v] <value> [files]").
		WithDescription("append a child to an element").
		WithRun(func(cc *cli.Context, args []string) error {
			return appendCmd(cfg, cc, args)
		})
	cfg.Append = cmd
	return cmd
}

func AttrCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AttrConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("attr").
		WithAliases("at").
		WithOpts(opts...).
		WithSynopsis("attr [-p path] key=value... [files]").
		WithDescription("set attributes of an element").
		WithRun(func(cc *cli.Context, args []string) error {
			return attr(cfg, cc, args)
		})
	cfg.Attr = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("list elements matching an expression over Tag, Attrs, Text, Depth, Children, Path and Empty").
		WithRun(func(cc *cli.Context, args []string) error {
			return queryCmd(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("patch [-f] <patch> <file>").
		WithDescription("apply a JSON patch (RFC 6902) to JsonML documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
