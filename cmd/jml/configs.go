package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonml/encode"
	"github.com/signadot/jsonml/format"
	"github.com/signadot/jsonml/internal/config"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	// Defaults is loaded from the config file and JSONML_ env vars.
	Defaults *config.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) defaults() config.Config {
	if cfg.Defaults != nil {
		return *cfg.Defaults
	}
	return config.Config{InputFormat: "json", OutputFormat: "json", Color: "auto", Indent: 2}
}

func (cfg *MainConfig) formats() (in, out format.Format) {
	in, out, _ = cfg.defaults().Formats()
	switch {
	case cfg.Y:
		in, out = format.YAMLFormat, format.YAMLFormat
	case cfg.J:
		in, out = format.JSONFormat, format.JSONFormat
	}
	if cfg.InFormat != nil {
		in = *cfg.InFormat
	}
	if cfg.OutFormat != nil {
		out = *cfg.OutFormat
	}
	return in, out
}

func (cfg *MainConfig) decodeOpts() []encode.DecodeOption {
	in, _ := cfg.formats()
	return []encode.DecodeOption{encode.DecodeFormat(in)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	d := cfg.defaults()
	_, out := cfg.formats()
	res := []encode.EncodeOption{
		encode.EncodeFormat(out),
		encode.EncodeWire(cfg.WireOut || d.Wire),
		encode.EncodeIndent(d.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	switch d.Color {
	case "always":
		return append(res, encode.EncodeColors(encode.NewColors()))
	case "never":
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// dataOpts encodes values which need not be JsonML, such as attribute
// values.
func (cfg *MainConfig) dataOpts() []encode.EncodeOption {
	_, out := cfg.formats()
	return []encode.EncodeOption{encode.EncodeFormat(out), encode.EncodeWire(true)}
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Key      string `cli:"name=a desc='print the value of one attribute'"`
	Children bool   `cli:"name=c desc='print the children'"`
	Tag      bool   `cli:"name=t desc='print the tag name'"`

	Get *cli.Command
}

type AppendConfig struct {
	*MainConfig

	Path    string `cli:"name=p desc='path of the element to append to'"`
	String  bool   `cli:"name=s desc='append the value as text'"`
	Verbose bool   `cli:"name=v desc='report appended elements on stderr'"`

	Append *cli.Command
}

type AttrConfig struct {
	*MainConfig

	Path string `cli:"name=p desc='path of the element to modify'"`

	Attr *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}
