package encode

import "github.com/signadot/jsonml/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f format.Format) string {
	switch f {
	case format.JSONFormat:
		return ".json"
	default:
		return ".yaml"
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

type DecodeOption func(*decState)

type decState struct {
	format format.Format
}

func DecodeFormat(f format.Format) DecodeOption {
	return func(ds *decState) { ds.format = f }
}
