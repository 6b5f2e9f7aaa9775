package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/lapwatch/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

type Codec interface {
	Extension() string
	Encode(doc domain.ExportDocument) ([]byte, error)
	Decode(data []byte) (domain.ExportDocument, error)
}

func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatTOML:
		return tomlCodec{}, nil
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnsupportedExportFormat, format)
	}
}

// CodecForPath picks the codec from a file extension.
func CodecForPath(path string) (Codec, error) {
	return CodecFor(strings.TrimPrefix(filepath.Ext(path), "."))
}

type jsonCodec struct{}

func (jsonCodec) Extension() string { return FormatJSON }

func (jsonCodec) Encode(doc domain.ExportDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toSchema(doc)); err != nil {
		return nil, fmt.Errorf("encode json export: %w", err)
	}

	return buf.Bytes(), nil
}

func (jsonCodec) Decode(data []byte) (domain.ExportDocument, error) {
	var s documentSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.ExportDocument{}, fmt.Errorf("decode json export: %w", err)
	}

	return fromSchema(s), nil
}

type tomlCodec struct{}

func (tomlCodec) Extension() string { return FormatTOML }

func (tomlCodec) Encode(doc domain.ExportDocument) ([]byte, error) {
	data, err := toml.Marshal(toSchema(doc))
	if err != nil {
		return nil, fmt.Errorf("encode toml export: %w", err)
	}

	return data, nil
}

func (tomlCodec) Decode(data []byte) (domain.ExportDocument, error) {
	var s documentSchema
	if err := toml.Unmarshal(data, &s); err != nil {
		return domain.ExportDocument{}, fmt.Errorf("decode toml export: %w", err)
	}

	return fromSchema(s), nil
}
