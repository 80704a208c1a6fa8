package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader deserializes JSON or YAML documents from an io.Reader.
// Table format is write-only.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
	strict bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithStrict rejects fields unknown to the target type.
func WithStrict() ReaderOption {
	return func(r *Reader) {
		r.strict = true
	}
}

// NewReader creates a new Reader for deserializing data from input.
// If input implements io.Closer, Close closes it.
func NewReader(format Format, input io.Reader, opts ...ReaderOption) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Deserialize reads data from the input source and unmarshals it into v,
// which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if r.strict {
			decoder.DisallowUnknownFields()
		}
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		decoder.KnownFields(r.strict)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the underlying input when it is closeable.
// Safe to call multiple times and on a nil Reader.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// Source configures FromSource.
type Source struct {
	// Strict rejects unknown fields.
	Strict bool

	// ConfigMap holds options for cm:// sources.
	ConfigMap []ConfigMapOption

	// HTTP is used for http(s) sources. Defaults to NewHttpReader().
	HTTP *HttpReader
}

// FromFile reads a document from a local path, an http(s) URL or a
// cm://namespace/name ConfigMap into a new T.
//
// The format comes from the path extension for files and URLs, and from the
// ConfigMap "format" key for ConfigMaps.
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	return FromSource[T](ctx, path, Source{})
}

// FromFileWithKubeconfig is FromFile with an explicit kubeconfig for cm:// sources.
func FromFileWithKubeconfig[T any](ctx context.Context, path, kubeconfig string) (*T, error) {
	return FromSource[T](ctx, path, Source{ConfigMap: []ConfigMapOption{WithKubeconfig(kubeconfig)}})
}

// FromSource is the general form of FromFile.
func FromSource[T any](ctx context.Context, path string, src Source) (*T, error) {
	content, format, err := readSource(ctx, strings.TrimSpace(path), src)
	if err != nil {
		return nil, err
	}

	var opts []ReaderOption
	if src.Strict {
		opts = append(opts, WithStrict())
	}

	reader, err := NewReader(format, bytes.NewReader(content), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}

	var result T
	if err := reader.Deserialize(&result); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("loaded document", "path", path, "format", format, "size", len(content))

	return &result, nil
}

func readSource(ctx context.Context, path string, src Source) ([]byte, Format, error) {
	switch {
	case path == "":
		return nil, "", fmt.Errorf("path is empty")

	case strings.HasPrefix(path, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(path)
		if err != nil {
			return nil, "", err
		}
		return readConfigMap(ctx, namespace, name, newConfigMapOptions(src.ConfigMap))

	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		hr := src.HTTP
		if hr == nil {
			hr = NewHttpReader()
		}
		data, err := hr.ReadWithContext(ctx, path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to download %q: %w", path, err)
		}
		return data, readableFormat(path), nil

	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read file: %w", err)
		}
		return data, readableFormat(path), nil
	}
}

// readableFormat is FormatFromPath with table mapped to YAML.
func readableFormat(path string) Format {
	if f := FormatFromPath(path); f != FormatTable {
		return f
	}
	return FormatYAML
}
