package load

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is a metadata snapshot encoding.
type Format string

// Supported snapshot encodings.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// ErrUnknownFormat is returned when a snapshot encoding cannot be determined.
var ErrUnknownFormat = errors.New("load: unknown metadata format")

// FormatOf returns the snapshot encoding implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrUnknownFormat, "file %s", path),
			"use one of .json, .yaml, .yml, .msgpack or .mpk",
		)
	}
}

// File reads a metadata snapshot from path.
func File(path string) (*Metadata, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open metadata %s", path)
	}
	defer f.Close()
	md, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "read metadata %s", path)
	}
	return md, nil
}

// Read decodes a metadata snapshot. Both the Metadata envelope and a bare
// list of domains are accepted.
func Read(r io.Reader, format Format) (*Metadata, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read snapshot")
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		return &Metadata{}, nil
	}
	md := &Metadata{}
	switch format {
	case FormatJSON:
		if isList(buf) {
			err = json.Unmarshal(buf, &md.Domains)
		} else {
			err = json.Unmarshal(buf, md)
		}
	case FormatYAML:
		err = decodeYAML(buf, md)
	case FormatMsgpack:
		err = decodeMsgpack(buf, md)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s snapshot", format)
	}
	if err := md.check(); err != nil {
		return nil, err
	}
	return md, nil
}

// Write encodes md in the given format.
func Write(w io.Writer, md *Metadata, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(md), "encode json snapshot")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(md); err != nil {
			return errors.Wrap(err, "encode yaml snapshot")
		}
		return errors.Wrap(enc.Close(), "encode yaml snapshot")
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		return errors.Wrap(enc.Encode(md), "encode msgpack snapshot")
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
}

func decodeYAML(buf []byte, md *Metadata) error {
	var node yaml.Node
	if err := yaml.Unmarshal(buf, &node); err != nil {
		return err
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		return node.Content[0].Decode(&md.Domains)
	}
	return node.Decode(md)
}

func decodeMsgpack(buf []byte, md *Metadata) error {
	dec := msgpack.NewDecoder(bytes.NewReader(buf))
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if isMsgpackArray(code) {
		return dec.Decode(&md.Domains)
	}
	return dec.Decode(md)
}

func isMsgpackArray(code byte) bool {
	// fixarray 0x90-0x9f, array16 0xdc, array32 0xdd.
	return (code >= 0x90 && code <= 0x9f) || code == 0xdc || code == 0xdd
}

func isList(buf []byte) bool {
	trimmed := bytes.TrimSpace(buf)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// check rejects structurally broken snapshots. Semantic invariants are the
// generator's concern.
func (md *Metadata) check() error {
	for i, d := range md.Domains {
		if d == nil {
			return errors.Newf("domain entry %d is null", i)
		}
		for j, e := range d.Entities {
			if e == nil {
				return errors.Newf("domain %q: entity entry %d is null", d.Domain, j)
			}
		}
		for j, a := range d.Attributes {
			if a == nil {
				return errors.Newf("domain %q: attribute entry %d is null", d.Domain, j)
			}
		}
	}
	return nil
}
