package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Lookup returns the report codec with the given name: text, json, cbor or
// msgpack.
func Lookup(name string) (Codec[Report], error) {
	switch name {
	case "text", "":
		return Text{}, nil
	case "json":
		return JSON[Report]{}, nil
	case "cbor":
		c, err := NewCBOR[Report](true)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "msgpack":
		return Msgpack[Report]{}, nil
	}

	return nil, Error.New("unknown format: %q", name)
}

type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

// CBOR is a Codec using fxamacker/cbor. Construct with NewCBOR.
//
// Deterministic selects Core Deterministic Encoding (RFC 8949) so equal
// reports produce identical bytes.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

func NewCBOR[V any](deterministic bool) (CBOR[V], error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, Error.Wrap(err)
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[V]{}, Error.Wrap(err)
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}

// Msgpack is a Codec using vmihailenco/msgpack. The zero value is ready to
// use.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

// Text renders a report as key=value lines. Negated is omitted when empty.
type Text struct{}

var _ Codec[Report] = Text{}

func (Text) Encode(r Report) ([]byte, error) {
	buf := &bytes.Buffer{}

	buf.WriteString("input=" + r.Input + "\n")
	buf.WriteString("value=" + r.Value + "\n")
	if r.Negated != "" {
		buf.WriteString("negated=" + r.Negated + "\n")
	}
	buf.WriteString("output=" + r.Output + "\n")

	return buf.Bytes(), nil
}

func (Text) Decode(b []byte) (r Report, err error) {
	s := bufio.NewScanner(bytes.NewReader(b))

	for s.Scan() {
		line := s.Text()
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Report{}, Error.New("invalid line: %q", line)
		}

		switch key {
		case "input":
			r.Input = value
		case "value":
			r.Value = value
		case "negated":
			r.Negated = value
		case "output":
			r.Output = value
		default:
			return Report{}, Error.New("unknown key: %q", key)
		}
	}

	if err := s.Err(); err != nil {
		return Report{}, Error.Wrap(err)
	}

	return r, nil
}
