package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-canopy/canopy/pkg/state"
)

// EncodeJSON renders a state tree as compact JSON, preserving Object key
// order. The standard marshaller sorts map keys, so objects are written by
// hand.
func EncodeJSON(v state.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v state.Value) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case int64:
		buf.WriteString(strconv.FormatInt(t, 10))
	case float64:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		buf.Write(b)
	case string:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		buf.Write(b)
	case state.List:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *state.Object:
		buf.WriteByte('{')
		var convErr error
		first := true
		t.Range(func(k string, val state.Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			kb, err := json.Marshal(k)
			if err != nil {
				convErr = err
				return false
			}
			buf.Write(kb)
			buf.WriteByte(':')
			convErr = writeJSON(buf, val)
			return convErr == nil
		})
		if convErr != nil {
			return convErr
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("snapshot: cannot encode %T", v)
	}
	return nil
}

// DecodeJSON parses JSON into a normalized state tree, preserving object
// key order by walking the token stream.
func DecodeJSON(data []byte) (state.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := readJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("snapshot: trailing data after JSON value")
	}
	// normalization drops guarded keys from the decoded document
	return state.Normalize(v)
}

func readJSONValue(dec *json.Decoder) (state.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonValue(dec, tok)
}

func jsonValue(dec *json.Decoder, tok json.Token) (state.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := state.NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("snapshot: object key is %T", keyTok)
				}
				val, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing brace
				return nil, err
			}
			return obj, nil
		case '[':
			list := state.List{}
			for dec.More() {
				val, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, val)
			}
			if _, err := dec.Token(); err != nil { // closing bracket
				return nil, err
			}
			return list, nil
		default:
			return nil, fmt.Errorf("snapshot: unexpected delimiter %v", t)
		}
	case json.Number:
		s := t.String()
		if !strings.ContainsAny(s, ".eE") {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n, nil
			}
			// too wide for int64, keep it lossily as a float
		}
		return strconv.ParseFloat(s, 64)
	case string:
		return t, nil
	case bool:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("snapshot: unexpected token %T", tok)
	}
}
