package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Envelope is the outer JSON shape of a notes response.
type Envelope string

const (
	EnvelopeAuto    Envelope = "auto" // Accept either shape, decided per response
	EnvelopeWrapped Envelope = "data" // { "data": [ ... ] }
	EnvelopeBare    Envelope = "bare" // [ ... ]
)

func ParseEnvelope(str string) (Envelope, error) {
	switch Envelope(str) {
	case EnvelopeAuto, EnvelopeWrapped, EnvelopeBare:
		return Envelope(str), nil
	}
	return "", fmt.Errorf("unknown envelope '%s'; expected one of auto, data, bare", str)
}

// Note is one title/content pair. An empty string means the field was
// absent or falsy in the response.
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ShapeMismatch describes a well-formed JSON response that does not have
// the expected shape.
type ShapeMismatch struct {
	Expected Envelope
	Reason   string
}

func (sm *ShapeMismatch) String() string {
	return fmt.Sprintf("expected %s envelope: %s", sm.Expected, sm.Reason)
}

var (
	errEmptyBody    = errors.New("unexpected end of JSON input")
	errTrailingData = errors.New("invalid character after top-level value")
)

// DecodeNotes parses body as JSON and validates its shape against env.
// A syntax error is returned as err. A shape problem is returned as a
// non-nil mismatch, with err nil. On success, detected is the envelope
// actually found in the body.
func DecodeNotes(body []byte, env Envelope) (notes []Note, detected Envelope, mismatch *ShapeMismatch, err error) {

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var root any
	if err = dec.Decode(&root); err != nil {
		if err == io.EOF {
			err = errEmptyBody
		}
		return nil, "", nil, err
	}
	if _, errMore := dec.Token(); errMore != io.EOF {
		return nil, "", nil, errTrailingData
	}

	var items []any
	switch val := root.(type) {
	case []any:
		if env == EnvelopeWrapped {
			return nil, "", &ShapeMismatch{env, "got a bare array"}, nil
		}
		items = val
		detected = EnvelopeBare
	case map[string]any:
		if env == EnvelopeBare {
			return nil, "", &ShapeMismatch{env, "got an object"}, nil
		}
		data, ok := val["data"].([]any)
		if !ok {
			return nil, "", &ShapeMismatch{env, "object has no 'data' array"}, nil
		}
		items = data
		detected = EnvelopeWrapped
	default:
		return nil, "", &ShapeMismatch{env, fmt.Sprintf("got %s", jsonKind(root))}, nil
	}

	notes = make([]Note, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			reason := fmt.Sprintf("element %d is %s, not an object", i, jsonKind(item))
			return nil, "", &ShapeMismatch{env, reason}, nil
		}
		var note Note
		if note.Title, ok = fieldText(obj["title"]); !ok {
			reason := fmt.Sprintf("element %d has a non-scalar title", i)
			return nil, "", &ShapeMismatch{env, reason}, nil
		}
		if note.Content, ok = fieldText(obj["content"]); !ok {
			reason := fmt.Sprintf("element %d has non-scalar content", i)
			return nil, "", &ShapeMismatch{env, reason}, nil
		}
		notes = append(notes, note)
	}
	return notes, detected, nil, nil
}

// fieldText returns the display text of a scalar field. Falsy values
// (missing, null, false, 0, "") yield the empty string. Numbers are shown
// by value, not by their JSON spelling. Arrays and objects are rejected.
func fieldText(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case bool:
		if v {
			return "true", true
		}
		return "", true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			// Out of float64 range
			return v.String(), true
		}
		if f == 0 {
			return "", true
		}
		return numberText(f), true
	}
	return "", false
}

// numberText formats f the way a browser shows a number: plain decimals
// from 1e-6 up to 1e21, exponent notation without zero padding outside.
func numberText(f float64) string {
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

func jsonKind(val any) string {
	switch val.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	}
	return "an unknown value"
}
