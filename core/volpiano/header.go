package volpiano

import (
	"bytes"
	"encoding/json"
)

// Header holds GABC header attributes in source order. Keys are unique; a
// repeated key keeps its first position and takes the last value.
type Header struct {
	keys   []string
	values map[string]string
}

// NewHeader returns an empty header.
func NewHeader() *Header {
	return &Header{values: make(map[string]string)}
}

// Set stores value under key.
func (h *Header) Set(key, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value of key and whether it was present.
func (h *Header) Get(key string) (string, bool) {
	if h == nil {
		return "", false
	}
	v, ok := h.values[key]
	return v, ok
}

// Value returns the value of key, or "" if absent.
func (h *Header) Value(key string) string {
	v, _ := h.Get(key)
	return v
}

// Keys returns the attribute names in source order.
func (h *Header) Keys() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.keys...)
}

// Len returns the number of attributes.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.keys)
}

// Map returns a copy of the attributes as a plain map.
func (h *Header) Map() map[string]string {
	m := make(map[string]string, h.Len())
	if h == nil {
		return m
	}
	for k, v := range h.values {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the header as a JSON object in source order.
func (h *Header) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range h.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(h.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
