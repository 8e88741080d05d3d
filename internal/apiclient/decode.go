package apiclient

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DecodeList normalises the list shapes the API has used over time: a bare
// array, {"data": [...]}, {"success": true, "data": [...]} or {"<key>": [...]}
// for any of keys. A null or empty body is an empty list.
func DecodeList[T any](raw json.RawMessage, keys ...string) ([]T, error) {
	items, err := decodeList[T](raw, append([]string{"data"}, keys...), 2)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func decodeList[T any](raw json.RawMessage, keys []string, depth int) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, shapeError(err)
		}
		return items, nil
	case '{':
		if depth == 0 {
			break
		}
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, shapeError(err)
		}
		for _, key := range keys {
			if inner, ok := envelope[key]; ok {
				return decodeList[T](inner, keys, depth-1)
			}
		}
	}
	return nil, shapeError(nil)
}

// DecodeObject unwraps {"data": {...}} (or {"<key>": {...}}) around a single record.
func DecodeObject[T any](raw json.RawMessage, keys ...string) (T, error) {
	var out T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return out, shapeError(nil)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return out, shapeError(err)
	}
	for _, key := range append([]string{"data"}, keys...) {
		if inner, ok := envelope[key]; ok && len(bytes.TrimSpace(inner)) > 0 && bytes.TrimSpace(inner)[0] == '{' {
			trimmed = inner
			break
		}
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, shapeError(err)
	}
	return out, nil
}

func shapeError(err error) *Error {
	return &Error{Kind: KindServer, Message: "Unexpected response format from server", Err: err}
}

// ID accepts the identifier spellings the API emits: strings, numbers, and
// populated references ({"_id": ...} or {"id": ...}).
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*id = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
	case b[0] == '{':
		var ref struct {
			MongoID ID `json:"_id"`
			ID      ID `json:"id"`
		}
		if err := json.Unmarshal(b, &ref); err != nil {
			return err
		}
		*id = ref.MongoID.Or(ref.ID)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*id = ID(n.String())
	}
	return nil
}

// Or returns id unless it is empty.
func (id ID) Or(other ID) ID {
	if id != "" {
		return id
	}
	return other
}

func (id ID) String() string { return string(id) }

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is an optional instant. The zero value means absent and encodes as null.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t} }

// Present reports whether the API sent a usable value.
func (t Timestamp) Present() bool { return !t.IsZero() }

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	t.Time = time.Time{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return nil
		}
		t.Time = time.UnixMilli(ms)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t.Time = ParseTime(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// ParseTime tries the layouts the API has been seen to use. Unparseable input is absent.
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
