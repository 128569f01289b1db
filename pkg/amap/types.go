package amap

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// APIVersion selects between the two amap response generations, which
// differ in their success/failure envelopes.
type APIVersion int

const (
	// V3 envelopes signal failure via status != "1", message in info.
	V3 APIVersion = iota

	// V4 envelopes signal failure via errcode != 0, message in errmsg.
	V4
)

// v3Envelope is the outer wrapper of every v3 response.
type v3Envelope struct {
	Status string `json:"status"`
	Info   string `json:"info"`
}

// Err maps an envelope-level failure to a BusinessError.
func (e v3Envelope) Err() error {
	if e.Status != "1" {
		return &BusinessError{Message: e.Info}
	}
	return nil
}

// v4Envelope is the outer wrapper of every v4 response.
type v4Envelope struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// Err maps an envelope-level failure to a BusinessError.
func (e v4Envelope) Err() error {
	if e.ErrCode != 0 {
		return &BusinessError{Message: e.ErrMsg}
	}
	return nil
}

// Num is a numeric field that amap returns either as a JSON number (v4)
// or as a quoted string (v3). Absent values and the empty arrays amap
// substitutes for "no value" decode to "".
type Num string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Num) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" || s[0] == '[' || s[0] == '{' {
		*n = ""
		return nil
	}
	*n = Num(strings.Trim(s, `"`))
	return nil
}

// String returns the raw upstream value, "" when absent.
func (n Num) String() string {
	return string(n)
}

// Int returns the value truncated to an integer, 0 when absent or
// malformed.
func (n Num) Int() int {
	return int(n.Float())
}

// Float returns the value, 0 when absent or malformed.
func (n Num) Float() float64 {
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0
	}
	return v
}

// Strs is a field that amap returns either as a bare string, as an
// array of strings, or as an empty array standing in for "no value".
type Strs []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Strs) UnmarshalJSON(b []byte) error {
	t := strings.TrimSpace(string(b))
	if t == "" || t == "null" {
		*s = nil
		return nil
	}
	switch t[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		if v == "" {
			*s = nil
		} else {
			*s = Strs{v}
		}
		return nil
	case '[':
		var vs []string
		if err := json.Unmarshal(b, &vs); err != nil {
			// arrays of anything but strings stand in for "no value"
			*s = nil
			return nil
		}
		*s = Strs(vs)
		return nil
	default:
		*s = Strs{t}
		return nil
	}
}

// Join concatenates the parts with sep; absent values yield "".
func (s Strs) Join(sep string) string {
	return strings.Join(s, sep)
}

// BizExt is the nested business-extension block carried by POI results.
// Some endpoints return it as an empty array instead of an object, in
// which case it decodes to its zero value.
type BizExt struct {
	Rating Strs `json:"rating"`
	Cost   Strs `json:"cost"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BizExt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	type plain BizExt
	return json.Unmarshal(trimmed, (*plain)(b))
}
