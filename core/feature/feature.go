// core/feature/feature.go
package feature

import (
	"fmt"
	"net/url"
	"strings"
)

// Feature is one annotation record from a GFF3 file. The traversal engine
// only reads ID and Featuretype; the remaining columns ride along for output.
type Feature struct {
	ID          string
	Seqid       string
	Source      string
	Featuretype string
	Start       int
	End         int
	Score       string
	Strand      string
	Frame       string
	Attributes  Attributes
}

// Attributes is the parsed GFF3 ninth column: a multi-map preserving
// first-seen key order.
type Attributes struct {
	keys []string
	vals map[string][]string
}

// ParseAttributes parses "key=v1,v2;key2=v3". Values are percent-decoded.
// The bare "." placeholder yields an empty set.
func ParseAttributes(s string) (Attributes, error) {
	var a Attributes
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return a, nil
	}
	for _, field := range strings.Split(s, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		eq := strings.IndexByte(field, '=')
		if eq <= 0 {
			return Attributes{}, fmt.Errorf("malformed attribute field %q", field)
		}
		key := field[:eq]
		for _, raw := range strings.Split(field[eq+1:], ",") {
			// PathUnescape, not QueryUnescape: '+' is literal in GFF3.
			v, err := url.PathUnescape(raw)
			if err != nil {
				v = raw
			}
			a.Add(key, v)
		}
	}
	return a, nil
}

// Add appends a value under key, keeping key order stable.
func (a *Attributes) Add(key, value string) {
	if a.vals == nil {
		a.vals = make(map[string][]string)
	}
	if _, ok := a.vals[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.vals[key] = append(a.vals[key], value)
}

// Get returns the first value for key, or "".
func (a Attributes) Get(key string) string {
	if vs := a.vals[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns all values for key in insertion order.
func (a Attributes) Values(key string) []string {
	return append([]string(nil), a.vals[key]...)
}

// Keys returns attribute keys in first-seen order.
func (a Attributes) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Len reports the number of distinct keys.
func (a Attributes) Len() int { return len(a.keys) }

// Map returns a plain copy for serialization.
func (a Attributes) Map() map[string][]string {
	if len(a.keys) == 0 {
		return nil
	}
	m := make(map[string][]string, len(a.keys))
	for _, k := range a.keys {
		m[k] = append([]string(nil), a.vals[k]...)
	}
	return m
}

// escapeValue percent-encodes the characters GFF3 reserves inside values.
func escapeValue(v string) string {
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case ';', '=', '&', ',', '%':
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// String re-encodes the attributes as a GFF3 ninth column ("." when empty).
func (a Attributes) String() string {
	if len(a.keys) == 0 {
		return "."
	}
	parts := make([]string, 0, len(a.keys))
	for _, k := range a.keys {
		vs := a.vals[k]
		esc := make([]string, len(vs))
		for i, v := range vs {
			esc[i] = escapeValue(v)
		}
		parts = append(parts, k+"="+strings.Join(esc, ","))
	}
	return strings.Join(parts, ";")
}

// GFFLine renders the feature as a 9-column GFF3 line (no trailing newline).
func (f Feature) GFFLine() string {
	col := func(s string) string {
		if s == "" {
			return "."
		}
		return s
	}
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s",
		col(f.Seqid), col(f.Source), col(f.Featuretype),
		f.Start, f.End,
		col(f.Score), col(f.Strand), col(f.Frame),
		f.Attributes.String(),
	)
}
