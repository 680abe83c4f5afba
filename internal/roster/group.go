package roster

import (
	"bytes"
	"encoding/json"
)

// Grouped is an ordered mapping from a field value to the records sharing it.
// Keys iterate in first-seen order; each bucket keeps input order.
type Grouped struct {
	keys    []string
	buckets map[string][]DutyRecord
}

// GroupBy partitions records by the value of field in a single pass.
// Records whose field is missing are dropped. The input is not modified.
func GroupBy(records []DutyRecord, field Field) *Grouped {
	g := &Grouped{buckets: make(map[string][]DutyRecord)}
	for _, rec := range records {
		key, ok := rec.Field(field)
		if !ok {
			continue
		}
		if _, seen := g.buckets[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.buckets[key] = append(g.buckets[key], rec)
	}
	return g
}

// GroupByDate groups records by their Date field.
func GroupByDate(records []DutyRecord) *Grouped {
	return GroupBy(records, FieldDate)
}

// Keys returns the keys in first-seen order. The slice is a copy.
func (g *Grouped) Keys() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.keys...)
}

// Get returns the bucket for key, or nil.
func (g *Grouped) Get(key string) []DutyRecord {
	if g == nil {
		return nil
	}
	return g.buckets[key]
}

// Len returns the number of keys.
func (g *Grouped) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Total returns the number of records across all buckets.
func (g *Grouped) Total() int {
	n := 0
	g.Each(func(_ string, recs []DutyRecord) {
		n += len(recs)
	})
	return n
}

// Each calls fn for every bucket in key order.
func (g *Grouped) Each(fn func(key string, records []DutyRecord)) {
	if g == nil {
		return
	}
	for _, k := range g.keys {
		fn(k, g.buckets[k])
	}
}

// MarshalJSON writes the mapping as a JSON object with keys in order.
func (g *Grouped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range g.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(g.buckets[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
