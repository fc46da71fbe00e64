package repositories

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Records are stored as protobuf wire messages, written field by field so the
// on-disk layout stays readable by any protobuf decoder.

type recordWriter struct {
	b []byte
}

func (w *recordWriter) string(num protowire.Number, v string) {
	if v == "" {
		return
	}
	w.b = protowire.AppendTag(w.b, num, protowire.BytesType)
	w.b = protowire.AppendString(w.b, v)
}

func (w *recordWriter) strings(num protowire.Number, values []string) {
	for _, v := range values {
		w.b = protowire.AppendTag(w.b, num, protowire.BytesType)
		w.b = protowire.AppendString(w.b, v)
	}
}

func (w *recordWriter) varint(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	w.b = protowire.AppendTag(w.b, num, protowire.VarintType)
	w.b = protowire.AppendVarint(w.b, v)
}

func (w *recordWriter) bool(num protowire.Number, v bool) {
	w.varint(num, protowire.EncodeBool(v))
}

func (w *recordWriter) bytes() []byte { return w.b }

type record struct {
	strs    map[protowire.Number][]string
	varints map[protowire.Number]uint64
}

// decodeRecord reads every string and varint field, unknown wire types are skipped.
func decodeRecord(b []byte) (record, error) {
	r := record{
		strs:    make(map[protowire.Number][]string),
		varints: make(map[protowire.Number]uint64),
	}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return record{}, protowire.ParseError(n)
		}
		b = b[n:]

		switch typ {
		case protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return record{}, protowire.ParseError(m)
			}
			r.strs[num] = append(r.strs[num], v)
			n = m
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return record{}, protowire.ParseError(m)
			}
			r.varints[num] = v
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return record{}, protowire.ParseError(n)
			}
		}
		b = b[n:]
	}
	return r, nil
}

// str returns the last value of a string field, as protobuf does for non-repeated fields.
func (r record) str(num protowire.Number) string {
	values := r.strs[num]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

func (r record) list(num protowire.Number) []string {
	return r.strs[num]
}

func (r record) uint(num protowire.Number) uint64 {
	return r.varints[num]
}

func (r record) bool(num protowire.Number) bool {
	return protowire.DecodeBool(r.varints[num])
}
