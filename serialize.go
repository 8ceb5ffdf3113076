package decimal

import "fmt"

// appendLengthPrefixed appends each field to buf, preceded by a single byte
// giving its length (0-127), matching the compound aggregator wire format
// described in §4.6: a flat concatenation of length-prefixed sub-fields.
func appendLengthPrefixed(buf []byte, fields ...[]byte) []byte {
	for _, f := range fields {
		if len(f) > 127 {
			panic("decimal: aggregator field exceeds 127 bytes")
		}
		buf = append(buf, byte(len(f)))
		buf = append(buf, f...)
	}
	return buf
}

// splitLengthPrefixed reverses appendLengthPrefixed, expecting exactly n
// fields and no trailing bytes.
func splitLengthPrefixed(b []byte, n int) ([][]byte, error) {
	fields := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		if len(b) == 0 {
			return nil, fmt.Errorf("truncated aggregator encoding: field %d missing", i)
		}
		l := int(b[0])
		b = b[1:]
		if l > len(b) {
			return nil, fmt.Errorf("truncated aggregator encoding: field %d short", i)
		}
		fields = append(fields, b[:l])
		b = b[l:]
	}
	if len(b) != 0 {
		return nil, fmt.Errorf("trailing bytes in aggregator encoding")
	}
	return fields, nil
}
