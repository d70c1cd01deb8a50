package sdjournal

import "bytes"

// splitFieldValue decodes a native journal data buffer of the form
// FIELD=value. The value may contain further '=' bytes or be binary, so the
// split happens at the first '=' only. ok is false when the buffer carries
// no separator at all.
func splitFieldValue(buf []byte) (name string, value []byte, ok bool) {
	i := bytes.IndexByte(buf, '=')
	if i < 0 {
		return "", nil, false
	}
	return string(buf[:i]), buf[i+1:], true
}

// validFieldName reports whether name is acceptable for reads and matches.
// Journal field names are uppercase ASCII letters, digits and underscores;
// a leading underscore marks trusted fields (e.g. _PID), which are readable
// but not writable.
func validFieldName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// validUserFieldName reports whether name may appear in an entry submitted
// through Send. Trusted fields (leading underscore) are reserved for the
// journal daemon itself.
func validUserFieldName(name string) bool {
	return validFieldName(name) && name[0] != '_'
}
