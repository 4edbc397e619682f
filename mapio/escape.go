package mapio

import "strings"

// EscapeEntityProperties makes a property value safe for embedding in a
// quoted token. A trailing unescaped backslash would merge with the
// closing quote into an escaped-quote sequence and choke the parser, so
// an odd run of trailing backslashes loses its last one before quotes
// are escaped.
func EscapeEntityProperties(value string) string {
	if trailingBackslashes(value)%2 == 1 {
		value = value[:len(value)-1]
	}
	return escapeQuotes(value)
}

func trailingBackslashes(s string) (n int) {
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return
}

// escapeQuotes escapes quote characters that are not escaped already.
func escapeQuotes(s string) string {
	if !strings.ContainsAny(s, `"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == '"' {
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
			continue
		}
		if c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
