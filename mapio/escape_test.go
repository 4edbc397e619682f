package mapio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeSafeStringsUnchanged(t *testing.T) {
	for _, s := range []string{
		"",
		"worldspawn",
		"a value with spaces",
		`back\slash inside`,
		`C:\maps\test.map`,
	} {
		assert.Equal(t, s, EscapeEntityProperties(s), "input %q", s)
	}
}

func TestEscapeQuotes(t *testing.T) {
	assert.Equal(t, `say \"hi\"`, EscapeEntityProperties(`say "hi"`))
	// Already escaped quotes stay as they are.
	assert.Equal(t, `say \"hi\"`, EscapeEntityProperties(`say \"hi\"`))
	assert.Equal(t, `\"`, EscapeEntityProperties(`"`))
}

func TestEscapeTrailingBackslashes(t *testing.T) {
	// An odd trailing run loses exactly one backslash.
	assert.Equal(t, `a`, EscapeEntityProperties(`a\`))
	assert.Equal(t, `a\\`, EscapeEntityProperties(`a\\\`))
	// An even run is already a sequence of escaped backslashes.
	assert.Equal(t, `a\\`, EscapeEntityProperties(`a\\`))
	assert.Equal(t, `a\\\\`, EscapeEntityProperties(`a\\\\`))
	// The trailing rule applies before quote escaping.
	assert.Equal(t, `say \"hi\"`, EscapeEntityProperties(`say "hi"\`))
}
