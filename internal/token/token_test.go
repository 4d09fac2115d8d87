package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tt := []struct {
		arg  string
		kind Kind
	}{
		{"", Empty},
		{"-", Dash},
		{"--", Terminator},
		{"-v", Flag},
		{"-vo", Flag},
		{"--verbose", Flag},
		{"--output=f", Flag},
		{"-=", Flag},
		{"word", Word},
		{"file.txt", Word},
		{"a-b", Word},
		{"=", Word},
	}

	for _, test := range tt {
		assert.Equal(t, test.kind, Classify(test.arg), "token %q", test.arg)
	}
}

func TestSplitAssign(t *testing.T) {
	t.Parallel()

	tt := []struct {
		arg   string
		key   string
		value string
		found bool
	}{
		{"--output=f.txt", "--output", "f.txt", true},
		{"-o=f.txt", "-o", "f.txt", true},
		{"--kv=a=b", "--kv", "a=b", true}, // split at the first equals only
		{"--empty=", "--empty", "", true},
		{"--verbose", "", "", false},
	}

	for _, test := range tt {
		key, value, found := SplitAssign(test.arg)
		assert.Equal(t, test.found, found, "token %q", test.arg)
		assert.Equal(t, test.key, key, "token %q", test.arg)
		assert.Equal(t, test.value, value, "token %q", test.arg)
	}
}

func TestExpandBundle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"-v"}, ExpandBundle("-v"))
	assert.Equal(t, []string{"-a", "-b", "-c"}, ExpandBundle("-abc"))
}
