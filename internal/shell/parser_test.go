package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		// basic cases
		{"echo hello world", []string{"echo", "hello", "world"}},
		{"echo 'hello world'", []string{"echo", "hello world"}},
		{"echo 'hello     shell'", []string{"echo", "hello     shell"}},

		// adjacent quoted + quoted
		{"echo 'example''test'", []string{"echo", "exampletest"}},

		// quoted + unquoted
		{"echo hello''world", []string{"echo", "helloworld"}},

		// multiple quoted args
		{"echo '/tmp/file name' '/tmp/file name 1'", []string{
			"echo",
			"/tmp/file name",
			"/tmp/file name 1",
		}},

		// mixing spaces
		{"echo   'a'   b   'c'  d", []string{"echo", "a", "b", "c", "d"}},
		{"echo a b   ", []string{"echo", "a", "b"}},
		{"   echo   a   b", []string{"echo", "a", "b"}},

		// empty quotes mid-argument
		{"echo foo''bar", []string{"echo", "foobar"}},
		{"echo ''foo", []string{"echo", "foo"}},

		// double quotes
		{`echo "hello world"`, []string{"echo", "hello world"}},
		{`echo "example""test"`, []string{"echo", "exampletest"}},
		{`echo "a""b"c""d`, []string{"echo", "abcd"}},

		// escapes
		{`echo world\ \ script`, []string{"echo", "world  script"}},
		{`echo "A \\ escapes itself"`, []string{"echo", `A \ escapes itself`}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseArgs(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestParseArgsQuotingErrors(t *testing.T) {
	tests := []string{
		"echo 'unterminated",
		`echo "unterminated`,
		`echo trailing\`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseArgs(input)
			var qe *QuotingError
			require.ErrorAs(t, err, &qe)
			require.Equal(t, input, qe.Input)
		})
	}
}
