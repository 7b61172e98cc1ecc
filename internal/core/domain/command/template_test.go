package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []string
		want     string
	}{
		{"single placeholder", "test {} --verbose", []string{"mytest"}, "test mytest --verbose"},
		{"two placeholders", "cp {} {}", []string{"file1.txt", "file2.txt"}, "cp file1.txt file2.txt"},
		{"no placeholders appends", "make build", []string{"--release", "--target"}, "make build --release --target"},
		{"missing args keep marker", "test {} --verbose", nil, "test {} --verbose"},
		{"leftover args appended", "run {} tests", []string{"unit", "--verbose", "--parallel"}, "run unit tests --verbose --parallel"},
		{"no args no placeholders", "npm run dev", nil, "npm run dev"},
		{"partial fill", "cp {} {}", []string{"a"}, "cp a {}"},
		{"arg containing marker is not rescanned", "echo {} {}", []string{"{}"}, "echo {} {}"},
		{"adjacent placeholders", "{}{}", []string{"a", "b"}, "ab"},
		{"empty template", "", []string{"x"}, " x"},
		{"empty argument", "echo {}!", []string{""}, "echo !"},
		{"lone brace is not a marker", "echo { }", []string{"x"}, "echo { } x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.template, tt.args))
		})
	}
}

func TestSubstitute_FillThenAppendRule(t *testing.T) {
	template := "x {} y {} z {}"
	k := strings.Count(template, Placeholder)
	assert.Equal(t, 3, k)

	for n := 0; n <= 5; n++ {
		args := make([]string, n)
		for i := range args {
			args[i] = string(rune('a' + i))
		}
		got := Substitute(template, args)

		filled := min(n, k)
		assert.Equal(t, k-filled, strings.Count(got, Placeholder), "n=%d", n)
		for i := 0; i < n; i++ {
			assert.Contains(t, got, args[i], "n=%d", n)
		}
		if n > k {
			assert.True(t, strings.HasSuffix(got, " "+strings.Join(args[k:], " ")), "n=%d got=%q", n, got)
		}
	}
}

func TestOutcome_Success(t *testing.T) {
	assert.True(t, Outcome{}.Success())
	assert.False(t, Outcome{ExitCode: 2}.Success())
}
