package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "single", line: "ls", want: []string{"ls"}},
		{name: "batch", line: "connect n00dles; analyze ;hack", want: []string{"connect n00dles", "analyze", "hack"}},
		{name: "blank segments dropped", line: " ; ls;; ", want: []string{"ls"}},
		{name: "quoted semicolon kept", line: `alias x="ls; scan"; home`, want: []string{`alias x="ls; scan"`, "home"}},
		{name: "escaped semicolon kept", line: `echo a\;b`, want: []string{`echo a\;b`}},
		{name: "empty", line: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommands(tt.line))
		})
	}
}

func TestParseCommandTypesTokens(t *testing.T) {
	args, err := ParseCommand(`scan-analyze 2 -a true "two words"`)
	require.NoError(t, err)
	require.Len(t, args, 5)

	assert.Equal(t, Arg{Kind: KindString, Raw: "scan-analyze"}, args[0])
	assert.True(t, args[1].IsNumber(2))
	assert.Equal(t, "2", args[1].String())
	assert.True(t, args[2].IsString())
	assert.Equal(t, KindBool, args[3].Kind)
	assert.True(t, args[3].Flag)
	assert.Equal(t, "two words", args[4].Raw)
	assert.Equal(t, []string{"scan-analyze", "2", "-a", "true", "two words"}, Strings(args))
}

func TestParseCommandEmpty(t *testing.T) {
	args, err := ParseCommand("   ")
	require.NoError(t, err)
	assert.Empty(t, args)
}
