package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandWith(t *testing.T) {
	testCases := []struct {
		description string
		env         map[string]string
		input       string
		expect      string
	}{
		{description: "no expressions", input: "just a plain string", expect: "just a plain string"},
		{description: "single expression", env: map[string]string{"PREFIX": "V"}, input: "vertex: ${env.PREFIX}", expect: "vertex: V"},
		{description: "multiple expressions", env: map[string]string{"A": "1", "B": "2"}, input: "${env.A}-${env.B}-${env.A}", expect: "1-2-1"},
		{description: "unset variable becomes empty", input: "unset=${env.NOTSET}-end", expect: "unset=-end"},
		{description: "malformed missing closing brace", env: map[string]string{"X": "x"}, input: "start ${env.X and ${env.Y} end", expect: "start ${env.X and  end"},
		{description: "unterminated", input: "tail ${env.X", expect: "tail ${env.X"},
		{description: "prefix only no key", input: "oops ${env.} done", expect: "oops  done"},
	}

	for _, testCase := range testCases {
		lookup := func(key string) string { return testCase.env[key] }
		assert.Equal(t, testCase.expect, ExpandWith(testCase.input, lookup), testCase.description)
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("GRAPHID_TEST_STORE", "/tmp/graph")
	assert.Equal(t, "url: /tmp/graph", Expand("url: ${env.GRAPHID_TEST_STORE}"))
}
