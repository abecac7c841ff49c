package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFence(t *testing.T) {
	cases := map[string]string{
		"[]":                             "[]",
		"  [1]  ":                        "[1]",
		"```json\n[1]\n```":              "[1]",
		"```\n{\"a\":1}\n```":            "{\"a\":1}",
		"Here you go:\n```JSON\n[]\n```": "[]",
		"```[2]```":                      "[2]",
		"```json\n[3]":                   "[3]",
		"<think>x\ny</think>[4]":         "[4]",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripFence(in), "input %q", in)
	}
}

func TestParseCategoryConflictsRejectsBadEntries(t *testing.T) {
	_, err := parseCategoryConflicts(`[{"genre":"","forbidden_match":"Horror"}]`)
	assert.Error(t, err)

	_, err = parseCategoryConflicts(`{"genre":"Slasher"}`)
	assert.Error(t, err)

	got, err := parseCategoryConflicts("```json\n[]\n```")
	assert.NoError(t, err)
	assert.Empty(t, got)
}
