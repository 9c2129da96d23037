package main

import (
	"testing"

	suffixarray "github.com/6851-2021/suffix-array"
	"github.com/stretchr/testify/assert"
)

func TestParseArgsDefaults(t *testing.T) {
	opt, err := parseArgs([]string{"naive"})
	assert.NoError(t, err)
	assert.Equal(t, suffixarray.Naive, opt.algorithm)
	assert.Equal(t, 1, opt.repeatCnt)
	assert.False(t, opt.textOutput)
}

func TestParseArgsRepeatCntAndFlag(t *testing.T) {
	opt, err := parseArgs([]string{"-text", "linear", "5"})
	assert.NoError(t, err)
	assert.Equal(t, suffixarray.Linear, opt.algorithm)
	assert.Equal(t, 5, opt.repeatCnt)
	assert.True(t, opt.textOutput)
}

func TestParseArgsFlagAfterPositional(t *testing.T) {
	// the standard flag package stops parsing flags at the first
	// non-flag argument, so -text must precede the positional arguments.
	_, err := parseArgs([]string{"nlogn", "-text"})
	assert.Error(t, err)
	assert.IsType(t, &usageError{}, err)
}

func TestParseArgsUnknownAlgorithm(t *testing.T) {
	_, err := parseArgs([]string{"bogus"})
	assert.Error(t, err)
	assert.IsType(t, &usageError{}, err)
}

func TestParseArgsBadRepeatCnt(t *testing.T) {
	tests := []string{"0", "-3", "abc"}
	for _, rc := range tests {
		_, err := parseArgs([]string{"naive", rc})
		assert.Error(t, err, "repeatCnt=%q", rc)
		assert.IsType(t, &usageError{}, err)
	}
}

func TestParseArgsWrongArity(t *testing.T) {
	_, err := parseArgs([]string{})
	assert.Error(t, err)
	assert.IsType(t, &usageError{}, err)

	_, err = parseArgs([]string{"naive", "3", "extra"})
	assert.Error(t, err)
	assert.IsType(t, &usageError{}, err)
}
