package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)

	message := "main.go:9:18: invalid enum Fruit\n" +
		"\tok:   0 apple\n" +
		"\tFAIL: 1 ?        // missing"

	assert.Equal(t, "main.go:9:18: invalid enum Fruit\n"+
		dim+"\tok:   0 apple"+reset+"\n"+
		red+"\tFAIL: 1 ?        // missing"+reset, colorize(message))
}

func TestColorizeSingleLine(t *testing.T) {
	message := "main.go:9:18: Fruit has no sentinel"
	assert.Equal(t, message, colorize(message))
}
