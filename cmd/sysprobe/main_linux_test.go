//go:build linux

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunHostAlwaysExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Regexp(t, `^Testing custom syscall 2333\.\.\.\nSuccessfully called syscall 2333, return value is: -?\d+\n$`, stdout.String())
}
