package main

import (
	"os/signal"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreSigpipe(t *testing.T) {
	ignoreSigpipe()

	// A downstream consumer closing stdout must surface as an EPIPE write
	// error, not a process-killing signal.
	assert.True(t, signal.Ignored(syscall.SIGPIPE))
}
