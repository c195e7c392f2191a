package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	a, err := parseArgs([]string{"/home/me/Pictures", "300"})
	require.NoError(t, err)
	assert.Equal(t, "/home/me/Pictures", a.dir)
	assert.Equal(t, 5*time.Minute, a.interval)

	for _, argv := range [][]string{
		nil,
		{"/pics"},
		{"/pics", "ten"},
		{"/pics", "-5"},
		{"/pics", "0"},
		{"/pics", "10", "extra"},
	} {
		_, err := parseArgs(argv)
		assert.Error(t, err, "args %v", argv)
	}
}
