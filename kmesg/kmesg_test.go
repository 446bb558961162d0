package kmesg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrubDropsPaddingAndControlBytes(t *testing.T) {
	raw := []byte("boot: hello\x00\x00\x01\x02\nkernel: world\x00")
	assert.Equal(t, "boot: hello\nkernel: world", scrub(raw))
}

func TestScrubKeepsTabsAndNewlines(t *testing.T) {
	raw := []byte("a\tb\nc")
	assert.Equal(t, "a\tb\nc", scrub(raw))
}

func TestScrubEmpty(t *testing.T) {
	assert.Equal(t, "", scrub(nil))
}
