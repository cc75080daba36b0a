package agro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Rice", "rice"},
		{"  Rice  ", "rice"},
		{"Cà Phê", "ca phe"},
		{"cà phê", "ca phe"},
		{"CÀ PHÊ", "ca phe"},
		{"Lúa", "lua"},
		{"đất sét", "dat set"},
		{"Mía", "mia"},
		{"café", "cafe"},
		{"Straße", "strasse"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeKey(c.in), "input %q", c.in)
	}
}

func TestNormalizeKeyEquivalence(t *testing.T) {
	// Spellings differing only in case and diacritics must collide.
	assert.Equal(t, NormalizeKey("Cà Phê"), NormalizeKey("ca phe"))
	assert.Equal(t, NormalizeKey("LÚA"), NormalizeKey("lua"))
	assert.Equal(t, NormalizeKey("Đất cát"), NormalizeKey("dat cat"))
}
