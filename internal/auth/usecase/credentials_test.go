package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialGenerator_Username(t *testing.T) {
	gen := NewCredentialGenerator()

	name := gen.Username("Jane Van Der Berg")
	assert.True(t, strings.HasPrefix(name, "janevanderberg"))
	assert.Len(t, name, len("janevanderberg")+4)
	assert.Equal(t, strings.ToLower(name), name)
	assert.NotContains(t, name, " ")
}

func TestCredentialGenerator_UsernameSuffixVaries(t *testing.T) {
	gen := NewCredentialGenerator()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[gen.Username("Jane Doe")] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestCredentialGenerator_UsernameEmptyDisplayName(t *testing.T) {
	gen := NewCredentialGenerator()

	name := gen.Username("   ")
	assert.True(t, strings.HasPrefix(name, "user"))
}

func TestCredentialGenerator_Password(t *testing.T) {
	gen := NewCredentialGenerator()

	p1 := gen.Password()
	p2 := gen.Password()
	assert.Len(t, p1, 16)
	assert.NotEqual(t, p1, p2)
}
