package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	pattern := regexp.MustCompile(`^BABA-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{6}$`)
	for i := 0; i < 100; i++ {
		code := GenerateCode("BABA-", 6)
		assert.Regexp(t, pattern, code)
	}
}

func TestGenerateCodeAdminLength(t *testing.T) {
	code := GenerateCode("ADMIN-", 8)
	assert.Regexp(t, `^ADMIN-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{8}$`, code)
}
