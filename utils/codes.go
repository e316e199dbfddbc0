package utils

import "math/rand"

// No I, O, 0 or 1 — the codes get read out loud and typed by hand.
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func GenerateCode(prefix string, length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return prefix + string(code)
}
