package domain

import (
	"math/rand/v2"
	"strings"
)

const (
	// TokenLength is the exact length of every page token.
	TokenLength = 16

	// TokenAlphabet lists the characters a page token is drawn from.
	TokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// TokenSource mints page tokens. Implementations must return TokenLength
// characters from TokenAlphabet.
type TokenSource func() string

// RandomToken draws TokenLength characters uniformly from TokenAlphabet.
func RandomToken() string {
	var b strings.Builder
	b.Grow(TokenLength)
	for range TokenLength {
		b.WriteByte(TokenAlphabet[rand.IntN(len(TokenAlphabet))])
	}
	return b.String()
}

// IsWellFormedToken reports whether s has the shape of a page token.
// It says nothing about whether the token belongs to the current snapshot.
func IsWellFormedToken(s string) bool {
	if len(s) != TokenLength {
		return false
	}
	for i := range len(s) {
		if strings.IndexByte(TokenAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
