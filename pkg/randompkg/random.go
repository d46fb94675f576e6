// Package randompkg generates random ledger names and amounts for tests.
package randompkg

import (
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Word returns n random lowercase letters.
func Word(n int) string {
	var sb strings.Builder

	sb.Grow(n)

	for i := 0; i < n; i++ {
		sb.WriteByte(letters[rand.Intn(len(letters))])
	}

	return sb.String()
}

// Name returns a capitalized user name unlikely to collide between tests.
func Name() string {
	return strings.ToUpper(Word(1)) + Word(11)
}

// Amount returns a positive amount with cents between whole units min and max.
func Amount(min, max int64) decimal.Decimal {
	cents := min*100 + rand.Int63n((max-min)*100+1)
	if cents <= 0 {
		cents = 1
	}

	return decimal.New(cents, -2)
}
