// Package gameid generates sortable session identifiers: a UUIDv7 laid out as
// 26 characters of Crockford base32.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID.
const Length = 26

// RandSource is satisfied by *rand.Rand from math/rand/v2.
type RandSource interface {
	IntN(n int) int
}

// Generator produces IDs from a clock and an optional deterministic source.
type Generator struct {
	clock      quartz.Clock
	randSource RandSource
}

// NewGenerator creates a generator. A nil clock uses the real clock; a nil
// randSource uses crypto/rand.
func NewGenerator(clock quartz.Clock, randSource RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, randSource: randSource}
}

// Generate returns an ID using the real clock and crypto/rand.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a new ID. IDs from later milliseconds sort after earlier ones.
func (g *Generator) Generate() string {
	return encode(g.uuidV7())
}

func (g *Generator) uuidV7() [16]byte {
	var id [16]byte

	// 48-bit millisecond timestamp, big-endian
	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return id
}

// encode writes the 128 bits as 26 base32 digits, padded with two leading
// zero bits so the first digit is always 0-7.
func encode(data [16]byte) string {
	out := make([]byte, Length)
	for i := range out {
		var v byte
		for j := 0; j < 5; j++ {
			bit := i*5 + j - 2
			v <<= 1
			if bit >= 0 && data[bit/8]&(0x80>>(bit%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Validate checks that id is 26 base32 characters starting with 0-7.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
