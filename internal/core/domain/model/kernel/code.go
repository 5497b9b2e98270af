package kernel

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet is the character set for generated human-facing codes.
// Uppercase base36 keeps codes unambiguous when read aloud or typed.
const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodeLength is the number of random characters in a generated code.
// Eight characters is the format inherited from the tracking-number scheme;
// the unique indexes on stored codes plus a single regeneration retry cover
// the residual collision risk.
const CodeLength = 8

// NewCode generates a human-facing code of the form "<prefix>-XXXXXXXX",
// where X is an uppercase base36 character drawn from crypto/rand.
// Tracking numbers use prefix "CIT", invoice numbers use "INV".
func NewCode(prefix string) string {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("kernel: reading random bytes: %v", err))
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return prefix + "-" + string(buf)
}
