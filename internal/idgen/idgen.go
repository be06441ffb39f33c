// Package idgen generates short random identifiers such as "task_k3j9x0a".
//
// Identifiers are not guaranteed unique; callers that need uniqueness within
// a collection must check and regenerate.
package idgen

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// TokenLength is the number of random characters after the prefix.
const TokenLength = 7

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generator produces identifiers from its own random source.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a generator seeded from the runtime's random source.
func NewGenerator() *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a generator with a fixed seed, for reproducible ids.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// New returns prefix + "_" + a random base-36 token.
func (g *Generator) New(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(len(prefix) + 1 + TokenLength)
	b.WriteString(prefix)
	b.WriteByte('_')
	for i := 0; i < TokenLength; i++ {
		b.WriteByte(alphabet[g.rnd.IntN(len(alphabet))])
	}
	return b.String()
}

var defaultGenerator = NewGenerator()

// New returns an identifier from the package-level generator.
func New(prefix string) string {
	return defaultGenerator.New(prefix)
}
