package revenge

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"strconv"
	"time"
)

// DefaultScrambleLength is the number of moves in a scramble unless configured otherwise.
const DefaultScrambleLength = 30

var scrambleModifiers = []string{"", "'", "2"}

// Scrambler generates scrambles from a seeded pseudo-random source.
// Two scramblers with the same seed produce the same scrambles.
// A Scrambler is not safe for concurrent use.
type Scrambler struct {
	seed int64
	rng  *rand.Rand
}

// NewScrambler creates a scrambler seeded with seed.
func NewScrambler(seed int64) *Scrambler {
	return &Scrambler{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// NewRandomScrambler creates a scrambler with a high-entropy seed.
func NewRandomScrambler() *Scrambler {
	return NewScrambler(NewSeed())
}

// NewSeed returns a seed read from crypto/rand, falling back to the clock
// if the system source is unavailable.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Seed returns the seed the scrambler was created with.
func (s *Scrambler) Seed() int64 {
	return s.seed
}

// SeedString returns the seed in the decimal form stored alongside saved games.
func (s *Scrambler) SeedString() string {
	return strconv.FormatInt(s.seed, 10)
}

// Generate returns n tokens. Each token's face differs from the previous
// token's face; the modifier is drawn independently. Other redundancies, such
// as alternating opposite faces, are not filtered.
func (s *Scrambler) Generate(n int) []string {
	if n <= 0 {
		return []string{}
	}

	tokens := make([]string, 0, n)
	last := Face(-1)
	for len(tokens) < n {
		f := Faces[s.rng.Intn(len(Faces))]
		if f == last {
			continue
		}
		tokens = append(tokens, f.String()+scrambleModifiers[s.rng.Intn(len(scrambleModifiers))])
		last = f
	}
	return tokens
}

// GenerateScramble returns a scramble of n moves from a freshly seeded source.
func GenerateScramble(n int) []string {
	return NewRandomScrambler().Generate(n)
}

// ParseSeed parses a seed produced by SeedString.
func ParseSeed(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
