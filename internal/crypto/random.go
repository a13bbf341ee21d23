package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

// RandomSource supplies uniform random integers to the generator.
type RandomSource interface {
	// Intn returns a uniform random int in [0, n). n must be positive.
	Intn(n int) (int, error)
}

// ErrInvalidBound is returned by a RandomSource asked for a value in an empty range.
var ErrInvalidBound = errors.New("random bound must be positive")

type secureSource struct{}

// SecureSource returns a RandomSource backed by crypto/rand. It is safe for concurrent use.
func SecureSource() RandomSource {
	return secureSource{}
}

func (secureSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic RandomSource keyed from a seed.
// The same seed always yields the same sequence. Not safe for concurrent use.
type SeededSource struct {
	stream *chacha20.Cipher
	buf    [8]byte
}

// NewSeededSource returns a SeededSource whose output is the ChaCha20 keystream for seed.
func NewSeededSource(seed uint64) *SeededSource {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint64(key[:], seed)

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	return &SeededSource{stream: stream}
}

// Intn draws 64-bit words from the keystream, rejecting the biased low range.
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	bound := uint64(n)
	threshold := -bound % bound
	for {
		clear(s.buf[:])
		s.stream.XORKeyStream(s.buf[:], s.buf[:])
		v := binary.LittleEndian.Uint64(s.buf[:])
		if v >= threshold {
			return int(v % bound), nil
		}
	}
}
