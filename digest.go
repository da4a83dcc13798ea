package transcode

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestAlgo represents a supported digest algorithm.
type DigestAlgo string

const (
	// DigestSHA256 uses SHA-256 (32 bytes).
	DigestSHA256 DigestAlgo = "sha256"

	// DigestSHA512 uses SHA-512 (64 bytes).
	DigestSHA512 DigestAlgo = "sha512"

	// DigestBLAKE2b256 uses unkeyed BLAKE2b with a 32-byte output.
	DigestBLAKE2b256 DigestAlgo = "blake2b-256"

	// DigestBLAKE2b512 uses unkeyed BLAKE2b with a 64-byte output.
	DigestBLAKE2b512 DigestAlgo = "blake2b-512"

	// DigestSHA3_256 uses SHA3-256 (32 bytes).
	DigestSHA3_256 DigestAlgo = "sha3-256"

	// DigestSHA3_512 uses SHA3-512 (64 bytes).
	DigestSHA3_512 DigestAlgo = "sha3-512"

	// DigestXXH64 uses XXH64 with seed 0, big-endian (8 bytes).
	// Not collision resistant; use it for change detection only.
	DigestXXH64 DigestAlgo = "xxh64"
)

// Hasher computes a deterministic digest.
// Use for fingerprinting/identification, NOT for passwords.
type Hasher interface {
	// Sum returns the digest of data.
	Sum(data []byte) []byte

	// Size returns the digest length in bytes.
	Size() int
}

// hasherFunc adapts a fixed-size sum function into a Hasher.
type hasherFunc struct {
	size int
	sum  func([]byte) []byte
}

func (h hasherFunc) Sum(data []byte) []byte { return h.sum(data) }

func (h hasherFunc) Size() int { return h.size }

// builtinHashers returns the default hasher registry.
func builtinHashers() map[DigestAlgo]Hasher {
	return map[DigestAlgo]Hasher{
		DigestSHA256: hasherFunc{size: sha256.Size, sum: func(b []byte) []byte {
			s := sha256.Sum256(b)
			return s[:]
		}},
		DigestSHA512: hasherFunc{size: sha512.Size, sum: func(b []byte) []byte {
			s := sha512.Sum512(b)
			return s[:]
		}},
		DigestBLAKE2b256: hasherFunc{size: blake2b.Size256, sum: func(b []byte) []byte {
			s := blake2b.Sum256(b)
			return s[:]
		}},
		DigestBLAKE2b512: hasherFunc{size: blake2b.Size, sum: func(b []byte) []byte {
			s := blake2b.Sum512(b)
			return s[:]
		}},
		DigestSHA3_256: hasherFunc{size: 32, sum: func(b []byte) []byte {
			s := sha3.Sum256(b)
			return s[:]
		}},
		DigestSHA3_512: hasherFunc{size: 64, sum: func(b []byte) []byte {
			s := sha3.Sum512(b)
			return s[:]
		}},
		DigestXXH64: hasherFunc{size: 8, sum: func(b []byte) []byte {
			return binary.BigEndian.AppendUint64(nil, xxhash.Sum64(b))
		}},
	}
}

var hashers = builtinHashers()

// IsValidDigestAlgo returns true if the algorithm is a known digest algorithm.
func IsValidDigestAlgo(algo DigestAlgo) bool {
	_, ok := hashers[algo]
	return ok
}

// HasherFor returns the Hasher for algo.
func HasherFor(algo DigestAlgo) (Hasher, error) {
	h, ok := hashers[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	return h, nil
}

// Digest returns the raw digest of data.
func Digest(algo DigestAlgo, data []byte) ([]byte, error) {
	h, err := HasherFor(algo)
	if err != nil {
		return nil, err
	}
	return h.Sum(data), nil
}

// Fingerprint returns the digest of data rendered through codec.
//
//	fp, _ := transcode.Fingerprint(transcode.Hex, transcode.DigestSHA256, data)
func Fingerprint(codec Codec[string, []byte], algo DigestAlgo, data []byte) (string, error) {
	sum, err := Digest(algo, data)
	if err != nil {
		return "", err
	}
	return codec.Encode(sum), nil
}

// VerifyFingerprint reports whether fingerprint is the digest of data
// rendered through codec. The comparison runs in constant time. A
// fingerprint the codec cannot decode is an error, not a mismatch.
func VerifyFingerprint(codec Codec[string, []byte], algo DigestAlgo, data []byte, fingerprint string) (bool, error) {
	h, err := HasherFor(algo)
	if err != nil {
		return false, err
	}
	want, err := codec.Decode(fingerprint)
	if err != nil {
		return false, err
	}
	if len(want) != h.Size() {
		return false, nil
	}
	return subtle.ConstantTimeCompare(h.Sum(data), want) == 1, nil
}
