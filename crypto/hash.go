package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

func Sha256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// Sha256d is the double SHA-256 used for txids and block hashes.
func Sha256d(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// Hash160 is RIPEMD-160 over SHA-256, the short fingerprint form for
// secp256k1 public keys.
func Hash160(b []byte) [20]byte {
	first := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(first[:])
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}
