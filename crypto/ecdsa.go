package crypto

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// VerifyHashSig checks a DER-encoded secp256k1 ECDSA signature over a
// 32-byte digest. Undecodable keys or signatures verify as false, never
// as an error: callers treat every failure mode identically.
func VerifyHashSig(pubKey []byte, sig []byte, digest [32]byte) bool {
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	s, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return s.Verify(digest[:], pk)
}

// VerifyMessage hashes msg with SHA-256 and verifies the signature over
// the digest. Pure function of its three inputs.
func VerifyMessage(msg []byte, pubKey []byte, sig []byte) bool {
	return VerifyHashSig(pubKey, sig, Sha256(msg))
}
