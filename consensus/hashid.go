package consensus

import (
	"encoding/hex"
	"fmt"
)

// Hash is a 32-byte transaction or block identifier, stored in internal
// (little-endian) byte order and displayed reversed, per convention.
type Hash [32]byte

func (h Hash) String() string {
	var rev [32]byte
	for i := range h {
		rev[i] = h[31-i]
	}
	return hex.EncodeToString(rev[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

// HashFromHex decodes a 64-character display-order hex string.
func HashFromHex(s string) (Hash, error) {
	var h Hash
	if len(s) != 64 {
		return h, txerr(TX_ERR_HASH, fmt.Sprintf("hash hex length %d, want 64", len(s)))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, txerr(TX_ERR_HASH, "invalid hash hex")
	}
	for i := range h {
		h[i] = raw[31-i]
	}
	return h, nil
}

// Outpoint references a single transaction output.
type Outpoint struct {
	TxID Hash
	Vout uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Vout)
}
