package consensus

import (
	"encoding/binary"
	"fmt"

	"minerid.dev/node/crypto"
)

// Tx is a decoded transaction in the classic wire layout: version,
// inputs, outputs, locktime, with CompactSize-prefixed counts and
// variable-length scripts.
type Tx struct {
	Version  int32
	Inputs   []TxInput
	Outputs  []TxOutput
	LockTime uint32
}

type TxInput struct {
	PrevOut   Outpoint
	ScriptSig []byte
	Sequence  uint32
}

type TxOutput struct {
	Value        uint64
	ScriptPubKey []byte
}

const coinbaseVout = 0xffffffff

// IsCoinbase reports whether the transaction has the coinbase shape:
// a single input spending the null outpoint.
func (tx *Tx) IsCoinbase() bool {
	if len(tx.Inputs) != 1 {
		return false
	}
	in := tx.Inputs[0]
	return in.PrevOut.TxID.IsZero() && in.PrevOut.Vout == coinbaseVout
}

type cursor struct {
	b   []byte
	pos int
}

func newCursor(b []byte) *cursor {
	return &cursor{b: b}
}

func (c *cursor) remaining() int {
	if c.pos >= len(c.b) {
		return 0
	}
	return len(c.b) - c.pos
}

func (c *cursor) readExact(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, txerr(TX_ERR_PARSE, "truncated")
	}
	start := c.pos
	c.pos += n
	return c.b[start:c.pos], nil
}

func (c *cursor) readU32LE() (uint32, error) {
	b, err := c.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readU64LE() (uint64, error) {
	b, err := c.readExact(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *cursor) readCount(name string) (int, error) {
	cs, used, err := DecodeCompactSize(c.b[c.pos:])
	if err != nil {
		return 0, err
	}
	c.pos += used
	if uint64(cs) > uint64(c.remaining()) {
		return 0, txerr(TX_ERR_PARSE, fmt.Sprintf("%s exceeds remaining bytes", name))
	}
	return int(cs), nil
}

func (c *cursor) readVarBytes(name string) ([]byte, error) {
	n, err := c.readCount(name)
	if err != nil {
		return nil, err
	}
	b, err := c.readExact(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

// ParseTxBytes decodes a full transaction and rejects trailing bytes.
func ParseTxBytes(b []byte) (*Tx, error) {
	cur := newCursor(b)

	version, err := cur.readU32LE()
	if err != nil {
		return nil, err
	}

	inputCount, err := cur.readCount("input_count")
	if err != nil {
		return nil, err
	}
	inputs := make([]TxInput, 0, inputCount)
	for i := 0; i < inputCount; i++ {
		txidBytes, err := cur.readExact(32)
		if err != nil {
			return nil, err
		}
		var prev Outpoint
		copy(prev.TxID[:], txidBytes)
		prev.Vout, err = cur.readU32LE()
		if err != nil {
			return nil, err
		}
		scriptSig, err := cur.readVarBytes("script_sig_len")
		if err != nil {
			return nil, err
		}
		sequence, err := cur.readU32LE()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, TxInput{
			PrevOut:   prev,
			ScriptSig: scriptSig,
			Sequence:  sequence,
		})
	}

	outputCount, err := cur.readCount("output_count")
	if err != nil {
		return nil, err
	}
	outputs := make([]TxOutput, 0, outputCount)
	for i := 0; i < outputCount; i++ {
		value, err := cur.readU64LE()
		if err != nil {
			return nil, err
		}
		script, err := cur.readVarBytes("script_pubkey_len")
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, TxOutput{Value: value, ScriptPubKey: script})
	}

	lockTime, err := cur.readU32LE()
	if err != nil {
		return nil, err
	}

	if cur.pos != len(b) {
		return nil, txerr(TX_ERR_PARSE, "trailing bytes")
	}

	// #nosec G115 -- version is a 4-byte wire field reinterpreted as int32.
	return &Tx{
		Version:  int32(version),
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
	}, nil
}

func TxBytes(tx *Tx) []byte {
	out := make([]byte, 0, 4+9+9+4)
	var tmp4 [4]byte
	var tmp8 [8]byte

	// #nosec G115 -- version is serialized as its 4-byte wire form.
	binary.LittleEndian.PutUint32(tmp4[:], uint32(tx.Version))
	out = append(out, tmp4[:]...)

	out = append(out, CompactSize(len(tx.Inputs)).Encode()...)
	for _, in := range tx.Inputs {
		out = append(out, in.PrevOut.TxID[:]...)
		binary.LittleEndian.PutUint32(tmp4[:], in.PrevOut.Vout)
		out = append(out, tmp4[:]...)
		out = append(out, CompactSize(len(in.ScriptSig)).Encode()...)
		out = append(out, in.ScriptSig...)
		binary.LittleEndian.PutUint32(tmp4[:], in.Sequence)
		out = append(out, tmp4[:]...)
	}

	out = append(out, CompactSize(len(tx.Outputs)).Encode()...)
	for _, o := range tx.Outputs {
		binary.LittleEndian.PutUint64(tmp8[:], o.Value)
		out = append(out, tmp8[:]...)
		out = append(out, CompactSize(len(o.ScriptPubKey)).Encode()...)
		out = append(out, o.ScriptPubKey...)
	}

	binary.LittleEndian.PutUint32(tmp4[:], tx.LockTime)
	out = append(out, tmp4[:]...)
	return out
}

// TxID is the double SHA-256 of the serialized transaction.
func TxID(tx *Tx) Hash {
	return Hash(crypto.Sha256d(TxBytes(tx)))
}
