package node

import (
	"bytes"
	"testing"

	"minerid.dev/node/consensus"
)

func testCoinbase(scripts ...[]byte) *consensus.Tx {
	tx := &consensus.Tx{
		Version: 1,
		Inputs: []consensus.TxInput{{
			PrevOut:   consensus.Outpoint{Vout: 0xffffffff},
			ScriptSig: []byte{0x01, 0x02},
			Sequence:  0xffffffff,
		}},
	}
	for _, s := range scripts {
		tx.Outputs = append(tx.Outputs, consensus.TxOutput{ScriptPubKey: s})
	}
	return tx
}

func TestScanCoinbase_NilTx(t *testing.T) {
	if _, err := ScanCoinbase(nil, 1, DefaultConfig()); err == nil {
		t.Fatalf("nil transaction accepted")
	}
}

func TestScanCoinbase_NonCoinbaseRejected(t *testing.T) {
	tx := testCoinbase([]byte{0x76})
	tx.Inputs[0].PrevOut.TxID[0] = 0x01
	if _, err := ScanCoinbase(tx, 1, DefaultConfig()); err == nil {
		t.Fatalf("non-coinbase transaction accepted")
	}
}

func TestScanCoinbase_NoMarkerYieldsNilNil(t *testing.T) {
	id, err := ScanCoinbase(testCoinbase([]byte{0x76, 0xa9, 0x14}), 1, DefaultConfig())
	if err != nil {
		t.Fatalf("ScanCoinbase: %v", err)
	}
	if id != nil {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestScanCoinbase_ScriptCeiling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMinerIDScriptBytes = 16

	atLimit := bytes.Repeat([]byte{0x6a}, 16)
	if _, err := ScanCoinbase(testCoinbase(atLimit), 1, cfg); err != nil {
		t.Fatalf("script at the limit rejected: %v", err)
	}

	overLimit := bytes.Repeat([]byte{0x6a}, 17)
	if _, err := ScanCoinbase(testCoinbase(atLimit, overLimit), 1, cfg); err == nil {
		t.Fatalf("oversized output script accepted")
	}
}
