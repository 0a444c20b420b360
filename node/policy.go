package node

import (
	"errors"
	"fmt"

	"minerid.dev/node/consensus"
	"minerid.dev/node/minerid"
)

// ScanCoinbase applies node policy around the miner id verification
// core: the transaction must have the coinbase shape, and no output
// script may exceed the configured size ceiling. A nil result with a
// nil error is the normal "no miner id present" outcome.
func ScanCoinbase(tx *consensus.Tx, blockHeight int32, cfg Config) (*minerid.MinerID, error) {
	if tx == nil {
		return nil, errors.New("nil transaction")
	}
	if !tx.IsCoinbase() {
		return nil, errors.New("transaction is not a coinbase")
	}
	for i, out := range tx.Outputs {
		if len(out.ScriptPubKey) > cfg.MaxMinerIDScriptBytes {
			return nil, fmt.Errorf("output %d script is %d bytes, policy limit %d",
				i, len(out.ScriptPubKey), cfg.MaxMinerIDScriptBytes)
		}
	}
	return minerid.Find(tx, blockHeight), nil
}
