// Package minerid locates and verifies MinerID coinbase documents: the
// self-asserted, cryptographically chained miner identity a block
// producer may embed in a coinbase output script.
package minerid

import (
	"encoding/hex"

	"minerid.dev/node/consensus"
	"minerid.dev/node/crypto"
)

// MinerID is the verification-time aggregate. It is only ever handed to
// callers after the static document verified; DynamicKey is set when a
// dynamic document additionally verified over the same output.
//
// The raw static document and signature bytes are retained exactly as
// extracted: the dynamic signature message is defined over those byte
// sequences, and re-serializing the parsed document is not equivalent.
type MinerID struct {
	Document   CoinbaseDocument
	DynamicKey string

	staticDoc []byte
	staticSig []byte
}

// HasDynamic reports whether a dynamic document verified.
func (m *MinerID) HasDynamic() bool {
	return m.DynamicKey != ""
}

// StaticDocumentBytes returns a copy of the static document operand
// exactly as consumed by the static verification step.
func (m *MinerID) StaticDocumentBytes() []byte {
	return append([]byte(nil), m.staticDoc...)
}

// StaticSignatureBytes returns a copy of the static signature operand.
func (m *MinerID) StaticSignatureBytes() []byte {
	return append([]byte(nil), m.staticSig...)
}

// KeyID is the HASH160 fingerprint of the authenticated miner id key.
func (m *MinerID) KeyID() ([20]byte, error) {
	return keyFingerprint(m.Document.MinerIDKey)
}

// DynamicKeyID is the HASH160 fingerprint of the dynamic key, valid
// only when HasDynamic.
func (m *MinerID) DynamicKeyID() ([20]byte, error) {
	return keyFingerprint(m.DynamicKey)
}

func keyFingerprint(keyHex string) ([20]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return [20]byte{}, miderr(MINERID_ERR_FIELD, "key is not valid hex")
	}
	return crypto.Hash160(key), nil
}

// setStaticDocument parses and verifies a static document candidate.
// On success the aggregate holds the parsed document, its dataRefs and
// the raw operand bytes needed by the dynamic step.
func (m *MinerID) setStaticDocument(raw, sig []byte, blockHeight int32) error {
	doc, obj, err := parseStaticDocument(raw, blockHeight)
	if err != nil {
		return err
	}

	// Static self-signature over the exact extracted document bytes.
	minerKey, err := hex.DecodeString(doc.MinerIDKey)
	if err != nil {
		return miderr(MINERID_ERR_SIG_STATIC, "minerIdKey is not valid hex")
	}
	if !crypto.VerifyMessage(raw, minerKey, sig) {
		return miderr(MINERID_ERR_SIG_STATIC, "static document signature invalid")
	}

	// Previous-identity chain signature. Version 0.2 hex-encodes the
	// concatenated message before hashing; 0.1 signs it raw.
	chainMsg := []byte(doc.PrevMinerIDKey + doc.MinerIDKey + doc.Vctx.TxID)
	if doc.Version == VersionV02 {
		chainMsg = []byte(hex.EncodeToString(chainMsg))
	}
	prevKey, err := hex.DecodeString(doc.PrevMinerIDKey)
	if err != nil {
		return miderr(MINERID_ERR_SIG_PREV, "previousMinerIdKey is not valid hex")
	}
	prevSig, err := hex.DecodeString(doc.PrevMinerIDSignature)
	if err != nil {
		return miderr(MINERID_ERR_SIG_PREV, "previousMinerIdSignature is not valid hex")
	}
	if !crypto.VerifyMessage(chainMsg, prevKey, prevSig) {
		return miderr(MINERID_ERR_SIG_PREV, "previous miner id signature invalid")
	}

	refs, err := parseDataRefs(obj)
	if err != nil {
		return err
	}
	doc.DataRefs = refs

	m.Document = *doc
	m.staticDoc = append([]byte(nil), raw...)
	m.staticSig = append([]byte(nil), sig...)
	return nil
}

// setDynamicDocument parses and verifies a dynamic document against the
// previously accepted static state. The signature message is the raw
// byte concatenation staticDoc + staticSig + dynamicDoc.
func (m *MinerID) setDynamicDocument(raw, sig []byte, blockHeight int32) error {
	dynamicKey, obj, err := parseDynamicDocument(raw, blockHeight)
	if err != nil {
		return err
	}

	keyBytes, err := hex.DecodeString(dynamicKey)
	if err != nil {
		return miderr(MINERID_ERR_SIG_DYNAMIC, "dynamicMinerIdKey is not valid hex")
	}
	msg := make([]byte, 0, len(m.staticDoc)+len(m.staticSig)+len(raw))
	msg = append(msg, m.staticDoc...)
	msg = append(msg, m.staticSig...)
	msg = append(msg, raw...)
	if !crypto.VerifyMessage(msg, keyBytes, sig) {
		return miderr(MINERID_ERR_SIG_DYNAMIC, "dynamic miner id signature invalid")
	}

	// The static document's dataRefs win; a dynamic list only fills an
	// empty slot, but it still has to be structurally valid.
	if m.Document.DataRefs == nil {
		refs, err := parseDataRefs(obj)
		if err != nil {
			return err
		}
		m.Document.DataRefs = refs
	}

	m.DynamicKey = dynamicKey
	return nil
}

// Find scans the transaction's outputs in order and returns the first
// fully verified miner identity, or nil when no output carries one.
//
// Every failure mode (malformed script operands, malformed documents,
// height or version mismatches, signature failures) rejects only the
// candidate output: the scan continues and the caller never sees an
// error. A static success followed by a dynamic failure discards the
// whole candidate rather than falling back to the static identity.
func Find(tx *consensus.Tx, blockHeight int32) *MinerID {
	txid := consensus.TxID(tx)

	for i, out := range tx.Outputs {
		op := consensus.Outpoint{TxID: txid, Vout: uint32(i)}

		ops, err := extractOperands(out.ScriptPubKey)
		if err != nil {
			logReject(op, err)
			continue
		}
		if ops == nil {
			continue
		}

		m := new(MinerID)
		if err := m.setStaticDocument(ops.staticDoc, ops.staticSig, blockHeight); err != nil {
			logReject(op, err)
			continue
		}
		if !ops.hasDynamic {
			return m
		}
		if err := m.setDynamicDocument(ops.dynamicDoc, ops.dynamicSig, blockHeight); err != nil {
			logReject(op, err)
			continue
		}
		return m
	}
	return nil
}
