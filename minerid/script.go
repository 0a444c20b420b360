package minerid

import (
	"bytes"

	"minerid.dev/node/consensus"
)

// A miner id output script starts with OP_FALSE OP_RETURN followed by
// the 4-byte protocol tag 0xAC1EED88, then one or two pairs of pushed
// operands: [document][signature].
var scriptPrefix = []byte{
	consensus.OP_FALSE, consensus.OP_RETURN,
	0x04, 0xac, 0x1e, 0xed, 0x88,
}

// IsMinerIDScript reports whether the script carries the protocol
// marker. It says nothing about operand validity.
func IsMinerIDScript(script []byte) bool {
	return bytes.HasPrefix(script, scriptPrefix)
}

type operands struct {
	staticDoc  []byte
	staticSig  []byte
	dynamicDoc []byte
	dynamicSig []byte
	hasDynamic bool
}

// extractOperands pulls the operand pushes out of a marker script.
// Returns (nil, nil) when the marker is absent. A script with no bytes
// after the static pair is a legitimate static-only candidate; any
// malformed or empty static operand is an extraction error and the
// output is skipped by the caller.
func extractOperands(script []byte) (*operands, error) {
	if !IsMinerIDScript(script) {
		return nil, nil
	}
	r := consensus.NewScriptReader(script[len(scriptPrefix):])

	_, doc, err := r.ReadOp()
	if err != nil {
		return nil, miderr(MINERID_ERR_SCRIPT, "cannot extract static document operand")
	}
	if len(doc) == 0 {
		return nil, miderr(MINERID_ERR_SCRIPT, "empty static document operand")
	}
	_, sig, err := r.ReadOp()
	if err != nil {
		return nil, miderr(MINERID_ERR_SCRIPT, "cannot extract static signature operand")
	}
	if len(sig) == 0 {
		return nil, miderr(MINERID_ERR_SCRIPT, "empty static signature operand")
	}

	ops := &operands{staticDoc: doc, staticSig: sig}
	if r.Remaining() == 0 {
		return ops, nil
	}

	_, dynDoc, err := r.ReadOp()
	if err != nil {
		return nil, miderr(MINERID_ERR_SCRIPT, "cannot extract dynamic document operand")
	}
	_, dynSig, err := r.ReadOp()
	if err != nil {
		return nil, miderr(MINERID_ERR_SCRIPT, "cannot extract dynamic signature operand")
	}
	ops.dynamicDoc = dynDoc
	ops.dynamicSig = dynSig
	ops.hasDynamic = true
	return ops, nil
}

// Script assembles a static-only miner id output script from a
// serialized document and its signature.
func Script(doc, sig []byte) ([]byte, error) {
	if len(doc) == 0 || len(sig) == 0 {
		return nil, miderr(MINERID_ERR_SCRIPT, "document and signature must be non-empty")
	}
	out := append([]byte(nil), scriptPrefix...)
	out = consensus.AppendPushData(out, doc)
	out = consensus.AppendPushData(out, sig)
	return out, nil
}

// ScriptWithDynamic assembles a miner id output script carrying both a
// static and a dynamic operand pair.
func ScriptWithDynamic(doc, sig, dynDoc, dynSig []byte) ([]byte, error) {
	out, err := Script(doc, sig)
	if err != nil {
		return nil, err
	}
	if len(dynDoc) == 0 || len(dynSig) == 0 {
		return nil, miderr(MINERID_ERR_SCRIPT, "dynamic document and signature must be non-empty")
	}
	out = consensus.AppendPushData(out, dynDoc)
	out = consensus.AppendPushData(out, dynSig)
	return out, nil
}
