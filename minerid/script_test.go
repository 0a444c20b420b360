package minerid

import (
	"bytes"
	"testing"

	"minerid.dev/node/consensus"
)

func TestIsMinerIDScript(t *testing.T) {
	marker := append([]byte(nil), scriptPrefix...)
	if !IsMinerIDScript(marker) {
		t.Fatalf("bare marker not recognized")
	}
	if IsMinerIDScript(nil) {
		t.Fatalf("nil script recognized")
	}
	if IsMinerIDScript([]byte{consensus.OP_RETURN}) {
		t.Fatalf("plain OP_RETURN recognized")
	}
	// Wrong protocol tag.
	if IsMinerIDScript([]byte{consensus.OP_FALSE, consensus.OP_RETURN, 0x04, 0xac, 0x1e, 0xed, 0x89}) {
		t.Fatalf("wrong tag recognized")
	}
	// Marker not at offset zero.
	shifted := append([]byte{0x51}, scriptPrefix...)
	if IsMinerIDScript(shifted) {
		t.Fatalf("shifted marker recognized")
	}
}

func TestExtractOperands_NoMarker(t *testing.T) {
	ops, err := extractOperands([]byte{0x76, 0xa9, 0x14})
	if ops != nil || err != nil {
		t.Fatalf("non-marker script: ops=%v err=%v", ops, err)
	}
}

func TestExtractOperands_StaticOnly(t *testing.T) {
	doc := []byte(`{"version":"0.2"}`)
	sig := []byte{0x30, 0x45, 0x01}
	script, err := Script(doc, sig)
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	ops, err := extractOperands(script)
	if err != nil {
		t.Fatalf("extractOperands: %v", err)
	}
	if !bytes.Equal(ops.staticDoc, doc) || !bytes.Equal(ops.staticSig, sig) {
		t.Fatalf("static operands mangled")
	}
	if ops.hasDynamic {
		t.Fatalf("static-only script reported dynamic pair")
	}
}

func TestExtractOperands_WithDynamicPair(t *testing.T) {
	doc := []byte(`{"version":"0.2"}`)
	sig := []byte{0x30, 0x01}
	dynDoc := []byte(`{"dynamicMinerIdKey":"aa"}`)
	dynSig := []byte{0x30, 0x02}
	script, err := ScriptWithDynamic(doc, sig, dynDoc, dynSig)
	if err != nil {
		t.Fatalf("ScriptWithDynamic: %v", err)
	}
	ops, err := extractOperands(script)
	if err != nil {
		t.Fatalf("extractOperands: %v", err)
	}
	if !ops.hasDynamic {
		t.Fatalf("dynamic pair not extracted")
	}
	if !bytes.Equal(ops.dynamicDoc, dynDoc) || !bytes.Equal(ops.dynamicSig, dynSig) {
		t.Fatalf("dynamic operands mangled")
	}
}

func TestExtractOperands_LargeDocumentUsesPushdata2(t *testing.T) {
	doc := bytes.Repeat([]byte{'x'}, 600)
	sig := []byte{0x30, 0x01}
	script, err := Script(doc, sig)
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if script[len(scriptPrefix)] != consensus.OP_PUSHDATA2 {
		t.Fatalf("600-byte document should use OP_PUSHDATA2, got %#x", script[len(scriptPrefix)])
	}
	ops, err := extractOperands(script)
	if err != nil {
		t.Fatalf("extractOperands: %v", err)
	}
	if !bytes.Equal(ops.staticDoc, doc) {
		t.Fatalf("large document mangled")
	}
}

func TestExtractOperands_Malformed(t *testing.T) {
	withSuffix := func(suffix ...byte) []byte {
		return append(append([]byte(nil), scriptPrefix...), suffix...)
	}
	cases := []struct {
		name   string
		script []byte
	}{
		{"bare marker", withSuffix()},
		{"truncated static doc push", withSuffix(0x05, 'a', 'b')},
		{"empty static doc", withSuffix(consensus.OP_FALSE, 0x01, 0x30)},
		{"missing static sig", withSuffix(0x02, 'a', 'b')},
		{"empty static sig", withSuffix(0x02, 'a', 'b', consensus.OP_FALSE)},
		{"truncated dynamic pair", withSuffix(0x01, 'a', 0x01, 'b', 0x05, 'c')},
		{"dynamic doc without sig", withSuffix(0x01, 'a', 0x01, 'b', 0x01, 'c')},
	}
	for _, tc := range cases {
		_, err := extractOperands(tc.script)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		mustMinerIDErrCode(t, err, MINERID_ERR_SCRIPT)
	}
}

func TestScript_RejectsEmptyOperands(t *testing.T) {
	if _, err := Script(nil, []byte{0x01}); err == nil {
		t.Fatalf("empty document accepted")
	}
	if _, err := Script([]byte{0x01}, nil); err == nil {
		t.Fatalf("empty signature accepted")
	}
	if _, err := ScriptWithDynamic([]byte{0x01}, []byte{0x02}, nil, []byte{0x03}); err == nil {
		t.Fatalf("empty dynamic document accepted")
	}
}
