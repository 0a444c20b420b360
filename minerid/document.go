package minerid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Supported coinbase document versions. The two differ only in how the
// previous-identity chain signature message is encoded before hashing.
const (
	VersionV01 = "0.1"
	VersionV02 = "0.2"
)

var supportedVersions = map[string]struct{}{
	VersionV01: {},
	VersionV02: {},
}

// Vctx references the validity transaction anchoring a miner identity
// on-chain. TxID is retained exactly as it appears in the document
// because the chain signature is computed over the document string.
type Vctx struct {
	TxID string `json:"txId"`
	Vout uint32 `json:"vout"`
}

// DataRef is one tagged reference to a transaction carrying auxiliary
// miner-published data.
type DataRef struct {
	BRFCIDs []string `json:"brfcIds"`
	TxID    string   `json:"txid"`
	Vout    uint32   `json:"vout"`
}

// CoinbaseDocument is the validated identity assertion for one block
// height. Key and signature fields hold the document's hex strings.
type CoinbaseDocument struct {
	Version              string    `json:"version"`
	Height               int32     `json:"height"`
	PrevMinerIDKey       string    `json:"previousMinerIdKey"`
	PrevMinerIDSignature string    `json:"previousMinerIdSignature"`
	MinerIDKey           string    `json:"minerIdKey"`
	Vctx                 Vctx      `json:"vctx"`
	DataRefs             []DataRef `json:"dataRefs,omitempty"`
}

// jsonObject gives per-field type discrimination over a decoded
// document. A JSON null value is treated the same as an absent key.
type jsonObject map[string]json.RawMessage

var jsonNull = []byte("null")

func decodeDocument(raw []byte) (jsonObject, error) {
	var obj jsonObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, miderr(MINERID_ERR_DOC_PARSE, "document is not a JSON object")
	}
	return obj, nil
}

func (o jsonObject) value(key string) (json.RawMessage, bool) {
	raw, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, false
	}
	return raw, true
}

func (o jsonObject) stringField(key string) (string, bool, error) {
	raw, ok := o.value(key)
	if !ok {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true, miderr(MINERID_ERR_FIELD, fmt.Sprintf("%s must be a string", key))
	}
	return s, true, nil
}

func (o jsonObject) voutField(key string) (uint32, bool, error) {
	raw, ok := o.value(key)
	if !ok {
		return 0, false, nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, true, miderr(MINERID_ERR_FIELD, fmt.Sprintf("%s must be a number", key))
	}
	n, err := num.Int64()
	if err != nil || n < 0 || n > math.MaxUint32 {
		return 0, true, miderr(MINERID_ERR_FIELD, fmt.Sprintf("%s out of range", key))
	}
	return uint32(n), true, nil
}

func (o jsonObject) objectField(key string) (jsonObject, bool, error) {
	raw, ok := o.value(key)
	if !ok {
		return nil, false, nil
	}
	var obj jsonObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, true, miderr(MINERID_ERR_FIELD, fmt.Sprintf("%s must be an object", key))
	}
	return obj, true, nil
}

func (o jsonObject) arrayField(key string) ([]json.RawMessage, bool, error) {
	raw, ok := o.value(key)
	if !ok {
		return nil, false, nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, true, miderr(MINERID_ERR_FIELD, fmt.Sprintf("%s must be an array", key))
	}
	return arr, true, nil
}

func requiredString(obj jsonObject, key string) (string, error) {
	s, ok, err := obj.stringField(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", miderr(MINERID_ERR_FIELD, fmt.Sprintf("%s is required", key))
	}
	return s, nil
}

// checkHeight enforces strict equality between the document's
// string-encoded height and the height under validation.
func checkHeight(raw string, blockHeight int32) error {
	h, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return miderr(MINERID_ERR_FIELD, "height is not a valid integer")
	}
	if int32(h) != blockHeight {
		return miderr(MINERID_ERR_HEIGHT,
			fmt.Sprintf("document height %d, validating height %d", h, blockHeight))
	}
	return nil
}

func checkVctx(obj jsonObject, required bool) (Vctx, error) {
	vctxObj, ok, err := obj.objectField("vctx")
	if err != nil {
		return Vctx{}, err
	}
	if !ok {
		if required {
			return Vctx{}, miderr(MINERID_ERR_FIELD, "vctx is required")
		}
		return Vctx{}, nil
	}
	txid, err := requiredString(vctxObj, "txId")
	if err != nil {
		return Vctx{}, err
	}
	vout, ok, err := vctxObj.voutField("vout")
	if err != nil {
		return Vctx{}, err
	}
	if !ok {
		return Vctx{}, miderr(MINERID_ERR_FIELD, "vctx.vout is required")
	}
	return Vctx{TxID: txid, Vout: vout}, nil
}

// parseStaticDocument validates every required field of a static
// coinbase document. No partial state survives a failure. The decoded
// object is returned alongside so dataRefs can be parsed after the
// signature checks pass.
func parseStaticDocument(raw []byte, blockHeight int32) (*CoinbaseDocument, jsonObject, error) {
	obj, err := decodeDocument(raw)
	if err != nil {
		return nil, nil, err
	}

	version, err := requiredString(obj, "version")
	if err != nil {
		return nil, nil, err
	}
	if _, ok := supportedVersions[version]; !ok {
		return nil, nil, miderr(MINERID_ERR_VERSION, fmt.Sprintf("unsupported version %q", version))
	}

	heightStr, err := requiredString(obj, "height")
	if err != nil {
		return nil, nil, err
	}
	if err := checkHeight(heightStr, blockHeight); err != nil {
		return nil, nil, err
	}

	prevKey, err := requiredString(obj, "previousMinerIdKey")
	if err != nil {
		return nil, nil, err
	}
	prevSig, err := requiredString(obj, "previousMinerIdSignature")
	if err != nil {
		return nil, nil, err
	}
	minerKey, err := requiredString(obj, "minerIdKey")
	if err != nil {
		return nil, nil, err
	}
	vctx, err := checkVctx(obj, true)
	if err != nil {
		return nil, nil, err
	}

	return &CoinbaseDocument{
		Version:              version,
		Height:               blockHeight,
		PrevMinerIDKey:       prevKey,
		PrevMinerIDSignature: prevSig,
		MinerIDKey:           minerKey,
		Vctx:                 vctx,
	}, obj, nil
}

// parseDynamicDocument applies the dynamic-document rules: every field
// is optional except dynamicMinerIdKey, but any field that is present
// must satisfy the static type constraint, and a present height must
// match the validation height.
func parseDynamicDocument(raw []byte, blockHeight int32) (string, jsonObject, error) {
	obj, err := decodeDocument(raw)
	if err != nil {
		return "", nil, err
	}

	version, ok, err := obj.stringField("version")
	if err != nil {
		return "", nil, err
	}
	if ok {
		if _, supported := supportedVersions[version]; !supported {
			return "", nil, miderr(MINERID_ERR_VERSION, fmt.Sprintf("unsupported version %q", version))
		}
	}

	heightStr, ok, err := obj.stringField("height")
	if err != nil {
		return "", nil, err
	}
	if ok {
		if err := checkHeight(heightStr, blockHeight); err != nil {
			return "", nil, err
		}
	}

	for _, key := range []string{"previousMinerIdKey", "previousMinerIdSignature", "minerIdKey"} {
		if _, _, err := obj.stringField(key); err != nil {
			return "", nil, err
		}
	}
	if _, err := checkVctx(obj, false); err != nil {
		return "", nil, err
	}

	dynamicKey, err := requiredString(obj, "dynamicMinerIdKey")
	if err != nil {
		return "", nil, err
	}
	return dynamicKey, obj, nil
}

// parseDataRefs decodes the optional dataRefs list. Absence is valid
// and yields nil; a present list is all-or-nothing, one structurally
// invalid entry rejects the whole document.
func parseDataRefs(obj jsonObject) ([]DataRef, error) {
	dataRefsObj, ok, err := obj.objectField("dataRefs")
	if err != nil {
		return nil, miderr(MINERID_ERR_DATAREFS, "dataRefs must be an object")
	}
	if !ok {
		return nil, nil
	}

	refsArr, ok, err := dataRefsObj.arrayField("refs")
	if err != nil || !ok {
		return nil, miderr(MINERID_ERR_DATAREFS, "dataRefs.refs must be an array")
	}

	refs := make([]DataRef, 0, len(refsArr))
	for i, rawRef := range refsArr {
		var refObj jsonObject
		if err := json.Unmarshal(rawRef, &refObj); err != nil {
			return nil, miderr(MINERID_ERR_DATAREFS, fmt.Sprintf("refs[%d] must be an object", i))
		}

		idsArr, ok, err := refObj.arrayField("brfcIds")
		if err != nil || !ok {
			return nil, miderr(MINERID_ERR_DATAREFS, fmt.Sprintf("refs[%d].brfcIds must be an array", i))
		}
		ids := make([]string, 0, len(idsArr))
		for _, rawID := range idsArr {
			var id string
			if err := json.Unmarshal(rawID, &id); err != nil || id == "" {
				return nil, miderr(MINERID_ERR_DATAREFS,
					fmt.Sprintf("refs[%d].brfcIds entries must be non-empty strings", i))
			}
			ids = append(ids, id)
		}

		txid, ok, err := refObj.stringField("txid")
		if err != nil || !ok {
			return nil, miderr(MINERID_ERR_DATAREFS, fmt.Sprintf("refs[%d].txid must be a string", i))
		}
		vout, ok, err := refObj.voutField("vout")
		if err != nil || !ok {
			return nil, miderr(MINERID_ERR_DATAREFS, fmt.Sprintf("refs[%d].vout must be a number", i))
		}

		refs = append(refs, DataRef{BRFCIDs: ids, TxID: txid, Vout: vout})
	}
	if len(refs) == 0 {
		return nil, nil
	}
	return refs, nil
}
