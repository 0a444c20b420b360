// minerid-cli reads a single JSON request from stdin and writes a JSON
// response to stdout. It is the operator-facing surface over the miner
// id verification core.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"minerid.dev/node/chaincfg"
	"minerid.dev/node/consensus"
	"minerid.dev/node/minerid"
	"minerid.dev/node/node"
)

type Request struct {
	Op     string `json:"op"`
	TxHex  string `json:"tx_hex,omitempty"`
	Height int32  `json:"height,omitempty"`
}

type Response struct {
	Ok  bool   `json:"ok"`
	Err string `json:"err,omitempty"`

	TxidHex string `json:"txid,omitempty"`
	Outputs int    `json:"outputs,omitempty"`

	Found         bool                      `json:"found,omitempty"`
	Document      *minerid.CoinbaseDocument `json:"document,omitempty"`
	KeyID         string                    `json:"key_id,omitempty"`
	DynamicKey    string                    `json:"dynamic_key,omitempty"`
	DynamicKeyID  string                    `json:"dynamic_key_id,omitempty"`

	Network     string `json:"network,omitempty"`
	NetMagicHex string `json:"net_magic,omitempty"`
	DefaultPort uint16 `json:"default_port,omitempty"`
	GenesisHash string `json:"genesis_hash,omitempty"`
}

func writeResp(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}

func fail(w io.Writer, format string, args ...any) {
	writeResp(w, Response{Ok: false, Err: fmt.Sprintf(format, args...)})
}

func main() {
	cfg := node.DefaultConfig()
	flag.StringVar(&cfg.Network, "network", cfg.Network, "chain network name")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level")
	flag.IntVar(&cfg.MaxMinerIDScriptBytes, "max-script-bytes", cfg.MaxMinerIDScriptBytes,
		"policy ceiling for a single coinbase output script")
	flag.Parse()

	if err := node.ValidateConfig(cfg); err != nil {
		fail(os.Stdout, "bad config: %v", err)
		os.Exit(1)
	}
	minerid.SetLogger(zerolog.New(os.Stderr).
		With().Timestamp().Str("module", "minerid").Logger().
		Level(node.LoggerLevel(cfg)))

	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		fail(os.Stdout, "bad request: %v", err)
		return
	}

	switch req.Op {
	case "find_miner_id":
		tx, err := decodeTx(req.TxHex)
		if err != nil {
			fail(os.Stdout, "%v", err)
			return
		}
		id, err := node.ScanCoinbase(tx, req.Height, cfg)
		if err != nil {
			fail(os.Stdout, "%v", err)
			return
		}
		resp := Response{Ok: true, TxidHex: consensus.TxID(tx).String()}
		if id != nil {
			resp.Found = true
			resp.Document = &id.Document
			if keyID, err := id.KeyID(); err == nil {
				resp.KeyID = hex.EncodeToString(keyID[:])
			}
			if id.HasDynamic() {
				resp.DynamicKey = id.DynamicKey
				if keyID, err := id.DynamicKeyID(); err == nil {
					resp.DynamicKeyID = hex.EncodeToString(keyID[:])
				}
			}
		}
		writeResp(os.Stdout, resp)

	case "parse_tx":
		tx, err := decodeTx(req.TxHex)
		if err != nil {
			fail(os.Stdout, "%v", err)
			return
		}
		writeResp(os.Stdout, Response{
			Ok:      true,
			TxidHex: consensus.TxID(tx).String(),
			Outputs: len(tx.Outputs),
		})

	case "net_info":
		params, err := chaincfg.Lookup(cfg.Network)
		if err != nil {
			fail(os.Stdout, "%v", err)
			return
		}
		resp := Response{
			Ok:          true,
			Network:     params.Name,
			NetMagicHex: hex.EncodeToString(params.NetMagic[:]),
			DefaultPort: params.DefaultPort,
		}
		if !params.GenesisHash.IsZero() {
			resp.GenesisHash = params.GenesisHash.String()
		}
		writeResp(os.Stdout, resp)

	default:
		fail(os.Stdout, "unknown op %q", req.Op)
	}
}

func decodeTx(txHex string) (*consensus.Tx, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("bad tx hex")
	}
	tx, err := consensus.ParseTxBytes(raw)
	if err != nil {
		if te, ok := err.(*consensus.TxError); ok {
			return nil, fmt.Errorf("%s", te.Code)
		}
		return nil, err
	}
	return tx, nil
}
