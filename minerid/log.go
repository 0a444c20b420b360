package minerid

import (
	"os"

	"github.com/rs/zerolog"

	"minerid.dev/node/consensus"
)

var logger = zerolog.New(os.Stderr).
	With().Timestamp().Str("module", "minerid").Logger().
	Level(zerolog.WarnLevel)

// SetLogger replaces the package logger. The node wires its configured
// logger here at startup.
func SetLogger(l zerolog.Logger) {
	logger = l
}

func logReject(op consensus.Outpoint, err error) {
	logger.Debug().
		Stringer("outpoint", op).
		Err(err).
		Msg("coinbase output rejected as miner id candidate")
}
