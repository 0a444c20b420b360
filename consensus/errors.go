package consensus

import "fmt"

type ErrorCode string

const (
	TX_ERR_PARSE  ErrorCode = "TX_ERR_PARSE"
	TX_ERR_HASH   ErrorCode = "TX_ERR_HASH"
	TX_ERR_SCRIPT ErrorCode = "TX_ERR_SCRIPT"
)

type TxError struct {
	Code ErrorCode
	Msg  string
}

func (e *TxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func txerr(code ErrorCode, msg string) error {
	return &TxError{Code: code, Msg: msg}
}
