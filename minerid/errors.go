package minerid

import "fmt"

// ErrorCode classifies why a candidate output was rejected. Rejections
// are diagnostic only: the scan always moves on to the next output.
type ErrorCode string

const (
	MINERID_ERR_SCRIPT      ErrorCode = "MINERID_ERR_SCRIPT"
	MINERID_ERR_DOC_PARSE   ErrorCode = "MINERID_ERR_DOC_PARSE"
	MINERID_ERR_FIELD       ErrorCode = "MINERID_ERR_FIELD"
	MINERID_ERR_VERSION     ErrorCode = "MINERID_ERR_VERSION"
	MINERID_ERR_HEIGHT      ErrorCode = "MINERID_ERR_HEIGHT"
	MINERID_ERR_DATAREFS    ErrorCode = "MINERID_ERR_DATAREFS"
	MINERID_ERR_SIG_STATIC  ErrorCode = "MINERID_ERR_SIG_STATIC"
	MINERID_ERR_SIG_PREV    ErrorCode = "MINERID_ERR_SIG_PREV"
	MINERID_ERR_SIG_DYNAMIC ErrorCode = "MINERID_ERR_SIG_DYNAMIC"
)

type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func miderr(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}
