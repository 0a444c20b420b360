package consensus

import "encoding/binary"

// Script opcodes used by this module. Only the push-data family is
// interpreted; everything else passes through ReadOp as a bare opcode.
const (
	OP_FALSE     byte = 0x00
	OP_PUSHDATA1 byte = 0x4c
	OP_PUSHDATA2 byte = 0x4d
	OP_PUSHDATA4 byte = 0x4e
	OP_RETURN    byte = 0x6a
)

// ScriptReader iterates the operations of an output script. It decodes
// push-data operands but does not interpret opcodes.
type ScriptReader struct {
	script []byte
	pos    int
}

func NewScriptReader(script []byte) *ScriptReader {
	return &ScriptReader{script: script}
}

func (r *ScriptReader) Remaining() int {
	if r.pos >= len(r.script) {
		return 0
	}
	return len(r.script) - r.pos
}

func (r *ScriptReader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, txerr(TX_ERR_SCRIPT, "truncated push")
	}
	start := r.pos
	r.pos += n
	return r.script[start:r.pos], nil
}

// ReadOp returns the next opcode and, for push operations, its operand
// bytes. Non-push opcodes return nil data. Truncated pushes are errors.
func (r *ScriptReader) ReadOp() (byte, []byte, error) {
	op, err := r.take(1)
	if err != nil {
		return 0, nil, txerr(TX_ERR_SCRIPT, "end of script")
	}
	opcode := op[0]

	var dataLen int
	switch {
	case opcode > 0 && opcode < OP_PUSHDATA1:
		dataLen = int(opcode)
	case opcode == OP_PUSHDATA1:
		b, err := r.take(1)
		if err != nil {
			return 0, nil, err
		}
		dataLen = int(b[0])
	case opcode == OP_PUSHDATA2:
		b, err := r.take(2)
		if err != nil {
			return 0, nil, err
		}
		dataLen = int(binary.LittleEndian.Uint16(b))
	case opcode == OP_PUSHDATA4:
		b, err := r.take(4)
		if err != nil {
			return 0, nil, err
		}
		n := binary.LittleEndian.Uint32(b)
		if uint64(n) > uint64(r.Remaining()) {
			return 0, nil, txerr(TX_ERR_SCRIPT, "truncated push")
		}
		dataLen = int(n)
	default:
		// OP_FALSE and every non-push opcode carry no operand.
		return opcode, nil, nil
	}

	data, err := r.take(dataLen)
	if err != nil {
		return 0, nil, err
	}
	return opcode, data, nil
}

// AppendPushData appends the minimal push encoding of data to dst.
func AppendPushData(dst []byte, data []byte) []byte {
	n := len(data)
	switch {
	case n == 0:
		return append(dst, OP_FALSE)
	case n < int(OP_PUSHDATA1):
		dst = append(dst, byte(n))
	case n <= 0xff:
		dst = append(dst, OP_PUSHDATA1, byte(n))
	case n <= 0xffff:
		var b2 [2]byte
		binary.LittleEndian.PutUint16(b2[:], uint16(n))
		dst = append(dst, OP_PUSHDATA2, b2[0], b2[1])
	default:
		var b4 [4]byte
		// #nosec G115 -- script sizes are bounded well below 4 GiB.
		binary.LittleEndian.PutUint32(b4[:], uint32(n))
		dst = append(dst, OP_PUSHDATA4)
		dst = append(dst, b4[:]...)
	}
	return append(dst, data...)
}
