package inch35

import (
	"fmt"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (i *Inch35) sendCMD(code uint8, vars ...int) error {
	if len(vars) > 4 {
		return errors.New("too many vars")
	}

	var vars4 [4]int
	copy(vars4[:], vars)

	return i.sendBytes(packCommand(code, vars4, nil))
}

func (i *Inch35) sendOpt(code uint8, fixed int, payload []byte) error {
	if len(payload) > fixed {
		return errors.New("too many bytes")
	}

	bs := append(make([]byte, 6), payload...)
	if len(bs) < fixed {
		bs = append(bs, make([]byte, fixed-len(bs))...)
	}

	return i.sendBytes(packCommand(code, [4]int{}, bs))
}

// packCommand writes the 6-byte header: four 10-bit arguments packed
// big-endian into 5 bytes followed by the command code. buf, when given,
// must have room for the header and keeps its tail as payload.
func packCommand(code uint8, vars [4]int, buf []byte) []byte {
	if len(buf) < 6 {
		buf = make([]byte, 6)
	}

	buf[0] = byte(vars[0] >> 2)
	buf[1] = byte(((vars[0] & 3) << 6) + (vars[1] >> 4))
	buf[2] = byte(((vars[1] & 0xF) << 4) + (vars[2] >> 6))
	buf[3] = byte(((vars[2] & 0x3F) << 2) + (vars[3] >> 8))
	buf[4] = byte(vars[3] & 0xFF)
	buf[5] = code

	return buf
}

func (i *Inch35) sendBytes(bs []byte) error {
	start := time.Now()
	sent, err := i.conn.Write(bs)
	if err != nil {
		return errors.Wrap(err, "serial write")
	}

	ext := ""
	if len(bs) <= 16 {
		ext = fmt.Sprintf("%x", bs)
	}

	i.logger.With(
		zap.String("sent", bytesize.New(float64(sent)).String()),
		zap.Duration("cost", time.Since(start)),
		zap.String("data", ext),
	).Debug("transfer")

	return nil
}
