package proto

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

var ErrPortNotFound = errors.New("USB port not found")

type Options struct {
	DTR         bool
	RTS         bool
	BaudRate    int
	ReadTimeout time.Duration
}

func NewSerial(name string) *Serial {
	return &Serial{name: name, list: serial.GetPortsList}
}

// Serial is a port picked by a substring of its system name, so the same
// flag works for "ttyACM0" and "usbmodemUSB35INCHIPSV21".
type Serial struct {
	name string
	list func() ([]string, error)
	port serial.Port
}

func (s *Serial) Ports() ([]string, error) {
	return s.list()
}

// Match returns the first port whose name contains the configured name.
func (s *Serial) Match() (string, error) {
	ports, err := s.Ports()
	if err != nil {
		return "", errors.Wrap(err, "list ports")
	}

	for _, name := range ports {
		if strings.Contains(name, s.name) {
			return name, nil
		}
	}

	return "", errors.Wrapf(ErrPortNotFound, "no port matches %q", s.name)
}

func (s *Serial) Open(opts *Options) error {
	matched, err := s.Match()
	if err != nil {
		return err
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: opts.BaudRate})
	if err != nil {
		return errors.Wrapf(err, "open %s", matched)
	}

	if err := port.SetDTR(opts.DTR); err != nil {
		_ = port.Close()
		return err
	}

	if err := port.SetRTS(opts.RTS); err != nil {
		_ = port.Close()
		return err
	}

	if opts.ReadTimeout > 0 {
		if err := port.SetReadTimeout(opts.ReadTimeout); err != nil {
			_ = port.Close()
			return err
		}
	}

	s.port = port
	return nil
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}

func (s *Serial) Read(p []byte) (n int, err error) {
	return s.port.Read(p)
}

func (s *Serial) Write(p []byte) (n int, err error) {
	return s.port.Write(p)
}
