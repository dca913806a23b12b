package device

import (
	"time"

	"go.bug.st/serial"
)

// Config selects and tunes the serial node backing a Device.
type Config struct {
	Path        string
	Baud        int
	ReadTimeout time.Duration
}

// DefaultConfig targets the first RFCOMM binding at the usual rate.
func DefaultConfig() Config {
	return Config{
		Path:        "/dev/rfcomm0",
		Baud:        115200,
		ReadTimeout: 3 * time.Second,
	}
}

// Serial adapts a serial port to the Device contract. RFCOMM ignores the
// baud rate but USB-serial bridges do not, so it stays configurable.
type Serial struct {
	port serial.Port
	path string
}

// OpenSerial opens the configured serial node.
func OpenSerial(cfg Config) (*Serial, error) {
	mode := &serial.Mode{BaudRate: cfg.Baud}
	port, err := serial.Open(cfg.Path, mode)
	if err != nil {
		return nil, &IOError{Op: "open " + cfg.Path, Err: err}
	}
	if cfg.ReadTimeout > 0 {
		if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
			port.Close()
			return nil, &IOError{Op: "configure " + cfg.Path, Err: err}
		}
	}
	return &Serial{port: port, path: cfg.Path}, nil
}

// Path returns the device node this handle was opened on.
func (s *Serial) Path() string {
	return s.path
}

func (s *Serial) Read(p []byte) (int, error) {
	n, err := s.port.Read(p)
	if err != nil {
		return n, &IOError{Op: "read", Err: err}
	}
	if n == 0 {
		// Zero bytes with no error is either the read timeout or the
		// far end hanging up; both end the transaction.
		return 0, &IOError{Op: "read", Err: ErrClosed}
	}
	return n, nil
}

func (s *Serial) Write(p []byte) (int, error) {
	n, err := s.port.Write(p)
	if err != nil {
		return n, &IOError{Op: "write", Err: err}
	}
	return n, nil
}

func (s *Serial) Close() error {
	if err := s.port.Close(); err != nil {
		return &IOError{Op: "close", Err: err}
	}
	return nil
}
