package kafka

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

// TLSConfig — шифрование соединения с брокером. Файлы в PEM.
type TLSConfig struct {
	Enabled            bool
	CAFile             string
	CertFile           string
	KeyFile            string
	InsecureSkipVerify bool
}

// SASLConfig — аутентификация: PLAIN, SCRAM-SHA-256 или SCRAM-SHA-512.
type SASLConfig struct {
	Enabled   bool
	Mechanism string
	Username  string
	Password  string
}

// build — *tls.Config для kafka.Dialer; nil, если TLS выключен.
func (t TLSConfig) build() (*tls.Config, error) {
	if !t.Enabled {
		return nil, nil
	}

	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: t.InsecureSkipVerify, //nolint:gosec // явно включается конфигурацией
	}

	if t.CAFile != "" {
		pem, err := os.ReadFile(t.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read kafka ca file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("%w: no certificates in %s", ErrInvalidConfig, t.CAFile)
		}
		cfg.RootCAs = pool
	}

	switch {
	case t.CertFile != "" && t.KeyFile != "":
		cert, err := tls.LoadX509KeyPair(t.CertFile, t.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load kafka client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	case t.CertFile != "" || t.KeyFile != "":
		return nil, fmt.Errorf("%w: tls cert and key must be set together", ErrInvalidConfig)
	}

	return cfg, nil
}

// mechanism — SASL-механизм kafka-go; nil, если SASL выключен.
func (s SASLConfig) mechanism() (sasl.Mechanism, error) {
	if !s.Enabled {
		return nil, nil
	}

	switch strings.ToUpper(strings.TrimSpace(s.Mechanism)) {
	case "", "PLAIN":
		return plain.Mechanism{Username: s.Username, Password: s.Password}, nil
	case "SCRAM-SHA-256":
		return newScram(scram.SHA256, s.Username, s.Password)
	case "SCRAM-SHA-512":
		return newScram(scram.SHA512, s.Username, s.Password)
	default:
		return nil, fmt.Errorf("%w: unsupported sasl mechanism %q", ErrInvalidConfig, s.Mechanism)
	}
}

func newScram(algo scram.Algorithm, user, pass string) (sasl.Mechanism, error) {
	m, err := scram.Mechanism(algo, user, pass)
	if err != nil {
		return nil, fmt.Errorf("create sasl mechanism: %w", err)
	}
	return m, nil
}
