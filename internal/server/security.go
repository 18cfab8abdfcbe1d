package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/formcraft/session/internal/model"
)

// TLSListener terminates TLS using a certificate and key loaded from disk.
type TLSListener struct {
	certFileName       string
	privateKeyFileName string
}

var _ model.SecurityLayer = (*TLSListener)(nil)

// NewTLSListener creates a TLSListener serving the given certificate and
// private key files.
func NewTLSListener(certFileName, privateKeyFileName string) *TLSListener {
	return &TLSListener{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Listen opens a TLS listener on addr. The key pair is loaded at listen
// time, so certificate problems surface at startup rather than on the
// first connection.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	return tls.Listen(protocol, addr, tlsConfig)
}

// PlainListener serves unencrypted connections. Meant for development and
// for deployments where TLS terminates upstream.
type PlainListener struct{}

var _ model.SecurityLayer = (*PlainListener)(nil)

// NewPlainListener creates a PlainListener.
func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

// Listen opens a plain listener on addr.
func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
