package server

import (
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"time"

	http3 "github.com/quic-go/quic-go/http3"
)

// HTTP3Server wraps the http3.Server lifecycle.
type HTTP3Server struct {
	srv   *http3.Server
	pc    net.PacketConn
	addr  string
	close func() error
}

// NewHTTP3Server creates a server bound to addr with the given TLS config
// and handler.
func NewHTTP3Server(addr string, tlsCfg *tls.Config, h http.Handler) *HTTP3Server {
	s := &http3.Server{Addr: addr, TLSConfig: http3.ConfigureTLSConfig(tlsCfg), Handler: h}
	return &HTTP3Server{srv: s, addr: addr}
}

// Start listens on UDP and serves in the background. An addr ending in
// ":0" picks a free port; the bound address is returned.
func (s *HTTP3Server) Start() (string, error) {
	if s.pc != nil {
		return "", errors.New("server already started")
	}

	pc, err := net.ListenPacket("udp", s.addr)
	if err != nil {
		return "", err
	}
	s.pc = pc

	done := make(chan error, 1)
	go func() {
		done <- s.srv.Serve(pc)
	}()
	s.close = func() error {
		err := s.srv.Close()
		_ = pc.Close()
		select {
		case <-done:
		case <-time.After(time.Second):
		}
		return err
	}
	return pc.LocalAddr().String(), nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *HTTP3Server) Addr() string {
	if s.pc != nil {
		return s.pc.LocalAddr().String()
	}
	return s.addr
}

// Stop stops the server.
func (s *HTTP3Server) Stop() error {
	if s.close != nil {
		return s.close()
	}
	return nil
}

// NewHTTP3Client returns an http.Client that speaks HTTP/3.
func NewHTTP3Client(tlsCfg *tls.Config, timeout time.Duration) *http.Client {
	tr := &http3.Transport{TLSClientConfig: tlsCfg}
	return &http.Client{Transport: tr, Timeout: timeout}
}

// ShutdownClient closes the HTTP/3 transport of c, if it has one.
func ShutdownClient(c *http.Client) {
	if tr, ok := c.Transport.(*http3.Transport); ok {
		_ = tr.Close()
	}
}
