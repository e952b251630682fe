package main

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/zamotany/lunatic/internal/server"
)

func cmdServe(ctx context.Context, args []string, e env) int {
	fs := newFlagSet("serve", e)
	var common commonFlags
	common.register(fs)
	addr := fs.String("addr", "", "UDP listen address (default from config)")
	certFile := fs.String("cert", "", "TLS certificate file")
	keyFile := fs.String("key", "", "TLS key file")
	if err := fs.Parse(args); err != nil {
		return flagExit(err)
	}

	s, err := common.resolve(fs, e)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 2
	}

	listen := s.cfg.Serve.Addr
	if *addr != "" {
		listen = *addr
	}
	cert, key := s.cfg.Serve.CertFile, s.cfg.Serve.KeyFile
	if *certFile != "" || *keyFile != "" {
		cert, key = *certFile, *keyFile
	}

	var tlsCfg *tls.Config
	if cert != "" {
		tlsCfg, err = server.LoadTLSConfig(cert, key)
	} else {
		s.log.Warn("no certificate configured, using a self-signed development certificate")
		tlsCfg, err = server.SelfSignedTLS(nil, 0)
	}
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: tls: %v\n", err)
		return 1
	}

	h := server.NewHandler(server.Options{Parser: s.opts, Logger: s.log})
	srv := server.NewHTTP3Server(listen, tlsCfg, h)
	bound, err := srv.Start()
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: listen %s: %v\n", listen, err)
		return 1
	}
	fmt.Fprintf(e.stdout, "serving HTTP/3 on https://%s\n", bound)

	<-ctx.Done()
	s.log.Info("shutting down")
	if err := srv.Stop(); err != nil {
		s.log.Warn("stop: %v", err)
	}
	return 0
}
