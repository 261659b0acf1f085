// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS material for the client RPC listeners
package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/fault"
)

// Get - load a PEM certificate and key into a TLS server configuration
//
// the leaf must still be valid, its SHA3-256 fingerprint is returned so
// clients can pin it
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s: load key pair error: %s", name, err)
		return nil, [32]byte{}, err
	}

	leaf, err := x509.ParseCertificate(keyPair.Certificate[0])
	if nil != err {
		log.Errorf("%s: parse certificate error: %s", name, err)
		return nil, [32]byte{}, err
	}
	if time.Now().After(leaf.NotAfter) {
		log.Errorf("%s: certificate expired: %s", name, leaf.NotAfter.Format(time.RFC3339))
		return nil, [32]byte{}, fault.ErrCertificateExpired
	}
	keyPair.Leaf = leaf
	log.Infof("%s: certificate valid until: %s", name, leaf.NotAfter.Format(time.RFC3339))

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}
	return tlsConfiguration, Fingerprint(keyPair.Certificate[0]), nil
}

// Fingerprint - SHA3-256 of a DER certificate, as printed by:
//
//	openssl x509 -outform DER -in storycommitd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
