// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/storycommitd/counter"
	"github.com/bitmark-inc/storycommitd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
	minBandwidth       = 1000000 // 1Mbps
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Bandwidth          float64  `gluamapper:"bandwidth" json:"bandwidth"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Listener - a running network server
type Listener interface {
	Serve() error
	Close()
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	bandwidth       float64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - validate configuration and create a JSON RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if configuration.Bandwidth <= minBandwidth {
		log.Errorf("invalid %s bandwidth: %f bps < 1Mbps", logName, configuration.Bandwidth)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	listen := make([]string, len(configuration.Listen))
	copy(listen, configuration.Listen)

	ipType, err := parseListenAddress(listen, log)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:             log,
		count:           count,
		server:          server,
		maxConnections:  configuration.MaximumConnections,
		bandwidth:       configuration.Bandwidth,
		tlsConfig:       tlsConfig,
		ipType:          ipType,
		listenIPAndPort: listen,
	}, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.accept(l)
	}
	return nil
}

// Close - stop accepting, existing connections run to completion
func (r *rpcListener) Close() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			break
		}
		if r.count.Increment() > r.maxConnections {
			r.count.Decrement()
			_ = conn.Close()
			r.log.Warnf("connection limit reached, refused: %s", conn.RemoteAddr())
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(newThrottledConn(conn, r.bandwidth)))
			_ = conn.Close()
			r.count.Decrement()
		}()
	}
	_ = listen.Close()
}

// change "*:PORT" to "[::]:PORT" in place and select the network of
// each listen address
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			return nil, fault.ErrInvalidIpAddress
		}
		host := ""
		switch listen[0] {
		case '*':
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			host = "::"
			parsed[i] = "tcp"
		case '[':
			host = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		default:
			host = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.ErrInvalidIpAddress
			log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return nil, err
		}
	}
	return parsed, nil
}
