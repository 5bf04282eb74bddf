//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package p2p

import (
	"errors"
	"net"
)

// Role defines a connection establishment role. Exactly one TCP
// connection ever exists between the two parties: the Listener role
// waits for the peer and the Dialer role connects to it. The roles
// are otherwise symmetric; all protocol asymmetry lives in the
// send/receive ordering above the transport.
type Role interface {
	// Setup prepares the endpoint: the Listener binds and listens on
	// its address, the Dialer validates the peer address.
	Setup() error

	// Start establishes the connection: the Listener accepts exactly
	// one peer, the Dialer connects once. There is no retry or
	// reconnection; a failed Start is permanent.
	Start() (*Conn, error)

	// Close releases the endpoint and any established connection.
	// Close is idempotent.
	Close() error
}

// ErrNotSetup is returned when Start is called before Setup.
var ErrNotSetup = errors.New("p2p: endpoint not set up")

// Listener implements the passive connection role: bind, listen, and
// accept exactly one peer.
type Listener struct {
	addr     string
	listener net.Listener
	conn     *Conn
}

// NewListener creates a listener role for the argument TCP address.
func NewListener(addr string) *Listener {
	return &Listener{
		addr: addr,
	}
}

// Setup binds and listens on the listener's address. Setup is
// idempotent.
func (l *Listener) Setup() error {
	if l.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", l.addr)
	if err != nil {
		return err
	}
	l.listener = listener
	return nil
}

// Addr returns the listener's bound address. It is valid between
// Setup and Start and resolves the real port when the listener was
// created with port 0.
func (l *Listener) Addr() net.Addr {
	if l.listener == nil {
		return nil
	}
	return l.listener.Addr()
}

// Start accepts one peer connection and stops listening for further
// connections.
func (l *Listener) Start() (*Conn, error) {
	if l.listener == nil {
		return nil, ErrNotSetup
	}
	nc, err := l.listener.Accept()
	if err != nil {
		return nil, err
	}
	l.listener.Close()
	l.listener = nil

	l.conn = NewConn(nc)
	return l.conn, nil
}

// Close closes the listening socket and the peer connection.
func (l *Listener) Close() error {
	var err error
	if l.listener != nil {
		err = l.listener.Close()
		l.listener = nil
	}
	if l.conn != nil {
		if cerr := l.conn.Close(); err == nil {
			err = cerr
		}
		l.conn = nil
	}
	return err
}

// Dialer implements the active connection role: connect once to the
// peer's address.
type Dialer struct {
	addr  string
	conn  *Conn
	ready bool
}

// NewDialer creates a dialer role for the argument TCP address.
func NewDialer(addr string) *Dialer {
	return &Dialer{
		addr: addr,
	}
}

// Setup validates the peer address.
func (d *Dialer) Setup() error {
	_, err := net.ResolveTCPAddr("tcp", d.addr)
	if err != nil {
		return err
	}
	d.ready = true
	return nil
}

// Start connects to the peer.
func (d *Dialer) Start() (*Conn, error) {
	if !d.ready {
		return nil, ErrNotSetup
	}
	nc, err := net.Dial("tcp", d.addr)
	if err != nil {
		return nil, err
	}
	d.conn = NewConn(nc)
	return d.conn, nil
}

// Close closes the peer connection.
func (d *Dialer) Close() error {
	if d.conn != nil {
		err := d.conn.Close()
		d.conn = nil
		return err
	}
	return nil
}
