//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package sss implements two-party secret sharing: additive shares
// modulo 2^bits, boolean XOR shares, and Beaver triple based secure
// multiplication, AND, and OR. The two parties run as separate
// processes connected by one point-to-point channel; all operations
// are synchronous and follow a fixed send/receive ordering so that
// the blocking exchanges can not deadlock.
package sss

import (
	"fmt"

	"github.com/markkurossi/beaver/p2p"
	"github.com/markkurossi/text/superscript"
)

// Party identifiers. Party 0 listens for the connection and always
// sends before receiving; party 1 dials and always receives before
// sending.
const (
	Party0 = 0
	Party1 = 1
)

// Party implements one endpoint of the two-party protocol. The party
// identifier selects the connection role and the exchange ordering.
// A Party is not safe for concurrent use; the protocol is strictly
// sequential.
type Party struct {
	Verbose bool
	id      int
	role    p2p.Role
	conn    *p2p.Conn
}

// NewParty creates a party with the argument identifier. Party 0
// listens on addr, party 1 connects to addr. The connection is not
// established until Start.
func NewParty(id int, addr string) (*Party, error) {
	var role p2p.Role
	switch id {
	case Party0:
		role = p2p.NewListener(addr)
	case Party1:
		role = p2p.NewDialer(addr)
	default:
		return nil, fmt.Errorf("sss: invalid party ID %v: expected 0 or 1", id)
	}
	return &Party{
		id:   id,
		role: role,
	}, nil
}

// NewPartyConn creates a party around an established connection. It
// is used with in-memory pipes and custom transports.
func NewPartyConn(id int, conn *p2p.Conn) *Party {
	return &Party{
		id:   id,
		conn: conn,
	}
}

// ID returns the party identifier.
func (p *Party) ID() int {
	return p.id
}

// IDString returns the party identifier as a superscript string.
func (p *Party) IDString() string {
	return superscript.Itoa(p.id)
}

// Debugf prints a debugging message if verbose debugging is enabled
// for this party.
func (p *Party) Debugf(format string, a ...interface{}) {
	if !p.Verbose {
		return
	}
	fmt.Printf("P%s: ", p.IDString())
	fmt.Printf(format, a...)
}

// Start establishes the connection between the parties and clears the
// transfer statistics. Start is idempotent; calling it on a started
// party is a no-op.
func (p *Party) Start() error {
	if p.conn != nil {
		p.conn.Stats.Clear()
		return nil
	}
	if err := p.role.Setup(); err != nil {
		return err
	}
	conn, err := p.role.Start()
	if err != nil {
		return err
	}
	p.conn = conn
	p.Debugf("connected\n")
	return nil
}

// Close closes the connection. Close is idempotent.
func (p *Party) Close() error {
	if p.role != nil {
		err := p.role.Close()
		p.conn = nil
		return err
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// TotalBytesSent returns the number of bytes this party has sent
// since Start or the last ClearTotalBytesSent. Received bytes are not
// accounted; the symmetric exchanges make both directions equal.
func (p *Party) TotalBytesSent() uint64 {
	if p.conn == nil {
		return 0
	}
	return p.conn.Stats.Sent.Load()
}

// ClearTotalBytesSent resets the transfer statistics.
func (p *Party) ClearTotalBytesSent() {
	if p.conn != nil {
		p.conn.Stats.Clear()
	}
}

// Stats returns the transfer statistics of the connection.
func (p *Party) Stats() p2p.IOStats {
	if p.conn == nil {
		return p2p.NewIOStats()
	}
	return p.conn.Stats
}

// SendRecv exchanges one value with the peer. Party 0 sends its value
// from slot x0 and receives the peer's value into slot x1; party 1
// receives into slot x0 and sends from slot x1. Both parties must
// call SendRecv simultaneously with their own share in the slot
// matching their identifier; the other slot is overwritten.
//
// The ordering is the deadlock-freedom invariant of the whole
// protocol: party 0 always sends first, party 1 always receives
// first. Every exchange shape below follows the same order.
func (p *Party) SendRecv(x0, x1 *uint32) error {
	if p.id == Party0 {
		if err := p.conn.SendUint32(*x0); err != nil {
			return err
		}
		if err := p.conn.Flush(); err != nil {
			return err
		}
		val, err := p.conn.ReceiveUint32()
		if err != nil {
			return err
		}
		*x1 = val
	} else {
		val, err := p.conn.ReceiveUint32()
		if err != nil {
			return err
		}
		*x0 = val
		if err := p.conn.SendUint32(*x1); err != nil {
			return err
		}
		if err := p.conn.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// SendRecvPair exchanges a 2-tuple with the peer, with the SendRecv
// ordering and slot contract.
func (p *Party) SendRecvPair(x0, x1 *[2]uint32) error {
	if p.id == Party0 {
		if err := p.sendVec(x0[:]); err != nil {
			return err
		}
		return p.conn.ReceiveUint32s(x1[:])
	}
	if err := p.conn.ReceiveUint32s(x0[:]); err != nil {
		return err
	}
	return p.sendVec(x1[:])
}

// SendRecvQuad exchanges a 4-tuple with the peer, with the SendRecv
// ordering and slot contract.
func (p *Party) SendRecvQuad(x0, x1 *[4]uint32) error {
	if p.id == Party0 {
		if err := p.sendVec(x0[:]); err != nil {
			return err
		}
		return p.conn.ReceiveUint32s(x1[:])
	}
	if err := p.conn.ReceiveUint32s(x0[:]); err != nil {
		return err
	}
	return p.sendVec(x1[:])
}

// SendRecvVec exchanges a vector with the peer, with the SendRecv
// ordering and slot contract. Both slices must have the same length
// on both parties; the transport carries no length information.
func (p *Party) SendRecvVec(x0, x1 []uint32) error {
	if p.id == Party0 {
		if err := p.sendVec(x0); err != nil {
			return err
		}
		return p.conn.ReceiveUint32s(x1)
	}
	if err := p.conn.ReceiveUint32s(x0); err != nil {
		return err
	}
	return p.sendVec(x1)
}

func (p *Party) sendVec(vals []uint32) error {
	if err := p.conn.SendUint32s(vals); err != nil {
		return err
	}
	return p.conn.Flush()
}
