// Package protocol implements the fixed-width RIP wire format: a 4-byte header
// (command, version, two zero bytes) followed by 20-byte records carrying a
// destination router id and a metric.
package protocol

import (
	"errors"
	"fmt"
)

const (
	CommandRequest  = 1
	CommandResponse = 2
	Version         = 2

	HeaderSize = 4
	RecordSize = 20

	destOffset   = 7
	metricOffset = 19

	// MaxRecords keeps a full dump inside a single safe UDP datagram.
	MaxRecords = (1400 - HeaderSize) / RecordSize
)

var (
	ErrTooShort   = errors.New("datagram shorter than the fixed header")
	ErrBadHeader  = errors.New("header does not match the fixed pattern")
	ErrFragmented = errors.New("payload is not a whole number of records")
)

// Record is one advertised destination. Ids are stored in a single byte on the
// wire, metrics never exceed the protocol ceiling of 16.
type Record struct {
	Dest   uint16
	Metric uint16
}

type Packet struct {
	Command byte
	Records []Record
}

// Encode serializes the packet. Record bytes outside the id and metric
// positions are reserved and left zero.
func Encode(p Packet) []byte {
	buf := make([]byte, HeaderSize+RecordSize*len(p.Records))
	buf[0] = p.Command
	buf[1] = Version
	for i, rec := range p.Records {
		o := HeaderSize + RecordSize*i
		buf[o+destOffset] = byte(rec.Dest)
		buf[o+metricOffset] = byte(rec.Metric)
	}
	return buf
}

// Decode validates the structure of a received datagram and extracts its
// records in order. Semantically odd ids or metrics are passed through
// untouched, judging them is the update engine's job.
func (p *Packet) Decode(buf []byte) error {
	if len(buf) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrTooShort, len(buf))
	}
	if (buf[0] != CommandRequest && buf[0] != CommandResponse) ||
		buf[1] != Version || buf[2] != 0 || buf[3] != 0 {
		return fmt.Errorf("%w: % x", ErrBadHeader, buf[:HeaderSize])
	}
	if (len(buf)-HeaderSize)%RecordSize != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrFragmented, (len(buf)-HeaderSize)%RecordSize)
	}
	p.Command = buf[0]
	p.Records = make([]Record, 0, (len(buf)-HeaderSize)/RecordSize)
	for o := HeaderSize; o < len(buf); o += RecordSize {
		p.Records = append(p.Records, Record{
			Dest:   uint16(buf[o+destOffset]),
			Metric: uint16(buf[o+metricOffset]),
		})
	}
	return nil
}

// NewRequest builds the packet that asks a neighbour for its full table.
func NewRequest() []byte {
	return Encode(Packet{Command: CommandRequest})
}
