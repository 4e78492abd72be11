// Package ddp implements the sender side of the Distributed Display
// Protocol, http://www.3waylabs.com/ddp/. Only the 10-byte header and raw
// RGB data packets are supported: no timecode extension, no sequence
// numbering, no multi-packet frames.
package ddp

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strconv"
)

const (
	// DefaultPort is the UDP port DDP receivers listen on.
	DefaultPort = 4048

	// HeaderLen is the fixed header size in bytes.
	HeaderLen = 10

	// MaxDataLen is the largest payload that fits one DDP packet,
	// 480 RGB pixels.
	MaxDataLen = 480 * 3

	IDDisplay = 1
	IDConfig  = 250
	IDStatus  = 251

	// TypeRGB is the data type byte for packed 8-bit RGB pixel data.
	TypeRGB byte = 0x01
)

const (
	flagVersionMask byte = 0xc0
	flagVersion1    byte = 0x40
	flagPush        byte = 0x01
	flagQuery       byte = 0x02
	flagReply       byte = 0x04
	flagStorage     byte = 0x08
	flagTimecode    byte = 0x10
)

// Flags models byte 0 of the header. Byte always encodes protocol
// version 1 in the top bits.
type Flags struct {
	Timecode bool
	Storage  bool
	Reply    bool
	Query    bool
	Push     bool
}

func (f *Flags) Byte() byte {
	flags := flagVersion1

	if f.Timecode {
		flags |= flagTimecode
	}
	if f.Storage {
		flags |= flagStorage
	}
	if f.Reply {
		flags |= flagReply
	}
	if f.Query {
		flags |= flagQuery
	}
	if f.Push {
		flags |= flagPush
	}
	return flags
}

func (f *Flags) FromByte(flags byte) {
	f.Timecode = flags&flagTimecode != 0
	f.Storage = flags&flagStorage != 0
	f.Reply = flags&flagReply != 0
	f.Query = flags&flagQuery != 0
	f.Push = flags&flagPush != 0
}

// Header is the fixed 10-byte DDP packet header. Multi-byte fields are
// big-endian on the wire.
type Header struct {
	Flags    Flags
	Sequence byte
	Type     byte
	ID       byte
	Offset   uint32
	Length   uint16
}

func (h *Header) Bytes() []byte {
	buf := make([]byte, HeaderLen)
	buf[0] = h.Flags.Byte()
	buf[1] = h.Sequence
	buf[2] = h.Type
	buf[3] = h.ID
	binary.BigEndian.PutUint32(buf[4:8], h.Offset)
	binary.BigEndian.PutUint16(buf[8:10], h.Length)
	return buf
}

// HeaderFor builds the header for a single RGB data packet of dataLen
// payload bytes, addressed to the default display output starting at
// pixel 0.
func HeaderFor(dataLen int, push bool) Header {
	return Header{
		Flags:  Flags{Push: push},
		Type:   TypeRGB,
		ID:     IDDisplay,
		Length: uint16(dataLen),
	}
}

// Client sends DDP packets to a single remote endpoint over a
// connectionless UDP socket. Sends are best-effort: no acknowledgement is
// expected and none is read.
type Client struct {
	output io.WriteCloser
	closed bool
}

// Dial resolves host:port once and opens the socket. The local port is
// ephemeral.
func Dial(host string, port int) (*Client, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("resolve %s:%d: %w", host, port, err)
	}

	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	return &Client{output: conn}, nil
}

// Send frames data as one DDP packet and transmits it as a single
// datagram. data is raw packed pixel bytes; an empty slice sends a
// header-only packet.
func (c *Client) Send(data []byte, push bool) (int, error) {
	h := HeaderFor(len(data), push)
	return c.output.Write(append(h.Bytes(), data...))
}

// Close releases the socket. Safe to call more than once; only the first
// call closes.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.output.Close()
}
