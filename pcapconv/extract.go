// Package pcapconv converts recorded packet captures into the four column
// connection record format. It only reads capture files; it never opens a
// network interface.
package pcapconv

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	log "github.com/sirupsen/logrus"
)

// ngMagic starts the section header block of a pcapng file
var ngMagic = []byte{0x0a, 0x0d, 0x0d, 0x0a}

// packetReader is satisfied by both the pcap and the pcapng readers
type packetReader interface {
	gopacket.PacketDataSource
	LinkType() layers.LinkType
}

// Stats reports what happened during an extraction
type Stats struct {
	Packets  int
	Written  int
	Skipped  int
	Filtered int
}

// Extract reads a pcap or pcapng capture from r and writes one line
// "src dst sport dport" for every TCP segment that opens a connection
// (SYN set, ACK clear), in capture order. Attempts rejected by filter are
// counted but not written; a nil filter keeps every attempt.
func Extract(r io.Reader, w io.Writer, filter *Filter, logger *log.Logger) (Stats, error) {
	var stats Stats

	reader, err := newPacketReader(r)
	if err != nil {
		return stats, err
	}

	out := bufio.NewWriter(w)
	for {
		data, _, err := reader.ReadPacketData()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.Packets++

		packet := gopacket.NewPacket(data, reader.LinkType(), gopacket.DecodeOptions{Lazy: true, NoCopy: true})
		src, dst, ok := endpoints(packet)
		if !ok {
			stats.Skipped++
			continue
		}

		tcpLayer, ok := packet.Layer(layers.LayerTypeTCP).(*layers.TCP)
		if !ok || !tcpLayer.SYN || tcpLayer.ACK {
			stats.Skipped++
			continue
		}

		if filter.filterConnPair(src, dst) {
			stats.Filtered++
			continue
		}

		if _, err := fmt.Fprintf(out, "%s %s %d %d\n", src, dst, uint16(tcpLayer.SrcPort), uint16(tcpLayer.DstPort)); err != nil {
			return stats, err
		}
		stats.Written++
	}

	if err := out.Flush(); err != nil {
		return stats, err
	}

	logger.WithFields(log.Fields{
		"packets":  stats.Packets,
		"written":  stats.Written,
		"skipped":  stats.Skipped,
		"filtered": stats.Filtered,
	}).Info("Extracted connection attempts from capture")
	return stats, nil
}

func newPacketReader(r io.Reader) (packetReader, error) {
	buffered := bufio.NewReader(r)
	magic, err := buffered.Peek(len(ngMagic))
	if err != nil {
		return nil, fmt.Errorf("reading capture header: %w", err)
	}
	if bytes.Equal(magic, ngMagic) {
		return pcapgo.NewNgReader(buffered, pcapgo.DefaultNgReaderOptions)
	}
	return pcapgo.NewReader(buffered)
}

// endpoints returns the network addresses of an IPv4 or IPv6 packet
func endpoints(packet gopacket.Packet) (net.IP, net.IP, bool) {
	if ip4, ok := packet.Layer(layers.LayerTypeIPv4).(*layers.IPv4); ok {
		return ip4.SrcIP, ip4.DstIP, true
	}
	if ip6, ok := packet.Layer(layers.LayerTypeIPv6).(*layers.IPv6); ok {
		return ip6.SrcIP, ip6.DstIP, true
	}
	return nil, nil, false
}
