package commands

import (
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSynCapture stores a capture holding one SYN per source address
func writeSynCapture(t *testing.T, sources ...string) string {
	path := filepath.Join(t.TempDir(), "capture.pcap")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	w := pcapgo.NewWriter(file)
	require.NoError(t, w.WriteFileHeader(65536, layers.LinkTypeEthernet))

	for i, src := range sources {
		eth := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			DstMAC:       net.HardwareAddr{0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ip := &layers.IPv4{
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolTCP,
			SrcIP:    net.ParseIP(src).To4(),
			DstIP:    net.ParseIP("192.168.1.17").To4(),
		}
		tcp := &layers.TCP{
			SrcPort: layers.TCPPort(40000 + i),
			DstPort: 80,
			SYN:     true,
			Window:  1024,
		}
		require.NoError(t, tcp.SetNetworkLayerForChecksum(ip))

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}
		require.NoError(t, gopacket.SerializeLayers(buf, opts, eth, ip, tcp))

		ci := gopacket.CaptureInfo{
			Timestamp:     time.Unix(1700000000, int64(i)),
			CaptureLength: len(buf.Bytes()),
			Length:        len(buf.Bytes()),
		}
		require.NoError(t, w.WritePacket(ci, buf.Bytes()))
	}
	return path
}

func TestExtractToStdout(t *testing.T) {
	capture := writeSynCapture(t, "10.0.0.1", "10.0.0.2")

	app, out := testApp()
	require.NoError(t, app.Run([]string{"synplot", "extract", "--config", testConfig(t), capture}))
	assert.Equal(t, "10.0.0.1 192.168.1.17 40000 80\n10.0.0.2 192.168.1.17 40001 80\n", out.String())
}

func TestExtractAppliesConfiguredFilter(t *testing.T) {
	capture := writeSynCapture(t, "10.0.0.1", "10.0.0.2", "10.0.0.3")
	cfg := writeFixture(t, "filter.yaml", testConfigYAML+"Filtering:\n    NeverInclude:\n        - 10.0.0.2\n")
	output := filepath.Join(t.TempDir(), "connections2.txt")

	app, out := testApp()
	require.NoError(t, app.Run([]string{"synplot", "extract", "--config", cfg, "--output", output, capture}))
	assert.Empty(t, out.String())

	extracted, err := ioutil.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1 192.168.1.17 40000 80\n10.0.0.3 192.168.1.17 40002 80\n", string(extracted))

	// the extracted records feed straight back into the bin listing
	app, out = testApp()
	require.NoError(t, app.Run([]string{"synplot", "show-bins", "--config", testConfig(t), "--bins", "2", output}))
	assert.Contains(t, out.String(), "Bin,Start,End,Count\n")
}

func TestExtractRequiresCapture(t *testing.T) {
	app, _ := testApp()
	assert.Error(t, app.Run([]string{"synplot", "extract", "--config", testConfig(t)}))

	app, _ = testApp()
	assert.Error(t, app.Run([]string{"synplot", "extract", "--config", testConfig(t), filepath.Join(t.TempDir(), "missing.pcap")}))
}

func TestExtractOutputErrors(t *testing.T) {
	capture := writeSynCapture(t, "10.0.0.1")

	app, _ := testApp()
	missingDir := filepath.Join(t.TempDir(), "missing", "connections2.txt")
	assert.Error(t, app.Run([]string{"synplot", "extract", "--config", testConfig(t), "--output", missingDir, capture}))

	// a capture that cannot be decoded still releases the output file
	garbage := writeFixture(t, "garbage.pcap", "not a capture")
	output := filepath.Join(t.TempDir(), "connections2.txt")
	app, _ = testApp()
	assert.Error(t, app.Run([]string{"synplot", "extract", "--config", testConfig(t), "--output", output, garbage}))
	require.NoError(t, os.Remove(output))
}

func TestExtractToFileClosesOutput(t *testing.T) {
	capture, err := os.Open(writeSynCapture(t, "10.0.0.1", "10.0.0.2"))
	require.NoError(t, err)
	defer capture.Close()

	output := filepath.Join(t.TempDir(), "connections2.txt")
	logger := log.New()
	logger.Out = ioutil.Discard
	require.NoError(t, extractToFile(capture, output, nil, logger))

	extracted, err := ioutil.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1 192.168.1.17 40000 80\n10.0.0.2 192.168.1.17 40001 80\n", string(extracted))
}
