package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestServer answers every A query with 93.184.216.34 and returns its address.
func startTestServer(t *testing.T) string {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { pc.Close() })

	go func() {
		buf := make([]byte, 512)
		for {
			n, addr, err := pc.ReadFrom(buf)
			if err != nil {
				return
			}
			req := new(dns.Msg)
			if err := req.Unpack(buf[:n]); err != nil {
				continue
			}
			reply := new(dns.Msg)
			reply.SetReply(req)
			reply.RecursionAvailable = true
			reply.Answer = append(reply.Answer, &dns.A{
				Hdr: dns.RR_Header{Name: req.Question[0].Name, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 300},
				A:   net.IPv4(93, 184, 216, 34).To4(),
			})
			out, err := reply.Pack()
			if err != nil {
				continue
			}
			_, _ = pc.WriteTo(out, addr)
		}
	}()
	return pc.LocalAddr().String()
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_DecodedLookup(t *testing.T) {
	addr := startTestServer(t)

	code, out, errOut := runCLI(t, "example.com", "-s", addr)
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "Answer")
	assert.Contains(t, out, "example.com.")
	assert.Contains(t, out, "93.184.216.34")
	assert.Regexp(t, regexp.MustCompile(`;; Query time: \d+ msec`), out)
	assert.Contains(t, out, ";; SERVER: "+addr)
}

func TestRun_RawLookup(t *testing.T) {
	addr := startTestServer(t)

	code, out, errOut := runCLI(t, "-r", "-s", addr, "example.com")
	require.Equal(t, 0, code, errOut)

	first := strings.SplitN(out, "\n", 2)[0]
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{4}( [0-9a-f]{2,4})+$`), first)
	assert.NotContains(t, out, "Answer")
}

func TestRun_DiscoversResolver(t *testing.T) {
	addr := startTestServer(t)
	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	conf := filepath.Join(t.TempDir(), "resolv.conf")
	require.NoError(t, os.WriteFile(conf, []byte("nameserver "+host+"\n"), 0o600))
	t.Setenv("RRDIG_RESOLV_CONF", conf)
	t.Setenv("RRDIG_PORT", port)

	code, out, errOut := runCLI(t, "example.com")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, ";; SERVER: "+addr)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing name", nil, "required"},
		{"unknown qtype", []string{"example.com", "-q", "BOGUS"}, "Configuration error"},
		{"bad server", []string{"example.com", "-s", "not-an-ip"}, "Configuration error"},
		{"extra argument", []string{"example.com", "other.com"}, "unexpected argument"},
		{"unknown flag", []string{"-x", "example.com"}, "flag provided but not defined"},
		{"bad name", []string{"a..b", "-s", "127.0.0.1"}, "invalid name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errOut := runCLI(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Usage: rr-dig <name> [flags]")
}

func TestParseArgs_OnlyExplicitFlagsOverride(t *testing.T) {
	var stderr bytes.Buffer
	cli, err := parseArgs([]string{"-q", "MX", "example.org", "-r"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "example.org", cli.name)
	assert.Equal(t, "", cli.configFile)
	assert.Equal(t, map[string]any{"qtype": "MX", "raw": true}, cli.overrides)
}

func TestParseArgs_ConfigFile(t *testing.T) {
	var stderr bytes.Buffer
	cli, err := parseArgs([]string{"example.org", "-config", "/etc/rr-dig.yaml", "-log-level", "debug", "-s", "1.1.1.1"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "/etc/rr-dig.yaml", cli.configFile)
	assert.Equal(t, map[string]any{"log_level": "debug", "server": "1.1.1.1"}, cli.overrides)
}
