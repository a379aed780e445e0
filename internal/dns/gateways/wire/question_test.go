package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

func TestDecodeQuestion_Types(t *testing.T) {
	tests := []struct {
		name    string
		qtype   uint16
		want    domain.QType
		wantErr error
	}{
		{"A", 1, domain.QType(domain.RRTypeA), nil},
		{"AAAA", 28, domain.QType(domain.RRTypeAAAA), nil},
		{"HINFO", 13, domain.QType(domain.RRTypeHINFO), nil},
		{"AXFR", 252, domain.QTypeAXFR, nil},
		{"MAILB", 253, domain.QTypeMAILB, nil},
		{"MAILA", 254, domain.QTypeMAILA, nil},
		{"ANY", 255, domain.QTypeANY, nil},
		{"zero", 0, 0, ErrInvalidQType},
		{"unassigned", 17, 0, ErrInvalidQType},
		{"above meta range", 256, 0, ErrInvalidQType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := question(tt.qtype)
			q, next, err := decodeQuestion(data, 0)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.Question{}, q)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Type)
			assert.Equal(t, domain.RRClassIN, q.Class)
			assert.Equal(t, domain.NewName("example", "com"), q.Name)
			assert.Equal(t, len(data), next)
		})
	}
}

func TestDecodeQuestion_Truncated(t *testing.T) {
	data := question(1)
	_, _, err := decodeQuestion(data[:len(data)-1], 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = decodeQuestion(data[:len(data)-3], 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDecodeQuestion_KeepsRawClass(t *testing.T) {
	data := wireName("version", "bind")
	data = append(data, 0x00, 0x10, 0x00, 0x03) // TXT CH
	q, _, err := decodeQuestion(data, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.RRClassCH, q.Class)
}

func TestEncodeQuestion(t *testing.T) {
	var buf bytes.Buffer
	names := newNameEncoder(&buf)
	q := domain.Question{Name: domain.NewName("example", "com"), Type: domain.QTypeANY, Class: domain.RRClassIN}
	require.NoError(t, encodeQuestion(&buf, names, q))
	assert.Equal(t, append(wireName("example", "com"), 0x00, 0xFF, 0x00, 0x01), buf.Bytes())
}
