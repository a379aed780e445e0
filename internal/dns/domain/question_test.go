package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	q, err := NewQuestion(NewName("example", "com"), QTypeANY, RRClassIN)
	require.NoError(t, err)
	assert.Equal(t, QTypeANY, q.Type)

	_, err = NewQuestion(NewName("example", "com"), QType(99), RRClassIN)
	assert.ErrorContains(t, err, "unsupported QType")

	_, err = NewQuestion(Name{"", "com"}, QType(RRTypeA), RRClassIN)
	assert.ErrorContains(t, err, "invalid label length")

	_, err = NewQuestion(Name{strings.Repeat("x", 64)}, QType(RRTypeA), RRClassIN)
	assert.ErrorContains(t, err, "invalid label length 64")

	_, err = NewQuestion(Name{"a.b"}, QType(RRTypeA), RRClassIN)
	assert.ErrorContains(t, err, "contains a dot")
}

func TestQuestion_String(t *testing.T) {
	q := Question{Name: NewName("example", "com"), Type: QType(RRTypeMX), Class: RRClassIN}
	assert.Equal(t, "example.com.\tQTYPE: MX; CLASS: 1", q.String())

	q = Question{Name: NewName(), Type: QTypeANY, Class: 255}
	assert.Equal(t, ".\tQTYPE: ANY; CLASS: 255", q.String())
}
