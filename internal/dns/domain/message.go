package domain

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// MaxUDPMessageSize is the classic DNS over UDP payload limit (no EDNS0).
const MaxUDPMessageSize = 512

// Message is a complete DNS message. It is built either by decoding a reply
// or by NewQuery, and is not mutated afterwards.
type Message struct {
	ID         uint16
	Meta       Meta
	QDCount    uint16
	ANCount    uint16
	NSCount    uint16
	ARCount    uint16
	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// NewQuery builds a recursive query for name and qtype in class IN with a random ID.
func NewQuery(name Name, qtype QType) (Message, error) {
	return NewQueryWithID(dns.Id(), name, qtype)
}

// NewQueryWithID is NewQuery with a caller-chosen ID.
func NewQueryWithID(id uint16, name Name, qtype QType) (Message, error) {
	q, err := NewQuestion(NewName(name...), qtype, RRClassIN)
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:        id,
		Meta:      QueryMeta,
		QDCount:   1,
		Questions: []Question{q},
	}, nil
}

// CountsMatch reports whether every section count equals the length of its section.
func (m Message) CountsMatch() bool {
	return int(m.QDCount) == len(m.Questions) &&
		int(m.ANCount) == len(m.Answers) &&
		int(m.NSCount) == len(m.Authority) &&
		int(m.ARCount) == len(m.Additional)
}

// String renders the message section by section. Empty sections are omitted.
func (m Message) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d\n%s\nQDCOUNT %d; ANCOUNT %d; NSCOUNT %d; ARCOUNT %d",
		m.ID, m.Meta, m.QDCount, m.ANCount, m.NSCount, m.ARCount)

	if len(m.Questions) > 0 {
		b.WriteString("\n\nQuestion")
		for _, q := range m.Questions {
			b.WriteString("\n")
			b.WriteString(q.String())
		}
	}

	sections := []struct {
		title   string
		records []ResourceRecord
	}{
		{"Answer", m.Answers},
		{"Authority", m.Authority},
		{"Additional", m.Additional},
	}
	for _, s := range sections {
		if len(s.records) == 0 {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(s.title)
		for _, rr := range s.records {
			b.WriteString("\n")
			b.WriteString(rr.String())
		}
	}
	return b.String()
}
