package domain

import (
	"fmt"
	"strings"
)

// Question represents one entry of the question section.
type Question struct {
	Name  Name
	Type  QType
	Class RRClass
}

// NewQuestion constructs a Question and validates its fields.
func NewQuestion(name Name, qtype QType, class RRClass) (Question, error) {
	q := Question{
		Name:  name,
		Type:  qtype,
		Class: class,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks whether the Question fields are structurally and semantically valid.
func (q Question) Validate() error {
	if !q.Type.IsValid() {
		return fmt.Errorf("unsupported QType: %d", q.Type)
	}
	for _, label := range q.Name {
		if len(label) == 0 || len(label) > 63 {
			return fmt.Errorf("invalid label length %d in %s", len(label), q.Name)
		}
		if strings.Contains(label, ".") {
			return fmt.Errorf("label %q contains a dot", label)
		}
	}
	return nil
}

// String renders the question as a single tab-separated line.
func (q Question) String() string {
	return fmt.Sprintf("%s\tQTYPE: %s; CLASS: %d", q.Name, q.Type, uint16(q.Class))
}
