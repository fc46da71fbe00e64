package moderation

import (
	"fmt"
	"strings"

	"marketchat/sanitize"
)

type PolicyName string

const (
	PolicyRedact PolicyName = "redact"
	PolicyReject PolicyName = "reject"
)

// Outcome is what a Policy decided for one message.
type Outcome struct {
	Accepted bool
	Content  string
	Reason   string
	Hits     []Hit
}

// Policy decides what happens to a message before it is stored.
type Policy interface {
	Name() PolicyName
	Apply(message string) Outcome
}

// RedactPolicy accepts every message and replaces sensitive content with tags.
type RedactPolicy struct{}

func (RedactPolicy) Name() PolicyName { return PolicyRedact }

func (RedactPolicy) Apply(message string) Outcome {
	content, hits := RedactWithReport(message)
	return Outcome{Accepted: true, Content: content, Hits: hits}
}

// RejectPolicy refuses messages holding any digit. Accepted messages are
// still defanged by sanitize.Sanitize.
type RejectPolicy struct{}

func (RejectPolicy) Name() PolicyName { return PolicyReject }

func (RejectPolicy) Apply(message string) Outcome {
	verdict := FilterMessage(message)
	if !verdict.IsValid {
		return Outcome{Accepted: false, Reason: verdict.ErrorMessage}
	}
	return Outcome{Accepted: true, Content: sanitize.Sanitize(verdict.FilteredMessage, MaxMessageLength)}
}

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch PolicyName(strings.ToLower(strings.TrimSpace(name))) {
	case PolicyRedact, "":
		return RedactPolicy{}, nil
	case PolicyReject:
		return RejectPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown message policy %q", name)
	}
}
