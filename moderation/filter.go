package moderation

import "marketchat/sanitize"

// MaxMessageLength is the cap applied to a message before redaction.
const MaxMessageLength = 2000

// Hit counts how many times a rule fired on a message.
type Hit struct {
	Rule  RuleName
	Count int
}

// Redact removes contact details and other sensitive content from a chat message.
// The output may be longer than MaxMessageLength since tags are longer than
// most of what they replace. Running Redact on its own output is not guaranteed
// to be a no-op: some tags contain words that earlier rules look for.
func Redact(message string) string {
	out, _ := RedactWithReport(message)
	return out
}

// RedactWithReport is Redact plus the list of rules that fired, in pipeline order.
func RedactWithReport(message string) (string, []Hit) {
	out := sanitize.Sanitize(message, MaxMessageLength)
	if out == "" {
		return "", nil
	}

	var hits []Hit
	for _, rule := range rules {
		var n int
		out, n = rule.Apply(out)
		if n > 0 {
			hits = append(hits, Hit{Rule: rule.Name, Count: n})
		}
	}
	return out, hits
}

// ContainsSensitiveInfo reports whether redaction changes the message.
// HTML stripping and trimming count as a change.
func ContainsSensitiveInfo(message string) bool {
	return Redact(message) != message
}
