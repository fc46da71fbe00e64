package moderation

import "regexp"

// DigitsNotAllowedMessage is shown when a message is rejected for containing digits.
const DigitsNotAllowedMessage = "عذراً، لا يُسمح بكتابة الأرقام في الرسائل. يرجى استخدام زر الاتصال أو واتساب للتواصل مع المعلن."

var anyDigit = regexp.MustCompile(`\p{Nd}`)

// Verdict is the result of the full-reject check.
type Verdict struct {
	IsValid         bool
	FilteredMessage string
	ErrorMessage    string
}

// FilterMessage rejects any message holding a digit, whatever the script.
// Nothing is rewritten: a valid message is returned unchanged.
func FilterMessage(message string) Verdict {
	if anyDigit.MatchString(message) {
		return Verdict{IsValid: false, FilteredMessage: message, ErrorMessage: DigitsNotAllowedMessage}
	}
	return Verdict{IsValid: true, FilteredMessage: message}
}
