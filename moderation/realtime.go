package moderation

// FilterInputRealTime drops Arabic-Indic digits and location keywords from
// text being typed. It only runs the two cheap rules so it can be called on
// every keystroke.
func FilterInputRealTime(input string) string {
	out := arabicDigits.ReplaceAllLiteralString(input, "")
	return locationKeywords.ReplaceAllLiteralString(out, "")
}

// ContainsForbiddenContent reports whether the input has an Arabic-Indic digit
// or a location keyword.
func ContainsForbiddenContent(input string) bool {
	return forbiddenContent.MatchString(input)
}

// ForbiddenWord returns the leftmost forbidden token of the input, for display
// in the warning shown to the user.
func ForbiddenWord(input string) (string, bool) {
	loc := forbiddenContent.FindStringIndex(input)
	if loc == nil {
		return "", false
	}
	return input[loc[0]:loc[1]], true
}
