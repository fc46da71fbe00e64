package moderation

import "regexp"

// Redaction tags are stored with the messages and displayed verbatim by the
// clients, they must not change.
const (
	TagPhone       = "[رقم هاتف محذوف]"
	TagNumber      = "[رقم محذوف]"
	TagEmail       = "[بريد إلكتروني محذوف]"
	TagURL         = "[رابط محذوف]"
	TagHandle      = "[حساب محذوف]"
	TagNationalID  = "[رقم هوية محذوف]"
	TagIqama       = "[رقم إقامة محذوف]"
	TagBank        = "[معلومات بنكية محذوفة]"
	TagCard        = "[رقم بطاقة محذوف]"
	TagPassword    = "[كلمة مرور محذوفة]"
	TagOTP         = "[رمز التحقق محذوف]"
	TagCoordinates = "[إحداثيات محذوفة]"
	TagForbidden   = "[كلمة محظورة]"
)

type RuleName string

const (
	RuleSaudiMobile     RuleName = "saudi_mobile"
	RuleDigitRun        RuleName = "digit_run"
	RuleEmail           RuleName = "email"
	RuleURL             RuleName = "url"
	RuleSocialHandle    RuleName = "social_handle"
	RuleNationalID      RuleName = "national_id"
	RuleIqama           RuleName = "iqama"
	RuleBank            RuleName = "bank"
	RuleCreditCard      RuleName = "credit_card"
	RulePassword        RuleName = "password"
	RuleOTP             RuleName = "otp"
	RuleCoordinates     RuleName = "coordinates"
	RuleArabicDigit     RuleName = "arabic_digit"
	RuleLocationKeyword RuleName = "location_keyword"
)

const (
	arabicDigitPattern     = `[\x{0660}-\x{0669}]`
	locationKeywordPattern = `الرقم|العنوان|مكانك|وين|الموقع|موقعك|لوكيشن`
	// Same shape for national IDs and iqamas, the iqama pass never matches.
	saudiIDPattern = `\b[12]\d{9}\b`
)

// Rule replaces every match of Pattern with Tag.
type Rule struct {
	Name    RuleName
	Pattern *regexp.Regexp
	Tag     string
}

// Apply returns the rewritten text and the number of replaced matches.
// The text is scanned once.
func (r Rule) Apply(text string) (string, int) {
	count := 0
	out := r.Pattern.ReplaceAllStringFunc(text, func(string) string {
		count++
		return r.Tag
	})
	return out, count
}

var (
	arabicDigits     = regexp.MustCompile(arabicDigitPattern)
	locationKeywords = regexp.MustCompile(locationKeywordPattern)
	forbiddenContent = regexp.MustCompile(arabicDigitPattern + `|` + locationKeywordPattern)
)

// rules run in this exact order, each one on the output of the previous.
var rules = []Rule{
	{
		Name:    RuleSaudiMobile,
		Pattern: regexp.MustCompile(`(?:\+9665|009665|05|5)\d{8}`),
		Tag:     TagPhone,
	},
	{
		Name:    RuleDigitRun,
		Pattern: regexp.MustCompile(`\d{8,15}`),
		Tag:     TagNumber,
	},
	{
		Name:    RuleEmail,
		Pattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		Tag:     TagEmail,
	},
	{
		Name:    RuleURL,
		Pattern: regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b[-a-zA-Z0-9()@:%_+.~#?&/=]*`),
		Tag:     TagURL,
	},
	{
		Name:    RuleSocialHandle,
		Pattern: regexp.MustCompile(`[@#][a-zA-Z0-9_\x{0600}-\x{06FF}]+`),
		Tag:     TagHandle,
	},
	{
		Name:    RuleNationalID,
		Pattern: regexp.MustCompile(saudiIDPattern),
		Tag:     TagNationalID,
	},
	{
		Name:    RuleIqama,
		Pattern: regexp.MustCompile(saudiIDPattern),
		Tag:     TagIqama,
	},
	{
		Name:    RuleBank,
		Pattern: regexp.MustCompile(`(?i)(?:iban|account|رقم الحساب|حساب|بنك)[\s:#-]*[A-Z0-9]{4,}`),
		Tag:     TagBank,
	},
	{
		Name:    RuleCreditCard,
		Pattern: regexp.MustCompile(`\b(?:\d{4}[\s-]?){3}\d{4}\b`),
		Tag:     TagCard,
	},
	{
		Name:    RulePassword,
		Pattern: regexp.MustCompile(`(?i)\b(?:password|passwd|pin)\b\s*[:=]?\s*\S+|(?:كلمة المرور|كلمة السر|الرقم السري|رمز)\s*[:=]?\s*\S+`),
		Tag:     TagPassword,
	},
	{
		Name:    RuleOTP,
		Pattern: regexp.MustCompile(`(?i)\b(?:otp|verification code|code)\b\s*[:=]?\s*\S+|(?:رمز التحقق|كود التحقق|كود)\s*[:=]?\s*\S+`),
		Tag:     TagOTP,
	},
	{
		Name:    RuleCoordinates,
		Pattern: regexp.MustCompile(`-?\d{1,3}\.\d+\s*,\s*-?\d{1,3}\.\d+`),
		Tag:     TagCoordinates,
	},
	{
		Name:    RuleArabicDigit,
		Pattern: arabicDigits,
		Tag:     TagNumber,
	},
	{
		Name:    RuleLocationKeyword,
		Pattern: locationKeywords,
		Tag:     TagForbidden,
	},
}

// Rules returns a copy of the ordered redaction table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
