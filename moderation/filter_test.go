package moderation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Local mobile number is caught before the generic digit rule",
			input:    "اتصل بي على 0512345678",
			expected: "اتصل بي على " + TagPhone,
		},
		{
			name:     "International mobile number",
			input:    "رقمي +966512345678",
			expected: "رقمي " + TagPhone,
		},
		{
			name:     "International mobile number with 00 prefix",
			input:    "call 00966512345678 now",
			expected: "call " + TagPhone + " now",
		},
		{
			name:     "Long digit run that is not a mobile number",
			input:    "ref 123456789012",
			expected: "ref " + TagNumber,
		},
		{
			name:     "Email",
			input:    "my email is test@example.com",
			expected: "my email is " + TagEmail,
		},
		{
			name:     "URL with path",
			input:    "زورني هنا https://maps.google.com/xyz",
			expected: "زورني هنا " + TagURL,
		},
		{
			name:     "URL with www and query",
			input:    "see http://www.example.sa/cars?id=7 please",
			expected: "see " + TagURL + " please",
		},
		{
			name:     "Social handle and hashtag",
			input:    "follow @car_dealer and #عروض",
			expected: "follow " + TagHandle + " and " + TagHandle,
		},
		{
			name:     "Bank account phrase",
			input:    "رقم الحساب ABCD1234",
			expected: TagBank,
		},
		{
			name:     "IBAN keyword is case-insensitive",
			input:    "iban: SA44XYZ",
			expected: TagBank,
		},
		{
			name:     "Card number with separators",
			input:    "بطاقتي 4111 1111 1111 1111",
			expected: "بطاقتي " + TagCard,
		},
		{
			name:     "Password phrase",
			input:    "password: hunter2",
			expected: TagPassword,
		},
		{
			name:     "Arabic password phrase",
			input:    "كلمة السر abc",
			expected: TagPassword,
		},
		{
			name:     "OTP phrase",
			input:    "otp 4839",
			expected: TagOTP,
		},
		{
			name:     "Coordinates",
			input:    "انا هنا 24.7136, 46.6753",
			expected: "انا هنا " + TagCoordinates,
		},
		{
			name:     "Arabic-Indic digits are tagged one by one",
			input:    "٥٥٥",
			expected: TagNumber + TagNumber + TagNumber,
		},
		{
			name:     "Location keywords",
			input:    "وين موقعك؟",
			expected: TagForbidden + " " + TagForbidden + "؟",
		},
		{
			name:     "HTML is defanged first",
			input:    "<b>سيارة نظيفة</b>",
			expected: "bسيارة نظيفة/b",
		},
		{
			name:     "Clean message",
			input:    "السيارة ممشاها قليل والسعر قابل للتفاوض",
			expected: "السيارة ممشاها قليل والسعر قابل للتفاوض",
		},
		{
			name:     "Empty message",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, Redact(tt.input))
		})
	}
}

func TestRedact_PhoneDigitsAreGone(t *testing.T) {
	req := require.New(t)
	for _, phone := range []string{"0551234567", "+966551234567", "00966551234567", "551234567"} {
		out := Redact("تواصل " + phone)
		req.Contains(out, TagPhone, phone)
		req.NotContains(out, "1234567", phone)
	}
}

// The Saudi ID and iqama rules share one pattern and digit runs are already
// consumed by the generic digit rule, neither of them fires on plain digits.
func TestRedact_IDRulesOrdering(t *testing.T) {
	req := require.New(t)
	out, hits := RedactWithReport("هويتي 1098765432")
	req.Equal("هويتي "+TagNumber, out)
	req.Equal([]Hit{{Rule: RuleDigitRun, Count: 1}}, hits)
	req.NotContains(out, TagIqama)
}

func TestRedact_PasswordRuleShadowsArabicOTP(t *testing.T) {
	req := require.New(t)
	// "رمز" belongs to the password rule, which runs before the OTP rule.
	req.Equal(TagPassword+" 4839", Redact("رمز التحقق 4839"))
}

func TestRedact_CapsInputLength(t *testing.T) {
	req := require.New(t)
	out := Redact(strings.Repeat("ا", MaxMessageLength+100))
	req.Equal(MaxMessageLength, len([]rune(out)))
}

func TestRedact_OutputMayGrowPastTheCap(t *testing.T) {
	req := require.New(t)
	out := Redact(strings.Repeat("٥", MaxMessageLength))
	req.Greater(len([]rune(out)), MaxMessageLength)
}

func TestRedact_Idempotence(t *testing.T) {
	req := require.New(t)

	// Most tags are stable under a second pass.
	for _, input := range []string{
		"اتصل بي على 0512345678",
		"my email is test@example.com",
		"زورني هنا https://maps.google.com/xyz",
		"٥٥٥",
		"وين موقعك؟",
	} {
		once := Redact(input)
		req.Equal(once, Redact(once), input)
	}

	// The OTP tag holds "رمز", a second pass rewrites it through the password rule.
	once := Redact("otp 4839")
	req.NotEqual(once, Redact(once))
}

func TestRedactWithReport(t *testing.T) {
	req := require.New(t)
	out, hits := RedactWithReport("اتصل 0512345678 او test@example.com ٣٣")
	req.Equal("اتصل "+TagPhone+" او "+TagEmail+" "+TagNumber+TagNumber, out)
	req.Equal([]Hit{
		{Rule: RuleSaudiMobile, Count: 1},
		{Rule: RuleEmail, Count: 1},
		{Rule: RuleArabicDigit, Count: 2},
	}, hits)
}

func TestContainsSensitiveInfo(t *testing.T) {
	req := require.New(t)
	req.True(ContainsSensitiveInfo("اتصل بي على 0512345678"))
	req.True(ContainsSensitiveInfo("وين موقعك؟"))
	req.False(ContainsSensitiveInfo("مرحبا كيف حالك"))
	req.False(ContainsSensitiveInfo(""))
}

func TestRules_OrderAndCoverage(t *testing.T) {
	req := require.New(t)
	names := make([]RuleName, 0, len(rules))
	for _, r := range Rules() {
		names = append(names, r.Name)
		req.NotNil(r.Pattern)
		req.NotEmpty(r.Tag)
	}
	req.Equal([]RuleName{
		RuleSaudiMobile, RuleDigitRun, RuleEmail, RuleURL, RuleSocialHandle,
		RuleNationalID, RuleIqama, RuleBank, RuleCreditCard, RulePassword,
		RuleOTP, RuleCoordinates, RuleArabicDigit, RuleLocationKeyword,
	}, names)
}

func TestRedact_DigitRunShadowsUnseparatedCard(t *testing.T) {
	req := require.New(t)
	// The digit-run rule takes the first 15 digits before the card rule runs
	req.Equal(TagNumber+"1", Redact("4111111111111111"))
	// Separated groups are too short for the digit run and reach the card rule
	req.Equal(TagCard, Redact("4111 1111 1111 1111"))
	req.Equal(TagCard, Redact("4111-1111-1111-1111"))
}

func TestRules_ReturnsACopy(t *testing.T) {
	req := require.New(t)
	copied := Rules()
	copied[0].Tag = "changed"
	req.Equal(TagPhone, Rules()[0].Tag)
}

func TestRule_Apply(t *testing.T) {
	req := require.New(t)
	rule := Rules()[0]
	out, n := rule.Apply("0511111111 و 0522222222")
	req.Equal(TagPhone+" و "+TagPhone, out)
	req.Equal(2, n)

	out, n = rule.Apply("لا شيء")
	req.Equal("لا شيء", out)
	req.Zero(n)

	// Tags are inserted literally, never expanded as templates
	dollar := Rule{Name: "dollar", Pattern: regexp.MustCompile(`x+`), Tag: "$1"}
	out, n = dollar.Apply("axxbx")
	req.Equal("a$1b$1", out)
	req.Equal(2, n)
}
