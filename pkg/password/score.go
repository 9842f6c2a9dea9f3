package password

import "strings"

// commonPasswords is a short denylist of frequently compromised passwords.
// Matching is case-insensitive.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"123456":      {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty":      {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"abc123":      {},
	"abcd1234":    {},
	"letmein":     {},
	"welcome":     {},
	"monkey":      {},
	"dragon":      {},
	"sunshine":    {},
	"iloveyou":    {},
	"princess":    {},
	"football":    {},
	"baseball":    {},
	"admin":       {},
	"admin123":    {},
	"root":        {},
	"guest":       {},
	"login":       {},
	"master":      {},
	"secret":      {},
	"trustno1":    {},
	"111111":      {},
	"000000":      {},
	"123123":      {},
	"654321":      {},
	"1q2w3e4r":    {},
	"1qaz2wsx":    {},
	"zaq12wsx":    {},
}

// IsCommon reports whether the password appears on the denylist.
func IsCommon(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}

// Score rates a password 0-4 for strength-meter feedback:
// length supplies up to two points, character variety the other two.
// Denylisted and sub-8-character passwords always score 0.
func Score(password string) int {
	if IsCommon(password) {
		return 0
	}
	n := len([]rune(password))
	if n < 8 {
		return 0
	}

	score := 1
	if n >= 12 {
		score++
	}
	switch classify(password).count() {
	case 3:
		score++
	case 4:
		score += 2
	}
	if score > 4 {
		score = 4
	}
	return score
}

var strengthLabels = [...]string{"very weak", "weak", "fair", "strong", "very strong"}

// Strength returns the label for a Score value. Out-of-range scores are
// clamped.
func Strength(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}
	return strengthLabels[score]
}
