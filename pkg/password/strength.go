// Package password scores password strength with a local additive heuristic
// and generates random passwords. Nothing in this package performs I/O.
package password

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"lifeguard/pkg/domain"
)

const (
	// MinLength earns the first length point.
	MinLength = 8
	// LongLength earns the second length point.
	LongLength = 12
	// MaxScore is the best score reachable without the common-password override.
	MaxScore = 6
)

// Feedback lines, in the order the checks emit them.
const (
	FeedbackTooShort      = "Password is too short (minimum 8 characters)"
	FeedbackAddUpper      = "Add uppercase letters"
	FeedbackAddLower      = "Add lowercase letters"
	FeedbackAddNumbers    = "Add numbers"
	FeedbackAddSymbols    = "Add special characters"
	FeedbackCommon        = "This is a very common password"
	FeedbackSummaryWeak   = "Weak password"
	FeedbackSummaryMid    = "Medium strength password"
	FeedbackSummaryStrong = "Strong password"
)

// commonPasswords is matched case-insensitively and forces the score to 0.
var commonPasswords = map[string]struct{}{ //nolint: gochecknoglobals
	"password":    {},
	"password1":   {},
	"password123": {},
	"123456":      {},
	"12345678":    {},
	"123456789":   {},
	"qwerty":      {},
	"abc123":      {},
	"111111":      {},
	"letmein":     {},
	"admin":       {},
	"welcome":     {},
	"iloveyou":    {},
	"monkey":      {},
}

// IsCommon reports whether password is on the well-known weak password list.
func IsCommon(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]

	return ok
}

type classes struct {
	upper, lower, digit, symbol bool
}

func classify(password string) classes {
	var c classes
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		case !unicode.IsLetter(r):
			c.symbol = true
		}
	}

	return c
}

// Evaluate scores password. Every input produces an assessment; the breach
// fields are left zero.
func Evaluate(password string) domain.PasswordAssessment {
	score := 0
	feedback := make([]string, 0, 7)

	length := utf8.RuneCountInString(password)
	if length >= MinLength {
		score++
	} else {
		feedback = append(feedback, FeedbackTooShort)
	}
	if length >= LongLength {
		score++
	}

	c := classify(password)
	for _, rule := range []struct {
		ok       bool
		feedback string
	}{
		{c.upper, FeedbackAddUpper},
		{c.lower, FeedbackAddLower},
		{c.digit, FeedbackAddNumbers},
		{c.symbol, FeedbackAddSymbols},
	} {
		if rule.ok {
			score++
		} else {
			feedback = append(feedback, rule.feedback)
		}
	}

	if IsCommon(password) {
		score = 0
		feedback = append(feedback, FeedbackCommon)
	}

	strength := domain.StrengthFromScore(score)
	switch strength {
	case domain.StrengthStrong:
		feedback = append(feedback, FeedbackSummaryStrong)
	case domain.StrengthMedium:
		feedback = append(feedback, FeedbackSummaryMid)
	default:
		feedback = append(feedback, FeedbackSummaryWeak)
	}

	return domain.PasswordAssessment{
		Score:    score,
		Strength: strength,
		Feedback: feedback,
	}
}
