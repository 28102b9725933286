package password_test

import (
	"strings"
	"testing"

	"lifeguard/pkg/domain"
	"lifeguard/pkg/password"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		score    int
		strength domain.Strength
		feedback []string
	}{
		{
			name:     "long and diverse scores the maximum",
			in:       "Tr0ub4dor&3xyz",
			score:    6,
			strength: domain.StrengthStrong,
			feedback: []string{password.FeedbackSummaryStrong},
		},
		{
			name:     "common password with composition is still zero",
			in:       "password123",
			score:    0,
			strength: domain.StrengthWeak,
			feedback: []string{
				password.FeedbackAddUpper,
				password.FeedbackAddSymbols,
				password.FeedbackCommon,
				password.FeedbackSummaryWeak,
			},
		},
		{
			name:     "common password match is case-insensitive",
			in:       "PassWord123",
			score:    0,
			strength: domain.StrengthWeak,
		},
		{
			name:     "not on the list scores high",
			in:       "Password123!",
			score:    6,
			strength: domain.StrengthStrong,
		},
		{
			name:     "short lowercase only",
			in:       "abc",
			score:    1,
			strength: domain.StrengthWeak,
			feedback: []string{
				password.FeedbackTooShort,
				password.FeedbackAddUpper,
				password.FeedbackAddNumbers,
				password.FeedbackAddSymbols,
				password.FeedbackSummaryWeak,
			},
		},
		{
			name:     "empty input",
			in:       "",
			score:    0,
			strength: domain.StrengthWeak,
			feedback: []string{
				password.FeedbackTooShort,
				password.FeedbackAddUpper,
				password.FeedbackAddLower,
				password.FeedbackAddNumbers,
				password.FeedbackAddSymbols,
				password.FeedbackSummaryWeak,
			},
		},
		{
			name:     "uncased letters earn no class point",
			in:       "密码密码",
			score:    0,
			strength: domain.StrengthWeak,
		},
		{
			name:     "eight characters three classes is medium",
			in:       "abcdEFGH",
			score:    3,
			strength: domain.StrengthMedium,
			feedback: []string{
				password.FeedbackAddNumbers,
				password.FeedbackAddSymbols,
				password.FeedbackSummaryMid,
			},
		},
		{
			name:     "length between 8 and 12 with all classes is strong",
			in:       "aB3$efgh",
			score:    5,
			strength: domain.StrengthStrong,
		},
		{
			name:     "length is counted in characters not bytes",
			in:       "ÄÖÜäöü1!",
			score:    5,
			strength: domain.StrengthStrong,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := password.Evaluate(tc.in)
			require.Equal(t, tc.score, got.Score)
			require.Equal(t, tc.strength, got.Strength)
			if tc.feedback != nil {
				require.Equal(t, tc.feedback, got.Feedback)
			}
			require.False(t, got.IsBreached)
			require.Zero(t, got.BreachCount)
		})
	}
}

func TestEvaluate_CommonListAlwaysZero(t *testing.T) {
	for _, pw := range []string{"password", "123456", "qwerty", "admin", "welcome", "password123"} {
		for _, variant := range []string{pw, strings.ToUpper(pw)} {
			got := password.Evaluate(variant)
			require.Zero(t, got.Score, variant)
			require.Equal(t, domain.StrengthWeak, got.Strength, variant)
			require.Contains(t, got.Feedback, password.FeedbackCommon, variant)
		}
	}
}

func TestEvaluate_SummaryIsLast(t *testing.T) {
	summaries := map[string]bool{
		password.FeedbackSummaryWeak:   true,
		password.FeedbackSummaryMid:    true,
		password.FeedbackSummaryStrong: true,
	}
	for _, pw := range []string{"", "a", "admin", "abcdEFGH", "Zx9!Zx9!Zx9!"} {
		fb := password.Evaluate(pw).Feedback
		require.NotEmpty(t, fb)
		require.True(t, summaries[fb[len(fb)-1]], "last feedback for %q is %q", pw, fb[len(fb)-1])
	}
}

func TestEvaluate_ScoreNeverExceedsMax(t *testing.T) {
	for _, pw := range []string{"Aa1!Aa1!Aa1!Aa1!Aa1!", strings.Repeat("Zz9#", 40)} {
		require.LessOrEqual(t, password.Evaluate(pw).Score, password.MaxScore)
	}
}
