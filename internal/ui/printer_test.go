package ui_test

import (
	"testing"

	"lifeguard/internal/ui"
	"lifeguard/pkg/domain"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	m.Run()
}

func TestPasswordRows(t *testing.T) {
	rows := ui.PasswordRows(domain.PasswordReport{
		PasswordAssessment: domain.PasswordAssessment{
			Score:       4,
			Strength:    domain.StrengthMedium,
			IsBreached:  true,
			BreachCount: 12,
		},
		Length:        10,
		BreachDetails: "Password found in 12 data breaches",
	})

	require.Equal(t, []string{"Check", "Result"}, rows[0])
	require.Equal(t, []string{"Strength", "MEDIUM"}, rows[1])
	require.Equal(t, []string{"Score", "4/6"}, rows[2])
	require.Equal(t, []string{"Breached", "yes"}, rows[4])
	require.Equal(t, []string{"Breach lookup", "Password found in 12 data breaches"}, rows[6])
}

func TestURLRows(t *testing.T) {
	a := domain.NewURLAssessment("http://192.168.0.1/login")
	a.MarkUnsafe(domain.RiskLevelHigh, "ip address instead of domain", "no https")
	a.Signals = []domain.Signal{
		{Stage: "heuristic", Status: domain.SignalRan},
		{Stage: "threat_match", Status: domain.SignalSkipped},
	}

	rows := ui.URLRows(a)
	require.Contains(t, rows, []string{"Risk", "HIGH"})
	require.Contains(t, rows, []string{"Safe", "no"})
	require.Contains(t, rows, []string{"Threats", "ip address instead of domain, no https"})
	require.Contains(t, rows, []string{"Stage threat_match", "skipped"})

	clean := ui.URLRows(domain.NewURLAssessment("https://example.com"))
	require.Contains(t, clean, []string{"Threats", "-"})
	require.Contains(t, clean, []string{"Risk", "LOW"})
}
