// Package ui renders check results in the terminal.
package ui

import (
	"strconv"
	"strings"

	"lifeguard/pkg/domain"

	"github.com/pterm/pterm"
)

func riskStyle(level domain.RiskLevel) string {
	switch level {
	case domain.RiskLevelHigh:
		return pterm.FgRed.Sprint("HIGH")
	case domain.RiskLevelMedium:
		return pterm.FgYellow.Sprint("MEDIUM")
	default:
		return pterm.FgGreen.Sprint("LOW")
	}
}

func strengthStyle(s domain.Strength) string {
	switch s {
	case domain.StrengthStrong:
		return pterm.FgGreen.Sprint("STRONG")
	case domain.StrengthMedium:
		return pterm.FgYellow.Sprint("MEDIUM")
	default:
		return pterm.FgRed.Sprint("WEAK")
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// PasswordRows is the table printed for a password report.
func PasswordRows(r domain.PasswordReport) [][]string {
	return [][]string{
		{"Check", "Result"},
		{"Strength", strengthStyle(r.Strength)},
		{"Score", strconv.Itoa(r.Score) + "/6"},
		{"Length", strconv.Itoa(r.Length)},
		{"Breached", yesNo(r.IsBreached)},
		{"Breach count", strconv.Itoa(r.BreachCount)},
		{"Breach lookup", r.BreachDetails},
	}
}

// URLRows is the table printed for a URL assessment.
func URLRows(a domain.URLAssessment) [][]string {
	threats := "-"
	if len(a.ThreatTypes) > 0 {
		threats = strings.Join(a.ThreatTypes, ", ")
	}

	rows := [][]string{
		{"Check", "Result"},
		{"URL", a.URL},
		{"Safe", yesNo(a.Safe)},
		{"Risk", riskStyle(a.RiskLevel)},
		{"Threats", threats},
		{"Threat lists clean", yesNo(a.GoogleSafe)},
		{"Domain reputation", string(a.DomainReputation)},
		{"Risk score", strconv.Itoa(a.RiskScore)},
	}
	for _, s := range a.Signals {
		rows = append(rows, []string{"Stage " + s.Stage, string(s.Status)})
	}

	return rows
}

// PrintPasswordReport prints a password report followed by its feedback.
func PrintPasswordReport(r domain.PasswordReport) {
	_ = pterm.DefaultTable.WithHasHeader().WithData(PasswordRows(r)).Render()

	items := make([]pterm.BulletListItem, 0, len(r.Feedback))
	for _, f := range r.Feedback {
		items = append(items, pterm.BulletListItem{Level: 0, Text: f})
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
}

// PrintURLAssessment prints a URL assessment and its verdict.
func PrintURLAssessment(a domain.URLAssessment) {
	_ = pterm.DefaultTable.WithHasHeader().WithData(URLRows(a)).Render()

	if a.Safe {
		pterm.Success.Println(a.Details)

		return
	}
	pterm.Warning.Println(a.Details)
}

// PrintGenerated prints a generated password with its strength.
func PrintGenerated(pw string, a domain.PasswordAssessment) {
	pterm.DefaultBox.WithTitle(strengthStyle(a.Strength)).Println(pw)
}

// StartSpinner shows a spinner until Stop or Success is called on it.
func StartSpinner(text string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.Start(text)

	return spinner
}
