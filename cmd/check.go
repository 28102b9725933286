package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"lifeguard/internal/checker"
	"lifeguard/internal/config"
	"lifeguard/internal/ui"
	"lifeguard/pkg/breach"
	"lifeguard/pkg/password"

	"github.com/spf13/cobra"
)

// readPassword takes the password from the flag or the first line of stdin.
func readPassword(cmd *cobra.Command) (string, error) {
	pw, _ := cmd.Flags().GetString("password")
	if pw != "" {
		return pw, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("could not read password from stdin: %w", err)
	}
	pw = strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errors.New("password is empty")
	}

	return pw, nil
}

// checkCommand constructs the 'check' subcommand running the engines locally
// without storing anything.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checks a password or URL from the terminal",
	}

	passwordCmd := &cobra.Command{
		Use:   "password",
		Short: "Evaluates password strength and looks it up in known breaches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd)
			if err != nil {
				return err
			}

			var b breach.Checker
			if offline, _ := cmd.Flags().GetBool("offline"); !offline {
				b = newBreachChecker(cfg, newHTTPClient(cfg), nil)
			}

			spinner := ui.StartSpinner("checking password...")
			report := checker.AssessPassword(cmd.Context(), b, pw)
			_ = spinner.Stop()

			ui.PrintPasswordReport(report)

			return nil
		},
	}
	passwordCmd.Flags().String("password", "", "Password to check, read from stdin when empty")
	passwordCmd.Flags().Bool("offline", false, "Skip the breach lookup")

	urlCmd := &cobra.Command{
		Use:   "url <url>",
		Short: "Assesses the risk of a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, closeCache := newCache(ctx, cfg)
			defer closeCache()

			agg := newAggregator(ctx, cfg, newHTTPClient(cfg), c)

			spinner := ui.StartSpinner("checking url...")
			assessment := agg.Assess(ctx, strings.TrimSpace(args[0]))
			_ = spinner.Stop()

			ui.PrintURLAssessment(assessment)

			return nil
		},
	}

	cmd.AddCommand(passwordCmd, urlCmd)

	return cmd
}

// generateCommand constructs the 'generate' subcommand printing a random
// password and its strength.
func generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			length, _ := cmd.Flags().GetInt("length")

			pw, err := password.Generate(length)
			if err != nil {
				return fmt.Errorf("could not generate password: %w", err)
			}

			ui.PrintGenerated(pw, password.Evaluate(pw))

			return nil
		},
	}
	cmd.Flags().IntP("length", "l", password.DefaultGenerateLength, "Password length")

	return cmd
}
