package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"lifeguard/internal/api/handler/v1handler"
	"lifeguard/internal/config"
	"lifeguard/pkg/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no flag", args: []string{"serve"}, want: nil},
		{name: "short after subcommand", args: []string{"serve", "-c", "cfg.yaml"}, want: []string{"-c", "cfg.yaml"}},
		{name: "long", args: []string{"--config", "cfg.yaml", "migrate"}, want: []string{"-c", "cfg.yaml"}},
		{name: "short with equals", args: []string{"check", "-c=cfg.yaml"}, want: []string{"-c=cfg.yaml"}},
		{name: "long with equals", args: []string{"--config=cfg.yaml"}, want: []string{"-c=cfg.yaml"}},
		{name: "dangling", args: []string{"serve", "-c"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, configArgs(tt.args))
		})
	}
}

func TestSignToken_AcceptedBySecHandler(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	userID := uuid.New()
	signed, err := signToken(privPEM, userID, time.Hour, time.Now())
	require.NoError(t, err)

	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: string(pubPEM)})
	require.NoError(t, err)

	ctx, err := sh.HandleBearerAuth(context.Background(), signed)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(userID), v1handler.GetUserIDFromContext(ctx))
}

func TestSignToken_InvalidKey(t *testing.T) {
	_, err := signToken([]byte("not a pem"), uuid.New(), time.Hour, time.Now())
	require.ErrorContains(t, err, "could not parse RSA private key")
}

func newPasswordCmd(stdin string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("password", "", "")
	cmd.SetIn(strings.NewReader(stdin))

	return cmd
}

func TestReadPassword(t *testing.T) {
	cmd := newPasswordCmd("")
	require.NoError(t, cmd.Flags().Set("password", "from-flag"))
	pw, err := readPassword(cmd)
	require.NoError(t, err)
	require.Equal(t, "from-flag", pw)

	pw, err = readPassword(newPasswordCmd("from stdin\r\nsecond line\n"))
	require.NoError(t, err)
	require.Equal(t, "from stdin", pw)

	pw, err = readPassword(newPasswordCmd("no newline"))
	require.NoError(t, err)
	require.Equal(t, "no newline", pw)

	_, err = readPassword(newPasswordCmd(""))
	require.Error(t, err)

	_, err = readPassword(newPasswordCmd("\n"))
	require.ErrorContains(t, err, "password is empty")
}

func TestGenerateCommand_RejectsTooLong(t *testing.T) {
	cmd := generateCommand()
	cmd.SetArgs([]string{"--length", "500"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.ErrorContains(t, cmd.Execute(), "could not generate password")
}

func TestCheckCommand_OfflinePassword(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	cmd := checkCommand(cfg)
	cmd.SetArgs([]string{"password", "--offline", "--password", "Correct-Horse9"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
}
