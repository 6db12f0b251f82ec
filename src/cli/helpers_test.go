// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/config"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/logger"
)

const version = "1.3.3.7-testing"

type result struct {
	stdout string
	stderr string
	err    error
}

// isolate runs the test from an empty directory with configuration variables cleared.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{config.EnvConfigFile, config.EnvLogFormat, config.EnvOutputDir, config.EnvABIFile} {
		t.Setenv(key, "")
	}
	return dir
}

// execute runs a command built by newCmd with args, capturing both streams.
func execute(t *testing.T, newCmd func(string, logger.Logger) *cobra.Command, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&stderr)

	cmd := newCmd(version, log)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// identityResultHex ABI-encodes a (string, bytes) tuple as getEnclaveIdentity return data.
func identityResultHex(t *testing.T, identityStr string, signature []byte) string {
	t.Helper()

	tupleType, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "identityStr", Type: "string"},
		{Name: "signature", Type: "bytes"},
	})
	require.NoError(t, err)

	data, err := abi.Arguments{{Type: tupleType}}.Pack(struct {
		IdentityStr string
		Signature   []byte
	}{identityStr, signature})
	require.NoError(t, err)

	return hexutil.Encode(data)
}

// testBundle is a self-signed CA certificate and a CRL it issued, in PEM and DER.
type testBundle struct {
	certDER, crlDER []byte
	certPEM, crlPEM string
}

func newTestBundle(t *testing.T) *testBundle {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber:          big.NewInt(7),
		Subject:               pkix.Name{CommonName: "Test PCK Platform CA"},
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(24 * time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
	}
	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	issuer, err := x509.ParseCertificate(certDER)
	require.NoError(t, err)

	crlDER, err := x509.CreateRevocationList(rand.Reader, &x509.RevocationList{
		Number:     big.NewInt(1),
		ThisUpdate: now,
		NextUpdate: now.Add(time.Hour),
	}, issuer, key)
	require.NoError(t, err)

	return &testBundle{
		certDER: certDER,
		crlDER:  crlDER,
		certPEM: string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})),
		crlPEM:  string(pem.EncodeToMemory(&pem.Block{Type: "X509 CRL", Bytes: crlDER})),
	}
}
