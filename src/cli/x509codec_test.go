// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/cli"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/x509/pemhex"
)

func TestX509Codec_Encode(t *testing.T) {
	isolate(t)

	res := execute(t, cli.NewX509CodecCommand, "--encode", "deadbeef", "cafebabe")
	require.NoError(t, res.err)
	assert.Equal(t,
		"=== Printing Base64 1 of 2 ===\n3q2+7w==\n\n\n"+
			"=== Printing Base64 2 of 2 ===\nyv66vg==\n\n\n",
		res.stdout)
}

func TestX509Codec_EncodeStopsAtFirstFailure(t *testing.T) {
	isolate(t)

	res := execute(t, cli.NewX509CodecCommand, "-e", "deadbeef", "abc", "cafebabe")
	assert.ErrorIs(t, res.err, pemhex.ErrDecode)
	assert.Equal(t, "=== Printing Base64 1 of 3 ===\n3q2+7w==\n\n\n", res.stdout)
}

func TestX509Codec_EncodeNoArguments(t *testing.T) {
	isolate(t)

	res := execute(t, cli.NewX509CodecCommand, "-e")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
}

func TestX509Codec_Decode(t *testing.T) {
	dir := isolate(t)
	b := newTestBundle(t)
	path := writeFile(t, dir, "chain.pem", b.certPEM+b.crlPEM)

	res := execute(t, cli.NewX509CodecCommand, "-d", path)
	require.NoError(t, res.err)
	assert.Equal(t,
		"=== Printing DER 1 of 2 ===\n"+hex.EncodeToString(b.certDER)+"\n\n\n"+
			"=== Printing DER 2 of 2 ===\n"+hex.EncodeToString(b.crlDER)+"\n\n\n",
		res.stdout)
	assert.Empty(t, res.stderr)
}

func TestX509Codec_DecodeWarnsOnTrailingText(t *testing.T) {
	dir := isolate(t)
	b := newTestBundle(t)
	path := writeFile(t, dir, "chain.pem", b.certPEM+"-----BEGIN CERTIFICATE-----\nMIIB\n")

	res := execute(t, cli.NewX509CodecCommand, "--decode", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "=== Printing DER 1 of 1 ===")
	assert.Contains(t, res.stderr, "ignoring 2 line(s)")
}

func TestX509Codec_DecodeTable(t *testing.T) {
	dir := isolate(t)
	b := newTestBundle(t)
	path := writeFile(t, dir, "chain.pem", b.certPEM+b.crlPEM)

	res := execute(t, cli.NewX509CodecCommand, "-d", path, "--table")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Test PCK Platform CA")
	assert.Contains(t, res.stdout, pemhex.KindCertificate)
	assert.Contains(t, res.stdout, pemhex.KindCRL)
	assert.NotContains(t, res.stdout, "=== Printing")
}

func TestX509Codec_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T, dir string) []string
		wantErr error
	}{
		{
			name:    "Missing Instruction",
			args:    func(*testing.T, string) []string { return []string{"deadbeef"} },
			wantErr: cli.ErrUnknownInstruction,
		},
		{
			name:    "Both Instructions",
			args:    func(*testing.T, string) []string { return []string{"-d", "-e", "deadbeef"} },
			wantErr: cli.ErrUnknownInstruction,
		},
		{
			name:    "Missing PEM Path",
			args:    func(*testing.T, string) []string { return []string{"--decode"} },
			wantErr: cli.ErrUsage,
		},
		{
			name: "Bad Base64 Block",
			args: func(t *testing.T, dir string) []string {
				return []string{"-d", writeFile(t, dir, "bad.pem", "-----BEGIN CERTIFICATE-----\n!!!!\n-----END CERTIFICATE-----\n")}
			},
			wantErr: pemhex.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)

			res := execute(t, cli.NewX509CodecCommand, tt.args(t, dir)...)
			assert.ErrorIs(t, res.err, tt.wantErr)
			assert.Empty(t, res.stdout)
			assert.Equal(t, "Error: "+res.err.Error()+"\n", res.stderr)
		})
	}
}

func TestX509Codec_MissingFile(t *testing.T) {
	dir := isolate(t)

	res := execute(t, cli.NewX509CodecCommand, "-d", filepath.Join(dir, "missing.pem"))
	assert.Error(t, res.err)
	assert.Empty(t, res.stdout)
}

func TestX509Codec_JSONLogFormatOnError(t *testing.T) {
	isolate(t)

	res := execute(t, cli.NewX509CodecCommand, "--decode", "--log-format", "json")
	require.ErrorIs(t, res.err, cli.ErrUsage)
	assert.Empty(t, res.stdout)

	lines := strings.Split(strings.TrimSpace(res.stderr), "\n")
	require.Len(t, lines, 1, "stderr must hold a single record: %q", res.stderr)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "error", record["level"])
	assert.Equal(t, res.err.Error(), record["msg"])
	assert.Contains(t, record, "tool")
}
