// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemhex

import (
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Kinds of DER content recognized by Describe.
const (
	KindCertificate = "certificate"
	KindCRL         = "crl"
	KindPKCS7       = "pkcs7"
	KindUnknown     = "unknown"
)

// BlockInfo summarizes one PEM block of a bundle.
type BlockInfo struct {
	Label   string    // PEM label from the header line, e.g. "CERTIFICATE"
	Kind    string    // One of the Kind constants
	Subject string    // Certificate subject CN; empty for CRLs
	Issuer  string    // Issuer CN
	Expires time.Time // NotAfter for certificates, NextUpdate for CRLs
	DERSize int       // Length of the decoded DER in bytes
}

// pemLabel extracts the label from a "-----BEGIN LABEL-----" line.
func pemLabel(line string) string {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "-----BEGIN ") || !strings.HasSuffix(line, "-----") {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(line, "-----BEGIN "), "-----")
}

func commonName(cn, full string) string {
	if cn != "" {
		return cn
	}
	return full
}

// Describe decodes a block and classifies its DER content.
//
// Certificates and CRLs are parsed with crypto/x509; anything else is tried
// as a PKCS#7 bundle using Cloudflare's library. Content that matches none of
// these is reported as KindUnknown rather than as an error.
//
// Parameters:
//   - pemBlock: One block as produced by SplitBundle
//
// Returns:
//   - *BlockInfo: Block summary
//   - error: ErrDecode if the body is not valid base64
func Describe(pemBlock string) (*BlockInfo, error) {
	der, err := base64.StdEncoding.DecodeString(body(pemBlock))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	info := &BlockInfo{
		Label:   pemLabel(strings.SplitN(pemBlock, "\n", 2)[0]),
		Kind:    KindUnknown,
		DERSize: len(der),
	}

	if cert, err := x509.ParseCertificate(der); err == nil {
		info.Kind = KindCertificate
		info.Subject = commonName(cert.Subject.CommonName, cert.Subject.String())
		info.Issuer = commonName(cert.Issuer.CommonName, cert.Issuer.String())
		info.Expires = cert.NotAfter
		return info, nil
	}

	if crl, err := x509.ParseRevocationList(der); err == nil {
		info.Kind = KindCRL
		info.Issuer = commonName(crl.Issuer.CommonName, crl.Issuer.String())
		info.Expires = crl.NextUpdate
		return info, nil
	}

	if p, err := pkcs7.ParsePKCS7(der); err == nil {
		info.Kind = KindPKCS7
		if certs := p.Content.SignedData.Certificates; len(certs) > 0 {
			info.Subject = commonName(certs[0].Subject.CommonName, certs[0].Subject.String())
			info.Issuer = commonName(certs[0].Issuer.CommonName, certs[0].Issuer.String())
			info.Expires = certs[0].NotAfter
		}
	}

	return info, nil
}

// RenderTable renders block summaries as a markdown table in bundle order.
func RenderTable(infos []*BlockInfo) string {
	if len(infos) == 0 {
		return "No PEM blocks to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"#", "Label", "Kind", "Subject", "Issuer", "Expires", "DER Bytes"}
	table.Header(headers)

	var rows [][]string
	for i, info := range infos {
		expires := "-"
		if !info.Expires.IsZero() {
			expires = info.Expires.UTC().Format("2006-01-02")
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			dash(info.Label),
			info.Kind,
			dash(info.Subject),
			dash(info.Issuer),
			expires,
			fmt.Sprintf("%d", info.DERSize),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
