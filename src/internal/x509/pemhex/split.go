// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemhex

import "strings"

const (
	// CertificateFooter terminates a PEM certificate block.
	CertificateFooter = "-----END CERTIFICATE-----"

	// CRLFooter terminates a PEM certificate revocation list block.
	CRLFooter = "-----END X509 CRL-----"
)

// Bundle is an ordered sequence of PEM blocks split from a bundle.
type Bundle struct {
	// Blocks holds each block's lines joined with "\n", in input order.
	Blocks []string

	// Dropped counts non-blank lines after the last footer that never
	// completed a block.
	Dropped int
}

// Len returns the number of complete blocks.
func (b *Bundle) Len() int { return len(b.Blocks) }

// SplitBundle splits pem into blocks terminated by a certificate or CRL footer.
//
// Lines are accumulated until one exactly equals a recognized footer; the
// accumulated lines, footer included, then form one block. Text after the last
// footer is discarded.
//
// Parameters:
//   - pem: Bundle text
//
// Returns:
//   - *Bundle: Blocks in input order plus a count of discarded trailing lines
func SplitBundle(pem string) *Bundle {
	b := &Bundle{}

	var current []string
	for _, line := range strings.Split(pem, "\n") {
		current = append(current, line)
		if line == CertificateFooter || line == CRLFooter {
			b.Blocks = append(b.Blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range current {
		if strings.TrimSpace(line) != "" {
			b.Dropped++
		}
	}

	return b
}
