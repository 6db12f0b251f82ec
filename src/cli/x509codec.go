// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/x509/pemhex"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/logger"
)

// X509CodecName is the default executable name of the certificate codec tool.
const X509CodecName = "x509codec"

const (
	instructionDecode = "decode"
	instructionEncode = "encode"
)

type x509CodecOptions struct {
	common commonOptions
	decode bool
	encode bool
	table  bool
}

// NewX509CodecCommand builds the x509codec root command.
//
// Parameters:
//   - version: Version reported by --version
//   - log: Logger for diagnostics; replaced by a JSON logger when configured
//
// Returns:
//   - *cobra.Command: Command ready to execute; failures are logged once through the
//     resolved logger and returned
func NewX509CodecCommand(version string, log logger.Logger) *cobra.Command {
	opts := &x509CodecOptions{}
	exeName := posix.GetExecutableName(X509CodecName)

	cmd := &cobra.Command{
		Use:   exeName + " (-d|--decode) <pemFilePath> | (-e|--encode) <derHex...>",
		Short: "Convert PEM certificate and CRL bundles to DER hex and back",
		Long: `Split a PEM bundle of certificates and CRLs into blocks and print each
block's DER as hex, or convert DER hex strings back to base64.`,
		Example: fmt.Sprintf(`  %[1]s -d ./pck-chain.pem
  %[1]s -d ./pck-chain.pem --table
  %[1]s -e 3082... 3082...`, exeName),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.common.report(opts.run(cmd, args, log))
		},
	}

	cmd.Flags().BoolVarP(&opts.decode, instructionDecode, "d", false, "print the DER hex of every block in a PEM file")
	cmd.Flags().BoolVarP(&opts.encode, instructionEncode, "e", false, "print the base64 of every DER hex argument")
	cmd.Flags().BoolVar(&opts.table, "table", false, "with --decode, print a markdown summary table instead of hex")
	opts.common.bind(cmd, log)

	return cmd
}

// ExecuteX509Codec runs the x509codec command against os.Args.
func ExecuteX509Codec(ctx context.Context, version string, log logger.Logger) error {
	return NewX509CodecCommand(version, log).ExecuteContext(ctx)
}

func (o *x509CodecOptions) run(cmd *cobra.Command, args []string, log logger.Logger) error {
	selected, err := instruction(map[string]bool{
		instructionDecode: o.decode,
		instructionEncode: o.encode,
	})
	if err != nil {
		return err
	}

	if _, log, err = o.common.resolve(cmd, log); err != nil {
		return err
	}

	if selected == instructionDecode {
		return o.runDecode(cmd, args, log)
	}
	return runEncode(cmd.Context(), cmd.OutOrStdout(), args)
}

func (o *x509CodecOptions) runDecode(cmd *cobra.Command, args []string, log logger.Logger) error {
	if len(args) < 1 || args[0] == "" {
		return fmt.Errorf("%w: missing PEM path", ErrUsage)
	}

	bundle, err := readBundle(args[0])
	if err != nil {
		return err
	}
	if bundle.Dropped > 0 {
		log.Printf("Warning: ignoring %d line(s) after the last PEM footer in %s", bundle.Dropped, args[0])
	}

	if o.table {
		infos := make([]*pemhex.BlockInfo, 0, bundle.Len())
		for i, block := range bundle.Blocks {
			info, err := pemhex.Describe(block)
			if err != nil {
				return fmt.Errorf("block %d of %d: %w", i+1, bundle.Len(), err)
			}
			infos = append(infos, info)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), pemhex.RenderTable(infos))
		return err
	}

	return printNumbered(cmd.Context(), cmd.OutOrStdout(), "DER", bundle.Blocks, pemhex.PemToDerHex)
}

func runEncode(ctx context.Context, w io.Writer, args []string) error {
	return printNumbered(ctx, w, "Base64", args, pemhex.DerHexToBase64)
}

// readBundle reads a PEM file through a pooled buffer and splits it.
func readBundle(path string) (*pemhex.Bundle, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading PEM file: %w", err)
	}
	defer f.Close()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("error reading PEM file %s: %w", path, err)
	}

	return pemhex.SplitBundle(buf.String()), nil
}

// printNumbered converts each input and writes it under an
// "=== Printing <what> i of N ===" banner, followed by two blank lines.
// It stops at the first failure; entries already written stay written.
func printNumbered(ctx context.Context, w io.Writer, what string, inputs []string, convert func(string) (string, error)) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	n := len(inputs)
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := convert(in)
		if err != nil {
			return fmt.Errorf("%s %d of %d: %w", what, i+1, n, err)
		}

		buf.Reset()
		fmt.Fprintf(buf, "=== Printing %s %d of %d ===\n", what, i+1, n)
		buf.WriteString(out)
		buf.WriteString("\n\n\n")
		if _, err := buf.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
