// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/config"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/identity"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/logger"
)

// IdentityName is the default executable name of the identity tool.
const IdentityName = "identity"

const (
	instructionUpsert = "upsert"
	instructionParse  = "parse"
)

// now is the clock used to name identity snapshots.
var now = time.Now

type identityOptions struct {
	common   commonOptions
	upsert   bool
	parse    bool
	save     bool
	calldata bool
	outDir   string
}

// NewIdentityCommand builds the identity root command.
//
// Parameters:
//   - version: Version reported by --version
//   - log: Logger for diagnostics; replaced by a JSON logger when configured
//
// Returns:
//   - *cobra.Command: Command ready to execute; failures are logged once through the
//     resolved logger and returned
func NewIdentityCommand(version string, log logger.Logger) *cobra.Command {
	opts := &identityOptions{}
	exeName := posix.GetExecutableName(IdentityName)

	cmd := &cobra.Command{
		Use:   exeName + " (-u|--upsert) <id> <version> <path> | (-p|--parse) <data>",
		Short: "Build and decode EnclaveIdentityDao call data",
		Long: `Build the upsertEnclaveIdentity call tuple for an enclave identity record,
or decode getEnclaveIdentity return data back into the record.

The identity file passed to --upsert is a JSON document of the form
{"enclaveIdentity": {...}, "signature": "<hex>"}.`,
		Example: fmt.Sprintf(`  %[1]s -u 0 3 ./qe-identity.json
  %[1]s -u 0 3 ./qe-identity.json --calldata
  %[1]s -p 0x0000...0020 --save --out-dir ./snapshots`, exeName),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.common.report(opts.run(cmd, args, log))
		},
	}

	cmd.Flags().BoolVarP(&opts.upsert, instructionUpsert, "u", false, "build the upsertEnclaveIdentity call tuple")
	cmd.Flags().BoolVarP(&opts.parse, instructionParse, "p", false, "decode getEnclaveIdentity return data")
	cmd.Flags().BoolVarP(&opts.save, "save", "s", false, "with --parse, also write the JSON to <timestamp>-identity.json")
	cmd.Flags().BoolVar(&opts.calldata, "calldata", false, "with --upsert, print ABI-encoded call data instead of the tuple")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "", "directory for --save snapshots (overrides configuration)")
	opts.common.bind(cmd, log)

	return cmd
}

// ExecuteIdentity runs the identity command against os.Args.
func ExecuteIdentity(ctx context.Context, version string, log logger.Logger) error {
	return NewIdentityCommand(version, log).ExecuteContext(ctx)
}

func (o *identityOptions) run(cmd *cobra.Command, args []string, log logger.Logger) error {
	selected, err := instruction(map[string]bool{
		instructionUpsert: o.upsert,
		instructionParse:  o.parse,
	})
	if err != nil {
		return err
	}

	cfg, log, err := o.common.resolve(cmd, log)
	if err != nil {
		return err
	}

	if selected == instructionUpsert {
		return o.runUpsert(cmd, args, cfg)
	}
	return o.runParse(cmd, args, cfg, log)
}

// runUpsert validates every operand before writing anything to standard output.
func (o *identityOptions) runUpsert(cmd *cobra.Command, args []string, cfg *config.Config) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: missing or invalid ID", ErrUsage)
	}
	id, err := identity.ParseUint256(args[0])
	if err != nil {
		return fmt.Errorf("%w: missing or invalid ID: %w", ErrUsage, err)
	}

	if len(args) < 2 {
		return fmt.Errorf("%w: missing or invalid version", ErrUsage)
	}
	version, err := identity.ParseUint256(args[1])
	if err != nil {
		return fmt.Errorf("%w: missing or invalid version: %w", ErrUsage, err)
	}

	if len(args) < 3 || args[2] == "" {
		return fmt.Errorf("%w: missing identity path", ErrUsage)
	}

	payload, err := identity.LoadPayload(args[2])
	if err != nil {
		return err
	}

	call, err := identity.BuildUpsertCall(id, version, payload.EnclaveIdentity, payload.Signature)
	if err != nil {
		return err
	}

	if o.calldata {
		contract, err := loadContract(cfg)
		if err != nil {
			return err
		}
		data, err := contract.PackUpsert(call)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(data))
		return err
	}

	out, err := call.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func (o *identityOptions) runParse(cmd *cobra.Command, args []string, cfg *config.Config, log logger.Logger) error {
	if len(args) < 1 || args[0] == "" {
		return fmt.Errorf("%w: missing data", ErrUsage)
	}

	data, err := identity.DecodeHexData(args[0])
	if err != nil {
		return err
	}

	contract, err := loadContract(cfg)
	if err != nil {
		return err
	}

	record, err := contract.DecodeIdentityResult(data)
	if err != nil {
		return err
	}

	out, err := record.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(out)); err != nil {
		return err
	}

	if !o.save {
		return nil
	}

	dir := o.outDir
	if dir == "" {
		dir = cfg.Identity.OutputDir
	}
	path, err := identity.SaveSnapshot(dir, now(), out)
	if err != nil {
		return err
	}
	log.Printf("Saved identity snapshot to %s", path)
	return nil
}

// loadContract returns the configured ABI, or the embedded one when none is set.
func loadContract(cfg *config.Config) (*identity.Contract, error) {
	if cfg.Identity.ABIFile == "" {
		return identity.DefaultContract(), nil
	}

	f, err := os.Open(cfg.Identity.ABIFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open ABI file: %w", err)
	}
	defer f.Close()

	return identity.NewContract(f)
}
