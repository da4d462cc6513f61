package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninja0404/launchpad-go-sdk/pkg/jito"
	"github.com/ninja0404/launchpad-go-sdk/pkg/txbuilder"
)

func newSubmitCmd(opts *globalOpts) *cobra.Command {
	var (
		txFile      string
		viaJito     bool
		waitSeconds int
	)
	cmd := &cobra.Command{
		Use:   "submit [base64-tx]",
		Short: "Send a signed transaction and wait for confirmation",
		Long:  "Send a signed base64 transaction (argument, --tx-file, or stdin with \"-\") over RPC or as a Jito bundle.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := readTxInput(cmd.InOrStdin(), args, txFile)
			if err != nil {
				return err
			}
			tx, err := txbuilder.FromBase64(encoded)
			if err != nil {
				return err
			}
			deps, err := newRuntime(cmd, opts)
			if err != nil {
				return err
			}

			tb := txbuilder.NewBuilder(deps.rpc, deps.rpc)
			if viaJito {
				tb.WithSubmitter(jito.NewClient(deps.cfg.Jito.URL, deps.cfg.Jito.UUID).WithLogger(deps.log))
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(waitSeconds)*time.Second)
			defer cancel()

			sig, err := tb.Submit(ctx, tx)
			if err != nil {
				return err
			}
			deps.log.Info().Str("signature", sig.String()).Bool("jito", viaJito).Msg("transaction confirmed")
			fmt.Fprintln(cmd.OutOrStdout(), sig.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&txFile, "tx-file", "", "file holding the signed base64 transaction")
	cmd.Flags().BoolVar(&viaJito, "jito", false, "submit through the configured Jito block engine")
	cmd.Flags().IntVar(&waitSeconds, "wait-sec", 60, "confirmation timeout")
	return cmd
}

func readTxInput(stdin io.Reader, args []string, path string) (string, error) {
	var raw []byte
	var err error
	switch {
	case path != "":
		raw, err = os.ReadFile(path)
	case len(args) == 1 && args[0] == "-":
		raw, err = io.ReadAll(stdin)
	case len(args) == 1:
		raw = []byte(args[0])
	default:
		return "", fmt.Errorf("pass a transaction, --tx-file, or - for stdin")
	}
	if err != nil {
		return "", fmt.Errorf("read transaction: %w", err)
	}
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "", fmt.Errorf("empty transaction input")
	}
	return s, nil
}
