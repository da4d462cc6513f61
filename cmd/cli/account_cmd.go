package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
)

func newAccountCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Fetch and decode launchpad accounts",
	}
	cmd.AddCommand(
		newAccountDecodeCmd(opts),
		newAccountSnapshotCmd(opts),
		newAccountLeaderboardCmd(opts),
	)
	return cmd
}

func newAccountDecodeCmd(opts *globalOpts) *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "decode [pubkey]",
		Short: "Decode an account by its discriminator",
		Long:  "Decode a launchpad account fetched from RPC, or from a base64 file with --data-file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				acc codec.Account
				err error
			)
			switch {
			case dataFile != "":
				acc, err = decodeFile(dataFile)
			case len(args) == 1:
				acc, err = fetchAndDecode(cmd, opts, args[0])
			default:
				return fmt.Errorf("pubkey or --data-file is required")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account=%s\n", acc.AccountName())
			return printJSON(cmd.OutOrStdout(), acc)
		},
	}
	cmd.Flags().StringVar(&dataFile, "data-file", "", "file holding base64 account data")
	return cmd
}

func decodeFile(path string) (codec.Account, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(content)))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return launchpad.DecodeAny(raw)
}

func fetchAndDecode(cmd *cobra.Command, opts *globalOpts, pubkey string) (codec.Account, error) {
	addr, err := parsePubkey("account", pubkey)
	if err != nil {
		return nil, err
	}
	deps, err := newRuntime(cmd, opts)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	return deps.reader.ReadAny(ctx, addr)
}

type snapshotView struct {
	Launch            *launchpad.TokenLaunch    `json:"launch"`
	Config            *launchpad.PlatformConfig `json:"config"`
	Position          *launchpad.UserPosition   `json:"position,omitempty"`
	Pool              *launchpad.AmmPool        `json:"pool,omitempty"`
	SpotPrice         string                    `json:"spotPrice,omitempty"`
	RealSol           string                    `json:"realSol"`
	MigrationProgress string                    `json:"migrationProgress"`
	Migratable        bool                      `json:"migratable"`
}

func newAccountSnapshotCmd(opts *globalOpts) *cobra.Command {
	var mintStr, walletStr string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Read config, launch, position and pool for a mint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := parsePubkey("mint", mintStr)
			if err != nil {
				return err
			}
			wallet, err := parseOptionalPubkey("wallet", walletStr)
			if err != nil {
				return err
			}
			deps, err := newRuntime(cmd, opts)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			snap, err := deps.reader.Snapshot(ctx, wallet, mint)
			if err != nil {
				return err
			}
			view := snapshotView{
				Launch:   snap.Launch,
				Config:   snap.Config,
				Position: snap.Position,
				Pool:     snap.Pool,
				RealSol:  formatSol(snap.Launch.RealSolReserves),
				MigrationProgress: formatBps(curve.MigrationProgressBps(
					snap.Launch.RealSolReserves, snap.Config.MigrationThreshold)),
				Migratable: !snap.Launch.Migrated &&
					curve.CheckMigrationThreshold(snap.Launch.RealSolReserves, snap.Config.MigrationThreshold),
			}
			if snap.Launch.Migrated && snap.Pool != nil {
				if p, err := curve.PoolSpotPrice(snap.Pool.Reserves()); err == nil {
					view.SpotPrice = formatPrice(p)
				}
			} else if p, err := curve.SpotPrice(snap.Launch.Curve()); err == nil {
				view.SpotPrice = formatPrice(p)
			}
			return printJSON(cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().StringVar(&mintStr, "mint", "", "token mint")
	cmd.Flags().StringVar(&walletStr, "wallet", "", "wallet whose position to include")
	_ = cmd.MarkFlagRequired("mint")
	return cmd
}

func newAccountLeaderboardCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the volume leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newRuntime(cmd, opts)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			lb, err := deps.reader.Leaderboard(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, e := range lb.Entries {
				fmt.Fprintf(out, "%3d  %s  %s SOL\n", i+1, e.Mint, formatSol(e.Volume))
			}
			return nil
		},
	}
}
