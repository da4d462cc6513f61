package main

import (
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

type derivedAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
}

type pdaTarget struct {
	name   string
	derive func() (solana.PublicKey, uint8, error)
}

func newPDACmd(opts *globalOpts) *cobra.Command {
	var mintStr, walletStr, lpMintStr string

	cmd := &cobra.Command{
		Use:   "pda",
		Short: "Derive launchpad addresses (offline)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newRuntime(cmd, opts)
			if err != nil {
				return err
			}
			mint, err := parseOptionalPubkey("mint", mintStr)
			if err != nil {
				return err
			}
			wallet, err := parseOptionalPubkey("wallet", walletStr)
			if err != nil {
				return err
			}
			lpMint, err := parseOptionalPubkey("lp-mint", lpMintStr)
			if err != nil {
				return err
			}

			d := deps.deriver()
			targets := []pdaTarget{
				{"platform_config", d.PlatformConfig},
				{"platform_vault", d.PlatformVault},
				{"leaderboard", d.Leaderboard},
			}
			if !mint.IsZero() {
				launch, _, err := d.TokenLaunch(mint)
				if err != nil {
					return err
				}
				pool, _, err := d.AmmPool(mint)
				if err != nil {
					return err
				}
				targets = append(targets,
					pdaTarget{"token_launch", func() (solana.PublicKey, uint8, error) { return d.TokenLaunch(mint) }},
					pdaTarget{"sol_vault", func() (solana.PublicKey, uint8, error) { return d.SolVault(mint) }},
					pdaTarget{"launch_token_vault", func() (solana.PublicKey, uint8, error) { return d.AssociatedTokenAccount(launch, mint) }},
					pdaTarget{"amm_pool", func() (solana.PublicKey, uint8, error) { return d.AmmPool(mint) }},
					pdaTarget{"pool_sol_vault", func() (solana.PublicKey, uint8, error) { return d.PoolSolVault(mint) }},
					pdaTarget{"pool_token_vault", func() (solana.PublicKey, uint8, error) { return d.AssociatedTokenAccount(pool, mint) }},
				)
				if !wallet.IsZero() {
					position, _, err := d.UserPosition(wallet, mint)
					if err != nil {
						return err
					}
					targets = append(targets,
						pdaTarget{"user_position", func() (solana.PublicKey, uint8, error) { return d.UserPosition(wallet, mint) }},
						pdaTarget{"user_token_account", func() (solana.PublicKey, uint8, error) { return d.AssociatedTokenAccount(wallet, mint) }},
						pdaTarget{"stake_vault", func() (solana.PublicKey, uint8, error) { return d.AssociatedTokenAccount(position, mint) }},
					)
				}
			}
			if !lpMint.IsZero() && !wallet.IsZero() {
				targets = append(targets,
					pdaTarget{"user_lp_account", func() (solana.PublicKey, uint8, error) { return d.AssociatedTokenAccount(wallet, lpMint) }})
			}

			out := make([]derivedAddress, 0, len(targets))
			for _, t := range targets {
				addr, bump, err := t.derive()
				if err != nil {
					return err
				}
				out = append(out, derivedAddress{Name: t.name, Address: addr.String(), Bump: bump})
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&mintStr, "mint", "", "token mint")
	cmd.Flags().StringVar(&walletStr, "wallet", "", "user wallet")
	cmd.Flags().StringVar(&lpMintStr, "lp-mint", "", "pool LP mint")
	return cmd
}
