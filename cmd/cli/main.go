package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ninja0404/launchpad-go-sdk/pkg/builder"
	sdkconfig "github.com/ninja0404/launchpad-go-sdk/pkg/config"
	"github.com/ninja0404/launchpad-go-sdk/pkg/pda"
	"github.com/ninja0404/launchpad-go-sdk/pkg/reader"
	sdkrpc "github.com/ninja0404/launchpad-go-sdk/pkg/rpc"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalOpts struct {
	configPath   string
	network      string
	rpcURL       string
	commitment   string
	programID    string
	tokenProgram string
	rateLimitRPS float64
	logLevel     string
	timeoutSec   int
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	root := &cobra.Command{
		Use:          "launchpad",
		Short:        "Launchpad SDK CLI (bonding curve + AMM)",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (yaml/json/toml); LAUNCHPAD_* env vars also apply")
	root.PersistentFlags().StringVar(&opts.network, "network", "", "mainnet|testnet|devnet|localnet|custom")
	root.PersistentFlags().StringVar(&opts.rpcURL, "rpc-url", "", "RPC endpoint (network default if empty)")
	root.PersistentFlags().StringVar(&opts.commitment, "commitment", "", "RPC commitment level")
	root.PersistentFlags().StringVar(&opts.programID, "program-id", "", "launchpad program id")
	root.PersistentFlags().StringVar(&opts.tokenProgram, "token-program", "", "token program owning the mints (default SPL Token)")
	root.PersistentFlags().Float64Var(&opts.rateLimitRPS, "rate-limit-rps", -1, "rate limit RPS (0 to disable)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().IntVar(&opts.timeoutSec, "timeout-sec", 0, "RPC timeout seconds")

	root.AddCommand(
		newConfigCmd(opts),
		newPDACmd(opts),
		newAccountCmd(opts),
		newQuoteCmd(opts),
		newBuildCmd(opts),
		newSubmitCmd(opts),
	)

	return root
}

func newConfigCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show resolved config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "network=%s\nrpc=%s\ncommitment=%s\n", cfg.RPC.Network, cfg.RPC.ResolveRPCURL(), cfg.RPC.Commitment)
			fmt.Fprintf(out, "timeout=%s\nrate_limit=%g rps (burst %d)\n", cfg.RPC.Timeout, cfg.RPC.RateLimit.RPS, cfg.RPC.RateLimit.Burst)
			fmt.Fprintf(out, "program_id=%s\n", cfg.ProgramID)
			if cfg.Jito.URL != "" {
				fmt.Fprintf(out, "jito=%s tip=%s SOL\n", cfg.Jito.URL, formatSol(cfg.Jito.TipLamports))
			}
			return nil
		},
	}
}

// loadConfig loads file and env configuration, then applies explicit flags.
func loadConfig(cmd *cobra.Command, opts *globalOpts) (*sdkconfig.Config, error) {
	cfg, err := sdkconfig.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.network != "" {
		cfg.RPC.Network = sdkconfig.Network(opts.network)
	}
	if opts.rpcURL != "" {
		cfg.RPC.RPCURL = opts.rpcURL
	}
	if opts.commitment != "" {
		cfg.RPC.Commitment = opts.commitment
	}
	if opts.programID != "" {
		if cfg.ProgramID, err = parsePubkey("program-id", opts.programID); err != nil {
			return nil, err
		}
	}
	if opts.rateLimitRPS >= 0 {
		cfg.RPC.RateLimit.RPS = opts.rateLimitRPS
	}
	if opts.timeoutSec > 0 {
		cfg.RPC.Timeout = time.Duration(opts.timeoutSec) * time.Second
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.RPC.Logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return cfg, nil
}

type runtimeDeps struct {
	cfg     *sdkconfig.Config
	log     zerolog.Logger
	rpc     *sdkrpc.Client
	builder *builder.Builder
	reader  *reader.Reader
}

// newRuntime wires the SDK components from config. The RPC client is lazy,
// so offline commands never touch the network.
func newRuntime(cmd *cobra.Command, opts *globalOpts) (*runtimeDeps, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	var bopts []builder.BuilderOption
	if opts.tokenProgram != "" {
		tp, err := parsePubkey("token-program", opts.tokenProgram)
		if err != nil {
			return nil, err
		}
		bopts = append(bopts, builder.WithTokenProgram(tp))
	}
	b := builder.New(cfg.ProgramID, bopts...)
	client := sdkrpc.NewClient(cfg.RPC)
	return &runtimeDeps{
		cfg:     cfg,
		log:     cfg.RPC.Logger,
		rpc:     client,
		builder: b,
		reader:  reader.New(client, b.Deriver(), reader.WithLogger(cfg.RPC.Logger)),
	}, nil
}

func (d *runtimeDeps) deriver() *pda.Deriver { return d.builder.Deriver() }

func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(parseLogLevel(level)).
		With().Timestamp().Logger()
}

func parseLogLevel(lvl string) zerolog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
