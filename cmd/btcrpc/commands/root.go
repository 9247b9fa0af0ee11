// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luxfi/btcrpc"
	"github.com/luxfi/btcrpc/log"
)

// Exit codes returned by Execute.
const (
	ExitOK             = 0
	ExitTransportError = 1
	ExitNodeError      = 2
)

var (
	logger log.Logger = log.NewNoopLogger()
	client *btcrpc.Client
)

// RootCmd is the root command for btcrpc.
var RootCmd = &cobra.Command{
	Use:           "btcrpc",
	Short:         "Bitcoin Core JSON-RPC client",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if path := viper.GetString(Config); path != "" {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
		}

		logCfg, err := loadLogConfig()
		if err != nil {
			return err
		}
		logger = log.NewZapLogger(*logCfg)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err = cfg.NewClient(btcrpc.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		return nil
	},
}

// loadLogConfig reads BTCRPC_LOG_* variables and lets flags and the config
// file override them.
func loadLogConfig() (*log.Config, error) {
	var cfg log.Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read log config: %w", err)
	}
	if viper.IsSet(Log_Format) {
		cfg.Format = viper.GetString(Log_Format)
	}
	if viper.IsSet(Log_Level) {
		cfg.Level = log.Level(viper.GetString(Log_Level))
	}

	level, err := log.ParseLevel(string(cfg.Level))
	if err != nil {
		return nil, err
	}
	cfg.Level = level
	return &cfg, nil
}

// loadConfig reads BTCRPC_* variables and lets flags and the config file
// override them.
func loadConfig() (*btcrpc.Config, error) {
	cfg, err := btcrpc.LoadConfig(viper.GetString(EnvFile))
	if err != nil {
		return nil, err
	}
	if viper.IsSet(URL) {
		cfg.URL = viper.GetString(URL)
	}
	if viper.IsSet(User) {
		cfg.Username = viper.GetString(User)
	}
	if viper.IsSet(Password) {
		cfg.Password = viper.GetString(Password)
	}
	if viper.IsSet(Timeout) {
		cfg.Timeout = viper.GetDuration(Timeout)
	}
	if viper.IsSet(Retry_Attempts) {
		cfg.Retry.MaxAttempts = viper.GetUint32(Retry_Attempts)
	}
	if viper.IsSet(Retry_Interval) {
		cfg.Retry.Interval = viper.GetDuration(Retry_Interval)
	}
	if viper.IsSet(Retry_Disabled) {
		cfg.Retry.Disabled = viper.GetBool(Retry_Disabled)
	}
	return cfg, nil
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String(Config, "", "config file (toml, yaml or json) with the same keys as the flags")
	flags.String(EnvFile, ".env", "dotenv file with BTCRPC_* variables")
	flags.String(URL, "", "node RPC endpoint (default $BTCRPC_URL or http://127.0.0.1:8332)")
	flags.String(User, "", "RPC username (default $BTCRPC_USERNAME)")
	flags.String(Password, "", "RPC password (default $BTCRPC_PASSWORD)")
	flags.Duration(Timeout, 0, "timeout of a single HTTP round trip (default $BTCRPC_TIMEOUT or 30s)")
	flags.Uint32(Retry_Attempts, 0, "busy replies tolerated before the final attempt (default 10)")
	flags.Duration(Retry_Interval, 0, "wait between attempts on a busy node (default 500ms)")
	flags.Bool(Retry_Disabled, false, "never retry, even when the node is still starting")
	flags.String(Log_Level, "", "level of logging: debug, info, warn or error (default $BTCRPC_LOG_LEVEL or info)")
	flags.String(Log_Format, "", "log format: console, logfmt or json (default $BTCRPC_LOG_FORMAT or console)")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	RootCmd.AddCommand(
		GetBlockCountCmd,
		GetBestBlockHashCmd,
		GetBlockHashCmd,
		GetBlockCmd,
		GetBlockchainInfoCmd,
		GetBalanceCmd,
		GetNewAddressCmd,
		ValidateAddressCmd,
		SendRawTransactionCmd,
		CallCmd,
		VersionCmd,
	)
}

// Execute runs the root command and maps the outcome to an exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var rpcErr *btcrpc.RPCError
	if errors.As(err, &rpcErr) {
		fmt.Fprintf(RootCmd.ErrOrStderr(), "error code: %d\nerror message:\n%s\n", rpcErr.Code, rpcErr.Message)
		return ExitNodeError
	}
	fmt.Fprintln(RootCmd.ErrOrStderr(), "error:", err)
	return ExitTransportError
}
