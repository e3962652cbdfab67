package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skip-mev/nft-auction/simulator"
)

const (
	envPrefix = "AUCTIONSIM"

	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagNoColor  = "no-color"

	keyLogLevel = "log_level"
)

// NewRootCmd returns the auctionsim root command.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "auctionsim",
		Short:        "Replay nft auction scenarios against an in-memory ledger",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		NewRunCmd(v),
	)

	return rootCmd
}

// NewRunCmd implements a command that executes a scenario file and prints the
// resulting auctions and balances. Without --config the built-in outbid
// scenario is run.
func NewRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := loadScenario(v)
			if err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}

			noColor, _ := cmd.Flags().GetBool(flagNoColor)
			logger := log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(level), log.ColorOption(!noColor))

			sim, err := simulator.New(logger, sc)
			if err != nil {
				return err
			}

			report := sim.Run()
			if err := report.Write(cmd.OutOrStdout()); err != nil {
				return err
			}

			if report.Failed() {
				return fmt.Errorf("scenario failed")
			}

			return nil
		},
	}

	cmd.Flags().StringP(flagConfig, "c", "", "scenario file (yaml, toml or json)")
	cmd.Flags().String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	cmd.Flags().Bool(flagNoColor, false, "disable colored log output")

	_ = v.BindPFlag(flagConfig, cmd.Flags().Lookup(flagConfig))
	_ = v.BindPFlag(keyLogLevel, cmd.Flags().Lookup(flagLogLevel))

	return cmd
}

// loadScenario reads the scenario named by the config flag, or returns the
// default scenario when none is given. The log level set in the scenario is
// used unless overridden by flag or environment.
func loadScenario(v *viper.Viper) (simulator.Scenario, error) {
	path := v.GetString(flagConfig)
	if path == "" {
		sc := simulator.DefaultScenario()
		v.SetDefault(keyLogLevel, sc.LogLevel)
		return sc, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return simulator.Scenario{}, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	var sc simulator.Scenario
	if err := v.Unmarshal(&sc); err != nil {
		return simulator.Scenario{}, fmt.Errorf("failed to decode scenario %s: %w", path, err)
	}

	sc.LogLevel = v.GetString(keyLogLevel)

	return sc, nil
}
