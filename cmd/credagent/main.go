package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rmorlok/credagent/config"
	"github.com/spf13/cobra"
)

var cfgFile string
var cfg config.C

func loadConfig() error {
	if cfgFile == "" {
		cfgFile = os.Getenv("CREDAGENT_CONFIG")
	}

	if cfgFile == "" {
		return errors.New("no configuration file found; must be specified with --config or CREDAGENT_CONFIG environment variable")
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	return errors.Wrapf(err, "failed to load configuration from '%s'", cfgFile)
}

func main() {
	// Optionally load environment variables from a .env file.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "credagent",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file; may also be specified in CREDAGENT_CONFIG")

	rootCmd.AddCommand(cmdS2AAddress())
	rootCmd.AddCommand(cmdToken())
	rootCmd.AddCommand(cmdSignAssertion())
	rootCmd.AddCommand(cmdValidate())
	rootCmd.AddCommand(cmdWorker())
	rootCmd.Execute()
}
