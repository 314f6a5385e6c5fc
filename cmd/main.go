package main

import (
	"context"
	"os"

	"technews/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// dotenvFile is loaded into the environment before any config is read.
const dotenvFile = ".env"

// @title        Tech News
// @version      1.0
// @description  Server-rendered multi-user publishing site. Sessions travel in an HttpOnly cookie.
// @BasePath     /
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// app carries the configuration shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "technews",
		Short: "Multi-user tech news publishing server",
		Long: `technews serves a small publishing site: accounts, a personal dashboard
and Markdown posts that only their author can edit or delete.

Running technews without a subcommand is the same as "technews serve".`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.ReadFiles(a.v, a.cfgFile, dotenvFile)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is configs/config.yml when present)")
	root.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = bindFlags(a.v, root.PersistentFlags(), map[string]string{"log-level": config.KeyLogLevel})

	serve := newServeCmd(a)
	root.Flags().AddFlagSet(serve.Flags())
	root.RunE = serve.RunE

	root.AddCommand(serve, newMigrateCmd(a))
	return root
}

// bindFlags maps flag names onto config keys so flags take precedence over
// the environment and config files.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
