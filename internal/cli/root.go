// Package cli implements bstmapctl, a small tool that loads entries into a
// bstmap.Map and reports what the tree looks like.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "bstmapctl"

// NewRootCmd builds the command tree. Flags can also be given through
// BSTMAPCTL_* environment variables or a yaml file passed with --config.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	root := &cobra.Command{
		Use:           "bstmapctl",
		Short:         "Inspect ordered maps backed by an unbalanced binary search tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, v)
		},
	}
	root.PersistentFlags().String("config", "", "yaml file with default flag values")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")

	root.AddCommand(newLoadCmd(v), newStatsCmd(v), newKeysetsCmd())
	return root
}

func setup(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	log.SetOutput(cmd.ErrOrStderr())
	if v.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing bstmapctl: %v\n", err)
		os.Exit(1)
	}
}
