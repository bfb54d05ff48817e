package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/e11jah/bstmap"
)

func newLoadCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load entries from a yaml file and print them in key order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd.OutOrStdout(), v.GetString("file"), v.GetStringSlice("erase"), v.GetStringSlice("at"))
		},
	}
	cmd.Flags().StringP("file", "f", "", "yaml file holding a mapping or a list of key/value items")
	cmd.Flags().StringSlice("erase", nil, "keys to erase after loading")
	cmd.Flags().StringSlice("at", nil, "keys to look up after erasing")
	return cmd
}

func runLoad(out io.Writer, file string, erase, at []string) error {
	if file == "" {
		return errors.New("--file is required")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "read entries")
	}
	entries, err := decodeEntries(data)
	if err != nil {
		return errors.Wrapf(err, "decode %s", file)
	}

	m := bstmap.New[string, string]()
	for _, e := range entries {
		if _, inserted := m.Insert(e); !inserted {
			log.WithField("key", e.Key).Debug("duplicate key ignored")
		}
	}
	log.WithFields(log.Fields{
		"file":    file,
		"read":    len(entries),
		"entries": m.Size(),
		"height":  m.Height(),
	}).Debug("entries loaded")

	for _, k := range erase {
		if m.EraseKey(k) == 0 {
			log.WithField("key", k).Warn("erase: key not present")
		}
	}

	if err := renderEntries(out, m); err != nil {
		return err
	}

	for _, k := range at {
		v, err := m.At(k)
		if err != nil {
			log.WithError(err).Warn("lookup failed")
			continue
		}
		fmt.Fprintf(out, "%s = %s\n", k, *v)
	}
	return nil
}

func renderEntries(out io.Writer, m *bstmap.Map[string, string]) error {
	data := pterm.TableData{{"Key", "Value"}}
	for k, v := range m.All() {
		data = append(data, []string{k, v})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render entries")
	}
	fmt.Fprintln(out, table)
	fmt.Fprintf(out, "%d entries, height %d\n", m.Size(), m.Height())
	return nil
}
