package cli

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strconv"
	"time"

	"github.com/openacid/testkeys"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/e11jah/bstmap"
)

type statsOptions struct {
	keyset  string
	shuffle bool
	seed    int64
	limit   int
}

func newStatsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Insert a bundled key set and report size and height",
		Long: "Insert a bundled key set into a map and report its size and height.\n" +
			"Key sets are sorted, so without --shuffle the tree degenerates to height == size.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), statsOptions{
				keyset:  v.GetString("keyset"),
				shuffle: v.GetBool("shuffle"),
				seed:    v.GetInt64("seed"),
				limit:   v.GetInt("limit"),
			})
		},
	}
	cmd.Flags().String("keyset", "", "name of the key set, see the keysets command")
	cmd.Flags().Bool("shuffle", false, "shuffle keys before inserting")
	cmd.Flags().Int64("seed", 1, "seed used by --shuffle")
	cmd.Flags().Int("limit", 10000, "insert at most this many keys, 0 for all")
	return cmd
}

func runStats(out io.Writer, opts statsOptions) error {
	if !slices.Contains(testkeys.AssetNames(), opts.keyset) {
		return errors.Errorf("unknown key set %q", opts.keyset)
	}

	keys := slices.Clone(testkeys.Load(opts.keyset))
	if opts.shuffle {
		rnd := rand.New(rand.NewSource(opts.seed))
		rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	}
	if opts.limit > 0 && len(keys) > opts.limit {
		keys = keys[:opts.limit]
	}

	start := time.Now()
	m := bstmap.New[string, int]()
	for i, k := range keys {
		m.Insert(bstmap.Entry[string, int]{Key: k, Value: i})
	}
	log.WithFields(log.Fields{
		"keyset":  opts.keyset,
		"keys":    len(keys),
		"elapsed": time.Since(start),
	}).Info("key set inserted")

	first, last := "", ""
	if !m.Empty() {
		first = m.Begin().Key()
		last = m.End().Prev().Key()
	}

	data := pterm.TableData{
		{"Stat", "Value"},
		{"keyset", opts.keyset},
		{"inserted", strconv.Itoa(len(keys))},
		{"size", strconv.Itoa(m.Size())},
		{"height", strconv.Itoa(m.Height())},
		{"first", first},
		{"last", last},
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render stats")
	}
	fmt.Fprintln(out, table)
	return nil
}

func newKeysetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keysets",
		Short: "List the bundled key sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := slices.Sorted(slices.Values(testkeys.AssetNames()))
			items := make([]pterm.BulletListItem, 0, len(names))
			for _, n := range names {
				items = append(items, pterm.BulletListItem{Level: 0, Text: n})
			}
			list, err := pterm.DefaultBulletList.WithItems(items).Srender()
			if err != nil {
				return errors.Wrap(err, "render key sets")
			}
			fmt.Fprint(cmd.OutOrStdout(), list)
			return nil
		},
	}
}
