package cmd

import (
	"math/rand/v2"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"ebtree"
)

var benchCount int

// benchCmd drives a synthetic insert/lookup/delete workload against an
// in-process tree and reports basic timing. Each entry's Value is a
// fresh ksuid; the values are not logged.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "run a synthetic workload against an in-memory tree",
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		root := &ebtree.Root[uint64, string]{}
		entries := make([]*ebtree.Entry[uint64, string], benchCount)
		prng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

		start := time.Now()
		for i := 0; i < benchCount; i++ {
			e := &ebtree.Entry[uint64, string]{Value: ksuid.New().String()}
			ebtree.Insert(root, e, prng.Uint64())
			entries[i] = e
		}
		insertElapsed := time.Since(start)

		start = time.Now()
		hits := 0
		for _, e := range entries {
			if _, ok := ebtree.Lookup(root, e.Key()); ok {
				hits++
			}
		}
		lookupElapsed := time.Since(start)

		start = time.Now()
		for _, e := range entries {
			ebtree.Delete(e)
		}
		deleteElapsed := time.Since(start)

		log.Info().
			Int("count", benchCount).
			Dur("insert", insertElapsed).
			Dur("lookup", lookupElapsed).
			Dur("delete", deleteElapsed).
			Int("hits", hits).
			Msg("bench complete")
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchCount, "count", "n", 100_000, "number of entries to insert")
	rootCmd.AddCommand(benchCmd)
}
