package main

import "fmt"
import "math/rand"

import hm "github.com/dustin/go-humanize"
import "github.com/spf13/cobra"

import "github.com/bnclabs/llrb-index/llrb"

func verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "run a mixed workload and validate the tree invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doverify()
		},
	}
}

func doverify() error {
	rnd := rand.New(rand.NewSource(options.seed))

	index := llrb.NewLlrb[string, string]("verify", nil)
	ref := map[string]string{}

	for i := 0; i < options.n; i++ {
		key, value := makekeyval(rnd)
		index.Set(key, value)
		ref[key] = value
		if rnd.Intn(4) == 0 { // delete a random entry now and then
			dkey, _, ok := index.Random(rnd)
			if ok {
				index.Delete(dkey)
				delete(ref, dkey)
			}
		}
	}

	if int(index.Count()) != len(ref) {
		return fmt.Errorf(
			"count mismatch, index:%v reference:%v", index.Count(), len(ref))
	}
	for key, value := range ref {
		got, ok := index.Get(key)
		if !ok || got != value {
			return fmt.Errorf("lookup mismatch for %q", key)
		}
	}

	stats, err := index.Validate()
	if err != nil {
		return err
	}
	fmt.Printf(
		"verified %v entries, blacks:%v depth max:%v\n",
		hm.Comma(stats.Entries), stats.Blacks, stats.MaxDepth)
	return index.Destroy()
}
