package main

import "fmt"
import "math/rand"
import "time"

import "github.com/cloudfoundry/gosigar"
import hm "github.com/dustin/go-humanize"
import "github.com/spf13/cobra"

import "github.com/bnclabs/llrb-index/llrb"

func loadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "load random entries and report depth statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doload()
		},
	}
}

func doload() error {
	rnd := rand.New(rand.NewSource(options.seed))

	index := llrb.NewLlrb[string, string]("cmdline", nil)
	now := time.Now()
	for i := 0; i < options.n; i++ {
		key, value := makekeyval(rnd)
		index.Set(key, value)
	}
	took := time.Since(now)

	count := index.Count()
	rate := float64(count) / took.Seconds()
	fmt.Printf(
		"loaded %v entries in %v, %v entries/sec\n",
		hm.Comma(count), took, hm.Comma(int64(rate)))

	stats := index.Stats()
	fmt.Printf(
		"depth min:%v mean:%v max:%v sd:%v\n",
		stats.MinDepth, stats.MeanDepth, stats.MaxDepth, stats.SDDepth)
	for _, pct := range []int{80, 90, 95, 99} {
		fmt.Printf("depth p%v: %v\n", pct, stats.DepthPercentiles[pct])
	}

	mem := sigar.Mem{}
	if err := mem.Get(); err == nil {
		fmt.Printf(
			"system memory total:%v used:%v free:%v\n",
			hm.Bytes(mem.Total), hm.Bytes(mem.Used), hm.Bytes(mem.Free))
	}
	index.Log()
	return index.Destroy()
}
