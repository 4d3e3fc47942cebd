package main

import "fmt"
import "math/rand"
import "os"

import "github.com/bnclabs/golog"
import "github.com/spf13/cobra"

import "github.com/bnclabs/llrb-index/llrb"

var options struct {
	n        int
	seed     int64
	klen     int
	vlen     int
	loglevel string
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "llrb",
		Short:        "exercise and verify the llrb in-memory sorted index",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLogger(nil, map[string]interface{}{
				"log.level": options.loglevel, "log.file": "",
			})
			llrb.LogComponents("all")
		},
	}
	rootCmd.PersistentFlags().IntVarP(
		&options.n, "count", "n", 1000,
		"number of entries to generate and insert")
	rootCmd.PersistentFlags().Int64Var(
		&options.seed, "seed", 42,
		"seed for generating deterministic entries")
	rootCmd.PersistentFlags().IntVar(
		&options.klen, "klen", 32, "maximum length of generated keys")
	rootCmd.PersistentFlags().IntVar(
		&options.vlen, "vlen", 128, "maximum length of generated values")
	rootCmd.PersistentFlags().StringVar(
		&options.loglevel, "log", "info", "log level")

	rootCmd.AddCommand(loadCommand(), verifyCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func makekeyval(rnd *rand.Rand) (key, value string) {
	k := make([]byte, rnd.Intn(options.klen)+1)
	for i := range k {
		k[i] = byte(97 + rnd.Intn(26))
	}
	v := make([]byte, rnd.Intn(options.vlen)+1)
	for i := range v {
		v[i] = byte(97 + rnd.Intn(26))
	}
	return string(k), string(v)
}
