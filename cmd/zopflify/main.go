// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

// Command zopflify drives the brzopfli backward-reference selector over a
// file and reports the chosen commands: a demo harness, not a real Brotli
// encoder, since brzopfli only selects commands and never writes a
// bit-stream.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brzopfli/brzopfli"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("zopflify failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "zopflify",
		Short: "Run the brzopfli backward-reference selector over a file",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(), newStatsCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var quality int
	var lgwin int

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Select backward references for a file and print the command list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			opts := brzopfli.DefaultOptions()
			opts.Quality = quality
			opts.LgWin = lgwin

			result, err := brzopfli.CreateBackwardReferences(data, opts, [4]int{16, 15, 11, 4}, 0, nil)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"file":         args[0],
				"bytes_in":     len(data),
				"quality":      opts.Quality,
				"lgwin":        opts.LgWin,
				"num_commands": len(result.Commands),
				"num_literals": result.NumLiterals,
			}).Info("selected backward references")

			for i, c := range result.Commands {
				fmt.Printf("%d: insert=%d copy=%d len_code=%d dist_code=%d\n",
					i, c.InsertLen, c.CopyLen, c.CopyLenCode, c.DistanceCode)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&quality, "quality", 11, "encode quality, 0-11")
	cmd.Flags().IntVar(&lgwin, "lgwin", 22, "window size, log2 bytes, 10-24")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var lgwin int

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Report command and literal counts across quality levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			for _, quality := range []int{0, 5, 9, 10, 11} {
				opts := brzopfli.DefaultOptions()
				opts.Quality = quality
				opts.LgWin = lgwin

				result, err := brzopfli.CreateBackwardReferences(data, opts, [4]int{16, 15, 11, 4}, 0, nil)
				if err != nil {
					log.WithError(err).WithField("quality", quality).Warn("selection failed")
					continue
				}

				log.WithFields(logrus.Fields{
					"quality":      quality,
					"num_commands": len(result.Commands),
					"num_literals": result.NumLiterals,
					"bytes_in":     len(data),
				}).Info("quality level summary")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&lgwin, "lgwin", 22, "window size, log2 bytes, 10-24")
	return cmd
}
