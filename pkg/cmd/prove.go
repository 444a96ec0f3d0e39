// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/consensys/go-prover/pkg/config"
	"github.com/consensys/go-prover/pkg/metrics"
	"github.com/consensys/go-prover/pkg/prover"
	"github.com/consensys/go-prover/pkg/prover/chooser"
	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/prover/oracle"
	"github.com/consensys/go-prover/pkg/prover/proofdata"
	"github.com/consensys/go-prover/pkg/util/termio"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var proveCmd = &cobra.Command{
	Use:   "prove [flags] vc_file...",
	Short: "prove the verification conditions in one or more files.",
	Long: `Search for proofs of the verification conditions given in one or
	more files, using the theorems declared in those files as the library.
	Exits with status 1 when any verification condition is not proved.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		cfg := proveConfig(cmd)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		//
		defer stop()
		//
		if GetFlag(cmd, "watch") {
			if err := watchFiles(ctx, args, func() { runProve(ctx, cmd, cfg, args) }); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		} else if !runProve(ctx, cmd, cfg, args) {
			stop()
			os.Exit(1)
		}
	},
}

// Determine the configuration, where flags given explicitly override the
// configuration file (if any).
func proveConfig(cmd *cobra.Command) *config.Config {
	var (
		cfg = config.DefaultConfig()
		err error
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		if cfg, err = config.LoadFromFile(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	flags := cmd.Flags()
	//
	if flags.Changed("depth") {
		cfg.Search.MaxDepth = GetUint(cmd, "depth")
	}
	//
	if flags.Changed("timeout") {
		cfg.Search.Timeout = GetDuration(cmd, "timeout")
	}
	//
	if flags.Changed("chooser") {
		cfg.Chooser.Name = GetString(cmd, "chooser")
	}
	//
	if flags.Changed("proof-db") {
		cfg.ProofData.Path = GetString(cmd, "proof-db")
	}
	//
	if flags.Changed("parallelism") {
		cfg.Parallelism = GetUint(cmd, "parallelism")
	}
	//
	if GetFlag(cmd, "no-fallback") {
		cfg.Fallback.Enabled = false
	}
	//
	if GetFlag(cmd, "quiet") {
		cfg.Library.Noisy = false
	}
	//
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

// Prove every VC in the given files, returning true if all were proved.
func runProve(ctx context.Context, cmd *cobra.Command, cfg *config.Config, filenames []string) bool {
	var runID = uuid.New().String()
	//
	file, errs := ReadVCFiles(filenames)
	if len(errs) > 0 {
		for _, err := range errs {
			printSyntaxError(&err)
		}
		//
		return false
	}
	//
	lib, err := library.New(file.Theorems, cfg.Library.Noisy)
	if err != nil {
		fmt.Println(err)
		return false
	}
	//
	ch, err := chooser.New(cfg.Chooser.Name, lib, chooser.GuidedConfig{
		QuantifierBudget: cfg.Chooser.QuantifierBudget,
		MaxDepth:         cfg.Search.MaxDepth,
	})
	if err != nil {
		fmt.Println(err)
		return false
	}
	//
	store, err := openStore(cfg.ProofData)
	if err != nil {
		fmt.Println(err)
		return false
	}
	//
	defer closeStore(store)
	//
	var (
		m = metrics.New()
		p = prover.NewProver(lib, ch, prover.Config{
			MaxDepth: cfg.Search.MaxDepth,
			Timeout:  cfg.Search.Timeout,
			RunID:    runID,
		}).WithStore(store).WithMetrics(m)
	)
	//
	if cfg.Fallback.Enabled {
		p.WithOracle(&oracle.CongruenceClosure{MaxModels: cfg.Fallback.MaxModels})
	}
	//
	log.WithFields(log.Fields{"run": runID, "vcs": len(file.VCs), "chooser": ch.Name()}).Info("starting proof run")
	//
	results := p.ProveAll(ctx, file.VCs, cfg.Parallelism)
	//
	if err := writeResults(cmd, results); err != nil {
		fmt.Println(err)
		return false
	}
	//
	if filename := GetString(cmd, "metrics-file"); filename != "" {
		if err := m.WriteFile(filename); err != nil {
			fmt.Println(err)
			return false
		}
	}
	//
	return allProved(results)
}

func writeResults(cmd *cobra.Command, results []*prover.Result) error {
	if GetFlag(cmd, "json") {
		return prover.WriteJSON(os.Stdout, results)
	}
	//
	opts := prover.RenderOptions{
		Width:  textWidth(cmd),
		Colour: termio.IsTerminal(os.Stdout) && !GetFlag(cmd, "no-colour"),
	}
	//
	for _, r := range results {
		if err := prover.Render(os.Stdout, r, opts); err != nil {
			return err
		}
	}
	//
	return nil
}

func allProved(results []*prover.Result) bool {
	for _, r := range results {
		if !r.IsProved() {
			return false
		}
	}
	//
	return true
}

// Open the prior proof data store, which is persistent when a path is given.
func openStore(cfg config.ProofDataConfig) (proofdata.Store, error) {
	if cfg.Path == "" {
		return proofdata.NewMemory(), nil
	}
	//
	return proofdata.OpenBadger(proofdata.BadgerConfig{Path: cfg.Path})
}

func closeStore(store proofdata.Store) {
	if err := store.Close(); err != nil {
		log.Warnf("closing proof data: %s", err)
	}
}

func init() {
	proveCmd.Flags().Uint("depth", 6, "maximum number of steps in a proof")
	proveCmd.Flags().Duration("timeout", 0, "wall-clock budget for each verification condition")
	proveCmd.Flags().String("chooser", chooser.GuidedName, "strategy for ordering alternatives (naive or guided)")
	proveCmd.Flags().String("config", "", "configuration file (YAML)")
	proveCmd.Flags().Bool("json", false, "report results as JSON")
	proveCmd.Flags().String("metrics-file", "", "write search metrics to this file")
	proveCmd.Flags().String("proof-db", "", "directory of persistent prior proof data")
	proveCmd.Flags().Uint("parallelism", 4, "number of verification conditions proved at once")
	proveCmd.Flags().Bool("no-fallback", false, "do not consult the decision procedure when search fails")
	proveCmd.Flags().Bool("watch", false, "prove again whenever an input file changes")
	proveCmd.Flags().Bool("no-colour", false, "disable coloured output")
	proveCmd.Flags().Uint("textwidth", 0, "width at which terms are broken (defaults to terminal width)")
	rootCmd.AddCommand(proveCmd)
}
