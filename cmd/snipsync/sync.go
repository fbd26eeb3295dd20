// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsemenov/snipsync/internal/service"
)

var (
	flagPrefer   string
	flagInterval time.Duration
)

var pushCmd = &cobra.Command{
	Use:     "push",
	GroupID: "sync",
	Short:   "Publish the local library to the remote blob",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		if err := app.services.Sync.Push(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("pushed")
		return nil
	},
}

var pullCmd = &cobra.Command{
	Use:     "pull",
	GroupID: "sync",
	Short:   "Fetch the remote library and merge it into the local store",
	Long: `Fetch the remote blob and merge it into the local store, the newest
update per command winning. Local-only changes are kept; nothing is written
back to the remote. Use sync for a full two-way reconciliation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		err = app.services.Sync.Pull(cmd.Context())
		if errors.Is(err, service.ErrNothingToPull) {
			fmt.Println("no remote library yet, nothing to pull")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println("pulled")
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:     "sync",
	GroupID: "sync",
	Short:   "Reconcile the local library with the remote blob",
	Long: `Run a full two-way synchronization: fetch the remote blob, detect
conflicts against the local store, resolve them, write the unified snapshot
locally and push it back.

Conflicts are resolved interactively unless --prefer or the configured
default resolution pre-selects an answer for every conflict.`,
	Example: `  snipsync sync
  snipsync sync --prefer local`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(flagPrefer, true)
		if err != nil {
			return err
		}

		err = app.services.Sync.Sync(cmd.Context())
		if errors.Is(err, service.ErrResolutionCancelled) {
			fmt.Println("sync cancelled, no changes applied")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println("in sync")
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:     "watch",
	GroupID: "sync",
	Short:   "Synchronize periodically in the background until interrupted",
	Long: `Run sync on a fixed interval until Ctrl+C. Conflicts are never
prompted for: without --prefer or a configured default resolution a
conflicting run is skipped and retried on the next tick.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		printBuildInfo()

		app, err := newApp(flagPrefer, false)
		if err != nil {
			return err
		}

		interval := flagInterval
		if interval <= 0 {
			interval = app.cfg.Workers.SyncInterval
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		app.services.SyncJob.Start(ctx, interval)
		fmt.Printf("syncing every %s, press Ctrl+C to stop\n", interval)

		<-ctx.Done()
		app.services.SyncJob.Stop()

		fmt.Println("stopped")
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&flagPrefer, "prefer", "", "resolve every conflict the same way: local, remote or both")
	watchCmd.Flags().StringVar(&flagPrefer, "prefer", "", "resolve every conflict the same way: local, remote or both")
	watchCmd.Flags().DurationVar(&flagInterval, "interval", 0, "sync interval (defaults to the configured worker interval)")

	rootCmd.AddCommand(pushCmd, pullCmd, syncCmd, watchCmd)
}
