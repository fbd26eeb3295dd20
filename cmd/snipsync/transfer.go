// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:     "export <path>",
	GroupID: "library",
	Short:   "Write the library to a JSON file (same schema as the remote blob)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		if err := app.services.Transfer.Export(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Printf("exported to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:     "import <path>",
	GroupID: "library",
	Short:   "Merge a JSON library file into the local store",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		if err := app.services.Transfer.Import(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Printf("imported %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}
