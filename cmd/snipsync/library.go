// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsemenov/snipsync/models"
)

var (
	flagName string
	flagDesc string
	flagTags []string
	flagFav  bool

	flagEditName   string
	flagEditScript string
	flagEditDesc   string
	flagEditTags   []string
	flagEditFav    bool
)

var addCmd = &cobra.Command{
	Use:     "add <script>",
	GroupID: "library",
	Short:   "Add a command to the library",
	Example: `  snipsync add 'kubectl get pods -A' --name k8s-pods --tags k8s
  snipsync add 'du -sh * | sort -h' --desc "biggest dirs first"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		saved, err := app.services.Commands.Add(cmd.Context(), models.Command{
			Name:        flagName,
			Script:      strings.Join(args, " "),
			Description: flagDesc,
			Tags:        flagTags,
			Favorite:    flagFav,
		})
		if err != nil {
			return err
		}

		fmt.Printf("added %s (%s)\n", saved.Name, saved.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	GroupID: "library",
	Short:   "List all commands in the library",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		cmds, err := app.services.Commands.List(cmd.Context())
		if err != nil {
			return err
		}

		printCommands(cmds)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:     "search <term>",
	GroupID: "library",
	Short:   "Search commands by name, script, description or tags",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		cmds, err := app.services.Commands.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printCommands(cmds)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:     "show <id>",
	GroupID: "library",
	Short:   "Show a single command in full",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		found, err := app.services.Commands.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printCommand(found)
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:     "copy <id>",
	GroupID: "library",
	Short:   "Copy a command's script to the clipboard",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		if err := app.services.Commands.CopyToClipboard(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("copied to clipboard")
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	GroupID: "library",
	Short:   "Delete a command (kept as a tombstone until the deletion syncs)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		if err := app.services.Commands.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("deleted")
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	GroupID: "library",
	Short:   "Edit fields of an existing command",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("", false)
		if err != nil {
			return err
		}

		current, err := app.services.Commands.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("name") {
			current.Name = flagEditName
		}
		if cmd.Flags().Changed("script") {
			current.Script = flagEditScript
		}
		if cmd.Flags().Changed("desc") {
			current.Description = flagEditDesc
		}
		if cmd.Flags().Changed("tags") {
			current.Tags = flagEditTags
		}
		if cmd.Flags().Changed("fav") {
			current.Favorite = flagEditFav
		}

		updated, err := app.services.Commands.Edit(cmd.Context(), current)
		if err != nil {
			return err
		}

		printCommand(updated)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&flagName, "name", "", "command name (defaults to the first line of the script)")
	addCmd.Flags().StringVar(&flagDesc, "desc", "", "free-form description")
	addCmd.Flags().StringSliceVar(&flagTags, "tags", nil, "comma-separated tags")
	addCmd.Flags().BoolVar(&flagFav, "fav", false, "mark as favorite")

	editCmd.Flags().StringVar(&flagEditName, "name", "", "new name")
	editCmd.Flags().StringVar(&flagEditScript, "script", "", "new script")
	editCmd.Flags().StringVar(&flagEditDesc, "desc", "", "new description")
	editCmd.Flags().StringSliceVar(&flagEditTags, "tags", nil, "new comma-separated tags")
	editCmd.Flags().BoolVar(&flagEditFav, "fav", false, "favorite flag")

	rootCmd.AddCommand(addCmd, listCmd, searchCmd, showCmd, copyCmd, rmCmd, editCmd)
}

func printCommands(cmds []models.Command) {
	if len(cmds) == 0 {
		fmt.Println("no commands")
		return
	}

	for _, c := range cmds {
		star := " "
		if c.Favorite {
			star = "*"
		}
		fmt.Printf("%s %-10s  %-24s  %s\n", star, shortID(c.ID), c.Name, oneLine(c.Script))
	}
}

func printCommand(c models.Command) {
	fmt.Printf("id:      %s\n", c.ID)
	fmt.Printf("name:    %s\n", c.Name)
	fmt.Printf("script:  %s\n", c.Script)
	if c.Description != "" {
		fmt.Printf("desc:    %s\n", c.Description)
	}
	if len(c.Tags) > 0 {
		fmt.Printf("tags:    %s\n", strings.Join(c.Tags, ", "))
	}
	fmt.Printf("fav:     %v\n", c.Favorite)
	fmt.Printf("updated: %s\n", c.UpdatedAt.Format(time.DateTime))
	if c.LastSyncedAt != nil {
		fmt.Printf("synced:  %s\n", c.LastSyncedAt.Format(time.DateTime))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func oneLine(script string) string {
	script = strings.ReplaceAll(script, "\n", " ")
	if len(script) > 70 {
		return script[:67] + "..."
	}
	return script
}
