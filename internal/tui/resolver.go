// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

// Package tui implements the interactive conflict resolution prompt shown
// during `snipsync sync`. One selector is presented per conflict, in the
// order the detector produced them; quitting at any prompt cancels the whole
// sync.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsemenov/snipsync/internal/service"
	"github.com/dsemenov/snipsync/models"
)

// Resolver implements [service.Resolver] with a terminal prompt.
type Resolver struct {
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve shows the conflict and returns the selected choice, or
// service.ErrResolutionCancelled when the user quits the prompt.
func (r *Resolver) Resolve(_ context.Context, conflict models.Conflict) (string, error) {
	model := newConflictModel(conflict)
	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(conflictModel)
	if !ok || result.cancelled {
		return "", service.ErrResolutionCancelled
	}

	return result.choices[result.idx].value, nil
}

type resolutionChoice struct {
	label string
	value string
}

type conflictModel struct {
	conflict  models.Conflict
	choices   []resolutionChoice
	idx       int
	cancelled bool
}

func newConflictModel(conflict models.Conflict) conflictModel {
	choices := []resolutionChoice{
		{label: "Keep local version", value: models.KeepLocal},
		{label: "Keep remote version", value: models.KeepRemote},
	}
	if conflict.Kind == models.ConflictModified {
		choices = append(choices, resolutionChoice{label: "Keep both (remote becomes a copy)", value: models.KeepBoth})
	}

	return conflictModel{conflict: conflict, choices: choices}
}

func (m conflictModel) Init() tea.Cmd {
	return nil
}

func (m conflictModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.choices)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m conflictModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sync conflict: "+m.conflict.SyncID) + "\n")
	b.WriteString(kindStyle.Render(describeKind(m.conflict.Kind)) + "\n\n")

	b.WriteString(renderSide("local", m.conflict.Local))
	b.WriteString(renderSide("remote", m.conflict.Remote))
	b.WriteString("\n")

	for i, choice := range m.choices {
		cursor := "  "
		label := choice.label
		if i == m.idx {
			cursor = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		b.WriteString(cursor + label + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("up/down select  enter confirm  esc cancel sync"))
	return boxStyle.Render(b.String())
}

func describeKind(kind string) string {
	switch kind {
	case models.ConflictModified:
		return "changed on both machines since the last sync"
	case models.ConflictDeletedLocal:
		return "deleted here, still present remotely"
	case models.ConflictDeletedRemote:
		return "deleted remotely, still present here"
	default:
		return kind
	}
}

func renderSide(side string, cmd models.Command) string {
	if cmd.Deleted() {
		return sideStyle.Render(side+":") + " (deleted)\n"
	}

	line := fmt.Sprintf("%s %s: %s", sideStyle.Render(side+":"), cmd.Name, scriptStyle.Render(excerpt(cmd.Script)))
	line += sideStyle.Render(fmt.Sprintf("  [updated %s]", cmd.UpdatedAt.Format(time.DateTime)))
	return line + "\n"
}

func excerpt(script string) string {
	script = strings.ReplaceAll(script, "\n", " ")
	if len(script) > 60 {
		return script[:57] + "..."
	}
	return script
}
