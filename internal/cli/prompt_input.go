package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// HuhConfirm renders an interactive yes/no prompt. Aborting with ctrl+c
// counts as "no".
func HuhConfirm(prompt string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// Decline answers "no" to every prompt; used when stdin is not a terminal.
func Decline(string) (bool, error) { return false, nil }

func (a *App) confirm(prompt string) (bool, error) {
	if a.Confirm == nil {
		return Decline(prompt)
	}
	return a.Confirm(prompt)
}
