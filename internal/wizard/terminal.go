package wizard

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// Terminal is a Prompter backed by promptui.
type Terminal struct{}

func (Terminal) Select(label string, items []string, cursor int) (int, error) {
	p := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: cursor,
		Size:      10,
	}
	index, _, err := p.Run()
	return index, err
}

func (Terminal) Input(label, initial string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   initial,
		AllowEdit: true,
		Validate:  validate,
	}
	return p.Run()
}

// Confirm treats a "no" answer as false rather than an error.
func (Terminal) Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := p.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	return err == nil, err
}
