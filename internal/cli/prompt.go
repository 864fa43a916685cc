package cli

import "github.com/manifoldco/promptui"

// Prompter asks the user for a single line of input.
type Prompter interface {
	Ask(label string, secret bool, validate func(string) error) (string, error)
}

type terminalPrompter struct{}

func (terminalPrompter) Ask(label string, secret bool, validate func(string) error) (string, error) {
	p := promptui.Prompt{Label: label, Validate: validate}
	if secret {
		p.Mask = '*'
	}
	return p.Run()
}
