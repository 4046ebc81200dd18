package ui

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// PromptToken asks for a GitHub personal access token without echoing it
func PromptToken() (string, error) {
	validate := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New("token cannot be empty")
		}
		return nil
	}
	prompt := promptui.Prompt{
		Label:    "GitHub personal access token",
		Mask:     '*',
		Validate: validate,
	}
	token, err := prompt.Run()
	return strings.TrimSpace(token), err
}

func PromptConfirm(text string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     text,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if err == promptui.ErrAbort {
		return false, nil
	}
	return err == nil, err
}
