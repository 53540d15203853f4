package ui

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// PromptInputWithValidation prompts for required input checked by validate
func (u *UI) PromptInputWithValidation(prompt string, validate func(string) error) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
	}

	validator := func(ans interface{}) error {
		s, _ := ans.(string)
		return validate(s)
	}
	err := survey.AskOne(p, &result, survey.WithValidator(validator), survey.WithStdio(stdio()))
	return result, err
}

// PromptMultiline prompts for multi-line text. Non-empty text is returned
// with a trailing newline, as files written from typed lines normally end in one.
func (u *UI) PromptMultiline(prompt string) (string, error) {
	var result string
	p := &survey.Multiline{
		Message: prompt,
	}

	if err := survey.AskOne(p, &result, survey.WithStdio(stdio())); err != nil {
		return "", err
	}
	return terminateLine(result), nil
}

// terminateLine appends a newline to non-empty text that lacks one
func terminateLine(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
