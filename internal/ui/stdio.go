package ui

import (
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
)

// stdio routes prompts to stderr so stdout only carries the module result
func stdio() (terminal.FileReader, terminal.FileWriter, *os.File) {
	return os.Stdin, os.Stderr, os.Stderr
}
