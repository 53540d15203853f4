package config

// OptionDoc documents one module argument
type OptionDoc struct {
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Type        string `yaml:"type"`
	Default     any    `yaml:"default,omitempty"`
}

// ReturnDoc documents one field of the module result
type ReturnDoc struct {
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Returned    string `yaml:"returned"`
	Sample      any    `yaml:"sample"`
}

// ModuleDoc is the self-description printed by the docs command
type ModuleDoc struct {
	Module           string               `yaml:"module"`
	ShortDescription string               `yaml:"short_description"`
	Description      []string             `yaml:"description"`
	Options          map[string]OptionDoc `yaml:"options"`
	CheckMode        string               `yaml:"check_mode"`
	Examples         string               `yaml:"examples"`
	Returns          map[string]ReturnDoc `yaml:"returns"`
}

const examples = `- name: Create file
  file_create:
    path: /tmp/test.txt
    content: "Hello there\n"
`

// Documentation describes the module arguments, check mode support, and result
func Documentation() ModuleDoc {
	return ModuleDoc{
		Module:           "file_create",
		ShortDescription: "Ensure a file contains exactly the given content",
		Description: []string{
			"Creates the file when it does not exist and replaces its content when it differs.",
			"The file is left untouched when it already holds the desired content.",
		},
		Options: map[string]OptionDoc{
			KeyPath: {
				Description: "Path of the file to manage. Relative paths resolve against the working directory.",
				Required:    true,
				Type:        "str",
			},
			KeyContent: {
				Description: "Exact content the file must contain. No newline is added.",
				Required:    true,
				Type:        "str",
			},
			KeyCheckModeAlias: {
				Description: "Report without touching the filesystem.",
				Required:    false,
				Type:        "bool",
				Default:     Defaults[KeyCheckMode],
			},
		},
		CheckMode: "full support; no filesystem access happens and changed is always false",
		Examples:  examples,
		Returns: map[string]ReturnDoc{
			"changed": {
				Description: "Whether the file was created or rewritten.",
				Type:        "bool",
				Returned:    "always",
				Sample:      true,
			},
			KeyPath: {
				Description: "File path that was written; empty when nothing changed.",
				Type:        "str",
				Returned:    "always",
				Sample:      "/tmp/test.txt",
			},
			KeyContent: {
				Description: "Content that was written; empty when nothing changed.",
				Type:        "str",
				Returned:    "always",
				Sample:      "Hello there",
			},
		},
	}
}
