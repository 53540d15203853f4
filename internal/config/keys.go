package config

// Module parameter keys
const (
	KeyPath    = "path"
	KeyContent = "content"

	// Check mode is normally passed by the calling automation engine using its
	// internal key; KeyCheckModeAlias is accepted for hand-written args files.
	KeyCheckMode      = "_ansible_check_mode"
	KeyCheckModeAlias = "check_mode"

	// KeyModuleArgsWrapper is the top-level object some engines wrap arguments in
	KeyModuleArgsWrapper = "ANSIBLE_MODULE_ARGS"

	// Keys with this prefix are engine-internal and never rejected as unsupported
	internalKeyPrefix = "_ansible_"
)

// Default values for optional parameters
var Defaults = map[string]any{
	KeyCheckMode: false,
}

// supportedKeys are the user-facing parameters this module accepts
var supportedKeys = map[string]bool{
	KeyPath:           true,
	KeyContent:        true,
	KeyCheckModeAlias: true,
}
