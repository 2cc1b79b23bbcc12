package commands

import (
	"strings"

	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/pkg/interfaces"
)

const commandModuleRoot = "cms.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriched
// with consistent structured fields so command executions can be filtered.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
