package tools

import (
	"sort"

	"qwikshortcuts/internal/project"
)

var toolDefinitions = map[string]ToolDefinition{
	"node": {Name: "node", MinimumVersion: "18.17.0", VersionSwitch: "--version"},
	"npm":  {Name: "npm", VersionSwitch: "--version"},
	"yarn": {Name: "yarn", VersionSwitch: "--version"},
	"pnpm": {Name: "pnpm", VersionSwitch: "--version"},
	"bun":  {Name: "bun", MinimumVersion: "1.1.0", VersionSwitch: "--version"},
}

// KnownTools returns the list of probed tool names.
func KnownTools() []string {
	names := make([]string, 0, len(toolDefinitions))
	for name := range toolDefinitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition returns the tool definition for the provided name.
func Definition(name string) (ToolDefinition, bool) {
	def, ok := toolDefinitions[name]
	return def, ok
}

// ForManager returns the tools a workspace driven by pm needs: the runtime
// and the manager itself. Bun needs no separate runtime.
func ForManager(pm project.PackageManager) []string {
	if pm == project.Bun {
		return []string{string(pm)}
	}
	if pm == "" {
		return []string{"node"}
	}
	return []string{"node", string(pm)}
}
