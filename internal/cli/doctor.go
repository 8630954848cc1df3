package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"qwikshortcuts/internal/config"
	"qwikshortcuts/internal/paths"
	"qwikshortcuts/internal/project"
	"qwikshortcuts/internal/scaffold"
	"qwikshortcuts/internal/templates"
	"qwikshortcuts/internal/tools"
	"qwikshortcuts/internal/workspace"
)

// newProber is swapped in tests.
var newProber = tools.NewProber

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check workspace health",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

type healthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Summary string `json:"summary"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	wp, err := paths.Resolve(workspaceDir)
	if err != nil {
		return err
	}
	if err := config.LoadEnvFile(wp.EnvFile); err != nil {
		return err
	}

	ws := workspace.Load(wp.Root, project.DefaultMarkers())
	var checks []healthCheck

	checks = append(checks, checkWorkspace(ws))
	if !ws.Exists {
		return writeDoctorResult(cmd, wp.Root, checks)
	}

	checks = append(checks, checkManifest(wp))
	checks = append(checks, checkProject(ws))
	checks = append(checks, checkPackageManager(ws))
	checks = append(checks, checkTools(cmd, ws))

	// Config check
	cfg, cfgErr := config.Load(wp.ConfigFile)
	checks = append(checks, checkConfig(wp, cfg, cfgErr))
	if cfgErr != nil {
		return writeDoctorResult(cmd, wp.Root, checks)
	}
	cfg.ApplyEnv()
	wp = paths.ApplyConfig(wp, cfg)

	checks = append(checks, checkTemplates(wp, cfg))

	return writeDoctorResult(cmd, wp.Root, checks)
}

func checkWorkspace(ws workspace.Context) healthCheck {
	if !ws.Exists {
		return healthCheck{Name: "Workspace", Status: "error", Summary: scaffold.ErrWorkspaceNotFound.Message}
	}
	return healthCheck{Name: "Workspace", Status: "ok", Summary: ws.Root}
}

func checkManifest(wp paths.WorkspacePaths) healthCheck {
	m, err := project.LoadManifest(wp.ManifestFile)
	if err != nil {
		return healthCheck{Name: "Manifest", Status: "error", Summary: err.Error()}
	}
	summary := fmt.Sprintf("%d dependencies, %d dev dependencies", len(m.Dependencies), len(m.DevDependencies))
	if m.Name != "" {
		summary = m.Name + ": " + summary
	}
	return healthCheck{Name: "Manifest", Status: "ok", Summary: summary}
}

func checkProject(ws workspace.Context) healthCheck {
	c := ws.Classification
	var kinds []string
	if c.Core {
		kinds = append(kinds, string(project.KindCore))
	}
	if c.StaticSite {
		kinds = append(kinds, string(project.KindStaticSite))
	}
	if len(kinds) == 0 {
		return healthCheck{Name: "Project", Status: "warning", Summary: "Not a Qwik Project"}
	}
	return healthCheck{
		Name:    "Project",
		Status:  "ok",
		Summary: fmt.Sprintf("%s, imports from %s", joinComma(kinds), c.Version.ImportPath()),
	}
}

func checkPackageManager(ws workspace.Context) healthCheck {
	if !ws.HasPackageManager {
		return healthCheck{
			Name:    "Packages",
			Status:  "error",
			Summary: "Package manager was not found, " + ws.Markers.String(),
		}
	}
	return healthCheck{Name: "Packages", Status: "ok", Summary: string(ws.PackageManager)}
}

func checkTools(cmd *cobra.Command, ws workspace.Context) healthCheck {
	statuses := newProber().Probe(cmd.Context(), tools.ForManager(ws.PackageManager)...)

	var satisfied, total int
	var toolInfo, problems []string
	for _, st := range statuses {
		total++
		if st.Satisfied {
			satisfied++
			label := st.Tool
			if st.Version != "" {
				label += " " + st.Version
			}
			toolInfo = append(toolInfo, label)
			continue
		}
		problems = append(problems, st.Tool+": "+st.Error)
	}

	if satisfied == total {
		return healthCheck{Name: "Tools", Status: "ok", Summary: joinComma(toolInfo)}
	}
	return healthCheck{
		Name:    "Tools",
		Status:  "error",
		Summary: fmt.Sprintf("%d of %d tools satisfied (%s)", satisfied, total, joinComma(problems)),
	}
}

func checkConfig(wp paths.WorkspacePaths, cfg config.Config, cfgErr error) healthCheck {
	if cfgErr != nil {
		return healthCheck{Name: "Config", Status: "error", Summary: cfgErr.Error()}
	}

	validations := cfg.ValidateStrict(wp.Root)
	var warnings, errors int
	for _, v := range validations {
		switch v.Level {
		case "warning":
			warnings++
		case "error":
			errors++
		}
	}

	summary := strings.TrimSpace(fmt.Sprintf("run %s %s, terminal %s", cfg.Generator.Script, cfg.Generator.Subcommand, cfg.Terminal.Mode))

	if errors > 0 {
		return healthCheck{Name: "Config", Status: "error", Summary: fmt.Sprintf("%s; %d errors", summary, errors)}
	}
	if warnings > 0 {
		return healthCheck{Name: "Config", Status: "warning", Summary: fmt.Sprintf("%s; %d warnings", summary, warnings)}
	}
	return healthCheck{Name: "Config", Status: "ok", Summary: summary}
}

func checkTemplates(wp paths.WorkspacePaths, cfg config.Config) healthCheck {
	if cfg.Components.Inline {
		return healthCheck{Name: "Templates", Status: "ok", Summary: "inline generator"}
	}
	strategies := templates.DefaultStrategies(wp.InstallRoot, wp.RuntimeRoot, cfg.Templates.BuiltinEnabled())
	resolver, err := templates.NewResolver(nil, 0, strategies...)
	if err != nil {
		return healthCheck{Name: "Templates", Status: "error", Summary: err.Error()}
	}

	var found, missing []string
	for _, ext := range []string{"tsx", "jsx"} {
		file := templates.FileName(ext)
		m, err := resolver.Resolve(file)
		if err != nil {
			missing = append(missing, file)
			continue
		}
		found = append(found, fmt.Sprintf("%s (%s)", file, m.Strategy))
	}
	if len(missing) > 0 {
		return healthCheck{Name: "Templates", Status: "error", Summary: "missing " + joinComma(missing)}
	}
	return healthCheck{Name: "Templates", Status: "ok", Summary: joinComma(found)}
}

func writeDoctorResult(cmd *cobra.Command, workspaceRoot string, checks []healthCheck) error {
	if outputJSON {
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true)
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Inline(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold.Render("WORKSPACE HEALTH:")+" "+workspaceRoot)

	for _, c := range checks {
		var statusStr string
		switch c.Status {
		case "ok":
			statusStr = green.Render("OK")
		case "warning":
			statusStr = yellow.Render("WARN")
		case "error":
			statusStr = red.Render("ERROR")
		}
		fmt.Fprintf(out, "  %-12s %s    %s\n", c.Name+":", statusStr, c.Summary)
	}

	return nil
}

func joinComma(items []string) string {
	if len(items) == 0 {
		return ""
	}
	result := items[0]
	for _, item := range items[1:] {
		result += ", " + item
	}
	return result
}
