package scaffold

import (
	"qwikshortcuts/internal/workspace"
)

// Family selects which project kind an action targets.
type Family string

const (
	FamilyCore       Family = "qwik"
	FamilyStaticSite Family = "qwik-astro"
)

// Check verifies the preconditions for family in order: workspace, project
// kind, package manager. It runs before any prompt is shown.
func Check(ws workspace.Context, family Family) error {
	if ws.Root == "" || !ws.Exists {
		return newError(WorkspaceNotFound, ErrWorkspaceNotFound.Message, nil)
	}

	switch family {
	case FamilyStaticSite:
		if !ws.Classification.StaticSite {
			return notTarget(ws, msgNotStaticSite)
		}
	default:
		if !ws.Classification.Core {
			return notTarget(ws, msgNotCore)
		}
	}

	if !ws.HasPackageManager {
		return packageManagerNotFound(ws.Markers.FileNames())
	}
	return nil
}

// notTarget carries an unreadable manifest as the cause; it is reported as
// a non-target project all the same.
func notTarget(ws workspace.Context, message string) error {
	var cause error
	if ws.Classification.ManifestError != "" {
		cause = &Error{Kind: ManifestUnreadableOrInvalid, Message: ws.Classification.ManifestError}
	}
	return newError(NotTargetProject, message, cause)
}
