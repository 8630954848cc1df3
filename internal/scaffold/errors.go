package scaffold

import (
	"errors"
	"strings"
)

// Kind classifies why an action stopped.
type Kind string

const (
	WorkspaceNotFound           Kind = "workspace_not_found"
	NotTargetProject            Kind = "not_target_project"
	PackageManagerNotFound      Kind = "package_manager_not_found"
	TemplateNotFound            Kind = "template_not_found"
	ComponentAlreadyExists      Kind = "component_already_exists"
	NoInputProvided             Kind = "no_input_provided"
	ManifestUnreadableOrInvalid Kind = "manifest_unreadable_or_invalid"
)

// Error is returned by every action. Message is the text shown to the user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels below work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrWorkspaceNotFound      = &Error{Kind: WorkspaceNotFound, Message: "Workspace not found."}
	ErrNotTargetProject       = &Error{Kind: NotTargetProject, Message: "Not a Qwik Project"}
	ErrPackageManagerNotFound = &Error{Kind: PackageManagerNotFound, Message: "Package manager was not found"}
	ErrTemplateNotFound       = &Error{Kind: TemplateNotFound, Message: "Template not found"}
	ErrComponentAlreadyExists = &Error{Kind: ComponentAlreadyExists, Message: "Component Already Exists"}
	ErrNoInputProvided        = &Error{Kind: NoInputProvided, Message: "No Details Entered."}
)

// User-facing messages.
const (
	msgNotCore         = "Not a Qwik Project"
	msgNotStaticSite   = "Not a Qwik Astro Project"
	msgNoRoute         = "No Route Details Entered."
	msgNoComponent     = "No Component Details Entered."
	msgPackageNotFound = "Package manager was not found, "
)

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func packageManagerNotFound(markerNames []string) *Error {
	return newError(PackageManagerNotFound, msgPackageNotFound+strings.Join(markerNames, ","), nil)
}

// NoRouteInput is the error for a cancelled or empty route prompt.
func NoRouteInput() error {
	return newError(NoInputProvided, msgNoRoute, nil)
}

// NoComponentInput is the error for a cancelled or empty component prompt.
func NoComponentInput() error {
	return newError(NoInputProvided, msgNoComponent, nil)
}

// KindOf returns the kind of an action error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
