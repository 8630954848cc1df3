package project

import "encoding/json"

// Package names that identify the project flavour.
const (
	PackageRouter       = "@qwik.dev/router"
	PackageQwikCity     = "@builder.io/qwik-city"
	PackageAstroAdapter = "@qwikdev/astro"
	PackageAstro        = "astro"
	PackageLegacyCore   = "@builder.io/qwik"
	PackageCore         = "@qwik.dev/core"
)

// Kind names the framework flavour of a workspace.
type Kind string

const (
	KindUnknown    Kind = "unknown"
	KindCore       Kind = "qwik"
	KindStaticSite Kind = "qwik-astro"
)

// Version selects the import path used by generated components.
type Version string

const (
	VersionCurrent Version = "current"
	VersionV1      Version = "v1"
)

// ImportPath returns the core package components import from.
func (v Version) ImportPath() string {
	if v == VersionV1 {
		return PackageLegacyCore
	}
	return PackageCore
}

// Classification is the result of inspecting a manifest. Core and
// StaticSite are independent so a manifest matching both serves both
// action families.
type Classification struct {
	Core          bool    `json:"core"`
	StaticSite    bool    `json:"static_site"`
	Version       Version `json:"version"`
	ManifestError string  `json:"manifest_error,omitempty"`
}

// Kind collapses the flags into a single kind, preferring Core.
func (c Classification) Kind() Kind {
	switch {
	case c.Core:
		return KindCore
	case c.StaticSite:
		return KindStaticSite
	default:
		return KindUnknown
	}
}

// MarshalJSON adds the collapsed kind to the encoded value.
func (c Classification) MarshalJSON() ([]byte, error) {
	type plain Classification
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		plain
	}{Kind: c.Kind(), plain: plain(c)})
}

// Classify reads the manifest at path and classifies it. A missing or
// malformed manifest yields an unknown classification with ManifestError
// set; it is never returned as an error.
func Classify(manifestPath string) Classification {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return Classification{Version: VersionCurrent, ManifestError: err.Error()}
	}
	return ClassifyManifest(m)
}

// ClassifyManifest applies the classification rules to a parsed manifest.
func ClassifyManifest(m Manifest) Classification {
	c := Classification{Version: VersionCurrent}
	c.Core = m.HasDevDependency(PackageRouter) || m.HasDevDependency(PackageQwikCity)
	c.StaticSite = m.HasDependency(PackageAstroAdapter) && m.HasDependency(PackageAstro)
	if m.HasDependency(PackageLegacyCore) {
		c.Version = VersionV1
	}
	return c
}
