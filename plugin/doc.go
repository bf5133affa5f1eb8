// Package plugin implements the external registration surface of spec.md
// §4.6: the Plugin contract, the App host a plugin builds against, and the
// IntoPlugin lifting that lets either a plugin value or a callable
// returning one be registered uniformly — the Go rendition of
// bevy_app::Plugin and bevy_app::Plugin::IntoPlugin.
//
// Unlike package configure, rejections here are recoverable host-level
// errors, not panics: a duplicate plugin registration is an operational
// condition a caller can reasonably catch and report, not a programmer
// mistake caught at construction time (spec.md §7, "Duplicate plugin").
// Package-level sentinel errors and errors.Is are used throughout,
// following the teacher's builder/errors.go convention.
package plugin
