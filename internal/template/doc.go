// Package template holds the bundled Debian control-file templates and
// renders them with resolved variable maps.
//
// Eight template kinds are bundled: conffiles, control, default, init,
// install, postinst, postrm, and rules. Each is a text/template body
// compiled into the binary with embed.FS; a kind that cannot be read
// from the bundle indicates a broken installation and aborts the build.
//
// Templates reference variables by key, e.g. {{.starman_port}}. The
// variable map is produced by the resolver package and seeded by the
// generator; keys absent from the map render as empty strings, so
// callers seed every additive key they reference.
//
// Per-kind override files from the configuration are rendered with
// RenderFile using the same variable map and engine as the bundled
// defaults.
package template
