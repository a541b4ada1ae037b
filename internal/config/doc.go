// Package config loads and validates the starman-dpkg package
// configuration from YAML.
//
// Configuration describes how a PSGI application is packaged: which web
// server fronts Starman, which port and worker count Starman runs with,
// and optional service-account and apache module settings.
//
// Example starman-dpkg.yaml:
//
//	package: myapp
//	web_server: all
//	starman_port: 5000
//	starman_workers: 8
//	psgi_script: script/myapp.psgi
//	startup_time: 60
//	uid: 450
//	apache_modules: ldap ssl
//	templates:
//	  control: packaging/control.tmpl
//
// # Validation
//
// All validation happens once, at load time. web_server must be one of
// apache, nginx, or all; starman_port is required and never defaulted;
// apache_modules accepts either a YAML list or a single
// whitespace-separated string, and every module name must match [a-z_]+.
// Violations surface as structured errors from the errors package and
// abort the build.
//
// # Defaults
//
// starman_workers defaults to 5, startup_time to 30 seconds, and
// psgi_script to script/<package>.psgi. uid and apache_modules have no
// defaults; their absence is a valid state, and a uid of 0 is distinct
// from no uid at all.
//
// # Immutability
//
// The returned Config is constructed once per build run and must not be
// modified afterwards. Resolution and rendering read from it only.
package config
