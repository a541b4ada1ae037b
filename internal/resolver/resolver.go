// Package resolver computes the template variables that depend on the
// web server selection and the optional package attributes.
//
// Resolve is called once per control file about to be rendered, with the
// variable map accumulated so far by the caller. It returns an extended
// copy; the input map is never mutated. Three keys are additive
// (package_binary_depends, webserver_config_link, webserver_restart):
// resolved fragments are appended to whatever value the caller seeded,
// never overwrite it. All other keys it touches (uid, starman_port,
// starman_workers, startup_time) are set outright.
package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eldridge/starman-dpkg/internal/config"
)

// Vars is a template variable map threaded through resolution.
type Vars map[string]string

// Clone returns a shallow copy of the variable map.
func (v Vars) Clone() Vars {
	out := make(Vars, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Shell fragments appended to webserver_config_link. They run inside the
// generated postinst, where $PACKAGE is defined; the choice of symlink
// target is a target-machine concern, not a build-time one.
const (
	apacheConfigLink = `rm -f /etc/apache2/sites-available/$PACKAGE
ln -s /etc/$PACKAGE/apache.conf /etc/apache2/sites-available/$PACKAGE
`

	nginxConfigLink = `rm -f /etc/nginx/sites-available/$PACKAGE
ln -s /etc/$PACKAGE/nginx.conf /etc/nginx/sites-available/$PACKAGE
`
)

// Restart fragments appended to webserver_restart. The invoke-rc.d
// check must stay a shell-level runtime decision: it executes on the
// target machine at install time, not at build time.
const (
	apacheRestartTail = `a2ensite $PACKAGE
mkdir -p /var/log/apache2/$PACKAGE
if [ -x /usr/sbin/invoke-rc.d ]; then
    invoke-rc.d apache2 restart
else
    /etc/init.d/apache2 restart
fi
`

	nginxRestart = `if [ -x /usr/sbin/invoke-rc.d ]; then
    invoke-rc.d nginx restart
else
    /etc/init.d/nginx restart
fi
`
)

// baseApacheModules are always enabled; configured modules follow them
// in input order.
var baseApacheModules = []string{"proxy", "proxy_http", "rewrite"}

// Resolve computes the incremental template variables for one render.
// It is pure: same config and seed always produce the same map.
func Resolve(cfg *config.Config, vars Vars) Vars {
	out := vars.Clone()

	if cfg.HasUID() {
		out["uid"] = fmt.Sprintf("--uid %d", *cfg.UID)
	}

	out["starman_port"] = cfg.StarmanPort
	out["starman_workers"] = cfg.StarmanWorkers
	out["startup_time"] = strconv.Itoa(cfg.StartupTime)

	// Apache before nginx; with web_server=all both fragments fire and
	// are concatenated in that order.
	if cfg.WantsApache() {
		out["package_binary_depends"] += ", apache2"
		out["webserver_config_link"] += apacheConfigLink
		out["webserver_restart"] += apacheRestart(cfg.ApacheModules)
	}
	if cfg.WantsNginx() {
		out["package_binary_depends"] += ", nginx"
		out["webserver_config_link"] += nginxConfigLink
		out["webserver_restart"] += nginxRestart
	}

	return out
}

// apacheRestart builds the apache restart fragment, enabling the base
// modules plus any configured ones.
func apacheRestart(modules []string) string {
	enabled := append(append([]string(nil), baseApacheModules...), modules...)
	return fmt.Sprintf("a2enmod %s\n%s", strings.Join(enabled, " "), apacheRestartTail)
}
