// Package discover locates a MySQL installation: its base directory,
// header directories, plugin directory and client executable, then
// probes the headers for the server version.
//
// Header and plugin directories are resolved with the same priority: the
// answer of the mysql_config helper when one is configured, then an
// explicit user override, then the conventional path below the base
// directory. The base directory and client executable skip the helper.
// An explicit override that fails validation is always fatal and is never
// replaced by a fallback.
package discover

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arc-language/mysqlprobe/pkg/core"
	"github.com/arc-language/mysqlprobe/pkg/env"
	"github.com/arc-language/mysqlprobe/pkg/platform"
	"github.com/arc-language/mysqlprobe/pkg/probe"
	"github.com/arc-language/mysqlprobe/pkg/status"
)

// Features selects the optional parts of the installation to resolve.
type Features struct {
	Plugins bool // plugin directory, needed to install server plugins
	Client  bool // client executable, needed to run scripts
}

// Request is the input to Resolve and Discover.
type Request struct {
	Options  core.Options
	Prefix   string // install prefix, the base when Options.Dir is empty
	Features Features
	CC       string // compiler for the version probe; see platform.ResolveCompiler
	Reporter *status.Reporter
}

// Discover resolves the installation and probes the server version. The
// returned environment is complete; on error nothing is returned.
func Discover(ctx context.Context, req Request) (*env.Environment, error) {
	e, err := Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	r := req.Reporter
	r.Start("Checking for C compiler")
	plat, err := platform.Detect()
	if err != nil {
		r.Fail("unsupported platform")
		return nil, &core.Error{Op: "platform", Err: err}
	}
	cc, err := platform.ResolveCompiler(plat, req.CC)
	if err != nil {
		r.Fail("not found")
		return nil, core.Errorf(core.ErrProbeFailure, "compiler", req.CC, "%v", err)
	}
	r.End(cc)

	layout := env.GetLayout(env.Engine)
	p := &probe.Prober{
		Compiler: cc,
		Header:   layout.Header,
		Macro:    env.VersionMacro,
		Reporter: r,
	}
	version, err := p.Version(ctx, e.Includes)
	if err != nil {
		return nil, err
	}
	e.Version = version

	log.Debug().
		Str("dir", e.Dir).
		Strs("includes", e.Includes).
		Str("version", e.Version).
		Msg("mysql discovery complete")

	return e, nil
}

// Resolve performs every filesystem step of discovery but does not run
// the version probe. Environment.Version is left empty.
func Resolve(ctx context.Context, req Request) (*env.Environment, error) {
	if err := req.Options.Validate(); err != nil {
		return nil, core.Errorf(core.ErrInvalidOverride, "--mysql-config-style", string(req.Options.ConfigStyle), "%v", err)
	}

	d := &discoverer{
		opts:   req.Options,
		prefix: req.Prefix,
		r:      req.Reporter,
	}
	if d.prefix == "" {
		d.prefix = core.DefaultPrefix
	}

	e := &env.Environment{
		User:   d.opts.UserOrDefault(),
		Socket: d.opts.SocketOrDefault(),
	}

	var err error
	if e.Dir, err = d.baseDir(); err != nil {
		return nil, err
	}
	d.layout = env.GetLayout(env.Engine).Resolve(e.Dir)

	if e.Config, err = d.helper(); err != nil {
		return nil, err
	}
	d.helperPath = e.Config

	if e.Includes, err = d.includes(ctx); err != nil {
		return nil, err
	}

	if req.Features.Plugins {
		if e.PluginDir, err = d.pluginDir(ctx); err != nil {
			return nil, err
		}
	}

	if req.Features.Client {
		if e.Client, err = d.client(); err != nil {
			return nil, err
		}
	}

	return e, nil
}

type discoverer struct {
	opts       core.Options
	prefix     string
	layout     env.Layout
	helperPath string
	r          *status.Reporter
}

func (d *discoverer) baseDir() (string, error) {
	d.r.Start("Checking for mysql install")

	dir := d.opts.Dir
	if dir == "" {
		d.r.End(d.prefix)
		return d.prefix, nil
	}

	if !isAccessibleDir(dir) {
		d.r.Fail("not found")
		return "", core.Errorf(core.ErrInvalidOverride, "--mysql-dir", dir,
			"does not identify an accessible directory")
	}

	d.r.End(dir)
	return dir, nil
}

func (d *discoverer) helper() (string, error) {
	helper := d.opts.Config
	if helper == "" {
		return "", nil
	}

	d.r.Start("Checking for " + platform.HelperName)

	if helper == core.HelperAuto {
		path, err := platform.LookupHelper()
		if err != nil {
			d.r.Fail("not found")
			return "", core.Errorf(core.ErrDiscoveryFailure, "--mysql-config", helper, "%v", err)
		}
		helper = path
	}

	if !isExecutableFile(helper) {
		d.r.Fail("not found")
		return "", core.Errorf(core.ErrInvalidOverride, "--mysql-config", helper,
			"does not identify an executable")
	}

	d.r.End(helper)
	return helper, nil
}

func (d *discoverer) includes(ctx context.Context) ([]string, error) {
	d.r.Start("Checking for mysql include directory")

	var (
		dirs []string
		kind = core.ErrDiscoveryFailure
		op   = "include directory"
	)

	switch {
	case d.helperPath != "":
		if d.opts.Includes != "" {
			log.Warn().
				Str("includes", d.opts.Includes).
				Msg("--mysql-includes ignored because --mysql-config is set")
		}
		flag := includeFlag(d.opts.ConfigStyle)
		out, err := queryHelper(ctx, d.helperPath, flag)
		if err != nil {
			d.r.Fail("helper failed")
			return nil, core.Errorf(core.ErrDiscoveryFailure, platform.HelperName+" "+flag, "", "%v", err)
		}
		dirs = parseIncludes(out, d.opts.ConfigStyle)
		op = platform.HelperName + " " + flag
	case d.opts.Includes != "":
		dirs = []string{d.opts.Includes}
		kind = core.ErrInvalidOverride
		op = "--mysql-includes"
	default:
		dirs = []string{d.layout.Includes}
	}

	if len(dirs) == 0 {
		d.r.Fail("not found")
		return nil, core.Errorf(kind, op, "", "no mysql header directory reported")
	}

	for _, dir := range dirs {
		if !isAccessibleDir(dir) {
			d.r.Fail("not found")
			return nil, core.Errorf(kind, op, dir, "invalid/missing mysql header directory")
		}
	}

	d.r.End(strings.Join(dirs, " "))
	return dirs, nil
}

func (d *discoverer) pluginDir(ctx context.Context) (string, error) {
	d.r.Start("Checking for mysql plugin directory")

	var (
		dir  string
		kind = core.ErrDiscoveryFailure
		op   = "plugin directory"
	)

	switch {
	case d.helperPath != "":
		if d.opts.PluginDir != "" {
			log.Warn().
				Str("plugin_dir", d.opts.PluginDir).
				Msg("--mysql-plugin-dir ignored because --mysql-config is set")
		}
		out, err := queryHelper(ctx, d.helperPath, helperPluginDirFlag)
		if err != nil {
			d.r.Fail("helper failed")
			return "", core.Errorf(core.ErrDiscoveryFailure, platform.HelperName+" "+helperPluginDirFlag, "", "%v", err)
		}
		dir = out
		op = platform.HelperName + " " + helperPluginDirFlag
	case d.opts.PluginDir != "":
		dir = d.opts.PluginDir
		kind = core.ErrInvalidOverride
		op = "--mysql-plugin-dir"
	default:
		dir = d.layout.PluginDir
	}

	if dir == "" || !isAccessibleDir(dir) {
		d.r.Fail("not found")
		return "", core.Errorf(kind, op, dir, "invalid/missing mysql plugin directory")
	}

	d.r.End(dir)
	return dir, nil
}

func (d *discoverer) client() (string, error) {
	d.r.Start("Checking for mysql client")

	path, kind, op := d.layout.Client, core.ErrDiscoveryFailure, "client"
	if d.opts.Client != "" {
		path, kind, op = d.opts.Client, core.ErrInvalidOverride, "--mysql-client"
	}

	if !isExecutableFile(path) {
		d.r.Fail("not found")
		return "", core.Errorf(kind, op, path, "does not identify an executable")
	}

	d.r.End(path)
	return path, nil
}
