// mysqlprobe.go
package mysqlprobe

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/arc-language/mysqlprobe/pkg/constraint"
	"github.com/arc-language/mysqlprobe/pkg/core"
	"github.com/arc-language/mysqlprobe/pkg/discover"
	"github.com/arc-language/mysqlprobe/pkg/env"
	"github.com/arc-language/mysqlprobe/pkg/plugin"
	"github.com/arc-language/mysqlprobe/pkg/registry"
	"github.com/arc-language/mysqlprobe/pkg/status"
	"github.com/arc-language/mysqlprobe/pkg/task"
)

// Re-export types for callers that only import the root package
type (
	Config        = core.Config
	Options       = core.Options
	Features      = discover.Features
	Environment   = env.Environment
	Constraint    = constraint.Constraint
	ConstraintSet = constraint.Set
	RunOptions    = core.RunOptions
)

// Re-export constraint constructors
var (
	MinVersion   = constraint.MinVersion
	ExactVersion = constraint.ExactVersion
	MaxVersion   = constraint.MaxVersion
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Configurator carries the state one configuration run needs: the loaded
// config, the user's overrides, the status output and the registered
// script tasks.
type Configurator struct {
	config   *core.Config
	options  core.Options
	reporter *status.Reporter
	tasks    *registry.Registry
}

// New creates a Configurator. opts wins over the mysql section of config.
// A nil reporter discards status lines.
func New(config *Config, opts Options, reporter *status.Reporter) (*Configurator, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if reporter == nil {
		reporter = status.Discard()
	}

	merged := opts.Merge(config.MySQL)
	if err := merged.Validate(); err != nil {
		return nil, &core.Error{Op: "options", Err: fmt.Errorf("%w: %v", core.ErrInvalidOverride, err)}
	}

	tasks := registry.New()
	if err := task.Register(tasks, task.NewLocker("")); err != nil {
		return nil, fmt.Errorf("registering script tasks: %w", err)
	}

	return &Configurator{
		config:   config,
		options:  merged,
		reporter: reporter,
		tasks:    tasks,
	}, nil
}

// Options returns the effective overrides
func (c *Configurator) Options() Options {
	return c.options
}

// Tasks returns the script task registry
func (c *Configurator) Tasks() *registry.Registry {
	return c.tasks
}

// CheckMySQL locates the installation, probes its version and checks it
// against constraints. On any failure no environment is returned.
func (c *Configurator) CheckMySQL(ctx context.Context, features Features, constraints ConstraintSet) (*Environment, error) {
	e, err := discover.Discover(ctx, discover.Request{
		Options:  c.options,
		Prefix:   c.config.Prefix,
		Features: features,
		CC:       c.config.CC,
		Reporter: c.reporter,
	})
	if err != nil {
		return nil, err
	}

	if err := constraint.Check(e.Version, constraints, c.reporter); err != nil {
		return nil, err
	}

	log.Debug().Str("version", e.Version).Int("constraints", len(constraints)).Msg("mysql configured")
	return e, nil
}

// RunScript runs one script against the server described by e, picking
// the handler by file extension. Scripts always run.
func (c *Configurator) RunScript(ctx context.Context, e *Environment, script string, opts *RunOptions) error {
	h, err := c.tasks.Lookup(script)
	if err != nil {
		return err
	}

	// The client shares stdout, so the status line is written once it exits.
	err = h.Run(ctx, e.Connection(), script, opts)
	c.reporter.Startf("Running %s", script)
	if err != nil {
		c.reporter.Fail("failed")
		return err
	}
	c.reporter.End("ok")
	return nil
}

// InstallPlugins copies built plugins into the resolved plugin directory
func (c *Configurator) InstallPlugins(e *Environment, files []string) ([]string, error) {
	return plugin.Install(e, files, c.reporter)
}
