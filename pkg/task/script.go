// Package task runs SQL script files against a live server through the
// engine's client executable.
package task

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz"

	"github.com/arc-language/mysqlprobe/pkg/core"
	"github.com/arc-language/mysqlprobe/pkg/registry"
)

// Handler names.
const (
	ScriptName     = "mysql-script"
	CompressedName = "mysql-script-xz"
)

// ClientArgs returns the client arguments for conn. The trailing -p makes
// the client prompt for the admin password on the terminal.
func ClientArgs(conn core.Connection) []string {
	return []string{
		"-vvv",
		"--socket=" + conn.Socket,
		"--user=" + conn.User,
		"-p",
	}
}

// ScriptHandler feeds a plain .sql file to the client on stdin.
type ScriptHandler struct {
	locks *Locker
}

// NewScriptHandler returns a handler serializing runs through locks.
func NewScriptHandler(locks *Locker) *ScriptHandler {
	return &ScriptHandler{locks: locks}
}

func (h *ScriptHandler) Name() string         { return ScriptName }
func (h *ScriptHandler) Extensions() []string { return []string{".sql"} }

func (h *ScriptHandler) Run(ctx context.Context, conn core.Connection, script string, opts *core.RunOptions) error {
	return run(ctx, h.locks, conn, script, opts, func(f *os.File) (io.Reader, error) {
		return f, nil
	})
}

// CompressedHandler decompresses a .sql.xz file into the client's stdin.
type CompressedHandler struct {
	locks *Locker
}

// NewCompressedHandler returns a handler serializing runs through locks.
func NewCompressedHandler(locks *Locker) *CompressedHandler {
	return &CompressedHandler{locks: locks}
}

func (h *CompressedHandler) Name() string         { return CompressedName }
func (h *CompressedHandler) Extensions() []string { return []string{".sql.xz"} }

func (h *CompressedHandler) Run(ctx context.Context, conn core.Connection, script string, opts *core.RunOptions) error {
	return run(ctx, h.locks, conn, script, opts, func(f *os.File) (io.Reader, error) {
		r, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("reading xz stream: %w", err)
		}
		return r, nil
	})
}

// Register adds both script handlers to reg, sharing one Locker.
func Register(reg *registry.Registry, locks *Locker) error {
	if locks == nil {
		locks = NewLocker("")
	}
	for _, h := range []core.TaskHandler{NewScriptHandler(locks), NewCompressedHandler(locks)} {
		if err := reg.Register(h); err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, locks *Locker, conn core.Connection, script string, opts *core.RunOptions, input func(*os.File) (io.Reader, error)) error {
	if conn.Client == "" {
		return errors.New("no mysql client resolved, run 'mysqlprobe configure --require client'")
	}
	if opts == nil {
		opts = &core.RunOptions{}
	}

	unlock, err := locks.Lock(ctx, script)
	if err != nil {
		return err
	}
	defer unlock()

	f, err := os.Open(script)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	stdin, err := input(f)
	if err != nil {
		return fmt.Errorf("%s: %w", script, err)
	}

	args := ClientArgs(conn)
	cmd := exec.CommandContext(ctx, conn.Client, args...)
	cmd.Stdin = stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	log.Info().Str("script", script).Str("client", conn.Client).Strs("args", args).Msg("running script")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", script, err)
	}
	return nil
}
