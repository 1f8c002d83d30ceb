package core

import (
	"context"
	"io"
)

// TaskHandler runs one kind of script file against a live server
type TaskHandler interface {
	// Name returns the handler name (e.g., "mysql-script")
	Name() string

	// Extensions lists the file suffixes the handler accepts, dot included
	Extensions() []string

	// Run executes the script. It is never skipped for freshness.
	Run(ctx context.Context, conn Connection, script string, opts *RunOptions) error
}

// Connection identifies the server a task runs against and the client
// used to reach it
type Connection struct {
	Client string // Path to the mysql client executable
	Socket string // Server socket path
	User   string // Admin user name
}

// RunOptions configures where a task's output goes
type RunOptions struct {
	Stdout io.Writer // Defaults to os.Stdout
	Stderr io.Writer // Defaults to os.Stderr
}
