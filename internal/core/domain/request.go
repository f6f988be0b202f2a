package domain

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// TaskNamespace prefixes every task-runner command issued for scaffolding.
	TaskNamespace = "drupal_scaffold"

	// ListDelimiter joins the excludes and settings lists on the task-runner command line.
	ListDelimiter = ","
)

// CommandID returns the task-runner command that implements the given method.
func CommandID(m Method) string {
	return TaskNamespace + ":" + string(m) + "_download"
}

// WebRoot returns the scaffold target directory for a trigger package install path.
// It is always the parent directory of the install path.
func WebRoot(installPath string) string {
	return filepath.Dir(filepath.Clean(installPath))
}

// DownloadRequest is the fully resolved parameter set of one scaffold download.
type DownloadRequest struct {
	Version  string
	WebRoot  string
	Excludes []string
	Settings []string
	Method   Method

	// ToolPath is the drush executable, set for MethodDrush.
	ToolPath string
	// Source is the archive URL template, set for MethodHTTP.
	Source string
}

// Flag is a named task-runner argument.
type Flag struct {
	Name  string
	Value string
}

// TaskInvocation is a single task-runner command invocation.
type TaskInvocation struct {
	Command string
	Args    []string
	Flags   []Flag
}

// Argv renders the invocation as command line arguments.
func (t TaskInvocation) Argv() []string {
	argv := make([]string, 0, 1+len(t.Args)+2*len(t.Flags))
	argv = append(argv, t.Command)
	argv = append(argv, t.Args...)
	for _, f := range t.Flags {
		argv = append(argv, "--"+f.Name, f.Value)
	}
	return argv
}

// Invocation builds the task-runner invocation for the request.
func (r *DownloadRequest) Invocation() TaskInvocation {
	flags := []Flag{
		{Name: "webroot", Value: r.WebRoot},
		{Name: "excludes", Value: strings.Join(r.Excludes, ListDelimiter)},
		{Name: "settings", Value: strings.Join(r.Settings, ListDelimiter)},
	}
	switch r.Method {
	case MethodDrush:
		flags = append(flags, Flag{Name: "drush", Value: r.ToolPath})
	case MethodHTTP:
		flags = append(flags, Flag{Name: "source", Value: r.Source})
	}

	return TaskInvocation{
		Command: CommandID(r.Method),
		Args:    []string{r.Version},
		Flags:   flags,
	}
}

// Fingerprint returns a stable identifier for the request.
func (r *DownloadRequest) Fingerprint() string {
	h := xxhash.New()
	for _, arg := range r.Invocation().Argv() {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
