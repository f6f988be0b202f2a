// Package shell provides the process executor adapter.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	maxLineSize    = 1024 * 1024
	readBufferSize = 64 * 1024

	// waitDelay bounds how long Wait waits for output after the process exits or is killed.
	waitDelay = 5 * time.Second
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and streams its output line by line.
// The environment is os.Environ() overlaid with command.Environment.
// Stdout lines are logged at info level and stderr lines at warn level; both are
// also copied to the vertex carried by ctx.
func (e *Executor) Execute(ctx context.Context, command *domain.Command) error {
	if command == nil || command.Name == "" {
		return nil
	}

	name := command.Name
	cmdEnv := resolveEnvironment(os.Environ(), command.Environment)

	executable := name
	switch {
	case filepath.IsAbs(name):
	case strings.ContainsRune(name, filepath.Separator):
		// Relative paths such as vendor/bin/robo are relative to the working directory.
		if command.WorkingDir != "" {
			executable = filepath.Join(command.WorkingDir, name)
		}
	default:
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args...) //nolint:gosec // runner is configured by the user

	// Keep the name as invoked in Args[0].
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = command.WorkingDir
	cmd.Env = cmdEnv

	// Output goes through io.Pipe so that Wait, bounded by WaitDelay, owns the
	// child's pipes even when a grandchild keeps them open.
	outR, outW := io.Pipe()
	errR, errW := io.Pipe()
	cmd.Stdout = outW
	cmd.Stderr = errW
	cmd.WaitDelay = waitDelay

	if err := cmd.Start(); err != nil {
		_ = outW.Close()
		_ = errW.Close()
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
	}

	var vertexOut, vertexErr io.Writer = io.Discard, io.Discard
	if v, ok := ports.VertexFromContext(ctx); ok {
		vertexOut, vertexErr = v.Stdout(), v.Stderr()
	}

	// The last stderr line is attached to the failure for diagnostics.
	var lastErrLine string

	var g errgroup.Group
	g.Go(func() error {
		return streamLines(outR, vertexOut, e.logger.Info)
	})
	g.Go(func() error {
		return streamLines(errR, vertexErr, func(line string) {
			lastErrLine = line
			e.logger.Warn(line)
		})
	})

	waitErr := cmd.Wait()
	_ = outW.Close()
	_ = errW.Close()
	streamErr := g.Wait()

	if waitErr != nil {
		exitCode := -1 // Unknown or signal
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		cmdErr := zerr.With(zerr.Wrap(waitErr, "command failed"), "command", name)
		cmdErr = zerr.With(cmdErr, "exit_code", exitCode)
		return zerr.With(cmdErr, "stderr", lastErrLine)
	}

	if streamErr != nil {
		return zerr.Wrap(streamErr, "failed to read command output")
	}

	return nil
}

// streamLines forwards every line read from r to emit and to w.
// Lines longer than maxLineSize are cut; the rest of the line is discarded.
// r is drained to EOF even after a read error so the writer never blocks.
func streamLines(r io.Reader, w io.Writer, emit func(string)) error {
	br := bufio.NewReaderSize(r, readBufferSize)

	var line []byte
	flush := func() {
		text := strings.TrimSuffix(strings.TrimSuffix(string(line), "\n"), "\r")
		emit(text)
		_, _ = io.WriteString(w, text+"\n")
		line = line[:0]
	}

	for {
		chunk, err := br.ReadSlice('\n')
		if room := maxLineSize - len(line); room > 0 {
			line = append(line, chunk[:min(room, len(chunk))]...)
		}

		switch {
		case err == nil:
			flush()
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(line) > 0 {
				flush()
			}
			return nil
		default:
			_, _ = io.Copy(io.Discard, br)
			return err
		}
	}
}

// resolveEnvironment overlays the command overrides on the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
