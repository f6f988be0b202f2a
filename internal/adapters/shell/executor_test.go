package shell_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/adapters/shell"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/scaffold/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("line1").Times(1),
		mockLogger.EXPECT().Info("line2").Times(1),
	)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Command{
		Name:       "sh",
		Args:       []string{"-c", "echo line1; echo line2"},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	// Partial writes are buffered until the newline.
	mockLogger.EXPECT().Info("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Command{
		Name:       "sh",
		Args:       []string{"-c", "printf part1; sleep 0.1; echo part2"},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_StderrIsWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("progress").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Command{
		Name:       "sh",
		Args:       []string{"-c", "echo progress >&2"},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("test-value-123").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Command{
		Name:        "sh",
		Args:        []string{"-c", "echo $MY_TEST_VAR"},
		Environment: map[string]string{"MY_TEST_VAR": "test-value-123"},
		WorkingDir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(resolved).Times(1)

	executor := shell.NewExecutor(mockLogger)

	err = executor.Execute(context.Background(), &domain.Command{
		Name:       "sh",
		Args:       []string{"-c", "pwd -P"},
		WorkingDir: tmpDir,
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Command{
		Name:       "nonexistent-command-xyz123",
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start command")
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("boom").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Command{
		Name:       "sh",
		Args:       []string{"-c", "echo boom >&2; exit 42"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, 42, meta["exit_code"])
	assert.Equal(t, "boom", meta["stderr"])
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	require.NoError(t, executor.Execute(context.Background(), &domain.Command{}))
	require.NoError(t, executor.Execute(context.Background(), nil))
}

func TestExecutor_Execute_RelativeToWorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("robo ran").Times(1)

	executor := shell.NewExecutor(mockLogger)

	projectDir := t.TempDir()
	binDir := filepath.Join(projectDir, "vendor", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o750))
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "robo"), []byte("#!/bin/sh\necho robo ran\n"), 0o700))

	err := executor.Execute(context.Background(), &domain.Command{
		Name:       "vendor/bin/robo",
		WorkingDir: projectDir,
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_StreamsToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("out").Times(1)
	mockLogger.EXPECT().Warn("err").Times(1)

	var stdout, stderr bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stdout().Return(&stdout)
	mockVertex.EXPECT().Stderr().Return(&stderr)

	executor := shell.NewExecutor(mockLogger)
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	err := executor.Execute(ctx, &domain.Command{
		Name:       "sh",
		Args:       []string{"-c", "echo out; echo err >&2"},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_OverlongLineIsCut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var lines []string
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(line string) {
		lines = append(lines, line)
	}).Times(2)

	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- executor.Execute(ctx, &domain.Command{
			Name:       "sh",
			Args:       []string{"-c", "head -c 3000000 /dev/zero | tr '\\0' a; echo; echo done"},
			WorkingDir: t.TempDir(),
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(40 * time.Second):
		t.Fatal("Execute did not return")
	}

	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 1024*1024)
	assert.Equal(t, strings.Repeat("a", 16), lines[0][:16])
	assert.Equal(t, "done", lines[1])
}

func TestExecutor_Execute_BackgroundChildHoldsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("started").Times(1)

	executor := shell.NewExecutor(mockLogger)

	start := time.Now()
	err := executor.Execute(context.Background(), &domain.Command{
		Name:       "sh",
		Args:       []string{"-c", "echo started; sleep 20 &"},
		WorkingDir: t.TempDir(),
	})

	// The background sleep keeps stdout open; Wait gives up after its delay.
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrWaitDelay)
	assert.Less(t, time.Since(start), 30*time.Second)
}
