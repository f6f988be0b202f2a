package composer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/adapters/composer"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const composer2Installed = `{
    "packages": [
        {
            "name": "drupal/core",
            "version": "9.1.0",
            "version_normalized": "9.1.0.0",
            "type": "drupal-core",
            "install-path": "../../web/core"
        },
        {
            "name": "drush/drush",
            "version": "10.3.6",
            "type": "library",
            "install-path": "../drush/drush"
        },
        {
            "name": "acme/tool",
            "version": "dev-main",
            "type": "library"
        }
    ],
    "dev": true
}`

const composer1Installed = `[
    {"name": "drupal/core", "version": "8.9.11", "type": "drupal-core"},
    {"name": "drush/drush", "version": "9.7.2", "type": "library"}
]`

func newProject(t *testing.T, installed string, extra map[string]any) *domain.Project {
	t.Helper()
	root := t.TempDir()
	if installed != "" {
		dir := filepath.Join(root, "vendor", "composer")
		require.NoError(t, os.MkdirAll(dir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "installed.json"), []byte(installed), 0o600))
	}
	if extra == nil {
		extra = map[string]any{}
	}
	return &domain.Project{Root: root, VendorDir: "vendor", Extra: extra}
}

func TestLocator_FindInstalled_Composer2(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := newProject(t, composer2Installed, nil)
	locator := composer.NewLocator(mocks.NewMockLogger(ctrl))

	pkg, err := locator.FindInstalled(project, domain.TriggerPackageName, domain.AnyVersion)
	require.NoError(t, err)
	assert.Equal(t, "drupal/core", pkg.Name)
	assert.Equal(t, "9.1.0", pkg.Version)
	assert.Equal(t, "drupal-core", pkg.Type)
	assert.Equal(t, filepath.Join(project.Root, "web", "core"), pkg.InstallPath)
}

func TestLocator_FindInstalled_Composer1(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := newProject(t, composer1Installed, nil)
	locator := composer.NewLocator(mocks.NewMockLogger(ctrl))

	pkg, err := locator.FindInstalled(project, domain.ToolPackageName, domain.AnyVersion)
	require.NoError(t, err)
	assert.Equal(t, "9.7.2", pkg.Version)
	assert.Empty(t, pkg.InstallPath)
}

func TestLocator_FindInstalled_Constraint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	project := newProject(t, composer2Installed, nil)
	locator := composer.NewLocator(mockLogger)

	pkg, err := locator.FindInstalled(project, "drupal/core", "^9.0")
	require.NoError(t, err)
	assert.Equal(t, "9.1.0", pkg.Version)

	_, err = locator.FindInstalled(project, "drupal/core", "^8.0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound))

	// Branch versions only match the "any" constraint.
	_, err = locator.FindInstalled(project, "acme/tool", ">=1.0")
	require.Error(t, err)
	pkg, err = locator.FindInstalled(project, "acme/tool", domain.AnyVersion)
	require.NoError(t, err)
	assert.Equal(t, "dev-main", pkg.Version)
}

func TestLocator_FindInstalled_InvalidConstraint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := newProject(t, composer2Installed, nil)
	locator := composer.NewLocator(mocks.NewMockLogger(ctrl))

	_, err := locator.FindInstalled(project, "drupal/core", "not a constraint!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version constraint")
}

func TestLocator_FindInstalled_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locator := composer.NewLocator(mocks.NewMockLogger(ctrl))

	t.Run("missing package", func(t *testing.T) {
		project := newProject(t, composer1Installed, nil)
		_, err := locator.FindInstalled(project, "drupal/console", domain.AnyVersion)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPackageNotFound))

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "drupal/console", zErr.Metadata()["package"])
	})

	t.Run("missing repository", func(t *testing.T) {
		project := newProject(t, "", nil)
		_, err := locator.FindInstalled(project, "drupal/core", domain.AnyVersion)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPackageNotFound))
	})
}

func TestLocator_FindInstalled_CorruptRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := newProject(t, `{"packages": [`, nil)
	locator := composer.NewLocator(mocks.NewMockLogger(ctrl))

	_, err := locator.FindInstalled(project, "drupal/core", domain.AnyVersion)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse installed packages")
}

func TestLocator_InstallPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locator := composer.NewLocator(mocks.NewMockLogger(ctrl))

	t.Run("known path relative to root", func(t *testing.T) {
		project := newProject(t, "", nil)
		path, err := locator.InstallPath(project, &domain.Package{Name: "drupal/core", InstallPath: "web/core"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(project.Root, "web", "core"), path)
	})

	t.Run("composer 2 install-path", func(t *testing.T) {
		project := newProject(t, composer2Installed, nil)
		path, err := locator.InstallPath(project, &domain.Package{Name: "drush/drush"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(project.Root, "vendor", "drush", "drush"), path)
	})

	t.Run("installer-paths by type", func(t *testing.T) {
		project := newProject(t, composer1Installed, map[string]any{
			"installer-paths": map[string]any{
				"docroot/core":                   []any{"type:drupal-core"},
				"docroot/modules/contrib/{$name}": []any{"type:drupal-module"},
			},
		})
		path, err := locator.InstallPath(project, &domain.Package{Name: "drupal/core"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(project.Root, "docroot", "core"), path)
	})

	t.Run("vendor fallback", func(t *testing.T) {
		project := newProject(t, composer1Installed, nil)
		path, err := locator.InstallPath(project, &domain.Package{Name: "drush/drush"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(project.Root, "vendor", "drush", "drush"), path)
	})

	t.Run("nil package", func(t *testing.T) {
		_, err := locator.InstallPath(newProject(t, "", nil), nil)
		require.Error(t, err)
	})
}

func TestLocator_FindInstalled_NormalizedVersionFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	installed := `{"packages": [
        {"name": "drupal/core", "version": "9.1.x-dev", "version_normalized": "9.1.9999999.9999999-dev", "type": "drupal-core"},
        {"name": "drush/drush", "version": "dev-main", "version_normalized": "dev-main", "type": "library"}
    ]}`
	project := newProject(t, installed, nil)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	locator := composer.NewLocator(mockLogger)

	pkg, err := locator.FindInstalled(project, domain.TriggerPackageName, ">=9.1.0-dev <9.2.0-dev")
	require.NoError(t, err)
	assert.Equal(t, "9.1.x-dev", pkg.Version)

	_, err = locator.FindInstalled(project, domain.ToolPackageName, ">=10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound))
}
