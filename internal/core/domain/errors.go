package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingTriggerPackage is returned when drupal/core is not installed but scaffolding was requested.
	ErrMissingTriggerPackage = zerr.New("trigger package is not installed")

	// ErrMissingAuxiliaryTool is returned when the drush method is selected but drush is not installed.
	ErrMissingAuxiliaryTool = zerr.New("auxiliary tool package is not installed")

	// ErrUnknownMethod is returned when the configured download method is not recognized.
	ErrUnknownMethod = zerr.New("unknown scaffold download method")

	// ErrDispatchFailure is returned when the task runner reports a failed download.
	ErrDispatchFailure = zerr.New("scaffold download failed")

	// ErrPackageNotFound is returned when a package is not present in the local repository.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrComposerFileNotFound is returned when the project root has no composer.json.
	ErrComposerFileNotFound = zerr.New("composer.json not found")

	// ErrUnknownEvent is returned when the event stream contains an unrecognized event name.
	ErrUnknownEvent = zerr.New("unknown event")
)
