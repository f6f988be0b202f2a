package domain

// Command is a process to run on behalf of a task invocation.
type Command struct {
	// Name is the executable, resolved against PATH when not absolute.
	Name string
	// Args are the command line arguments.
	Args []string
	// WorkingDir is the directory the process runs in.
	WorkingDir string
	// Environment holds overrides applied on top of the system environment.
	Environment map[string]string
}
