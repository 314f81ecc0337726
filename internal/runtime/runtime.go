package runtime

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// ErrNotContainerized is returned when a privileged operation is attempted
// outside a container.
var ErrNotContainerized = errors.New("root password can only be set in containerized environments")

// flags holds environment-variable overrides for runtime detection.
type flags struct {
	Dockerized  bool `envconfig:"DOCKERIZED" default:"false"`
	Development bool `envconfig:"DEVELOPMENT" default:"false"`
}

// Environment answers the two runtime-mode queries consulted while building
// the settings UI schema and gating privileged operations.
type Environment struct {
	containerized bool
	development   bool
}

// Detect derives the environment from DOCKERIZED/DEVELOPMENT variables and
// the /.dockerenv marker. Development defaults to the inverse of
// containerized unless explicitly set.
func Detect() *Environment {
	var f flags
	if err := envconfig.Process("", &f); err != nil {
		f = flags{}
	}

	containerized := f.Dockerized
	if !containerized {
		if _, err := os.Stat("/.dockerenv"); err == nil {
			containerized = true
		}
	}

	development := f.Development
	if !development && !containerized {
		development = true
	}

	return &Environment{containerized: containerized, development: development}
}

// NewEnvironment constructs a fixed environment, mainly for tests and for
// callers that already know their mode.
func NewEnvironment(containerized, development bool) *Environment {
	return &Environment{containerized: containerized, development: development}
}

// IsContainerized reports whether the process runs inside a container.
func (e *Environment) IsContainerized() bool {
	return e.containerized
}

// IsDevelopment reports whether the process runs in development mode.
func (e *Environment) IsDevelopment() bool {
	return e.development
}

// SetRootPassword changes the OS root account password via chpasswd. It
// fails loudly outside a container; the original password of a container is
// randomly generated during setup and this is the supported way to replace
// it.
func (e *Environment) SetRootPassword(password string) error {
	if !e.containerized {
		return ErrNotContainerized
	}

	cmd := exec.Command("chpasswd")
	cmd.Stdin = strings.NewReader("root:" + password)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("chpasswd: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
