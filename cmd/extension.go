package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
)

// Environment variables passed to extensions, with the effective value of the
// global flags. They are the same variables used for the configuration, so an
// extension can itself be a unicorn based tool.
const (
	EnvDatabase = EnvPrefix + "_DATABASE"
	EnvLogLevel = EnvPrefix + "_LOG_LEVEL"
	EnvPlain    = EnvPrefix + "_PLAIN"
)

// IsRegistered reports whether name is a subcommand of c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		found = found || sc.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external unicorn-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "unicorn-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		Log.WithError(err).Debugf("external command %q not found in PATH", externalCmdName)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDatabase+"="+*databasePath)
	cmd.Env = append(cmd.Env, EnvLogLevel+"="+*logLevel)
	cmd.Env = append(cmd.Env, EnvPlain+"="+strconv.FormatBool(*plain))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
