package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are tested with a shell script")
	}
	out := setup(t)

	dir := t.TempDir()
	script := "#!/bin/sh\necho \"$" + EnvDatabase + " $" + EnvPlain + " $@\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "unicorn-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("hello", []string{"world"})
	assert.True(t, found)
	assert.Equal(t, 3, code)
	assert.Equal(t, *databasePath+" true world\n", out.String())

	found, _ = RunExtension("does-not-exist", nil)
	assert.False(t, found)
}

func TestIsRegistered(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("unicorn", flag.ContinueOnError), "unicorn")
	Register(commander)
	assert.True(t, IsRegistered(commander, "countries"))
	assert.False(t, IsRegistered(commander, "hello"))
}
