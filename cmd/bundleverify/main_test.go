package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "bundleverify-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "bundleverify")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func fixturePath(set, name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/bundles", set, name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = t.TempDir()
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_CheckPasses(t *testing.T) {
	out, code := run(t, "check",
		"--main", fixturePath("valid", "messages.properties"),
		"--locale", fixturePath("valid", "messages_fr.properties"),
		"--locale", fixturePath("valid", "messages_de.properties"))
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "LOCALE VERIFICATION SUCCESSFUL")
}

func TestE2E_CheckFails(t *testing.T) {
	out, code := run(t, "check",
		"--main", fixturePath("broken", "messages.properties"),
		"--locale", fixturePath("broken", "messages_es.properties"),
		"--locale", fixturePath("broken", "messages_de.properties"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "[FATAL] there are missing/empty entries in your locale resources")
	assert.Contains(t, out, "messages_de.properties")
}

func TestE2E_NoLocales(t *testing.T) {
	out, code := run(t, "check", "--main", fixturePath("valid", "messages.properties"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "there are no locales defined")
}

func TestE2E_MissingMainFile(t *testing.T) {
	out, code := run(t, "check",
		"--main", fixturePath("valid", "absent.properties"),
		"--locale", fixturePath("valid", "messages_fr.properties"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unable to load file")
}

func TestE2E_BadMain(t *testing.T) {
	out, code := run(t, "check",
		"--main", fixturePath("badmain", "messages.properties"),
		"--locale", fixturePath("badmain", "messages_fr.properties"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "has keys with no value defined")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "bundleverify")
}
