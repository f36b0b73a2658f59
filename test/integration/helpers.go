//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIToken    string
	CompanySlug string
	BaseURL     string
	FikenPath   string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIToken:    os.Getenv("FIKEN_API_TOKEN"),
		CompanySlug: os.Getenv("FIKEN_COMPANY_SLUG"),
		BaseURL:     os.Getenv("FIKEN_BASE_URL"),
		FikenPath:   getFikenPath(),
		Verbose:     os.Getenv("FIKEN_VERBOSE") == "true",
	}
}

// getFikenPath determines the path to the fiken binary
func getFikenPath() string {
	if path := os.Getenv("FIKEN_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../fiken",
		"./fiken",
		"../fiken",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "fiken"
}

// SkipIfMissingCredentials skips tests that talk to the live API.
func (config *TestConfig) SkipIfMissingCredentials(t *testing.T) {
	t.Helper()

	if config.APIToken == "" || config.CompanySlug == "" {
		t.Skip("FIKEN_API_TOKEN and FIKEN_COMPANY_SLUG not set, skipping integration test")
	}
}

// SkipIfMissingBinary additionally skips tests that need the CLI binary.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()
	config.SkipIfMissingCredentials(t)

	if _, err := exec.LookPath(config.FikenPath); err != nil {
		t.Skipf("fiken binary not found at %s, skipping integration test", config.FikenPath)
	}
}

// CommandRunner runs the fiken binary against the configured company.
type CommandRunner struct {
	config *TestConfig
	home   string
	t      *testing.T
}

// NewCommandRunner creates a runner with an empty HOME so no local config
// file leaks into the tests.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		home:   t.TempDir(),
		t:      t,
	}
}

// Run executes a fiken command and returns its output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.FikenPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+runner.home,
		"FIKEN_API_TOKEN="+runner.config.APIToken,
		"FIKEN_COMPANY="+runner.config.CompanySlug,
	)

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "FIKEN_BASE_URL="+runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.FikenPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// AssertJSONOutput decodes output as JSON into target.
func AssertJSONOutput(t *testing.T, output string, target interface{}) {
	t.Helper()

	err := json.Unmarshal([]byte(strings.TrimSpace(output)), target)
	if err != nil {
		t.Errorf("Output is not JSON: %v\n%s", err, output)
	}
}

// AssertYAMLOutput decodes output as YAML into target.
func AssertYAMLOutput(t *testing.T, output string, target interface{}) {
	t.Helper()

	err := yaml.Unmarshal([]byte(output), target)
	if err != nil {
		t.Errorf("Output is not YAML: %v\n%s", err, output)
	}
}
