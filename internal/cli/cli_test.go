package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/fuuid"
)

type output struct {
	stdout, stderr bytes.Buffer
}

func run(t *testing.T, stdin string, args ...string) (int, *output) {
	t.Helper()
	out := &output{}
	code := Run(args, Env{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out.stdout,
		Stderr: &out.stderr,
	})
	return code, out
}

func lines(s string) []string {
	return strings.Fields(s)
}

func TestRun_Usage(t *testing.T) {
	code, out := run(t, "")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, out.stderr.String(), "usage: fuuid")

	code, out = run(t, "", "bogus")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, out.stderr.String(), `unknown command "bogus"`)

	code, out = run(t, "", "help")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out.stdout.String(), "commands:")
}

func TestRun_New(t *testing.T) {
	code, out := run(t, "", "new", "-n", "3")
	require.Equal(t, ExitOK, code, out.stderr.String())

	ids := lines(out.stdout.String())
	require.Len(t, ids, 3)
	for _, s := range ids {
		id, err := fuuid.FromString(s)
		require.NoError(t, err)
		assert.Equal(t, fuuid.VersionRandom, id.Version())
	}
	assert.NotEqual(t, ids[0], ids[1])
}

func TestRun_NewV7(t *testing.T) {
	code, out := run(t, "", "new", "--v7", "--count=2")
	require.Equal(t, ExitOK, code, out.stderr.String())

	ids := lines(out.stdout.String())
	require.Len(t, ids, 2)
	first, err := fuuid.FromString(ids[0])
	require.NoError(t, err)
	second, err := fuuid.FromString(ids[1])
	require.NoError(t, err)
	assert.Equal(t, fuuid.VersionTimeSorted, first.Version())
	assert.Equal(t, -1, first.Compare(second))
}

func TestRun_NewBadCount(t *testing.T) {
	code, out := run(t, "", "new", "-n", "0")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, out.stderr.String(), "count must be positive")
}

func TestRun_V5(t *testing.T) {
	code, out := run(t, "", "v5", "--namespace", "dns", "python.org", "www.example.com")
	require.Equal(t, ExitOK, code, out.stderr.String())
	assert.Equal(t, []string{
		"886313e1-3b8a-5372-9b90-0c9aee199e5d",
		"2ed6657d-e927-568b-95e1-2665a8aea6a2",
	}, lines(out.stdout.String()))
}

func TestRun_V5NamespaceFromEnv(t *testing.T) {
	t.Setenv("FUUID_NAMESPACE", "6ba7b810-9dad-11d1-80b4-00c04fd430c8") // same bits as dns

	code, out := run(t, "", "v5", "python.org")
	require.Equal(t, ExitOK, code, out.stderr.String())
	assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d\n", out.stdout.String())
}

func TestRun_V5NamespaceFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fuuid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: dns\nlog-format: json\n"), 0o600))

	code, out := run(t, "", "v5", "--config", path, "python.org")
	require.Equal(t, ExitOK, code, out.stderr.String())
	assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d\n", out.stdout.String())
}

func TestRun_V5Errors(t *testing.T) {
	code, out := run(t, "", "v5", "--namespace", "nope", "x")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, out.stderr.String(), "invalid namespace")

	code, out = run(t, "", "v5")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, out.stderr.String(), "at least one name")
}

func TestRun_ValidateArgs(t *testing.T) {
	code, out := run(t, "", "validate", "F47AC10B-58CC-4372-A567-0E02B2C3D479", "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}")
	require.Equal(t, ExitOK, code, out.stderr.String())
	assert.Equal(t, []string{
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	}, lines(out.stdout.String()))
}

func TestRun_ValidateReportsEveryError(t *testing.T) {
	stdin := "first-bad\nf47ac10b-58cc-4372-a567-0e02b2c3d479\n\nsecond-bad\n"
	code, out := run(t, stdin, "validate", "--log-format", "json")
	require.Equal(t, ExitInvalid, code)
	assert.Empty(t, out.stdout.String())

	logs := out.stderr.String()
	first := strings.Index(logs, `"input":"first-bad"`)
	second := strings.Index(logs, `"input":"second-bad"`)
	require.NotEqual(t, -1, first, logs)
	require.NotEqual(t, -1, second, logs)
	assert.Less(t, first, second, "errors must be reported in input order")
	assert.Contains(t, logs, `"invalid":2`)
	assert.Contains(t, logs, `"total":3`)
}

func TestRun_BadLogLevel(t *testing.T) {
	code, _ := run(t, "", "new", "--log-level", "loud")
	assert.Equal(t, ExitUsage, code)
}
