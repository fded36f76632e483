package azure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_IDS", "")
	t.Setenv("ASBUILT_OUTPUT", "")
	t.Setenv("ASBUILT_LOG_FILE", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultProfile, cfg.Profile)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_IDS", "sub-1,sub-2")
	t.Setenv("ASBUILT_OUTPUT", "report.docx")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sub-1,sub-2", cfg.Subscriptions)
	assert.Equal(t, "report.docx", cfg.Output)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asbuilt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("subscriptions: sub-file\noutput: custom.docx\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sub-file", cfg.Subscriptions)
	assert.Equal(t, "custom.docx", cfg.Output)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_IDS", "sub-env")
	path := filepath.Join(t.TempDir(), "asbuilt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("subscriptions: sub-file\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sub-env", cfg.Subscriptions)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolveSubscriptions_SplitsCommaList(t *testing.T) {
	cfg := &Config{Subscriptions: "sub-1,sub-2,sub-3"}
	ids, err := cfg.ResolveSubscriptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"sub-1", "sub-2", "sub-3"}, ids)
}

func TestResolveSubscriptions_SingleID(t *testing.T) {
	cfg := &Config{Subscriptions: "sub-only"}
	ids, err := cfg.ResolveSubscriptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"sub-only"}, ids)
}

func TestResolveSubscriptions_ProfileFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".azure"), 0o755))
	profile := "[default]\nsubscription = sub-profile\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".azure", "config"), []byte(profile), 0o644))

	cfg := &Config{Profile: "default"}
	ids, err := cfg.ResolveSubscriptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"sub-profile"}, ids)
}

func TestResolveSubscriptions_EmptyIsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &Config{Profile: "default"}
	_, err := cfg.ResolveSubscriptions()
	assert.ErrorContains(t, err, "no subscription IDs configured")
}
