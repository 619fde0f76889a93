package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/godump/pkg/config"
)

func isolatedOptions(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)
	require.NotNil(t, result.File)

	cfg, err := result.File.Resolve()
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), cfg)
	assert.Empty(t, result.LoadedFrom)
	for _, key := range Keys() {
		assert.Equal(t, SourceDefault, result.Sources[key], "key %s", key)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	configPath := filepath.Join(tmpDir, ".godump.yml")
	writeFile(t, configPath, "radix: hex\nline_width: 16\ntext: true\n")

	// Search starts in a subdirectory and walks up to the project root.
	subDir := filepath.Join(tmpDir, "testdata", "blobs")
	require.NoError(t, os.MkdirAll(subDir, 0o755))

	result, err := Load(context.Background(), isolatedOptions(subDir))
	require.NoError(t, err)
	assert.Equal(t, []string{configPath}, result.LoadedFrom)
	assert.Equal(t, configPath, result.Sources[KeyRadix])
	assert.Equal(t, SourceDefault, result.Sources[KeyAddress])

	cfg, err := result.File.Resolve()
	require.NoError(t, err)
	assert.Equal(t, config.RadixHex, cfg.Radix)
	assert.Equal(t, 16, cfg.LineWidth)
	assert.True(t, cfg.Text)
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".godump.yml"), "radix: hex\nline_width: 16\n")
	explicit := filepath.Join(tmpDir, "custom.yaml")
	writeFile(t, explicit, "radix: oct\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Len(t, result.LoadedFrom, 2)
	assert.Equal(t, "oct", *result.File.Radix)
	assert.Equal(t, 16, *result.File.LineWidth)
	assert.Equal(t, explicit, result.Sources[KeyRadix])
}

func TestLoad_UserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, filepath.Join(xdg, "godump", "config.yaml"), "address: true\n")

	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, ".git"), 0o755))

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreEnv:          true,
	})
	require.NoError(t, err)
	assert.True(t, *result.File.Address)
	assert.Equal(t, filepath.Join(xdg, "godump", "config.yaml"), result.Paths.User)
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	t.Setenv("GODUMP_RADIX", "dec")
	t.Setenv("GODUMP_BREAK_ON", "10, 0x0d")

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".godump.yml"), "radix: hex\n")

	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "dec", *result.File.Radix)
	assert.Equal(t, []int{10, 13}, result.File.BreakOn)
	assert.Equal(t, SourceEnv, result.Sources[KeyRadix])
	assert.Equal(t, SourceEnv, result.Sources[KeyBreakOn])
}

func TestLoad_CLIOverridesEnv(t *testing.T) {
	t.Setenv("GODUMP_LINE_WIDTH", "4")

	tmpDir := t.TempDir()
	width := 32
	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false
	opts.IgnoreProjectConfig = true
	opts.CLIConfig = &config.File{LineWidth: &width}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 32, *result.File.LineWidth)
	assert.Equal(t, SourceFlag, result.Sources[KeyLineWidth])
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("GODUMP_LINE_WIDTH", "0")

	opts := isolatedOptions(t.TempDir())
	opts.IgnoreEnv = false
	opts.IgnoreProjectConfig = true

	_, err := Load(context.Background(), opts)
	require.ErrorIs(t, err, config.ErrInvalidLineWidth)
	assert.Contains(t, err.Error(), "load environment")
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	configPath := filepath.Join(tmpDir, ".godump.yml")
	writeFile(t, configPath, "radix: base64\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.ErrorIs(t, err, config.ErrInvalidRadix)
	assert.Contains(t, err.Error(), configPath)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, KeyRadix, validationErr.Field)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".godump.yml"), "radix: [hex\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load project config")
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t.TempDir())
	opts.IgnoreProjectConfig = true
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yml")

	_, err := Load(context.Background(), opts)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Warnings(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".godump.yml"), "select: \"5..3\"\n")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "selects no bytes")
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolatedOptions(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ".godump.yml"), "radix: hex\n")
	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	found, err := FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindProjectConfig_Preference(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "godump.yaml"), "")
	writeFile(t, filepath.Join(dir, ".godump.yaml"), "")

	found, err := FindProjectConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".godump.yaml"), found)
}
