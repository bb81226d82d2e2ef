package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"riddle-bridge/internal/audio"
	"riddle-bridge/internal/config"
	"riddle-bridge/internal/riddle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "riddle-bridge dev")
}

func TestLoadEnvDefaults(t *testing.T) {
	rt, err := loadEnv(config.New(), false)
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, 10, rt.table.Len())
	assert.Equal(t, 5, rt.cfg.MaxLight)
}

func TestLoadEnvRiddleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riddles.yaml")
	data := []byte("riddles:\n  - prompt: What has keys but opens no locks?\n    answers: [piano, a piano]\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	vp := config.New()
	vp.Set("riddles_file", path)
	rt, err := loadEnv(vp, false)
	require.NoError(t, err)
	defer rt.Close()
	assert.Equal(t, 1, rt.table.Len())
}

func TestLoadEnvRejectsBadRiddles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riddles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("riddles:\n  - prompt: Empty\n    answers: []\n"), 0o644))

	vp := config.New()
	vp.Set("riddles_file", path)
	_, err := loadEnv(vp, false)
	assert.ErrorIs(t, err, riddle.ErrInvalidContent)
}

func TestLoadEnvRejectsBadConfig(t *testing.T) {
	vp := config.New()
	vp.Set("max_light", 0)
	_, err := loadEnv(vp, false)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSessionOptions(t *testing.T) {
	rt, err := loadEnv(config.New(), false)
	require.NoError(t, err)
	defer rt.Close()

	opts := sessionOptions(rt, audio.Silent{}, "certs")
	assert.Equal(t, "certs", opts.CertificateDir)
	assert.Equal(t, rt.cfg.Timing.Frame, opts.Frame)
	assert.Equal(t, rt.cfg.MaxLight, opts.Bridge.MaxLight)
	assert.Same(t, rt.log, opts.Logger)
}
