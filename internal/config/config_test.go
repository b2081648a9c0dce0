package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func setEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("DATA_FILE", "/tmp/ledger.json")
	t.Setenv("LOG_LVL", "debug")
	t.Setenv("FLAT_FEE", "75")
	t.Setenv("TRUEWALLET_ADDRESS", "www.planariashop.com")
}

func TestNew(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-a", "localhost:8080",
		"-f", "data.json",
		"-l", "error",
		"-fee", "50",
	}
	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "data.json", cfg.DataFile)
	assert.Equal(t, "error", cfg.LogLvl)
	assert.Equal(t, 50, cfg.FlatFee)
}

func TestTrueWalletAddressDefaultProtocol(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)

	cfg := New()

	assert.Equal(t, "https://www.planariashop.com", cfg.TrueWalletAddress)
	assert.Equal(t, "localhost:9000", cfg.Address)
	assert.Equal(t, 75, cfg.FlatFee)
}

func TestFeatureToggles(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)

	cfg := New()
	assert.False(t, cfg.TopupEnabled())
	assert.False(t, cfg.BotEnabled())

	cfg.TrueWalletAPIKey = "key"
	cfg.BotToken = "token"
	assert.True(t, cfg.TopupEnabled())
	assert.True(t, cfg.BotEnabled())
}
