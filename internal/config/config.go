package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address      string `env:"RUN_ADDRESS"          envDefault:"localhost:8080"`
	DataFile     string `env:"DATA_FILE"            envDefault:"data.json"`
	LogLvl       string `env:"LOG_LVL"              envDefault:"info"`
	FlatFee      int    `env:"FLAT_FEE"             envDefault:"50"`
	JWTSecret    string `env:"JWT_SECRET"           envDefault:""`
	AdminPwdHash string `env:"ADMIN_PASSWORD_HASH"  envDefault:""`

	BotToken       string `env:"DISCORD_BOT_TOKEN"  envDefault:""`
	AdminChannelID string `env:"ADMIN_CHANNEL_ID"   envDefault:""`
	BuyerChannelID string `env:"BUYER_CHANNEL_ID"   envDefault:""`
	AllowedUserID  string `env:"ALLOWED_USER_ID"    envDefault:""`

	TrueWalletAddress string `env:"TRUEWALLET_ADDRESS" envDefault:"https://www.planariashop.com"`
	TrueWalletAPIKey  string `env:"TRUEWALLET_API_KEY" envDefault:""`
	TrueWalletPhone   string `env:"TRUEWALLET_PHONE"   envDefault:""`
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run the admin API")
	flag.StringVar(&cfg.DataFile, "f", cfg.DataFile, "path to the ledger snapshot file")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.IntVar(&cfg.FlatFee, "fee", cfg.FlatFee, "flat fee charged per custom rank order")
	flag.Parse()

	if !strings.HasPrefix(cfg.TrueWalletAddress, "http://") && !strings.HasPrefix(cfg.TrueWalletAddress, "https://") {
		cfg.TrueWalletAddress = "https://" + cfg.TrueWalletAddress
	}

	return cfg
}

// TopupEnabled reports whether payment verification credentials are present.
// Without them every topup attempt is rejected before any outbound call.
func (c *Config) TopupEnabled() bool {
	return c.TrueWalletAPIKey != ""
}

// BotEnabled reports whether the Discord transport should start.
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}
