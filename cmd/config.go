package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries the tunable parameters of the demos. Every value has a
// default, so the binary runs with no environment at all.
type Config struct {
	SeedOrders int
	BcryptCost int
	DepotX     int8
	DepotY     int8
}

// GetConfig reads configuration from the environment, with an optional .env
// file. Unset values fall back to defaults.
func GetConfig() Config {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetDefault("SEED_ORDERS", 3)
	v.SetDefault("BCRYPT_COST", 0)
	v.SetDefault("DEPOT_X", 1)
	v.SetDefault("DEPOT_Y", 1)
	v.AutomaticEnv()

	return Config{
		SeedOrders: v.GetInt("SEED_ORDERS"),
		BcryptCost: v.GetInt("BCRYPT_COST"),
		DepotX:     int8(v.GetInt("DEPOT_X")),
		DepotY:     int8(v.GetInt("DEPOT_Y")),
	}
}
