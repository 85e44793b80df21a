// Command token issues an access token for local development, or hashes an
// internal service key for APP_API_KEY_HASH.
package main

import (
	"flag"
	"fmt"

	"calgrid/config"
	"calgrid/infras/jwt"
	"calgrid/shared/constant"
	"calgrid/shared/logger"
	"calgrid/shared/secret"
	"calgrid/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	userID := flag.String("user", "dev", "user id placed in the token")
	salonID := flag.String("salon", "", "salon the token is scoped to")
	role := flag.String("role", constant.RoleStaff, "role claim")
	hashKey := flag.String("hash-key", "", "print the bcrypt hash of this service key instead of a token")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)
	timezone.Init(cfg.App.Timezone)

	if *hashKey != "" {
		hash, err := secret.Hash(*hashKey, secret.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash key")
		}

		fmt.Println(hash) //nolint:forbidigo

		return
	}

	if cfg.Server.Env == constant.ServerEnvProduction {
		log.Fatal().Msg("Refusing to issue tokens in production")
	}

	if *salonID == "" {
		log.Fatal().Msg("-salon is required")
	}

	token, err := jwt.New(cfg).GenerateToken(*userID, *salonID, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to issue token")
	}

	fmt.Println(token) //nolint:forbidigo
}
