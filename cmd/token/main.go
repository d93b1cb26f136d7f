// token issues a bearer token for the restaurants api.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"

	"restaurants/config"
	"restaurants/pkg/table"
	"restaurants/pkg/token"
)

var (
	configFile = flag.String("f", "./config/restaurants.yaml", "the config file")
	subject    = flag.String("sub", "", "the caller the token is issued to")
	expire     = flag.Duration("expire", 0, "token lifetime, defaults to auth.expire")
	show       = flag.Bool("show", false, "print the token claims as a table")
)

func main() {
	flag.Parse()
	if *subject == "" {
		log.Fatal("-sub is required")
	}
	if err := config.LoadConfig(*configFile); err != nil {
		log.Fatal(err)
	}
	duration := *expire
	if duration <= 0 {
		duration = viper.GetDuration("auth.expire")
	}
	if duration <= 0 {
		duration = 24 * time.Hour
	}
	manager, err := token.NewJWTManager(viper.GetString("auth.secret"), duration)
	if err != nil {
		log.Fatal(err)
	}
	t, err := manager.Generate(*subject)
	if err != nil {
		log.Fatal(err)
	}
	if !*show {
		fmt.Println(t)
		return
	}
	claims, err := manager.Verify(t)
	if err != nil {
		log.Fatal(err)
	}
	table.RenderShow(os.Stdout, map[string]interface{}{
		"subject":    claims.Subject,
		"issued_at":  claims.IssuedAt.Time.UTC().Format(time.RFC3339),
		"expires_at": claims.ExpiresAt.Time.UTC().Format(time.RFC3339),
		"token":      t,
	}, []string{"subject", "issued_at", "expires_at", "token"})
}
