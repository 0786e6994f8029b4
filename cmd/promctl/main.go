// Command promctl drives the catalog, booking and SMS clients from a shell
// and mints admin tokens for the catalog API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"prom_map/internal/client/booking"
	"prom_map/internal/client/catalog"
	"prom_map/internal/client/session"
	"prom_map/internal/client/sms"
	"prom_map/internal/config"
	"prom_map/internal/logger"
	"prom_map/internal/middleware"
)

const usage = `usage: promctl <command> [flags]

catalog:  locations | location -id N | routes | route -id N
booking:  login|register -email E -password P | me | spaces -park ID
          chargers | lockers-sessions | chargers-sessions | reset
          finish-session -id ID -kind lockers|chargers
          finish-payment -id ID | payment -id ID
          enable-locker -id ID | disable-locker -id ID
sms:      sms-open -id ID | sms-occupy -id ID
admin:    admin-token -subject NAME [-ttl 24h]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	cfg := config.Load()
	cfg.Log.File = "" // keep CLI logs on stderr
	logger.Setup(cfg.Log)

	cmd, args := os.Args[1], os.Args[2:]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	id := fs.String("id", "", "resource id")
	kind := fs.String("kind", "lockers", "session kind")
	park := fs.String("park", "", "parking id")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	subject := fs.String("subject", "promctl", "token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	_ = fs.Parse(args)

	ctx := context.Background()
	out, err := run(ctx, cfg, cmd, flags{
		id: *id, kind: *kind, park: *park, email: *email,
		password: *password, subject: *subject, ttl: *ttl,
	})
	if err != nil {
		logrus.WithError(err).Fatal(cmd)
	}
	fmt.Println(out)
}

type flags struct {
	id, kind, park, email, password, subject string
	ttl                                      time.Duration
}

func run(ctx context.Context, cfg *config.Config, cmd string, f flags) (string, error) {
	switch cmd {
	case "locations", "location", "routes", "route":
		return runCatalog(ctx, cfg, cmd, f)
	case "sms-open", "sms-occupy":
		c, err := sms.New(cfg.Clients.SMSURL, nil)
		if err != nil {
			return "", err
		}
		if cmd == "sms-open" {
			return text(c.ClearPlace(ctx, f.id))
		}
		return text(c.DownLocker(ctx, f.id))
	case "admin-token":
		return middleware.GenerateAdminToken(cfg.HTTP.AdminSecret, f.subject, f.ttl)
	}
	return runBooking(ctx, cfg, cmd, f)
}

func runCatalog(ctx context.Context, cfg *config.Config, cmd string, f flags) (string, error) {
	c, err := catalog.New(cfg.Clients.CatalogURL, nil)
	if err != nil {
		return "", err
	}
	id, err := parseID(f.id)
	if err != nil {
		return "", err
	}

	var v any
	switch cmd {
	case "locations":
		v, err = c.GetLocations(ctx)
	case "location":
		v, err = c.GetLocation(ctx, id)
	case "routes":
		v, err = c.GetRoutes(ctx)
	case "route":
		v, err = c.GetRoute(ctx, id)
	}
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	return string(b), err
}

func runBooking(ctx context.Context, cfg *config.Config, cmd string, f flags) (string, error) {
	sess := session.New(tokenStore(cfg))
	if err := sess.Load(ctx); err != nil {
		return "", err
	}
	c, err := booking.New(cfg.Clients.BookingURL, sess, nil)
	if err != nil {
		return "", err
	}

	switch cmd {
	case "login":
		return text(c.Login(ctx, f.email, f.password))
	case "register":
		return text(c.Register(ctx, f.email, f.password))
	case "me":
		return text(c.UserMe(ctx))
	case "spaces":
		return text(c.GetSpaces(ctx, f.park))
	case "chargers":
		return text(c.GetChargers(ctx))
	case "lockers-sessions":
		return text(c.GetSessionsLockers(ctx))
	case "chargers-sessions":
		return text(c.GetSessionsChargers(ctx))
	case "reset":
		return text(c.ResetAll(ctx))
	case "finish-session":
		return text(c.FinishSession(ctx, f.id, f.kind))
	case "finish-payment":
		return text(c.FinishPayment(ctx, f.id))
	case "payment":
		return text(c.GetPaymentInfo(ctx, f.id))
	case "enable-locker":
		return text(c.EnableLocker(ctx, f.id))
	case "disable-locker":
		return text(c.DisableLocker(ctx, f.id))
	}
	return "", fmt.Errorf("unknown command %q\n%s", cmd, usage)
}

// tokenStore prefers Redis when configured so several operators share one login.
func tokenStore(cfg *config.Config) session.TokenStore {
	if cfg.Redis.Addr == "" {
		return session.FileStore{Path: cfg.Clients.BookingTokenFile}
	}
	return session.NewRedisStore(redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}))
}

// parseID reads a catalog id; an empty string means no id.
func parseID(s string) (uint, error) {
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

func text(raw json.RawMessage, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
