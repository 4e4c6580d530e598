package core

import (
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Store engines
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type (
	Config struct {
		AppName      string
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		Debug        bool
		TestMode     bool
		WorkDir      string
		RollbarToken string

		Server ServerConfig
		Store  StoreConfig
		Mail   MailConfig
		Chat   ChatConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool

		// profile cookie: identifies the storage namespace of a client
		ProfileCookie string
		ProfileSecret []byte
		ProfileTTL    time.Duration
	}

	StoreConfig struct {
		Engine string

		RedisAddr     string
		RedisPassword string
		RedisDB       int

		Database DatabaseConfig
	}

	DatabaseConfig struct {
		Engine     string
		Host       string
		Port       int
		Name       string
		User       string
		Password   string
		DisableTLS bool
	}

	MailConfig struct {
		DefaultFromEmail mail.Address
		SendgridAPIKey   string
	}

	ChatConfig struct {
		MinDelay time.Duration
		MaxDelay time.Duration
	}
)

func (dbc DatabaseConfig) Address() string {
	return fmt.Sprintf("%s:%d", dbc.Host, dbc.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Campus Portal")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("server.profileCookie", "portal_profile")
	v.SetDefault("server.profileSecret", "kq1&w7#vd0)la+3n^s9e(zm$6p!u2r@x")
	v.SetDefault("server.profileTTL", 365*24*time.Hour)

	v.SetDefault("store.engine", StoreMemory)
	v.SetDefault("store.redisAddr", "localhost:6379")
	v.SetDefault("store.redisPassword", "")
	v.SetDefault("store.redisDB", 0)
	v.SetDefault("store.database.engine", "postgres")
	v.SetDefault("store.database.host", "localhost")
	v.SetDefault("store.database.port", 5432)
	v.SetDefault("store.database.name", "portal")
	v.SetDefault("store.database.user", "postgres")
	v.SetDefault("store.database.password", "postgres")
	v.SetDefault("store.database.disableTLS", true)

	v.SetDefault("mail.defaultFromEmail", "noreply@localhost")
	v.SetDefault("mail.sendgridAPIKey", "")

	v.SetDefault("chat.minDelay", 500*time.Millisecond)
	v.SetDefault("chat.maxDelay", 1500*time.Millisecond)
}

// NewConfig loads the configuration from the environment.
// A `config/.env.<env>` file is loaded first when it exists.
func NewConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		wd = dir
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err = os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}

	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	from, err := mail.ParseAddress(v.GetString("mail.defaultFromEmail"))
	if err != nil {
		return nil, errors.Wrap(err, "parsing mail.defaultFromEmail")
	}

	conf := &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		WorkDir:      wd,
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Address:         v.GetString("server.address"),
			DebugHost:       v.GetString("server.debugHost"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
			ProfileCookie:   v.GetString("server.profileCookie"),
			ProfileSecret:   []byte(v.GetString("server.profileSecret")),
			ProfileTTL:      v.GetDuration("server.profileTTL"),
		},
		Store: StoreConfig{
			Engine:        strings.ToLower(v.GetString("store.engine")),
			RedisAddr:     v.GetString("store.redisAddr"),
			RedisPassword: v.GetString("store.redisPassword"),
			RedisDB:       v.GetInt("store.redisDB"),
			Database: DatabaseConfig{
				Engine:     v.GetString("store.database.engine"),
				Host:       v.GetString("store.database.host"),
				Port:       v.GetInt("store.database.port"),
				Name:       v.GetString("store.database.name"),
				User:       v.GetString("store.database.user"),
				Password:   v.GetString("store.database.password"),
				DisableTLS: v.GetBool("store.database.disableTLS"),
			},
		},
		Mail: MailConfig{
			DefaultFromEmail: *from,
			SendgridAPIKey:   v.GetString("mail.sendgridAPIKey"),
		},
		Chat: ChatConfig{
			MinDelay: v.GetDuration("chat.minDelay"),
			MaxDelay: v.GetDuration("chat.maxDelay"),
		},
	}
	return conf, nil
}

// NewTestConfig returns the default configuration with test mode on.
func NewTestConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{
		AppName:  v.GetString("appName"),
		Env:      "TEST",
		Build:    "test",
		Debug:    false,
		TestMode: true,
		Server: ServerConfig{
			Host:           "localhost",
			DisableReqLogs: true,
			ProfileCookie:  v.GetString("server.profileCookie"),
			ProfileSecret:  []byte("secret"),
			ProfileTTL:     v.GetDuration("server.profileTTL"),
		},
		Store: StoreConfig{Engine: StoreMemory},
		Mail: MailConfig{
			DefaultFromEmail: mail.Address{Address: "noreply@localhost"},
		},
		Chat: ChatConfig{},
	}
}
