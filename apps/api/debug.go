package main

import (
	"expvar"
	"fmt"
	"sync"

	"github.com/campusdesk/portal/core"
)

var publishOnce sync.Once

// portalVars is the configuration exposed on /debug/vars. Secrets are left out.
func portalVars(conf *core.Config) map[string]interface{} {
	vars := map[string]interface{}{
		"build":         conf.Build,
		"env":           conf.Env,
		"storeEngine":   conf.Store.Engine,
		"profileCookie": conf.Server.ProfileCookie,
		"profileTTL":    conf.Server.ProfileTTL.String(),
		"chatMinDelay":  conf.Chat.MinDelay.String(),
		"chatMaxDelay":  conf.Chat.MaxDelay.String(),
	}
	switch conf.Store.Engine {
	case core.StoreRedis:
		vars["storeAddress"] = conf.Store.RedisAddr
	case core.StorePostgres:
		vars["storeAddress"] = conf.Store.Database.Address()
	}
	return vars
}

func publishVars(conf *core.Config) {
	publishOnce.Do(func() {
		expvar.Publish("portal", expvar.Func(func() interface{} { return portalVars(conf) }))
	})
}

func startupMessage(conf *core.Config) string {
	return fmt.Sprintf(
		"portal starting : version %q, env %s, store %s, profile cookie %q (ttl %v), chat delay %v-%v",
		conf.Build, conf.Env, conf.Store.Engine, conf.Server.ProfileCookie, conf.Server.ProfileTTL,
		conf.Chat.MinDelay, conf.Chat.MaxDelay,
	)
}
