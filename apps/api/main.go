package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go.uber.org/dig"

	dig_container "github.com/campusdesk/portal/apps/api/di/dig"
	echoapi "github.com/campusdesk/portal/apps/api/echo"
	"github.com/campusdesk/portal/core"
)

type portalDeps struct {
	dig.In
	Conf   *core.Config
	Logger core.Logger
	Server *echoapi.Server
}

func main() {
	c := dig_container.New()

	err := c.Invoke(run)
	if cErr := dig_container.Close(c); err == nil {
		err = cErr
	}
	if err != nil {
		log.Fatal(err)
	}
}

// run serves the portal until the server fails or a shutdown signal arrives.
func run(deps portalDeps) error {
	conf, logger, server := deps.Conf, deps.Logger, deps.Server

	logger.Info(startupMessage(conf))
	defer logger.Info("portal stopped")

	// /debug/pprof and /debug/vars on the default mux
	publishVars(conf)
	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	go server.Start()

	select {
	case err := <-server.Errors():
		logger.Error(fmt.Sprintf("server error: %v", err), err)
		return err

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: draining requests for up to %v", sig, conf.Server.ShutdownTimeout))

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
			return server.Close()
		}
		return nil
	}
}
