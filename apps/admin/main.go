package main

import (
	"context"
	"log"
	"os"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/account"
	logsvc "github.com/campusdesk/portal/services/logger"
	"github.com/campusdesk/portal/storage/database"
)

func main() {
	stdLogger := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		stdLogger.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(stdLogger, conf)

	// set up store
	store, closeStore, err := database.Open(context.Background(), conf)
	if err != nil {
		logger.Fatal("opening store", err)
	}

	validate, translator := core.NewValidator()
	account.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		store:      store,
		validate:   validate,
		translator: translator,
		out:        os.Stdout,
	}
	code := 0
	if err = cli.run(os.Args); err != nil {
		if err != errHelp {
			stdLogger.Printf("\nerror: %s\n", err)
		}
		code = 1
	}
	if err = closeStore(); err != nil {
		logger.Error("closing store", err)
	}
	os.Exit(code)
}
