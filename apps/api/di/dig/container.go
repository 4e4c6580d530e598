package dig_container

import (
	"context"
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/campusdesk/portal/apps/api/echo"
	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/chat"
	"github.com/campusdesk/portal/core/record"
	emailsvc "github.com/campusdesk/portal/services/email"
	logsvc "github.com/campusdesk/portal/services/logger"
	"github.com/campusdesk/portal/storage/database"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

// StoreCloser releases the record store backend.
type StoreCloser func() error

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "STORE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newStore(conf *core.Config, loggerParam DBLoggerParam) (record.Store, StoreCloser) {
	store, closeFn, err := database.Open(context.Background(), conf)
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up %s store: %v", conf.Store.Engine, err), err)
	}
	return store, closeFn
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	return emailsvc.New(conf, logger, log.New(os.Stdout, "MAIL : ", log.LstdFlags))
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate, translator := core.NewValidator()
	account.InitValidators(validate, translator)
	return validate, translator
}

func newChatResponder(conf *core.Config) *chat.Responder {
	return chat.NewResponder(conf.Chat.MinDelay, conf.Chat.MaxDelay)
}

// Close releases the record store of c, logging through the store logger.
func Close(c *dig.Container) error {
	return c.Invoke(func(closeStore StoreCloser, loggerParam DBLoggerParam) error {
		if err := closeStore(); err != nil {
			loggerParam.Logger.Error(fmt.Sprintf("closing store: %v", err), err)
			return errors.Wrap(err, "closing store")
		}
		loggerParam.Logger.Info("store closed")
		return nil
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newStore))
	must(c.Provide(newEmailService))
	must(c.Provide(newValidator))
	must(c.Provide(newChatResponder))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
