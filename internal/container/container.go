package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/config"
	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/infrastructure/flatstore"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
	"github.com/oksasatya/go-newsroom/pkg/mailer"
)

// app-level container to share constructed components across packages.
// The router wires modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger
	store  *flatstore.Store
	clock  helpers.Clock

	newsIndex application.NewsIndex
	publisher mailer.Publisher
)

func SetConfig(c *config.Config)      { cfg = c }
func GetConfig() *config.Config       { return cfg }
func SetLogger(l *logrus.Logger)      { logger = l }
func GetLogger() *logrus.Logger       { return logger }
func SetStore(s *flatstore.Store)     { store = s }
func GetStore() *flatstore.Store      { return store }
func SetClock(c helpers.Clock)        { clock = c }
func SetPublisher(p mailer.Publisher) { publisher = p }
func GetPublisher() mailer.Publisher  { return publisher }

func GetClock() helpers.Clock {
	if clock != nil {
		return clock
	}
	return helpers.RealClock{}
}

// SetNewsIndex installs the optional search index; nil disables it.
func SetNewsIndex(x application.NewsIndex) { newsIndex = x }
func GetNewsIndex() application.NewsIndex  { return newsIndex }
