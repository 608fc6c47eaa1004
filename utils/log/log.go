package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

const ProdEnv = "prod"

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()

	// JSON in prod for machine ingestion, plain text elsewhere for
	// readability.
	if os.Getenv("FORUM_ENV") == ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.SetOutput(os.Stderr)

	Log = logger.WithFields(
		logrus.Fields{"service": "forum", "is_development": os.Getenv("FORUM_ENV") != ProdEnv},
	)
}
