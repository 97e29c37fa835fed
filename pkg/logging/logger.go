package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is usable before InitLogger runs;
// InitLogger only adjusts level and format.
var Log = logrus.New()

// InitLogger configures the shared logger: human-readable debug output in
// development, JSON at info level otherwise.
func InitLogger(debug bool) {
	Log.SetOutput(os.Stdout)

	if debug {
		Log.SetLevel(logrus.DebugLevel)
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		Log.SetLevel(logrus.InfoLevel)
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
}
