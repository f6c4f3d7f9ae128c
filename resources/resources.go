package resources

import (
	"github.com/activecm/synplot/config"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type (
	// Resources provides a data structure for passing system Resources
	Resources struct {
		Config *config.Config
		Log    *log.Logger
		RunID  uuid.UUID
	}
)

// InitResources grabs the configuration file and intitializes the configuration data
// returning a *Resources object which has all of the necessary configuration information
func InitResources(userConfig string) (*Resources, error) {
	conf, err := config.LoadConfig(userConfig)
	if err != nil {
		return nil, err
	}
	return NewResources(conf)
}

// NewResources bundles up the system resources for an already loaded config
func NewResources(conf *config.Config) (*Resources, error) {
	runID := uuid.New()

	// Fire up the logging system
	logger := initLogger(&conf.S.Log)
	logger.Hooks.Add(&runIDHook{id: runID.String()})

	if conf.S.Log.LogToFile {
		if err := addFileLogger(logger, conf.S.Log.LogPath); err != nil {
			logger.WithFields(log.Fields{
				"path":  conf.S.Log.LogPath,
				"error": err.Error(),
			}).Warn("Could not set up file logging")
		}
	}

	//bundle up the system resources
	r := &Resources{
		Config: conf,
		Log:    logger,
		RunID:  runID,
	}
	return r, nil
}
