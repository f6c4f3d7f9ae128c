package resources

import (
	"os"
	"path"
	"time"

	"github.com/activecm/synplot/config"
	"github.com/activecm/synplot/util"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// initLogger creates the logger for logging to stderr
func initLogger(logConfig *config.LogStaticCfg) *log.Logger {
	var logs = &log.Logger{}

	logs.Formatter = new(log.TextFormatter)

	logs.Out = os.Stderr
	logs.Hooks = make(log.LevelHooks)

	switch logConfig.LogLevel {
	case 3:
		logs.Level = log.DebugLevel
	case 2:
		logs.Level = log.InfoLevel
	case 1:
		logs.Level = log.WarnLevel
	default:
		logs.Level = log.ErrorLevel
	}
	return logs
}

func addFileLogger(logger *log.Logger, logPath string) error {
	time := time.Now().Format(util.TimeFormat)
	logPath = path.Join(logPath, time)
	exists, err := util.Exists(logPath)
	if err != nil {
		return err
	}
	if !exists {
		err = os.MkdirAll(logPath, 0755)
		if err != nil {
			return err
		}
	}

	logger.Hooks.Add(lfshook.NewHook(lfshook.PathMap{
		log.DebugLevel: path.Join(logPath, "debug.log"),
		log.InfoLevel:  path.Join(logPath, "info.log"),
		log.WarnLevel:  path.Join(logPath, "warn.log"),
		log.ErrorLevel: path.Join(logPath, "error.log"),
		log.FatalLevel: path.Join(logPath, "fatal.log"),
		log.PanicLevel: path.Join(logPath, "panic.log"),
	}, nil))
	return nil
}

// runIDHook tags every entry with the id of the current invocation
type runIDHook struct {
	id string
}

func (h *runIDHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *runIDHook) Fire(entry *log.Entry) error {
	if _, ok := entry.Data["run"]; !ok {
		entry.Data["run"] = h.id
	}
	return nil
}
