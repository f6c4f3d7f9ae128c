package util

import (
	"os"
	"strings"
)

//TimeFormat stores a correctly formatted timestamp
const TimeFormat string = "2006-01-02-T15:04:05-0700"

// Exists returns true if file or directory exists. An error is returned
// when the path cannot be checked for a reason other than it not existing.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir returns true if argument is a directory
func IsDir(path string) bool {
	file, err := os.Stat(path)
	if err != nil {
		return false
	}
	return file.IsDir()
}

// IsGzip returns true if the path names a gzip compressed file
func IsGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}
