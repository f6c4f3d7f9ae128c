package resources

import (
	"bytes"
	"testing"

	"github.com/activecm/synplot/config"
)

//InitTestResources creates a default testing resource bundle. Log output
//is captured in the returned buffer instead of being written to stderr.
func InitTestResources(t *testing.T) (*Resources, *bytes.Buffer) {
	conf, err := config.LoadTestingConfig()
	if err != nil {
		t.Fatal(err)
	}

	res, err := NewResources(conf)
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	res.Log.Out = buf
	return res, buf
}
