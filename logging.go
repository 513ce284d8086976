package transitcatalogue

import (
	"flag"

	"github.com/golang/glog"
)

// InitLogging routes glog output to stderr. Call it after flag.Parse so
// explicit -logtostderr or -log_dir flags are not overridden.
func InitLogging() {
	if f := flag.Lookup("log_dir"); f != nil && f.Value.String() != "" {
		return
	}
	_ = flag.Set("logtostderr", "true")
	glog.V(1).Info("logging to stderr")
}
