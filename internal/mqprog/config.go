// Public domain.

package mqprog

import (
	"errors"
	"time"

	"github.com/spf13/viper"

	"github.com/soniakeys/mpcquery/mpc"
)

// envPrefix selects environment variables such as MPCQUERY_URL.
const envPrefix = "MPCQUERY"

// settings are the configurable items.  Timeouts are in seconds.
type settings struct {
	mpc     mpc.Config
	verbose bool
}

// loadSettings reads the optional config file fn, then environment
// variables, over the service defaults.  A config file named explicitly
// must exist.
func loadSettings(fn string) (*settings, error) {
	def := mpc.DefaultConfig()
	v := viper.New()
	v.SetDefault("url", def.URL)
	v.SetDefault("timeout", int(def.Timeout/time.Second))
	v.SetDefault("retrieval_timeout", int(def.RetrievalTimeout/time.Second))
	v.SetDefault("username", def.Username)
	v.SetDefault("password", def.Password)
	v.SetDefault("verbose", false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if fn != "" {
		v.SetConfigFile(fn)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	s := &settings{
		mpc: mpc.Config{
			URL:              v.GetString("url"),
			Timeout:          time.Duration(v.GetInt("timeout")) * time.Second,
			RetrievalTimeout: time.Duration(v.GetInt("retrieval_timeout")) * time.Second,
			Username:         v.GetString("username"),
			Password:         v.GetString("password"),
		},
		verbose: v.GetBool("verbose"),
	}
	switch {
	case s.mpc.URL == "":
		return nil, errors.New("config: url must not be empty")
	case s.mpc.Timeout <= 0:
		return nil, errors.New("config: timeout must be a positive number of seconds")
	case s.mpc.RetrievalTimeout <= 0:
		return nil, errors.New("config: retrieval_timeout must be a positive number of seconds")
	}
	return s, nil
}
