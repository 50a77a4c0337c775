package config

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/BurntSushi/toml"
)

const baseCfgPath = "commit-block/config.toml"

// Feed URL templates of the two supported sources. Only the user
// identifier varies per installation.
const (
	trackerFeedFormat  = "https://www.drupal.org/user/%s/track/code/feed"
	activityFeedFormat = "https://github.com/%s.atom"
)

type Config struct {
	TrackerUser      string `toml:"tracker_user"`       // drupal.org user id for the tracker RSS feed
	ActivityUser     string `toml:"activity_user"`      // github.com login for the activity Atom feed
	Count            int    `toml:"count"`              // number of commits shown after aggregation
	CacheTimeMinutes int    `toml:"cache_time_minutes"` // translated to a Cache-Control max-age by the web layer
	Listen           string `toml:"listen"`             // address the HTTP server binds to
	FetchTimeoutSecs int    `toml:"fetch_timeout_secs"` // per-source fetch deadline
}

// TrackerFeedURL returns the tracker feed URL for the configured user
func (c Config) TrackerFeedURL() string {
	return fmt.Sprintf(trackerFeedFormat, c.TrackerUser)
}

// ActivityFeedURL returns the activity feed URL for the configured user
func (c Config) ActivityFeedURL() string {
	return fmt.Sprintf(activityFeedFormat, c.ActivityUser)
}

func Read(path string) (Config, error) {
	conf := Default()
	dat, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	_, err = toml.Decode(string(dat), &conf)
	if err != nil {
		return conf, fmt.Errorf("failed to decode config at %s with %w", path, err)
	}
	return conf, nil
}

func Write(cfgPath string, cfg Config) error {
	blob, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config with %w", err)
	}
	basePath := path.Dir(cfgPath)
	err = os.MkdirAll(basePath, os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create base config directory at '%s' with %w", basePath, err)
	}
	err = os.WriteFile(cfgPath, blob, 0644)
	if err != nil {
		return fmt.Errorf("failed to write into config file at '%s' with %w", cfgPath, err)
	}
	slog.Info("config written", "at", cfgPath)
	return nil
}

func Default() Config {
	return Config{
		Count:            10,
		CacheTimeMinutes: 30,
		Listen:           ":8080",
		FetchTimeoutSecs: 10,
	}
}

func DefaultPath() string {
	var xdgHome = os.Getenv("XDG_CONFIG_HOME")
	if xdgHome != "" {
		return path.Join(xdgHome, baseCfgPath)
	}

	var home = os.Getenv("HOME")
	if home != "" {
		return path.Join(home, ".config", baseCfgPath)
	}

	panic("unclear where to search for the config fie")
}
