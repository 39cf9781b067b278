package alertconfig

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config holds the thresholds used to classify products into alert lists.
type Config struct {
	ExpiryDays    int `mapstructure:"expiryDays"`
	LowStockUnits int `mapstructure:"lowStockUnits"`
}

func DefaultConfig() Config {
	return Config{
		ExpiryDays:    7,
		LowStockUnits: 10,
	}
}

var Module = fx.Module("alertconfig",
	fx.Provide(NewHolder),
)

// Holder exposes the current thresholds and swaps them atomically when the
// config file changes on disk.
type Holder struct {
	current atomic.Value // holds Config
}

func NewHolder() (*Holder, error) {
	v := viper.New()

	v.SetConfigName("alerts")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/freshstock")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FRESHSTOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("alerts.expiryDays", defaults.ExpiryDays)
	v.SetDefault("alerts.lowStockUnits", defaults.LowStockUnits)

	watch := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		watch = false
	}

	var cfg Config
	if err := v.UnmarshalKey("alerts", &cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	holder := &Holder{}
	holder.current.Store(cfg)

	if watch {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			var updated Config
			if err := v.UnmarshalKey("alerts", &updated); err != nil {
				log.Printf("[alert-config] reload failed: %v", err)
				return
			}
			if err := validate(updated); err != nil {
				log.Printf("[alert-config] invalid config ignored: %v", err)
				return
			}
			holder.current.Store(updated)
			log.Printf("[alert-config] reloaded from %s", e.Name)
		})
	}

	return holder, nil
}

func (h *Holder) Get() Config {
	return h.current.Load().(Config)
}

// NewStaticHolder returns a holder pinned to cfg. Used by tests.
func NewStaticHolder(cfg Config) *Holder {
	holder := &Holder{}
	holder.current.Store(cfg)
	return holder
}

func validate(cfg Config) error {
	if cfg.ExpiryDays < 0 {
		return errors.New("alerts.expiryDays cannot be negative")
	}
	if cfg.LowStockUnits < 0 {
		return errors.New("alerts.lowStockUnits cannot be negative")
	}
	return nil
}
