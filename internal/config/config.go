package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/suggest"
)

// Config collects the tunable policy inputs: starter slot targets and the
// suggestion knobs. Everything has a documented default; a YAML file and the
// --roster flag can override it.
type Config struct {
	RosterSlots map[string]int `yaml:"roster_slots"`
	Suggest     suggest.Config `yaml:"suggest"`
}

// Default returns the stock configuration: a standard single-QB lineup with
// one flex, and the shipped tag sets
func Default() *Config {
	return &Config{
		RosterSlots: map[string]int{
			string(models.QB):    1,
			string(models.RB):    2,
			string(models.WR):    2,
			string(models.TE):    1,
			models.FlexPosition:  1,
			string(models.K):     1,
			string(models.DST):   1,
		},
		Suggest: suggest.DefaultConfig(),
	}
}

// Load reads a YAML config file over the defaults. Absent keys keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyRosterOverride parses a flag value like "QB:1,RB:3,FLEX:2" into the
// slot map, replacing only the listed slots
func (c *Config) ApplyRosterOverride(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return fmt.Errorf("bad roster override %q (want SLOT:COUNT)", part)
		}
		slot := strings.ToUpper(strings.TrimSpace(kv[0]))
		count, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil || count < 0 {
			return fmt.Errorf("bad roster count in %q", part)
		}
		c.RosterSlots[slot] = count
	}
	return nil
}

// Slots returns the starter targets as the engine's RosterSlots type
func (c *Config) Slots() models.RosterSlots {
	out := make(models.RosterSlots, len(c.RosterSlots))
	for k, v := range c.RosterSlots {
		out[k] = v
	}
	return out
}
