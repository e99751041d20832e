package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Game *struct {
		StartingChips   int `json:"starting_chips"`
		MinTeams        int `json:"min_teams"`
		MaxTeamsLimit   int `json:"max_teams_limit"`
		DefaultMaxTeams int `json:"default_max_teams"`
	} `json:"game"`
	AdviceLimit  int    `json:"advice_limit"`
	StaleRoomTTL string `json:"stale_room_ttl"`
	// Optional prompt templates for the LLM features. Use the tokens
	// {{situation}} (advice/recap) and {{standings}} (recap/poster) where
	// the generated game summary is substituted.
	AdvicePrompt string `json:"advice_prompt"`
	RecapPrompt  string `json:"recap_prompt"`
	PosterPrompt string `json:"poster_prompt"`
}

// LoadedConfig contains the validated server configuration. Defaults are
// applied here, once, at load time; nothing re-derives defaults at read
// sites.
type LoadedConfig struct {
	ServerAddress string

	StartingChips   int
	MinTeams        int
	MaxTeamsLimit   int
	DefaultMaxTeams int

	AdviceLimit  int
	StaleRoomTTL time.Duration

	AdvicePromptTemplate string
	RecapPromptTemplate  string
	PosterPromptTemplate string
}

// LoadConfig reads the configuration file at path, validates it and applies
// defaults. A missing file is an error; an absent optional key is not.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := &LoadedConfig{
		ServerAddress:   ":8080",
		StartingChips:   10,
		MinTeams:        2,
		MaxTeamsLimit:   8,
		DefaultMaxTeams: 6,
		AdviceLimit:     5,
		StaleRoomTTL:    24 * time.Hour,
	}

	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Game != nil {
		if rc.Game.StartingChips != 0 {
			out.StartingChips = rc.Game.StartingChips
		}
		if rc.Game.MinTeams != 0 {
			out.MinTeams = rc.Game.MinTeams
		}
		if rc.Game.MaxTeamsLimit != 0 {
			out.MaxTeamsLimit = rc.Game.MaxTeamsLimit
		}
		if rc.Game.DefaultMaxTeams != 0 {
			out.DefaultMaxTeams = rc.Game.DefaultMaxTeams
		}
	}
	if rc.AdviceLimit != 0 {
		out.AdviceLimit = rc.AdviceLimit
	}
	if rc.StaleRoomTTL != "" {
		d, err := time.ParseDuration(rc.StaleRoomTTL)
		if err != nil {
			return nil, fmt.Errorf("config file %s: bad stale_room_ttl: %w", path, err)
		}
		out.StaleRoomTTL = d
	}

	out.AdvicePromptTemplate = strings.TrimSpace(rc.AdvicePrompt)
	out.RecapPromptTemplate = strings.TrimSpace(rc.RecapPrompt)
	out.PosterPromptTemplate = strings.TrimSpace(rc.PosterPrompt)

	// Cross-field validation. The game needs at least two bidding teams and
	// a room can never allow more seats than the hard ceiling.
	if out.StartingChips < 1 {
		return nil, fmt.Errorf("config file %s: starting_chips must be >= 1", path)
	}
	if out.MinTeams < 2 {
		return nil, fmt.Errorf("config file %s: min_teams must be >= 2", path)
	}
	if out.MaxTeamsLimit < out.MinTeams {
		return nil, fmt.Errorf("config file %s: max_teams_limit must be >= min_teams", path)
	}
	if out.DefaultMaxTeams < out.MinTeams || out.DefaultMaxTeams > out.MaxTeamsLimit {
		return nil, fmt.Errorf("config file %s: default_max_teams must be within [min_teams, max_teams_limit]", path)
	}
	if out.AdviceLimit < 0 {
		return nil, fmt.Errorf("config file %s: advice_limit must be >= 0", path)
	}

	return out, nil
}
