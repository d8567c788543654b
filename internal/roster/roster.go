// Package roster reads combat rosters from YAML, JSON or TOML files
package roster

import (
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/morale"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
)

// Roster is a battle setup: the fighters and the field they meet on
type Roster struct {
	Fighters []engine.FighterRecord `mapstructure:"fighters"`
	Terrain  morale.Terrain         `mapstructure:"terrain"`
	Wards    []morale.Ward          `mapstructure:"wards"`
}

// Load reads a roster file. The format follows the file extension.
func Load(path string) (*Roster, error) {
	if path == "" {
		return nil, errors.InvalidArgument("roster path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read roster "+path)
	}

	var r Roster
	if err := v.Unmarshal(&r); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode roster "+path)
	}
	if len(r.Fighters) == 0 {
		return nil, errors.InvalidArgumentf("roster %s has no fighters", path)
	}

	return &r, nil
}

// Options builds engine options carrying the roster's field
func (r *Roster) Options() engine.Options {
	return engine.Options{
		Terrain: r.Terrain,
		Wards:   r.Wards,
	}
}
