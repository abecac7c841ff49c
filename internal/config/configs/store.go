package configs

import (
	"fmt"
	"strings"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store picks the persistence driver. Seed loads the demo contracts on
// startup.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	Seed   bool   `env:"SEED" envDefault:"true"`
}

// DriverName returns the normalised driver or an error for unknown values.
func (c Store) DriverName() (string, error) {
	switch d := strings.ToLower(strings.TrimSpace(c.Driver)); d {
	case StoreMemory, StorePostgres:
		return d, nil
	default:
		return "", fmt.Errorf("unknown store driver %q", c.Driver)
	}
}
