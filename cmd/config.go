package cmd

import (
	"fmt"
	"time"
)

// Config carries everything the service needs at startup. Values come from
// the environment; see cmd/app/main.go for the variable names.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleShipmentThreshold is how long a shipment's ledger may stay
	// silent before the watchdog flags it.
	StaleShipmentThreshold time.Duration
}

// DBConnectionString assembles the postgres DSN.
func (c Config) DBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
