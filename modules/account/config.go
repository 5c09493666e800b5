package account

import "time"

type Config struct {
	// ErrorFlashDuration is how long a DataStar page keeps the invalid
	// field highlighted.
	ErrorFlashDuration time.Duration `env:"ACCOUNT_ERROR_FLASH_DURATION" envDefault:"3s"`
}
