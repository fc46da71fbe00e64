package internal

import (
	"fmt"
	"time"
)

type Config struct {
	BufferSize        int           `env:"BUFFER_SIZE,required=true"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,required=true"`
	LimitMessages     *int          `env:"LIMIT_MESSAGES"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,required=true"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=5s"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath     string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	Host              string        `env:"HOST,default=0.0.0.0"`
	Port              int           `env:"PORT,required=true"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081"`
	MessagePolicy     string        `env:"MESSAGE_POLICY,default=redact"`
	BlocklistFile     string        `env:"BLOCKLIST_FILE"`
	AdminEmail        string        `env:"ADMIN_EMAIL"`
	AdminPassword     string        `env:"ADMIN_PASSWORD"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
