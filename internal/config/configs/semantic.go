package configs

import "time"

// Semantic configures the remote inference endpoint used for category and
// tone checks. An empty URL disables remote calls and every check takes
// its fallback path.
type Semantic struct {
	URL     string        `env:"API_URL"`
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"MODEL" envDefault:"MiniMax-M2.5"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
