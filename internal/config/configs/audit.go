package configs

// Audit selects the rule policies of the audit engine.
type Audit struct {
	// TimeframePolicy is "start_only" or "start_and_end".
	TimeframePolicy string `env:"TIMEFRAME_POLICY" envDefault:"start_only"`
	// ToneUnavailable is "warn" or "pass" and decides what an unreachable
	// tone check contributes to the copy pillar.
	ToneUnavailable string `env:"TONE_UNAVAILABLE" envDefault:"warn"`
}
