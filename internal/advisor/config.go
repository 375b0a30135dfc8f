package advisor

// Config holds per-call generation settings.
type Config struct {
	CareerMaxTokens     int
	BridgeMaxTokens     int
	QuizMaxTokens       int
	AuditMaxTokens      int
	Temperature         float64
	QuizTemperature     float64
	KnowledgeCheckCount int
}

// DefaultConfig returns sensible defaults for the advisor.
func DefaultConfig() Config {
	return Config{
		CareerMaxTokens:     1024,
		BridgeMaxTokens:     1536,
		QuizMaxTokens:       1024,
		AuditMaxTokens:      1024,
		Temperature:         0.7,
		QuizTemperature:     0.3,
		KnowledgeCheckCount: 3,
	}
}
