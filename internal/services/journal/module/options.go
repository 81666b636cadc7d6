package module

import (
	"time"

	"daybook/internal/platform/config"
)

// Providers the analysis layer knows how to build
const (
	ProviderLexicon = "lexicon"
	ProviderOpenAI  = "openai"
)

// AnalysisConfig selects and tunes the analyzer implementation
type AnalysisConfig struct {
	// Provider picks the implementation, lexicon needs no credentials
	Provider string

	// Timeout bounds each analyzer call
	Timeout time.Duration

	// OpenAI settings, read only when Provider is openai
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
}

// AnalysisFromConfig reads the ANALYSIS_* view of cfg
func AnalysisFromConfig(cfg config.Conf) AnalysisConfig {
	v := cfg.Prefix("ANALYSIS_")
	out := AnalysisConfig{
		Provider: v.MayEnum("PROVIDER", ProviderLexicon, ProviderLexicon, ProviderOpenAI),
		Timeout:  v.MayDuration("TIMEOUT", 10*time.Second),
	}
	if out.Provider == ProviderOpenAI {
		out.OpenAIKey = v.MustString("OPENAI_API_KEY")
		out.OpenAIModel = v.MayString("OPENAI_MODEL", "gpt-4.1-mini")
		out.OpenAIBaseURL = v.MayString("OPENAI_BASE_URL", "")
	}
	return out
}
