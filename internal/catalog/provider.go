package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// providerRule maps a model ID prefix to a display name.
type providerRule struct {
	prefix string
	name   string
}

// providerRules is checked in declaration order and the first matching prefix
// wins, so generic prefixes that shadow more specific ones must stay ahead of
// the fallback handling rather than be reordered.
var providerRules = []providerRule{
	{"gemini", "Google"},
	{"google/", "Google"},
	{"deepseek-ai/", "DeepSeek"},
	{"meta-llama/", "Meta"},
	{"Qwen/", "Qwen"},
	{"mistralai/", "Mistral"},
	{"moonshotai/", "Moonshot"},
	{"openai/", "OpenAI"},
	{"gpt-", "OpenAI"},
	{"black-forest-labs/", "Black Forest Labs"},
	{"x-ai/", "xAI"},
	{"openrouter/", "OpenRouter"},
	{"zai-org/", "Zhipu AI"},
	{"whisper-", "OpenAI"},
}

// DetectProvider resolves the human-readable provider name for a model.
// The model ID prefix takes priority; the owning organization is only
// consulted when no prefix rule matches.
func DetectProvider(modelID, ownedBy string) string {
	for _, rule := range providerRules {
		if strings.HasPrefix(modelID, rule.prefix) {
			return rule.name
		}
	}

	switch ownedBy {
	case "vertex-ai":
		return "Google"
	case "openai":
		return "OpenAI"
	}
	return titleCase(ownedBy)
}

// titleCase turns a hyphenated identifier into a display label, e.g.
// "some-org" becomes "Some Org". Casers are stateful, so build one per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}
