package schema

// Model is a single entry from the gateway's /v1/models listing.
// The gateway reuses the OpenAI-style "object" field to carry the list of
// endpoint types the model is exposed on (e.g. "openai", "image-generation").
type Model struct {
	ID            string   `json:"id"`
	OwnedBy       string   `json:"owned_by"`
	EndpointTypes []string `json:"object"`
}

// ModelList is the envelope around the model listing.
type ModelList struct {
	Data []Model `json:"data"`
}

// ModelPricing is a single entry from the gateway's /api/pricing listing.
// QuotaType discriminates between token-ratio pricing (0) and fixed
// per-request pricing (1).
type ModelPricing struct {
	ModelName       string  `json:"model_name"`
	QuotaType       int     `json:"quota_type"`
	ModelRatio      float64 `json:"model_ratio"`
	CompletionRatio float64 `json:"completion_ratio"`
	ModelPrice      float64 `json:"model_price"`
}

// PricingList is the envelope around the pricing listing.
type PricingList struct {
	Data []ModelPricing `json:"data"`
}
