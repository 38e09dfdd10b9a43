package models

// Requests and responses for the appraisal HTTP endpoints. Defined in domain
// for consistency and reuse.

type AppraiseRequest struct {
	Domain string `json:"domain" validate:"required,min=3,max=253"`
	UseAI  bool   `json:"use_ai" default:"false"`
}

type SalesRequest struct {
	Page int `query:"page" json:"page" default:"1" validate:"gte=1"`
	Size int `query:"size" json:"size" default:"100" validate:"gte=1,lte=200"`
}

type ResetLimitsRequest struct {
	SecretKey string `json:"secret_key"`
}

// UsageInfo is attached to every successful appraisal response.
type UsageInfo struct {
	RemainingRequests int    `json:"remaining_requests"`
	DailyLimit        int    `json:"daily_limit"`
	Message           string `json:"message"`
}

// AppraiseResponse is the wire shape of a completed appraisal.
type AppraiseResponse struct {
	Domain         string       `json:"domain"`
	EstimatedPrice float64      `json:"estimated_price"`
	Confidence     float64      `json:"confidence"`
	Reasons        []string     `json:"reasons"`
	Category       string       `json:"category"`
	Comparables    []Comparable `json:"comparables"`
	AtomListings   []Comparable `json:"atom_listings"`
	AIInsight      string       `json:"ai_insight"`
	UsageInfo      UsageInfo    `json:"usage_info"`
}

// QuotaExceeded is the 429 payload when the daily limit is spent.
type QuotaExceeded struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Remaining int    `json:"remaining"`
	ResetTime string `json:"reset_time"`
}
