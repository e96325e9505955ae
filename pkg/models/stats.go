package models

// MapperStats reports the category mapper's resolution counters.
type MapperStats struct {
	Requests      int64 `json:"requests"`
	StaticHits    int64 `json:"static_hits"`
	RuleGenerated int64 `json:"rule_generated"`
	Fallbacks     int64 `json:"fallbacks"`
	CacheHits     int64 `json:"cache_hits"`
	CacheMisses   int64 `json:"cache_misses"`
}

// ExtractorStats reports keyword extraction counters.
type ExtractorStats struct {
	Requests       int64 `json:"requests"`
	ModelHits      int64 `json:"model_hits"`
	LocalFallbacks int64 `json:"local_fallbacks"`
	CacheHits      int64 `json:"cache_hits"`
	CacheMisses    int64 `json:"cache_misses"`
}

// ServiceStats is the process-wide statistics snapshot exposed for diagnostics.
// Counters reset only by explicit call and are not persisted across restarts.
type ServiceStats struct {
	TotalRequests   int64          `json:"total_requests"`
	Rejected        int64          `json:"rejected"`
	Fallbacks       int64          `json:"fallbacks"`
	Enhanced        int64          `json:"enhanced"`
	BatchDropped    int64          `json:"batch_dropped"`
	Extractor       ExtractorStats `json:"extractor"`
	Mapper          MapperStats    `json:"mapper"`
	CacheHitRate    float64        `json:"cache_hit_rate"`
	StaticHitRate   float64        `json:"static_hit_rate"`
	RuleHitRate     float64        `json:"rule_hit_rate"`
	CoveragePercent float64        `json:"coverage_percent"`
}
