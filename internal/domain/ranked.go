package domain

// LanguageFlags reports languages mentioned outside the allow-set and whether
// any of them is required rather than merely mentioned.
type LanguageFlags struct {
	ExtraLanguageRequired  bool     `json:"extra_language_required"`
	ExtraLanguagePreferred bool     `json:"extra_language_preferred"`
	ExtraLanguages         []string `json:"extra_languages"`
	AllowLanguages         []string `json:"allow_languages"`
}

// AbroadMetadata carries display-only travel/geography hints extracted from
// the posting text. It never feeds scoring.
type AbroadMetadata struct {
	Percentage     int      `json:"percentage"`
	HasPercentage  bool     `json:"has_percentage"`
	PercentageText string   `json:"percentage_text"`
	Countries      []string `json:"countries"`
	Regions        []string `json:"regions"`
	Continents     []string `json:"continents"`
}

// RankedJob is a scored posting with its verdict and explanation metadata.
type RankedJob struct {
	JobPosting

	WorkMode string `json:"work_mode"`

	Decision             Decision       `json:"decision"`
	SleeveScores         map[string]int `json:"sleeve_scores"`
	PrimarySleeveID      string         `json:"primary_sleeve_id"`
	PrimarySleeveScore   int            `json:"primary_sleeve_score"`
	PrimarySleeveName    string         `json:"primary_sleeve_name"`
	PrimarySleeveTagline string         `json:"primary_sleeve_tagline"`

	AbroadScore  int            `json:"abroad_score"`
	AbroadBadges []string       `json:"abroad_badges"`
	AbroadMeta   AbroadMetadata `json:"abroad_meta"`

	SynergyScore int `json:"synergy_score"`

	SoftPenaltyTotal   int      `json:"soft_penalty_total"`
	SoftPenaltyReasons []string `json:"soft_penalty_reasons"`

	HardRejectReason string `json:"hard_reject_reason,omitempty"`

	LanguageFlags LanguageFlags `json:"language_flags"`
	LanguageNotes []string      `json:"language_notes"`

	CanonicalURLOrJobID string   `json:"canonical_url_or_job_id"`
	CompositeRankKey    float64  `json:"composite_rank_key"`
	Reasons             []string `json:"reasons"`
}

// FailReasonCount is one entry of the funnel's top-fail-reason list.
type FailReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// SourceDedupe summarizes how much a single source shrank during dedupe.
type SourceDedupe struct {
	Raw         int     `json:"raw_count"`
	AfterDedupe int     `json:"after_dedupe"`
	DedupeRatio float64 `json:"dedupe_ratio"`
}

// Funnel counts how the raw input narrowed down to decisions.
type Funnel struct {
	Raw                     int                     `json:"raw"`
	AfterDedupe             int                     `json:"after_dedupe"`
	LocationFiltered        int                     `json:"location_filtered"`
	PassCount               int                     `json:"pass_count"`
	MaybeCount              int                     `json:"maybe_count"`
	FailCount               int                     `json:"fail_count"`
	FullDescriptionCount    int                     `json:"full_description_count"`
	FullDescriptionCoverage float64                 `json:"full_description_coverage"`
	TopFailReasons          []FailReasonCount       `json:"top_fail_reasons"`
	DedupeBySource          map[string]SourceDedupe `json:"dedupe_by_source,omitempty"`
}
