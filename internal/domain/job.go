package domain

// JobPosting is the normalized job record the fetchers hand to the ranking
// engine. Every field is a plain string; missing values stay empty.
type JobPosting struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Snippet         string `json:"snippet"`
	Link            string `json:"link"`
	Date            string `json:"date"`
	Salary          string `json:"salary"`
	Source          string `json:"source"`
	FullDescription string `json:"full_description,omitempty"`
	WorkModeHint    string `json:"work_mode_hint,omitempty"`
	EmploymentType  string `json:"employment_type,omitempty"`
}
