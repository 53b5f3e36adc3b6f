package types

import "time"

// Region identifies a location. Profiles are keyed uniquely by
// (country, state, city).
type Region struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

// SalaryBands holds salary figures by career stage.
type SalaryBands struct {
	Entry  int `json:"entry"`
	Mid    int `json:"mid"`
	Senior int `json:"senior"`
}

// MarketData summarizes salary statistics for a region.
type MarketData struct {
	AverageSalary int         `json:"average_salary"`
	MedianSalary  int         `json:"median_salary"`
	SalaryRange   SalaryBands `json:"salary_range"`
}

// ProfileMetadata records provenance for an ingested profile.
type ProfileMetadata struct {
	Source      string    `json:"source,omitempty"`
	LastUpdated time.Time `json:"last_updated,omitempty"`
}

// RegionalProfile is the cost-of-living record used to adjust salary
// figures. CostOfLivingIndex is relative to a fixed reference region
// (baseline 100) and SalaryMultiplier is always index/100.
type RegionalProfile struct {
	Region            Region          `json:"region"`
	CostOfLivingIndex float64         `json:"cost_of_living_index"`
	SalaryMultiplier  float64         `json:"salary_multiplier"`
	MarketData        MarketData      `json:"market_data"`
	Metadata          ProfileMetadata `json:"metadata,omitempty"`
}
