package models

// MobilityOption pairs a mobility level value with its display label.
type MobilityOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Enums is the response body for GET /v1/metadata/enums.
type Enums struct {
	MobilityLevels []MobilityOption `json:"mobilityLevels"`
	WaterSafety    []string         `json:"waterSafety"`
	Temperatures   []string         `json:"temperatures"`
	NoiseLevels    []string         `json:"noiseLevels"`
	RiskLevels     []string         `json:"riskLevels"`
	Conditions     []string         `json:"conditions"`
	Triggers       []string         `json:"triggers"`
}

// PageDescription pairs a page path with its spoken description.
type PageDescription struct {
	Path        string `json:"path"`
	Description string `json:"description"`
}

// PageDescriptionList is the response body for GET /v1/metadata/pages.
type PageDescriptionList struct {
	Items []PageDescription `json:"items"`
}
