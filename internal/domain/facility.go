package domain

// User is the signed-in facility team member.
type User struct {
	Name           string
	Role           string
	AvatarInitials string
}

// Organization holds the building profile shown on the dashboard.
type Organization struct {
	BuildingName  string
	BuildingType  string
	ContractPlan  string
	WasteMonthKg  int
	ESGScore      int
	ESGLevel      string
	NextPickup    string
	SmartBinCount int
	DiversionRate int    // percent of waste diverted from landfill
	CostSavings   string // display string, currency formatting is upstream
}

// WasteRecord is one waste-type row on the dashboard.
type WasteRecord struct {
	Type   string
	Amount string
	Unit   string
}
