package catalog

// Option enumerations backing the select inputs on the application and
// network signup forms. Validation checks membership against these lists.

// IndustryOptions are the industry tags for the startup application form.
// Applicants pick between one and four.
var IndustryOptions = []string{
	"Adtech", "AgeTech", "AI", "AR/VR", "ArtTech", "B2B", "BioTech", "Consumer",
	"Climate or CleanTech", "Creator Economy", "Cybersecurity", "DeepTech", "E-Commerce",
	"EdTech", "Energy", "Enterprise", "FinTech", "FoodTech", "Future of Work", "Gaming",
	"Hardware", "HealthTech", "InsurTech", "LegalTech", "Logistics & Manufacturing",
	"Media & Entertainment", "MusicTech", "Payments", "Pets", "PropTech", "Retail", "Saas",
	"Web 3.0", "Other",
}

// RegionOptions are the company regions for the application form. Choosing
// "United States" additionally requires a state.
var RegionOptions = []string{
	"United States",
	"LATAM",
	"United Kingdom",
	"Canada",
	"Israel",
	"Europe",
	"India",
	"Asia",
	"Singapore",
	"Other",
}

// RegionUnitedStates is the region value that makes the state field required.
const RegionUnitedStates = "United States"

// StageOptions are the fundraising stages for the application form.
var StageOptions = []string{
	"Bridge Round", "Pre-Seed", "Seed", "Seed Extension/Seed+", "Series A", "Series B", "Series C",
}

// USStateOptions are the state choices shown when the region is
// "United States".
var USStateOptions = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "District of Columbia", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky",
	"Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota",
	"Ohio", "Oklahoma", "Oregon", "Pennsylvania", "Rhode Island",
	"South Carolina", "South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// NetworkStageOptions are the company stages on the founder network form.
var NetworkStageOptions = []string{
	"idea", "mvp", "pre-seed", "seed", "series-a", "series-b", "series-c", "series-d",
}

// NetworkIndustryOptions are the industry tags on the network signup form.
var NetworkIndustryOptions = []string{
	"AI / Machine Learning",
	"ClimateTech",
	"Consumer Tech",
	"Web3 / Crypto",
	"Developer Tools",
	"Fintech",
	"HealthTech",
	"Productivity Tools",
	"Data & Analytics",
	"Social Platforms",
	"Enterprise / B2B SaaS",
	"Hardware / Devices",
	"Cloud / Infrastructure",
	"Deeptech (e.g., robotics, quantum, semiconductors)",
	"Mobility / Transportation / EVs",
	"Education / EdTech",
	"Marketplace",
	"E-commerce",
	"Media / Content / Creator Economy",
	"Security / Cybersecurity",
	"Gaming",
	"LegalTech / GovTech",
	"Other (please specify)",
}

// Business model values on the founder network form.
const (
	BusinessModelSaaS    = "saas"
	BusinessModelNonSaaS = "non-saas"
)

// VC fund stage classifications on the investor network form.
var FundStageOptions = []string{
	"Micro VC", "Seed Fund", "Early Stage VC Fund", "Growth Fund", "Multi-stage", "CVC",
}

// IsIndustry reports whether v is a known application-form industry tag.
func IsIndustry(v string) bool { return contains(IndustryOptions, v) }

// IsRegion reports whether v is a known company region.
func IsRegion(v string) bool { return contains(RegionOptions, v) }

// IsStage reports whether v is a known fundraising stage.
func IsStage(v string) bool { return contains(StageOptions, v) }

// IsUSState reports whether v is a known US state choice.
func IsUSState(v string) bool { return contains(USStateOptions, v) }

// IsNetworkIndustry reports whether v is a known network-form industry tag.
func IsNetworkIndustry(v string) bool { return contains(NetworkIndustryOptions, v) }

// IsBusinessModel reports whether v is a known business model value.
func IsBusinessModel(v string) bool {
	return v == BusinessModelSaaS || v == BusinessModelNonSaaS
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
