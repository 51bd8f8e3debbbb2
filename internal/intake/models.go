// Package intake defines the normalized application payload and the
// assembler that produces it from validated form state.
package intake

// ApplicationPayload is the nested submission shape sent to the submit
// handler and persisted into the applications table.
type ApplicationPayload struct {
	PartnersSelected     []string `json:"partnersSelected"`
	CompetitionsSelected []string `json:"competitionsSelected"`
	ProgramsSelected     []string `json:"programsSelected"`

	Founder      Founder      `json:"founder"`
	Company      Company      `json:"company"`
	Eligibility  Eligibility  `json:"eligibility"`
	Financials   Financials   `json:"financials"`
	FundSpecific FundSpecific `json:"fundSpecific"`

	SubmittedAt string `json:"submittedAt"`
}

// Founder carries founder and optional co-founder identity fields.
type Founder struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	HasCoFounder       string `json:"hasCoFounder"`
	CofounderFirstName string `json:"cofounderFirstName,omitempty"`
	CofounderLastName  string `json:"cofounderLastName,omitempty"`
	CofounderEmail     string `json:"cofounderEmail,omitempty"`
}

// Company carries the company profile. State is present only when the
// region is the United States. DeckPdfPath is filled in by the submit
// handler after a successful upload.
type Company struct {
	Name          string   `json:"name"`
	Website       string   `json:"website"`
	Industries    []string `json:"industries"`
	Region        string   `json:"region"`
	State         string   `json:"state,omitempty"`
	ElevatorPitch string   `json:"elevatorPitch"`
	BusinessModel string   `json:"businessModel,omitempty"`
	DeckLink      string   `json:"deckLink,omitempty"`
	DeckPdfPath   string   `json:"deckPdfPath,omitempty"`
}

// Eligibility holds the answered yes/no screening questions.
type Eligibility struct {
	IsVCBacked               bool `json:"isVCBacked"`
	B2BSaaSWith3MoRunway     bool `json:"b2bSaaSWith3MoRunway"`
	SellsPhysicalProduct     bool `json:"sellsPhysicalProduct"`
	HasFounderOver50         bool `json:"hasFounderOver50"`
	HasBlackFounder          bool `json:"hasBlackFounder"`
	HasFemaleFounder         bool `json:"hasFemaleFounder"`
	IsForeignBornFounderInUS bool `json:"isForeignBornFounderInUS"`
	WantsOtherCompetitions   bool `json:"wantsOtherCompetitions"`
}

// Financials holds the fundraising figures as entered, separators included.
// Coercion to numbers happens at persistence time.
type Financials struct {
	FundraisingStage string `json:"fundraisingStage"`
	RaiseAmount      string `json:"raiseAmount"`
	Valuation        string `json:"valuation"`
	MRR              string `json:"mrr"`
	BurnRate         string `json:"burnRate"`
	PreviouslyRaised string `json:"previouslyRaised"`
	RunwayMonths     string `json:"runwayMonths,omitempty"`
}

// FundSpecific holds answers to partner-specific question blocks. Each block
// is nil unless the matching partner was selected.
type FundSpecific struct {
	EcomEcosystemBuilders *EcomQuestions      `json:"ecomEcosystemBuilders,omitempty"`
	B2BSaaSAccel          *B2BSaaSQuestions   `json:"b2bSaasAccel,omitempty"`
	Outlander             *OutlanderQuestions `json:"outlander,omitempty"`
}

// EcomQuestions are asked of e-commerce ecosystem applicants.
type EcomQuestions struct {
	CustomerCount  string   `json:"customerCount"`
	PlansMerchants *bool    `json:"plansMerchants"`
	Platforms      []string `json:"platforms"`
}

// B2BSaaSQuestions are asked of B2B SaaS accelerator applicants.
type B2BSaaSQuestions struct {
	IncorporatedUS      *bool  `json:"incorporatedUS"`
	Trailing12MoRevenue string `json:"trailing12MoRevenue"`
}

// OutlanderQuestions are asked of Outlander VC applicants.
type OutlanderQuestions struct {
	HasTechnicalLead10pct *bool `json:"hasTechnicalLead10pct"`
}
