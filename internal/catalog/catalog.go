// Package catalog holds the static card inventory shown on the application
// page: VC partners, bootcamps, applicant perks and pitch competitions.
// Selections submitted by applicants are validated against these IDs.
package catalog

// PartnerCard describes one VC partner an applicant can apply to.
type PartnerCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stage    string `json:"stage,omitempty"`
	Cheque   string `json:"cheque,omitempty"`
	Focus    string `json:"focus,omitempty"`
	Regions  string `json:"regions,omitempty"`
	Criteria string `json:"criteria,omitempty"`
	Blurb    string `json:"blurb,omitempty"`
}

// BootcampCard describes a founder bootcamp program.
type BootcampCard struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// PerkCard describes an applicant-exclusive partner perk.
type PerkCard struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Subtitle string   `json:"subtitle"`
	Perks    []string `json:"perks"`
}

// CompetitionCard describes a pitch competition applicants can opt into.
// At most MaxCompetitionSelections may be selected per application.
type CompetitionCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
}

// MaxCompetitionSelections caps competition selections per application.
const MaxCompetitionSelections = 5

// Partners returns the VC partner cards in display order.
func Partners() []PartnerCard { return partnerCards }

// Bootcamps returns the bootcamp cards in display order.
func Bootcamps() []BootcampCard { return bootcampCards }

// Perks returns the applicant perk cards in display order.
func Perks() []PerkCard { return perkCards }

// Competitions returns the pitch competition cards in display order.
func Competitions() []CompetitionCard { return competitionCards }

// IsPartner reports whether id names a known VC partner card.
func IsPartner(id string) bool { return partnerIndex[id] }

// IsCompetition reports whether id names a known competition card.
func IsCompetition(id string) bool { return competitionIndex[id] }

// IsProgram reports whether id names a known bootcamp or perk card.
func IsProgram(id string) bool { return programIndex[id] }

var partnerCards = []PartnerCard{
	{
		ID:       "lvlup",
		Name:     "LvlUp Ventures Seed Fund",
		Stage:    "Pre-Seed to Seed",
		Cheque:   "$100,000 - $250,000",
		Focus:    "Industry agnostic",
		Regions:  "United States, Canada",
		Criteria: ">3 months in market",
	},
	{
		ID:       "cove-fund",
		Name:     "Cove Fund",
		Stage:    "Pre-Seed to Series A",
		Cheque:   "~$500,000",
		Focus:    "Deep Tech, Life Sciences, Enterprise Software, Data Analytics",
		Regions:  "Southern California",
		Criteria: "Strong moat and product-market fit",
	},
	{
		ID:      "expertdojo",
		Name:    "ExpertDojo",
		Stage:   "Seed to Series A",
		Cheque:  "$50,000 - $3,000,000",
		Focus:   "Industry agnostic; emphasis on underrepresented founders (not a requirement)",
		Regions: "Agnostic",
	},
	{
		ID:       "loreal-cvc",
		Name:     "L'Oreal Corporate Venture Arm",
		Stage:    "Strategic CVC / Acquisitions (Series A-C)",
		Focus:    "Beauty tech, retail innovation, sustainability; innovations enhancing L'Oreal's ecosystem",
		Criteria: "Potential for integration with L'Oreal's core businesses",
	},
	{
		ID:       "sunset-ventures",
		Name:     "Sunset Ventures",
		Stage:    "Post-Seed",
		Focus:    "MediaTech, Creative Industries, Commerce, FinTech, Software",
		Regions:  "U.S. (California preferred)",
		Criteria: ">=$250K annual revenue",
	},
	{
		ID:      "acronym",
		Name:    "Acronym VC",
		Stage:   "Late Seed to Series A",
		Focus:   "Enterprise & SMB SaaS: FinTech, Hospitality Tech, PropTech, Workflow, E-commerce Infrastructure, Cybersecurity, select Healthcare SaaS",
		Regions: "U.S.",
	},
	{
		ID:       "apus-vc",
		Name:     "Apus VC",
		Stage:    "Early-stage (Post-revenue)",
		Focus:    "Tech and Real Estate; long-term growth with strategic/operational support",
		Criteria: "Founders open to active partnership and board participation",
	},
	{
		ID:      "greycroft",
		Name:    "Greycroft",
		Stage:   "Seed to Series C",
		Cheque:  "Up to $50,000,000",
		Focus:   "Software generalists with emphasis on AI apps (consumer/B2B) and infrastructure",
		Regions: "Primarily U.S.",
	},
	{
		ID:       "minnow",
		Name:     "Minnow Ventures",
		Stage:    "Pre-Seed to Series A",
		Focus:    "Healthcare: Biotech, HealthTech, AI in Healthcare, Drug Discovery, Lab Infrastructure",
		Criteria: "Early-stage companies advancing healthcare innovation",
	},
	{
		ID:       "outlander",
		Name:     "Outlander VC",
		Stage:    "Pre-Seed and Seed",
		Focus:    "Industry agnostic",
		Regions:  "U.S.",
		Criteria: "Strong early-stage founders with scalable potential",
		Blurb:    "Currently deploying Fund III ($150M).",
	},
	{
		ID:       "rpv-global",
		Name:     "RPV Global",
		Stage:    "Pre-Seed",
		Focus:    "Deep Tech (excludes Biotech, Pharma, Longevity, Psychedelics, Crypto, Software)",
		Criteria: "U.S.-based with a proven scientific breakthrough",
	},
	{
		ID:       "brickyard",
		Name:     "Brickyard",
		Stage:    "Pre-Seed and Seed",
		Cheque:   "Up to $500,000",
		Focus:    "Industry agnostic",
		Regions:  "Global founders accepted; onsite in Chattanooga, TN until $1M ARR (optional for other team members)",
		Criteria: "Founders committed to full focus and execution",
	},
	{
		ID:       "enough",
		Name:     "Enough Ventures",
		Stage:    "Pre-Seed and Seed",
		Focus:    "HealthTech, AgeTech, Digital Infrastructure",
		Regions:  "Agnostic",
		Criteria: "Purpose-driven ventures with measurable impact",
	},
	{
		ID:       "capital-midwest",
		Name:     "Capital Midwest Fund",
		Stage:    "Seed and Series A",
		Focus:    "Early revenue-stage software & tech-enabled (excludes healthcare and hardware)",
		Regions:  "Central U.S.",
		Criteria: "Independent or syndicate participation",
	},
	{
		ID:       "lvlup-labs",
		Name:     "LvlUp Labs",
		Stage:    "N/A (Community platform, not a fund)",
		Focus:    "Founders-only community powered by LvlUp Ventures' ecosystem",
		Criteria: "Open to top-tier founders; free membership",
	},
	{
		ID:       "new-road",
		Name:     "New Road Capital",
		Stage:    "Growth to Expansion",
		Cheque:   "$5,000,000 - $20,000,000",
		Focus:    "Supply Chain & Logistics, Retail Technology, Marketing Technology",
		Regions:  "Mainly U.S.",
		Criteria: ">=$1M ARR; PMF achieved",
	},
	{
		ID:       "incisive",
		Name:     "Incisive Ventures",
		Stage:    "Pre-Seed",
		Cheque:   "$250,000 - $750,000",
		Focus:    "B2B software; invests after MVP has been in customers' hands >=3 months; typical rounds $500K-$2M",
		Criteria: "Post-revenue; product in-market with early customer validation",
	},
	{
		ID:      "connetic",
		Name:    "Connetic Ventures",
		Stage:   "Pre-Seed and Seed",
		Cheque:  "$500,000 - $1,000,000",
		Focus:   "Software, Data Analytics, FinTech, Consumer Products",
		Regions: "North America (except Bay Area and Boston)",
	},
}

var bootcampCards = []BootcampCard{
	{
		ID:          "data-room",
		Name:        "LvlUp Cutting-Edge Data Room & Operations HQ Bootcamp",
		Subtitle:    "Build a world-class investor data room & ops HQ (Notion + AI).",
		Description: "Self-paced, <30-day bootcamp to streamline operations and investor readiness. Ends with a live Demo Day & certification.",
		Features: []string{
			"Free 6 months of Notion Pro + AI",
			"1:1 session with LvlUp team",
			"Weekly office hours & Demo Day with VCs",
			"Top 3 win expedited funding review (up to $1M)",
		},
	},
	{
		ID:          "cap-table",
		Name:        "Prime Equity & Cap Table Bootcamp",
		Subtitle:    "Master equity management and VC-ready cap tables.",
		Description: "Learn how to structure ownership, model dilution, and forecast raises. Culminates in Demo Day & certification.",
		Features: []string{
			"1:1 sessions with Qapita + LvlUp",
			"Advisor agreement & templates included",
			"Access 3,000+ investor list post-graduation",
			"Top founders fast-tracked for $1M review",
		},
	},
	{
		ID:          "financial-modeling",
		Name:        "LvlUp x Grasshopper Bank: Financial Modeling & Startup Banking Bootcamp",
		Subtitle:    "Optimize your financial systems and fundraising strategy.",
		Description: "Self-paced program to master startup banking, cash flow, and modeling. Includes Demo Day with investors.",
		Features: []string{
			"1:1 review with LvlUp & Grasshopper experts",
			"Curated 1,700+ investor list",
			"Workshops on cash flow & growth modeling",
			"Demo Day + awards + fast-track for $1M funding",
		},
	},
}

var perkCards = []PerkCard{
	{
		ID:       "wing",
		Name:     "Wing x LvlUp Ventures Perk",
		Subtitle: "Access Top-Tier Entry & Mid-Level Talent at LvlUp-Subsidized Rates (Starting at $500/Month). Used by 1,000+ Teams at Google, DoorDash & Harvard University",
		Perks: []string{
			"Complimentary 1:1 consultation",
			"Earn a $50 startup grant after attending your consultation",
		},
	},
	{
		ID:       "shields",
		Name:     "Shields Group Executive Search x LvlUp Ventures Perk",
		Subtitle: "For High-Level Hires | FREE Hiring Strategy Session",
		Perks:    []string{},
	},
	{
		ID:       "gcloud",
		Name:     "Google Cloud x LvlUp Ventures Perk",
		Subtitle: "Up To $350K in Free Credits",
		Perks:    []string{},
	},
}

var competitionCards = []CompetitionCard{
	{ID: "global-pitch", Name: "LvlUp Global Pitch Competition", Subtitle: "Quarterly global pitch with a $100K investment prize."},
	{ID: "ai-showdown", Name: "AI Founders Showdown", Subtitle: "For AI-native startups; judged by AI fund partners."},
	{ID: "climate-cup", Name: "Climate Innovation Cup", Subtitle: "Climate and CleanTech founders pitch for follow-on funding."},
	{ID: "fintech-open", Name: "FinTech Open", Subtitle: "Payments, InsurTech and FinTech infrastructure pitch day."},
	{ID: "health-demo-day", Name: "HealthTech Demo Day", Subtitle: "HealthTech and BioTech showcase with CVC partners."},
	{ID: "campus-founders", Name: "Campus Founders Challenge", Subtitle: "Student and first-time founder competition."},
}

var (
	partnerIndex     = indexCards(partnerCards, func(c PartnerCard) string { return c.ID })
	competitionIndex = indexCards(competitionCards, func(c CompetitionCard) string { return c.ID })
	programIndex     = buildProgramIndex()
)

func indexCards[T any](cards []T, id func(T) string) map[string]bool {
	out := make(map[string]bool, len(cards))
	for _, c := range cards {
		out[id(c)] = true
	}
	return out
}

func buildProgramIndex() map[string]bool {
	out := make(map[string]bool, len(bootcampCards)+len(perkCards))
	for _, c := range bootcampCards {
		out[c.ID] = true
	}
	for _, c := range perkCards {
		out[c.ID] = true
	}
	return out
}
