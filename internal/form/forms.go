package form

import (
	"venture-intake/internal/catalog"
)

// SelectTheme is the color configuration for styled select inputs. It is a
// plain value handed to whatever renders the form; nothing mutates it.
type SelectTheme struct {
	Background      string `json:"background"`
	Text            string `json:"text"`
	Border          string `json:"border"`
	BorderFocused   string `json:"borderFocused"`
	OptionSelected  string `json:"optionSelected"`
	OptionHighlight string `json:"optionHighlight"`
}

// DefaultSelectTheme returns the dark theme used across the site.
func DefaultSelectTheme() SelectTheme {
	return SelectTheme{
		Background:      "#111111",
		Text:            "#ffffff",
		Border:          "#404040",
		BorderFocused:   "#bef264",
		OptionSelected:  "#2a2a2a",
		OptionHighlight: "#222222",
	}
}

func hasCoFounder(f *Form) bool { return f.Field("hasCoFounder") == "yes" }

func regionIsUS(f *Form) bool {
	return f.Field("companyRegion") == catalog.RegionUnitedStates
}

// ApplicationForm builds the startup application form. Industry selections
// are truncated to four on input, and the state is cleared whenever the
// region moves away from the United States.
func ApplicationForm() *Form {
	specs := []FieldSpec{
		{Name: "founderFirstName", Rules: []Rule{Required("First name is required")}},
		{Name: "founderLastName", Rules: []Rule{Required("Last name is required")}},
		{Name: "founderEmail", Rules: []Rule{Required("Email is required"), Email()}},
		{Name: "founderPhone", Rules: []Rule{Required("Phone is required")}},
		{Name: "hasCoFounder", Rules: []Rule{YesNo("Answer yes or no")}},
		{Name: "cofounderFirstName", Rules: []Rule{When(hasCoFounder, Required("Co-founder first name is required"))}},
		{Name: "cofounderLastName", Rules: []Rule{When(hasCoFounder, Required("Co-founder last name is required"))}},
		{Name: "cofounderEmail", Rules: []Rule{When(hasCoFounder, Required("Co-founder email is required")), Email()}},
		{Name: "companyName", Rules: []Rule{Required("Company name is required")}},
		{Name: "companyWebsite", Rules: []Rule{Required("Website is required"), URL()}},
		{Name: "industry", List: true, Rules: []Rule{
			ListMin(1, "Select at least one industry"),
			ListMax(4, "Select at most four industries"),
			ListEach(catalog.IsIndustry, "Unknown industry"),
		}},
		{Name: "companyRegion", Rules: []Rule{Required("Region is required"), Enum(catalog.IsRegion, "Unknown region")}},
		{Name: "companyState", Rules: []Rule{
			When(regionIsUS, Required("State is required for US companies")),
			Enum(catalog.IsUSState, "Unknown state"),
		}},
		{Name: "elevatorPitch", Rules: []Rule{Required("Elevator pitch is required"), MaxLen(300)}},
		{Name: "businessModel", Rules: []Rule{Enum(catalog.IsBusinessModel, "Unknown business model")}},
		{Name: "pitchDeckLink", Rules: []Rule{URL()}},
		{Name: "isVCBacked", Rules: []Rule{YesNo("Answer yes or no")}},
		{Name: "b2bSaaSWith3MoRunway", Rules: []Rule{YesNo("Answer yes or no")}},
		{Name: "sellsPhysicalProduct", Rules: []Rule{YesNo("Answer yes or no")}},
		{Name: "hasFounderOver50", Rules: []Rule{YesNo("Answer yes or no")}},
		{Name: "hasBlackFounder", Rules: []Rule{YesNo("Answer yes or no")}},
		{Name: "hasFemaleFounder", Rules: []Rule{YesNo("Answer yes or no")}},
		{Name: "isForeignBornFounderInUS", Rules: []Rule{YesNo("Answer yes or no")}},
		{Name: "fundraisingStage", Rules: []Rule{Required("Fundraising stage is required"), Enum(catalog.IsStage, "Unknown stage")}},
		{Name: "raiseAmount", Rules: []Rule{Required("Raise amount is required"), Numeric()}},
		{Name: "valuation", Rules: []Rule{Required("Valuation is required"), Numeric()}},
		{Name: "mrr", Rules: []Rule{Required("MRR is required"), Numeric()}},
		{Name: "burnRate", Rules: []Rule{Required("Burn rate is required"), Numeric()}},
		{Name: "previouslyRaised", Rules: []Rule{Required("Previously raised is required"), Numeric()}},
		{Name: "runwayMonths", Rules: []Rule{Numeric()}},
		{Name: "wantsOtherCompetitions", Rules: []Rule{YesNo("Answer yes or no")}},
	}

	f := New(specs, func(f *Form, changed string) {
		switch changed {
		case "companyRegion":
			if !regionIsUS(f) {
				f.setQuiet("companyState", "")
			}
		case "industry":
			if tags := f.List("industry"); len(tags) > 4 {
				f.setListQuiet("industry", tags[:4])
			}
		}
	})
	return f.WithDefault("fundraisingStage", "Seed")
}

func modelIsSaaS(f *Form) bool {
	return f.Field("businessModel") == catalog.BusinessModelSaaS
}

func modelIsNonSaaS(f *Form) bool {
	return f.Field("businessModel") == catalog.BusinessModelNonSaaS
}

// FounderNetworkForm builds the founder network signup form. SaaS companies
// must report current ARR, everyone else trailing twelve month revenue.
func FounderNetworkForm() *Form {
	specs := []FieldSpec{
		{Name: "foundername", Rules: []Rule{Required("Name is required"), MinLen(2), MaxLen(50)}},
		{Name: "founderemail", Rules: []Rule{Required("Email is required"), Email()}},
		{Name: "industries", List: true, Rules: []Rule{
			ListMin(1, "Select at least one industry"),
			ListEach(catalog.IsNetworkIndustry, "Unknown industry"),
		}},
		{Name: "website", Rules: []Rule{URL()}},
		{Name: "country", Rules: []Rule{Required("Country is required")}},
		{Name: "stage", Rules: []Rule{Required("Stage is required")}},
		{Name: "companyName", Rules: []Rule{Required("Company name is required"), MinLen(2), MaxLen(50)}},
		{Name: "companyDescription", Rules: []Rule{Required("Company description is required"), MinLen(10), MaxLen(500)}},
		{Name: "amountRaised", Rules: []Rule{Required("Amount raised is required"), Numeric()}},
		{Name: "currentround", Rules: []Rule{Required("Current round target is required"), Numeric()}},
		{Name: "roundclosed", Rules: []Rule{Required("Round committed is required"), Numeric()}},
		{Name: "businessModel", Rules: []Rule{Required("Business model is required"), Enum(catalog.IsBusinessModel, "Unknown business model")}},
		{Name: "currentArr", Rules: []Rule{When(modelIsSaaS, Required("Current ARR is required for SaaS")), Numeric()}},
		{Name: "ttmRevenue", Rules: []Rule{When(modelIsNonSaaS, Required("TTM Revenue is required for Non-SaaS")), Numeric()}},
		{Name: "momGrowth", Rules: []Rule{Required("MoM Growth % is required"), Numeric()}},
		{Name: "founderLinkedin", Rules: []Rule{Required("LinkedIn is required"), LinkedInURL()}},
	}
	return New(specs, nil).WithDefault("businessModel", catalog.BusinessModelSaaS)
}
