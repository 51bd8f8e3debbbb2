package intake

import (
	"errors"
	"fmt"
	"time"

	"venture-intake/internal/catalog"
	"venture-intake/internal/form"
)

// ErrNoPartnerSelected is returned when an application names no VC partner.
// Every application must apply to at least one.
var ErrNoPartnerSelected = errors.New("select at least one VC partner")

// ErrFormInvalid is returned when the form still has failing rules.
var ErrFormInvalid = errors.New("form has validation errors")

// Selections are the toggled card sets accompanying a form.
type Selections struct {
	Partners     *form.SelectionSet
	Competitions *form.SelectionSet
	Programs     *form.SelectionSet
}

// NewSelections builds the three selection sets with the competition cap
// applied at the mutation boundary.
func NewSelections() Selections {
	return Selections{
		Partners:     form.NewSelectionSet(0),
		Competitions: form.NewSelectionSet(catalog.MaxCompetitionSelections),
		Programs:     form.NewSelectionSet(0),
	}
}

// Assemble converts validated form state and card selections into the
// nested payload shape. It fails when the form is invalid or when no
// partner is selected; empty competition and program sets are fine. The
// company state is dropped unless the region is the United States.
func Assemble(f *form.Form, sel Selections, fund FundSpecific, now time.Time) (*ApplicationPayload, error) {
	if errs := f.ValidateAll(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", ErrFormInvalid, errs[0].Field, errs[0].Message)
	}
	if sel.Partners == nil || sel.Partners.Len() == 0 {
		return nil, ErrNoPartnerSelected
	}

	state := ""
	if f.Field("companyRegion") == catalog.RegionUnitedStates {
		state = f.Field("companyState")
	}

	p := &ApplicationPayload{
		PartnersSelected:     sel.Partners.Values(),
		CompetitionsSelected: values(sel.Competitions),
		ProgramsSelected:     values(sel.Programs),
		Founder: Founder{
			FirstName:          f.Field("founderFirstName"),
			LastName:           f.Field("founderLastName"),
			Email:              f.Field("founderEmail"),
			Phone:              f.Field("founderPhone"),
			HasCoFounder:       f.Field("hasCoFounder"),
			CofounderFirstName: f.Field("cofounderFirstName"),
			CofounderLastName:  f.Field("cofounderLastName"),
			CofounderEmail:     f.Field("cofounderEmail"),
		},
		Company: Company{
			Name:          f.Field("companyName"),
			Website:       f.Field("companyWebsite"),
			Industries:    f.List("industry"),
			Region:        f.Field("companyRegion"),
			State:         state,
			ElevatorPitch: f.Field("elevatorPitch"),
			BusinessModel: f.Field("businessModel"),
			DeckLink:      f.Field("pitchDeckLink"),
		},
		Eligibility: Eligibility{
			IsVCBacked:               f.Field("isVCBacked") == "yes",
			B2BSaaSWith3MoRunway:     f.Field("b2bSaaSWith3MoRunway") == "yes",
			SellsPhysicalProduct:     f.Field("sellsPhysicalProduct") == "yes",
			HasFounderOver50:         f.Field("hasFounderOver50") == "yes",
			HasBlackFounder:          f.Field("hasBlackFounder") == "yes",
			HasFemaleFounder:         f.Field("hasFemaleFounder") == "yes",
			IsForeignBornFounderInUS: f.Field("isForeignBornFounderInUS") == "yes",
			WantsOtherCompetitions:   f.Field("wantsOtherCompetitions") == "yes",
		},
		Financials: Financials{
			FundraisingStage: f.Field("fundraisingStage"),
			RaiseAmount:      f.Field("raiseAmount"),
			Valuation:        f.Field("valuation"),
			MRR:              f.Field("mrr"),
			BurnRate:         f.Field("burnRate"),
			PreviouslyRaised: f.Field("previouslyRaised"),
			RunwayMonths:     f.Field("runwayMonths"),
		},
		FundSpecific: fund,
		SubmittedAt:  now.UTC().Format(time.RFC3339),
	}

	if f.Field("hasCoFounder") != "yes" {
		p.Founder.CofounderFirstName = ""
		p.Founder.CofounderLastName = ""
		p.Founder.CofounderEmail = ""
	}

	return p, nil
}

func values(s *form.SelectionSet) []string {
	if s == nil {
		return nil
	}
	return s.Values()
}
