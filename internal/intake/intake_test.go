package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-intake/internal/form"
)

func TestToNumber(t *testing.T) {
	n := ToNumber("1,000,000")
	require.True(t, n.Valid)
	assert.Equal(t, float64(1000000), n.Float64)

	n = ToNumber("12 500.50")
	require.True(t, n.Valid)
	assert.Equal(t, 12500.50, n.Float64)

	assert.False(t, ToNumber("").Valid)
	assert.False(t, ToNumber("   ").Valid)
	assert.False(t, ToNumber("a lot").Valid)
	assert.False(t, ToNumber("$500,000").Valid)
}

func TestSafeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", SafeEmail("Ada@Example.com"))
	assert.Equal(t, "a_b@x.io", SafeEmail("a b@x.io"))
	assert.Equal(t, "anon", SafeEmail(""))
	assert.Equal(t, "anon", SafeEmail("   "))
}

func TestSafeCompany(t *testing.T) {
	assert.Equal(t, "acme_inc", SafeCompany("Acme, Inc."))
	assert.Equal(t, "a_b_c", SafeCompany("A  &  B // C"))
	assert.Equal(t, "startup", SafeCompany(""))
}

func TestDeckObjectPath(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	path := DeckObjectPath("Ada@Example.com", "Acme, Inc.", "Deck Final.PDF", now)
	assert.Equal(t, "ada@example.com/acme_inc_pitch_deck_2026-03-14.pdf", path)

	path = DeckObjectPath("", "", "deck", now)
	assert.Equal(t, "anon/startup_pitch_deck_2026-03-14.pdf", path)
}

func validForm(t *testing.T) *form.Form {
	t.Helper()
	f := form.ApplicationForm()
	f.SetField("founderFirstName", "Ada")
	f.SetField("founderLastName", "Lovelace")
	f.SetField("founderEmail", "ada@example.com")
	f.SetField("founderPhone", "+1 555 0100")
	f.SetField("hasCoFounder", "no")
	f.SetField("companyName", "Analytical Engines")
	f.SetField("companyWebsite", "www.analytical.example")
	f.SetList("industry", []string{"AI"})
	f.SetField("companyRegion", "United States")
	f.SetField("companyState", "California")
	f.SetField("elevatorPitch", "Programmable compute for everyone.")
	f.SetField("isVCBacked", "no")
	f.SetField("b2bSaaSWith3MoRunway", "yes")
	f.SetField("sellsPhysicalProduct", "no")
	f.SetField("hasFounderOver50", "no")
	f.SetField("hasBlackFounder", "no")
	f.SetField("hasFemaleFounder", "yes")
	f.SetField("isForeignBornFounderInUS", "no")
	f.SetField("fundraisingStage", "Seed")
	f.SetField("raiseAmount", "1,000,000")
	f.SetField("valuation", "8,000,000")
	f.SetField("mrr", "12,500")
	f.SetField("burnRate", "40,000")
	f.SetField("previouslyRaised", "250,000")
	f.SetField("wantsOtherCompetitions", "yes")
	return f
}

func TestAssembleRequiresPartner(t *testing.T) {
	f := validForm(t)
	sel := NewSelections()

	_, err := Assemble(f, sel, FundSpecific{}, time.Now())
	assert.ErrorIs(t, err, ErrNoPartnerSelected)
}

func TestAssembleRejectsInvalidForm(t *testing.T) {
	f := validForm(t)
	f.SetField("founderEmail", "")
	sel := NewSelections()
	sel.Partners.Add("lvlup")

	_, err := Assemble(f, sel, FundSpecific{}, time.Now())
	assert.ErrorIs(t, err, ErrFormInvalid)
	assert.Contains(t, err.Error(), "founderEmail")
}

func TestAssembleBuildsPayload(t *testing.T) {
	f := validForm(t)
	sel := NewSelections()
	sel.Partners.Add("lvlup")
	sel.Partners.Add("outlander")
	sel.Competitions.Add("global-pitch")

	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	p, err := Assemble(f, sel, FundSpecific{}, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"lvlup", "outlander"}, p.PartnersSelected)
	assert.Equal(t, []string{"global-pitch"}, p.CompetitionsSelected)
	assert.Empty(t, p.ProgramsSelected)

	assert.Equal(t, "Ada", p.Founder.FirstName)
	assert.Equal(t, "no", p.Founder.HasCoFounder)
	assert.Equal(t, "California", p.Company.State)
	assert.Equal(t, []string{"AI"}, p.Company.Industries)
	assert.True(t, p.Eligibility.HasFemaleFounder)
	assert.True(t, p.Eligibility.WantsOtherCompetitions)
	assert.False(t, p.Eligibility.IsVCBacked)
	assert.Equal(t, "1,000,000", p.Financials.RaiseAmount)
	assert.Equal(t, "2026-03-14T10:30:00Z", p.SubmittedAt)
}

func TestAssembleDropsStateOutsideUS(t *testing.T) {
	f := validForm(t)
	f.SetField("companyRegion", "Canada")
	sel := NewSelections()
	sel.Partners.Add("lvlup")

	p, err := Assemble(f, sel, FundSpecific{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, p.Company.State)
}

func TestAssembleDropsCofounderFieldsWhenAnswerIsNo(t *testing.T) {
	f := validForm(t)
	f.SetField("cofounderEmail", "stale@example.com")
	sel := NewSelections()
	sel.Partners.Add("lvlup")

	p, err := Assemble(f, sel, FundSpecific{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, p.Founder.CofounderEmail)
}
