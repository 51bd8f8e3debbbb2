package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillValidApplication(f *Form) {
	f.SetField("founderFirstName", "Ada")
	f.SetField("founderLastName", "Lovelace")
	f.SetField("founderEmail", "ada@example.com")
	f.SetField("founderPhone", "+1 555 0100")
	f.SetField("hasCoFounder", "no")
	f.SetField("companyName", "Analytical Engines")
	f.SetField("companyWebsite", "https://analytical.example.com")
	f.SetList("industry", []string{"AI", "FinTech"})
	f.SetField("companyRegion", "Europe")
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
	f.SetField("wantsOtherCompetitions", "no")
}

func TestApplicationFormValid(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)
	assert.Empty(t, f.ValidateAll())
	assert.True(t, f.Valid())
}

func TestApplicationFormErrorsInDeclarationOrder(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)
	f.SetField("founderEmail", "not-an-email")
	f.SetField("companyWebsite", "")

	errs := f.ValidateAll()
	require.Len(t, errs, 2)
	assert.Equal(t, "founderEmail", errs[0].Field)
	assert.Equal(t, "email", errs[0].Code)
	assert.Equal(t, "companyWebsite", errs[1].Field)
	assert.Equal(t, "required", errs[1].Code)
}

func TestApplicationFormUSRequiresState(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)
	f.SetField("companyRegion", "United States")

	errs := f.ValidateAll()
	require.Len(t, errs, 1)
	assert.Equal(t, "companyState", errs[0].Field)

	f.SetField("companyState", "California")
	assert.Empty(t, f.ValidateAll())
}

func TestApplicationFormStateClearedWhenRegionLeavesUS(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)
	f.SetField("companyRegion", "United States")
	f.SetField("companyState", "New York")
	require.Equal(t, "New York", f.Field("companyState"))

	f.SetField("companyRegion", "Canada")
	assert.Empty(t, f.Field("companyState"))
	assert.True(t, f.Valid())
}

func TestApplicationFormIndustryTruncatedToFour(t *testing.T) {
	f := ApplicationForm()
	f.SetList("industry", []string{"AI", "FinTech", "HealthTech", "Gaming", "EdTech", "Energy"})
	assert.Equal(t, []string{"AI", "FinTech", "HealthTech", "Gaming"}, f.List("industry"))
}

func TestApplicationFormCoFounderConditional(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)
	f.SetField("hasCoFounder", "yes")

	errs := f.ValidateAll()
	require.NotEmpty(t, errs)
	assert.Equal(t, "cofounderFirstName", errs[0].Field)

	f.SetField("cofounderFirstName", "Charles")
	f.SetField("cofounderLastName", "Babbage")
	f.SetField("cofounderEmail", "charles@example.com")
	assert.Empty(t, f.ValidateAll())
}

func TestApplicationFormNumericRules(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)

	f.SetField("raiseAmount", "1,250,000")
	assert.True(t, f.Valid())

	f.SetField("raiseAmount", "about a million")
	errs := f.ValidateAll()
	require.Len(t, errs, 1)
	assert.Equal(t, "raiseAmount", errs[0].Field)
	assert.Equal(t, "numeric", errs[0].Code)
}

func TestApplicationFormRejectsNonFiniteNumbers(t *testing.T) {
	for _, v := range []string{"Inf", "-Inf", "NaN", "infinity"} {
		f := ApplicationForm()
		fillValidApplication(f)
		f.SetField("raiseAmount", v)

		errs := f.ValidateAll()
		require.Len(t, errs, 1, "value %q", v)
		assert.Equal(t, "raiseAmount", errs[0].Field)
		assert.Equal(t, "numeric", errs[0].Code)
	}
}

func TestApplicationFormPitchLength(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)
	f.SetField("elevatorPitch", strings.Repeat("x", 301))

	errs := f.ValidateAll()
	require.Len(t, errs, 1)
	assert.Equal(t, "elevatorPitch", errs[0].Field)
	assert.Equal(t, "max_length", errs[0].Code)
}

func TestApplicationFormEligibilityMustBeAnswered(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)
	f.SetField("hasFemaleFounder", "")

	errs := f.ValidateAll()
	require.Len(t, errs, 1)
	assert.Equal(t, "hasFemaleFounder", errs[0].Field)
	assert.Equal(t, "yes_no", errs[0].Code)
}

func TestFormReset(t *testing.T) {
	f := ApplicationForm()
	fillValidApplication(f)
	f.Reset()

	assert.Empty(t, f.Field("founderFirstName"))
	assert.Empty(t, f.List("industry"))
	assert.Equal(t, "Seed", f.Field("fundraisingStage"))
}

func TestFounderNetworkFormBusinessModelBranch(t *testing.T) {
	f := FounderNetworkForm()
	f.SetField("foundername", "Grace Hopper")
	f.SetField("founderemail", "grace@example.com")
	f.SetList("industries", []string{"Developer Tools"})
	f.SetField("country", "United States")
	f.SetField("stage", "seed")
	f.SetField("companyName", "Compilers Inc")
	f.SetField("companyDescription", "We build compilers for modern hardware.")
	f.SetField("amountRaised", "500000")
	f.SetField("currentround", "2000000")
	f.SetField("roundclosed", "750000")
	f.SetField("momGrowth", "12")
	f.SetField("founderLinkedin", "https://www.linkedin.com/in/grace")

	f.SetField("businessModel", "saas")
	errs := f.ValidateAll()
	require.Len(t, errs, 1)
	assert.Equal(t, "currentArr", errs[0].Field)

	f.SetField("currentArr", "300000")
	assert.Empty(t, f.ValidateAll())

	f.SetField("businessModel", "non-saas")
	errs = f.ValidateAll()
	require.Len(t, errs, 1)
	assert.Equal(t, "ttmRevenue", errs[0].Field)

	f.SetField("ttmRevenue", "450000")
	assert.Empty(t, f.ValidateAll())
}

func TestSelectionSetCap(t *testing.T) {
	s := NewSelectionSet(5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		assert.True(t, s.Toggle(id))
	}
	assert.Equal(t, 5, s.Len())

	assert.False(t, s.Toggle("f"))
	assert.Equal(t, 5, s.Len())
	assert.False(t, s.Contains("f"))

	assert.True(t, s.Toggle("c"))
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Toggle("f"))
	assert.Equal(t, []string{"a", "b", "d", "e", "f"}, s.Values())
}

func TestSelectionSetUnlimitedAndClear(t *testing.T) {
	s := NewSelectionSet(0)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		assert.True(t, s.Add(id))
	}
	assert.True(t, s.Add("a"))
	assert.Equal(t, 7, s.Len())

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Values())
}
