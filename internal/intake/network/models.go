// Package network handles network signups: founders looking for investment
// and investors (VC firms and angels) looking for deal flow. The two roles
// carry different fields and are modeled as distinct types behind the Signup
// interface rather than one struct of optionals.
package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"venture-intake/internal/catalog"
	"venture-intake/internal/intake"
)

// Role discriminates the signup variants.
type Role string

const (
	RoleFounder  Role = "founder"
	RoleInvestor Role = "investor"
)

// InvestorType discriminates the investor variants.
type InvestorType string

const (
	InvestorVC    InvestorType = "VC"
	InvestorAngel InvestorType = "Angel"
)

var (
	ErrInvalidUserType     = errors.New("invalid user type")
	ErrInvalidInvestorType = errors.New("invalid investor type")
)

// ValidationError reports the first field that failed signup validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Signup is one network signup of either role.
type Signup interface {
	Role() Role
	Validate() error
}

// FounderSignup is a founder joining the network.
type FounderSignup struct {
	UserType Role `json:"userType"`

	Name  string `json:"foundername"`
	Email string `json:"founderemail"`

	CompanyName        string   `json:"companyName"`
	Website            string   `json:"website,omitempty"`
	Country            string   `json:"country"`
	Stage              string   `json:"stage"`
	Industries         []string `json:"industries"`
	CompanyDescription string   `json:"companyDescription"`

	AmountRaised string `json:"amountRaised"`
	CurrentRound string `json:"currentround"`
	RoundClosed  string `json:"roundclosed"`

	BusinessModel string `json:"businessModel"`
	CurrentARR    string `json:"currentArr,omitempty"`
	TTMRevenue    string `json:"ttmRevenue,omitempty"`
	MoMGrowth     string `json:"momGrowth"`

	Linkedin string `json:"founderLinkedin"`
}

func (s *FounderSignup) Role() Role { return RoleFounder }

// Validate checks founder fields in declaration order. SaaS companies must
// report current ARR, everyone else trailing twelve month revenue.
func (s *FounderSignup) Validate() error {
	if n := len([]rune(strings.TrimSpace(s.Name))); n < 2 || n > 50 {
		return &ValidationError{Field: "foundername", Message: "Name must be 2-50 characters"}
	}
	if !isEmail(s.Email) {
		return &ValidationError{Field: "founderemail", Message: "Enter a valid email address"}
	}
	if len(s.Industries) == 0 {
		return &ValidationError{Field: "industries", Message: "Select at least one industry"}
	}
	for _, ind := range s.Industries {
		if !catalog.IsNetworkIndustry(ind) {
			return &ValidationError{Field: "industries", Message: "Unknown industry"}
		}
	}
	if strings.TrimSpace(s.Country) == "" {
		return &ValidationError{Field: "country", Message: "Country is required"}
	}
	if strings.TrimSpace(s.Stage) == "" {
		return &ValidationError{Field: "stage", Message: "Stage is required"}
	}
	if n := len([]rune(strings.TrimSpace(s.CompanyName))); n < 2 || n > 50 {
		return &ValidationError{Field: "companyName", Message: "Company name must be 2-50 characters"}
	}
	if n := len([]rune(strings.TrimSpace(s.CompanyDescription))); n < 10 || n > 500 {
		return &ValidationError{Field: "companyDescription", Message: "Description must be 10-500 characters"}
	}
	for _, f := range []struct{ name, value string }{
		{"amountRaised", s.AmountRaised},
		{"currentround", s.CurrentRound},
		{"roundclosed", s.RoundClosed},
	} {
		if !isNumber(f.value) {
			return &ValidationError{Field: f.name, Message: "Enter a valid number"}
		}
	}
	switch s.BusinessModel {
	case catalog.BusinessModelSaaS:
		if !isNumber(s.CurrentARR) {
			return &ValidationError{Field: "currentArr", Message: "Current ARR is required for SaaS"}
		}
	case catalog.BusinessModelNonSaaS:
		if !isNumber(s.TTMRevenue) {
			return &ValidationError{Field: "ttmRevenue", Message: "TTM Revenue is required for Non-SaaS"}
		}
	default:
		return &ValidationError{Field: "businessModel", Message: "Unknown business model"}
	}
	if !isNumber(s.MoMGrowth) {
		return &ValidationError{Field: "momGrowth", Message: "MoM Growth % is required"}
	}
	if !isLinkedin(s.Linkedin) {
		return &ValidationError{Field: "founderLinkedin", Message: "Enter a valid LinkedIn URL"}
	}
	return nil
}

// investorBase carries the fields shared by both investor variants.
type investorBase struct {
	UserType Role         `json:"userType"`
	Type     InvestorType `json:"investorType"`

	Name  string `json:"investorName"`
	Email string `json:"investoremail"`

	Title     string `json:"title,omitempty"`
	Website   string `json:"website,omitempty"`
	HQCountry string `json:"hqCountry,omitempty"`

	InvestmentStages      []string `json:"investmentstage,omitempty"`
	CountriesOfInvestment []string `json:"countriesofInvestment,omitempty"`
	IndustriesOfInterest  []string `json:"industriesofInterest,omitempty"`

	LeadPreference string `json:"leadPreference,omitempty"`
	BoardSeat      string `json:"boardSeat,omitempty"`
	DecisionSpeed  string `json:"decisionSpeed,omitempty"`
}

func (b *investorBase) validateBase() error {
	if strings.TrimSpace(b.Name) == "" {
		return &ValidationError{Field: "investorName", Message: "Name is required"}
	}
	if !isEmail(b.Email) {
		return &ValidationError{Field: "investoremail", Message: "Enter a valid email address"}
	}
	return nil
}

// VCInvestorSignup is a fund investor joining the network.
type VCInvestorSignup struct {
	investorBase

	Firm          string `json:"firm"`
	FundSize      string `json:"fund"`
	AvgTicketSize string `json:"avgTicketSize,omitempty"`
	FundStage     string `json:"fundStage,omitempty"`
}

func (s *VCInvestorSignup) Role() Role { return RoleInvestor }

func (s *VCInvestorSignup) Validate() error {
	if err := s.validateBase(); err != nil {
		return err
	}
	if strings.TrimSpace(s.Firm) == "" {
		return &ValidationError{Field: "firm", Message: "Firm is required"}
	}
	if !isNumber(s.FundSize) {
		return &ValidationError{Field: "fund", Message: "Fund size is required"}
	}
	if s.FundStage != "" && !containsOption(catalog.FundStageOptions, s.FundStage) {
		return &ValidationError{Field: "fundStage", Message: "Unknown fund stage"}
	}
	return nil
}

// AngelInvestorSignup is an individual angel joining the network.
type AngelInvestorSignup struct {
	investorBase

	ChequeSize string `json:"chequesize"`
}

func (s *AngelInvestorSignup) Role() Role { return RoleInvestor }

func (s *AngelInvestorSignup) Validate() error {
	if err := s.validateBase(); err != nil {
		return err
	}
	if !isNumber(s.ChequeSize) {
		return &ValidationError{Field: "chequesize", Message: "Cheque size is required"}
	}
	return nil
}

// DecodeSignup parses a raw signup by its discriminants. Unknown userType or
// investorType values are rejected before any field validation runs.
func DecodeSignup(raw []byte) (Signup, error) {
	var head struct {
		UserType     Role         `json:"userType"`
		InvestorType InvestorType `json:"investorType"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode signup: %w", err)
	}

	switch head.UserType {
	case RoleFounder:
		var s FounderSignup
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode founder signup: %w", err)
		}
		return &s, nil
	case RoleInvestor:
		switch head.InvestorType {
		case InvestorVC:
			var s VCInvestorSignup
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("decode vc signup: %w", err)
			}
			return &s, nil
		case InvestorAngel:
			var s AngelInvestorSignup
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("decode angel signup: %w", err)
			}
			return &s, nil
		default:
			return nil, ErrInvalidInvestorType
		}
	default:
		return nil, ErrInvalidUserType
	}
}

func isEmail(v string) bool {
	v = strings.TrimSpace(v)
	at := strings.Index(v, "@")
	dot := strings.LastIndex(v, ".")
	return at > 0 && dot > at+1 && dot < len(v)-1 && !strings.ContainsAny(v, " \t")
}

func isNumber(v string) bool {
	return intake.ToNumber(v).Valid
}

func isLinkedin(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.HasPrefix(v, "https://linkedin.com/") ||
		strings.HasPrefix(v, "https://www.linkedin.com/") ||
		strings.HasPrefix(v, "http://linkedin.com/") ||
		strings.HasPrefix(v, "http://www.linkedin.com/")
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
