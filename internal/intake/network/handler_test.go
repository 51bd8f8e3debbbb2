package network

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-intake/internal/common/logger"
)

func validFounder() *FounderSignup {
	return &FounderSignup{
		UserType:           RoleFounder,
		Name:               "Grace Hopper",
		Email:              "grace@example.com",
		CompanyName:        "Compilers Inc",
		Country:            "United States",
		Stage:              "seed",
		Industries:         []string{"Developer Tools"},
		CompanyDescription: "We build compilers for modern hardware.",
		AmountRaised:       "500,000",
		CurrentRound:       "2,000,000",
		RoundClosed:        "750,000",
		BusinessModel:      "saas",
		CurrentARR:         "300,000",
		MoMGrowth:          "12",
		Linkedin:           "https://www.linkedin.com/in/grace",
	}
}

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHandler(db, logger.NewNoOpLogger()), mock
}

func TestDecodeSignupVariants(t *testing.T) {
	s, err := DecodeSignup([]byte(`{"userType":"founder","foundername":"Grace"}`))
	require.NoError(t, err)
	assert.IsType(t, &FounderSignup{}, s)
	assert.Equal(t, RoleFounder, s.Role())

	s, err = DecodeSignup([]byte(`{"userType":"investor","investorType":"VC","firm":"Acme Capital"}`))
	require.NoError(t, err)
	assert.IsType(t, &VCInvestorSignup{}, s)

	s, err = DecodeSignup([]byte(`{"userType":"investor","investorType":"Angel"}`))
	require.NoError(t, err)
	assert.IsType(t, &AngelInvestorSignup{}, s)

	_, err = DecodeSignup([]byte(`{"userType":"robot"}`))
	assert.ErrorIs(t, err, ErrInvalidUserType)

	_, err = DecodeSignup([]byte(`{"userType":"investor","investorType":"Syndicate"}`))
	assert.ErrorIs(t, err, ErrInvalidInvestorType)
}

func TestFounderValidate(t *testing.T) {
	assert.NoError(t, validFounder().Validate())

	s := validFounder()
	s.Name = "G"
	var ve *ValidationError
	require.ErrorAs(t, s.Validate(), &ve)
	assert.Equal(t, "foundername", ve.Field)

	s = validFounder()
	s.BusinessModel = "saas"
	s.CurrentARR = ""
	require.ErrorAs(t, s.Validate(), &ve)
	assert.Equal(t, "currentArr", ve.Field)

	s = validFounder()
	s.BusinessModel = "non-saas"
	s.TTMRevenue = ""
	require.ErrorAs(t, s.Validate(), &ve)
	assert.Equal(t, "ttmRevenue", ve.Field)
	s.TTMRevenue = "450,000"
	assert.NoError(t, s.Validate())

	s = validFounder()
	s.Linkedin = "https://twitter.com/grace"
	require.ErrorAs(t, s.Validate(), &ve)
	assert.Equal(t, "founderLinkedin", ve.Field)
}

func TestInvestorValidate(t *testing.T) {
	vc := &VCInvestorSignup{
		investorBase: investorBase{
			UserType: RoleInvestor, Type: InvestorVC,
			Name: "Jordan", Email: "jordan@fund.vc",
		},
		Firm:     "Acme Capital",
		FundSize: "50,000,000",
	}
	assert.NoError(t, vc.Validate())

	vc.Firm = ""
	var ve *ValidationError
	require.ErrorAs(t, vc.Validate(), &ve)
	assert.Equal(t, "firm", ve.Field)

	angel := &AngelInvestorSignup{
		investorBase: investorBase{
			UserType: RoleInvestor, Type: InvestorAngel,
			Name: "Sam", Email: "sam@example.com",
		},
	}
	require.ErrorAs(t, angel.Validate(), &ve)
	assert.Equal(t, "chequesize", ve.Field)

	angel.ChequeSize = "25,000"
	assert.NoError(t, angel.Validate())
}

func TestExecuteInsertsFounder(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectExec("INSERT INTO founders").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := h.Execute(context.Background(), validFounder())
	require.True(t, res.OK, res.Error)
	assert.Equal(t, RoleFounder, res.Role)
	assert.NotEmpty(t, res.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteInsertsInvestor(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectExec("INSERT INTO investors").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := h.Execute(context.Background(), &AngelInvestorSignup{
		investorBase: investorBase{
			UserType: RoleInvestor, Type: InvestorAngel,
			Name: "Sam", Email: "sam@example.com",
		},
		ChequeSize: "25,000",
	})
	require.True(t, res.OK, res.Error)
	assert.Equal(t, RoleInvestor, res.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteValidationFailureSkipsInsert(t *testing.T) {
	h, mock := newTestHandler(t)

	s := validFounder()
	s.Email = "not-an-email"
	res := h.Execute(context.Background(), s)

	require.False(t, res.OK)
	assert.Contains(t, res.Error, "founderemail")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteInsertErrorIsVerbatim(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectExec("INSERT INTO founders").
		WillReturnError(errors.New("connection refused"))

	res := h.Execute(context.Background(), validFounder())
	require.False(t, res.OK)
	assert.Equal(t, "connection refused", res.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}
