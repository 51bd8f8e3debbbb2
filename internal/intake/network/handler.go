package network

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "venture-intake/internal/common/errors"
	"venture-intake/internal/common/logger"
	"venture-intake/internal/common/metrics"
	"venture-intake/internal/intake"
)

// Result reports a signup outcome; Error carries the database message
// verbatim on insert failure.
type Result struct {
	OK    bool   `json:"ok"`
	Role  Role   `json:"type,omitempty"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// Handler persists network signups. Founders and investors land in separate
// tables.
type Handler struct {
	db     *sql.DB
	logger logger.Logger
	now    func() time.Time
}

func NewHandler(db *sql.DB, log logger.Logger) *Handler {
	return &Handler{db: db, logger: log, now: time.Now}
}

// Execute validates and inserts one signup. Validation failures and insert
// errors are both reported through the Result.
func (h *Handler) Execute(ctx context.Context, s Signup) *Result {
	if err := s.Validate(); err != nil {
		stdErr := apperrors.NewValidationFailedError(err.Error())
		h.logger.Warn(stdErr.Message, map[string]interface{}{
			"code":     string(stdErr.Code),
			"category": apperrors.GetErrorCategory(stdErr.Code),
			"role":     string(s.Role()),
			"details":  stdErr.Details,
		})
		metrics.SubmissionsRejected.WithLabelValues("network", "validation_failed").Inc()
		return &Result{OK: false, Role: s.Role(), Error: err.Error()}
	}

	id := uuid.New().String()
	var (
		query string
		args  []interface{}
		err   error
	)
	switch v := s.(type) {
	case *FounderSignup:
		query, args, err = h.founderInsert(id, v)
	case *VCInvestorSignup:
		query, args, err = h.vcInsert(id, v)
	case *AngelInvestorSignup:
		query, args, err = h.angelInsert(id, v)
	default:
		return &Result{OK: false, Error: ErrInvalidUserType.Error()}
	}
	if err == nil {
		_, err = h.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		stdErr := apperrors.NewDatabaseInsertFailedError(err)
		h.logger.Error(stdErr.Message, map[string]interface{}{
			"code":     string(stdErr.Code),
			"category": apperrors.GetErrorCategory(stdErr.Code),
			"role":     string(s.Role()),
			"details":  stdErr.Details,
		})
		metrics.SubmissionsRejected.WithLabelValues("network", "insert_failed").Inc()
		return &Result{OK: false, Role: s.Role(), Error: err.Error()}
	}

	h.logger.Info("network signup accepted", map[string]interface{}{
		"role": string(s.Role()),
		"id":   id,
	})
	metrics.SubmissionsAccepted.WithLabelValues("network").Inc()
	return &Result{OK: true, Role: s.Role(), ID: id}
}

func (h *Handler) founderInsert(id string, s *FounderSignup) (string, []interface{}, error) {
	return sq.Insert("founders").
		PlaceholderFormat(sq.Dollar).
		Columns(
			"id", "founder_name", "founder_email",
			"company_name", "website", "country", "stage", "industries",
			"company_description",
			"amount_raised", "current_round", "round_closed",
			"business_model", "current_arr", "ttm_revenue", "mom_growth",
			"founder_linkedin", "created_at",
		).
		Values(
			id, s.Name, s.Email,
			s.CompanyName, nullStr(s.Website), s.Country, s.Stage, pq.Array(s.Industries),
			s.CompanyDescription,
			intake.ToNumber(s.AmountRaised), intake.ToNumber(s.CurrentRound), intake.ToNumber(s.RoundClosed),
			s.BusinessModel, intake.ToNumber(s.CurrentARR), intake.ToNumber(s.TTMRevenue), intake.ToNumber(s.MoMGrowth),
			s.Linkedin, h.now().UTC().Format(time.RFC3339),
		).
		ToSql()
}

func (h *Handler) vcInsert(id string, s *VCInvestorSignup) (string, []interface{}, error) {
	return h.investorInsert(id, &s.investorBase, map[string]interface{}{
		"firm":            s.Firm,
		"fund_size":       intake.ToNumber(s.FundSize),
		"avg_ticket_size": intake.ToNumber(s.AvgTicketSize),
		"fund_stage":      nullStr(s.FundStage),
	})
}

func (h *Handler) angelInsert(id string, s *AngelInvestorSignup) (string, []interface{}, error) {
	return h.investorInsert(id, &s.investorBase, map[string]interface{}{
		"cheque_size": intake.ToNumber(s.ChequeSize),
	})
}

func (h *Handler) investorInsert(id string, b *investorBase, extra map[string]interface{}) (string, []interface{}, error) {
	row := map[string]interface{}{
		"id":                      id,
		"investor_name":           b.Name,
		"investor_email":          b.Email,
		"investor_type":           string(b.Type),
		"title":                   nullStr(b.Title),
		"website":                 nullStr(b.Website),
		"hq_country":              nullStr(b.HQCountry),
		"investment_stages":       pq.Array(b.InvestmentStages),
		"countries_of_investment": pq.Array(b.CountriesOfInvestment),
		"industries_of_interest":  pq.Array(b.IndustriesOfInterest),
		"lead_preference":         nullStr(b.LeadPreference),
		"board_seat":              nullStr(b.BoardSeat),
		"decision_speed":          nullStr(b.DecisionSpeed),
		"created_at":              h.now().UTC().Format(time.RFC3339),
	}
	for k, v := range extra {
		row[k] = v
	}
	return sq.Insert("investors").
		PlaceholderFormat(sq.Dollar).
		SetMap(row).
		ToSql()
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
