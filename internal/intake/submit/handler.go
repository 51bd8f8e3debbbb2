package submit

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

// Storage uploads pitch decks to object storage.
type Storage interface {
	Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

// Cache drops the submitted marker and invalidates cached pages.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Notifier tells the ops team about a new application.
type Notifier interface {
	ApplicationReceived(ctx context.Context, applicationID string, p *intake.ApplicationPayload)
}

// Handler persists one application per Execute call. Instances are safe for
// concurrent use; no deduplication is attempted, a retried request inserts a
// second row.
type Handler struct {
	db       *sql.DB
	storage  Storage
	cache    Cache
	notifier Notifier
	logger   logger.Logger
	cfg      Config
	now      func() time.Time
}

// NewHandler builds a submit handler. cache and notifier may be nil; their
// steps are skipped and both are non-critical anyway.
func NewHandler(db *sql.DB, storage Storage, cache Cache, notifier Notifier, log logger.Logger, cfg Config) *Handler {
	return &Handler{
		db:       db,
		storage:  storage,
		cache:    cache,
		notifier: notifier,
		logger:   log,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Execute runs the submission pipeline: deck upload, row insert, marker and
// cache bookkeeping, ops notification. Failures are reported through the
// Result, never as a panic or transport error; storage and database messages
// pass through verbatim.
func (h *Handler) Execute(ctx context.Context, in *Input) *Result {
	started := h.now()

	if in == nil || in.Payload == nil {
		return h.reject("missing_payload", "Missing payload")
	}
	p := in.Payload

	if len(p.PartnersSelected) == 0 {
		h.logStandard(apperrors.NewPartnerRequiredError(), nil)
		return h.reject("partner_required", "Select at least one VC partner")
	}

	// Empty files are skipped, not stored as zero-byte objects.
	if in.Deck != nil && len(in.Deck.Data) > 0 {
		path := intake.DeckObjectPath(p.Founder.Email, p.Company.Name, in.Deck.Name, h.now())
		if err := h.storage.Upload(ctx, h.cfg.DeckBucket, path, in.Deck.Data, in.Deck.ContentType); err != nil {
			h.logStandard(apperrors.NewStorageUploadFailedError(path, err), map[string]interface{}{
				"bucket": h.cfg.DeckBucket,
			})
			metrics.SubmissionsRejected.WithLabelValues(h.cfg.Funnel, "upload_failed").Inc()
			return &Result{OK: false, Error: err.Error()}
		}
		p.Company.DeckPdfPath = path
		metrics.DeckUploadBytes.Observe(float64(len(in.Deck.Data)))
	}

	id := uuid.New().String()
	query, args, err := h.buildInsert(id, p)
	if err != nil {
		h.logStandard(apperrors.NewDatabaseInsertFailedError(err), nil)
		metrics.SubmissionsRejected.WithLabelValues(h.cfg.Funnel, "insert_failed").Inc()
		return &Result{OK: false, Error: err.Error()}
	}
	if _, err := h.db.ExecContext(ctx, query, args...); err != nil {
		h.logStandard(apperrors.NewDatabaseInsertFailedError(err), map[string]interface{}{
			"application_id": id,
		})
		metrics.SubmissionsRejected.WithLabelValues(h.cfg.Funnel, "insert_failed").Inc()
		return &Result{OK: false, Error: err.Error()}
	}

	h.afterInsert(ctx, id, p)

	h.logger.Info("application submitted", map[string]interface{}{
		"application_id": id,
		"company":        p.Company.Name,
		"partners":       len(p.PartnersSelected),
		"has_deck":       p.Company.DeckPdfPath != "",
	})
	metrics.SubmissionsAccepted.WithLabelValues(h.cfg.Funnel).Inc()
	metrics.SubmissionDuration.WithLabelValues(h.cfg.Funnel).Observe(h.now().Sub(started).Seconds())

	return &Result{
		OK:            true,
		Message:       "Application submitted successfully.",
		ApplicationID: id,
		DeckPath:      p.Company.DeckPdfPath,
	}
}

// afterInsert handles the marker, page cache and ops notification. None of
// these can fail the submission; the row is already committed.
func (h *Handler) afterInsert(ctx context.Context, id string, p *intake.ApplicationPayload) {
	if h.cache != nil {
		if err := h.cache.Set(ctx, h.cfg.SubmittedMarkerKey, "1", h.cfg.SubmittedMarkerTTL); err != nil {
			h.logger.Warn("submitted marker not set", map[string]interface{}{"error": err.Error()})
		}
		if err := h.cache.Del(ctx, h.cfg.ApplyCacheKey); err != nil {
			h.logger.Warn("apply page cache not invalidated", map[string]interface{}{"error": err.Error()})
		}
	}
	if h.notifier != nil {
		h.notifier.ApplicationReceived(ctx, id, p)
	}
}

func (h *Handler) reject(code, message string) *Result {
	metrics.SubmissionsRejected.WithLabelValues(h.cfg.Funnel, code).Inc()
	return &Result{OK: false, Error: message}
}

// logStandard emits a coded failure with its taxonomy category plus any
// call-site fields.
func (h *Handler) logStandard(stdErr *apperrors.StandardError, extra map[string]interface{}) {
	fields := map[string]interface{}{
		"code":     string(stdErr.Code),
		"category": apperrors.GetErrorCategory(stdErr.Code),
		"details":  stdErr.Details,
	}
	for k, v := range extra {
		fields[k] = v
	}
	h.logger.Error(stdErr.Message, fields)
}

func (h *Handler) buildInsert(id string, p *intake.ApplicationPayload) (string, []interface{}, error) {
	hasCoFounder := p.Founder.HasCoFounder == "yes"

	builder := sq.Insert("applications").
		PlaceholderFormat(sq.Dollar).
		Columns(
			"id",
			"founder_first_name", "founder_last_name", "founder_email", "founder_phone",
			"has_cofounder", "cofounder_first_name", "cofounder_last_name", "cofounder_email",
			"company_name", "company_website", "company_industries", "company_region", "company_state",
			"elevator_pitch", "business_model", "deck_link", "deck_pdf_path",
			"partners_selected", "competitions_selected", "programs_selected",
			"is_vc_backed", "b2b_saas_with_3mo_runway", "sells_physical_product",
			"has_founder_over_50", "has_black_founder", "has_female_founder",
			"is_foreign_born_founder_in_us", "wants_other_competitions",
			"fundraising_stage", "raise_amount", "valuation", "mrr", "burn_rate",
			"previously_raised", "runway_months",
			"ecom_customer_count", "ecom_plans_merchants", "ecom_platforms",
			"b2b_incorporated_us", "b2b_trailing_12mo_revenue",
			"outlander_has_technical_10pct",
			"submitted_at",
		).
		Values(
			id,
			nullStr(p.Founder.FirstName), nullStr(p.Founder.LastName), nullStr(p.Founder.Email), nullStr(p.Founder.Phone),
			hasCoFounder, cofounderField(hasCoFounder, p.Founder.CofounderFirstName),
			cofounderField(hasCoFounder, p.Founder.CofounderLastName),
			cofounderField(hasCoFounder, p.Founder.CofounderEmail),
			nullStr(p.Company.Name), nullStr(p.Company.Website), pq.Array(p.Company.Industries),
			nullStr(p.Company.Region), nullStr(p.Company.State),
			nullStr(p.Company.ElevatorPitch), nullStr(p.Company.BusinessModel),
			nullStr(p.Company.DeckLink), nullStr(p.Company.DeckPdfPath),
			pq.Array(p.PartnersSelected), pq.Array(p.CompetitionsSelected), pq.Array(p.ProgramsSelected),
			p.Eligibility.IsVCBacked, p.Eligibility.B2BSaaSWith3MoRunway, p.Eligibility.SellsPhysicalProduct,
			p.Eligibility.HasFounderOver50, p.Eligibility.HasBlackFounder, p.Eligibility.HasFemaleFounder,
			p.Eligibility.IsForeignBornFounderInUS, p.Eligibility.WantsOtherCompetitions,
			nullStr(p.Financials.FundraisingStage),
			intake.ToNumber(p.Financials.RaiseAmount), intake.ToNumber(p.Financials.Valuation),
			intake.ToNumber(p.Financials.MRR), intake.ToNumber(p.Financials.BurnRate),
			intake.ToNumber(p.Financials.PreviouslyRaised), intake.ToNumber(p.Financials.RunwayMonths),
			ecomCustomerCount(p), ecomPlansMerchants(p), ecomPlatforms(p),
			b2bIncorporatedUS(p), b2bTrailingRevenue(p),
			outlanderTechnical(p),
			p.SubmittedAt,
		)

	return builder.ToSql()
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func cofounderField(hasCoFounder bool, s string) sql.NullString {
	if !hasCoFounder {
		return sql.NullString{}
	}
	return nullStr(s)
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func ecomCustomerCount(p *intake.ApplicationPayload) sql.NullFloat64 {
	if e := p.FundSpecific.EcomEcosystemBuilders; e != nil {
		return intake.ToNumber(e.CustomerCount)
	}
	return sql.NullFloat64{}
}

func ecomPlansMerchants(p *intake.ApplicationPayload) sql.NullBool {
	if e := p.FundSpecific.EcomEcosystemBuilders; e != nil {
		return nullBool(e.PlansMerchants)
	}
	return sql.NullBool{}
}

func ecomPlatforms(p *intake.ApplicationPayload) interface{} {
	if e := p.FundSpecific.EcomEcosystemBuilders; e != nil && e.Platforms != nil {
		return pq.Array(e.Platforms)
	}
	return nil
}

func b2bIncorporatedUS(p *intake.ApplicationPayload) sql.NullBool {
	if b := p.FundSpecific.B2BSaaSAccel; b != nil {
		return nullBool(b.IncorporatedUS)
	}
	return sql.NullBool{}
}

func b2bTrailingRevenue(p *intake.ApplicationPayload) sql.NullFloat64 {
	if b := p.FundSpecific.B2BSaaSAccel; b != nil {
		return intake.ToNumber(b.Trailing12MoRevenue)
	}
	return sql.NullFloat64{}
}

func outlanderTechnical(p *intake.ApplicationPayload) sql.NullBool {
	if o := p.FundSpecific.Outlander; o != nil {
		return nullBool(o.HasTechnicalLead10pct)
	}
	return sql.NullBool{}
}
