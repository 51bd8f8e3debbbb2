package submit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venture-intake/internal/common/logger"
	"venture-intake/internal/intake"
)

type fakeStorage struct {
	bucket      string
	key         string
	contentType string
	size        int
	err         error
}

func (f *fakeStorage) Upload(_ context.Context, bucket, key string, body []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.bucket, f.key, f.contentType, f.size = bucket, key, contentType, len(body)
	return nil
}

type fakeCache struct {
	setKey  string
	setTTL  time.Duration
	delKeys []string
	setErr  error
}

func (f *fakeCache) Set(_ context.Context, key string, _ interface{}, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setKey, f.setTTL = key, ttl
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	f.delKeys = append(f.delKeys, keys...)
	return nil
}

type fakeNotifier struct {
	id string
}

func (f *fakeNotifier) ApplicationReceived(_ context.Context, id string, _ *intake.ApplicationPayload) {
	f.id = id
}

func testPayload() *intake.ApplicationPayload {
	return &intake.ApplicationPayload{
		PartnersSelected:     []string{"lvlup"},
		CompetitionsSelected: []string{"global-pitch"},
		Founder: intake.Founder{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        "ada@example.com",
			Phone:        "+1 555 0100",
			HasCoFounder: "no",
		},
		Company: intake.Company{
			Name:          "Analytical Engines",
			Website:       "https://analytical.example.com",
			Industries:    []string{"AI"},
			Region:        "United States",
			State:         "California",
			ElevatorPitch: "Programmable compute for everyone.",
		},
		Eligibility: intake.Eligibility{HasFemaleFounder: true},
		Financials: intake.Financials{
			FundraisingStage: "Seed",
			RaiseAmount:      "1,000,000",
			Valuation:        "8,000,000",
			MRR:              "12,500",
			BurnRate:         "40,000",
			PreviouslyRaised: "250,000",
		},
		SubmittedAt: "2026-03-14T10:30:00Z",
	}
}

func newTestHandler(t *testing.T, storage Storage, cache Cache, notifier Notifier) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewHandler(db, storage, cache, notifier, logger.NewNoOpLogger(), NewConfig("pitch-decks"))
	h.now = func() time.Time { return time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC) }
	return h, mock
}

func TestExecuteInsertsWithoutDeck(t *testing.T) {
	cache := &fakeCache{}
	notifier := &fakeNotifier{}
	h, mock := newTestHandler(t, &fakeStorage{}, cache, notifier)

	mock.ExpectExec("INSERT INTO applications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := h.Execute(context.Background(), &Input{Payload: testPayload()})

	require.True(t, res.OK, res.Error)
	assert.Equal(t, "Application submitted successfully.", res.Message)
	assert.NotEmpty(t, res.ApplicationID)
	assert.Empty(t, res.DeckPath)

	assert.Equal(t, "form:submitted", cache.setKey)
	assert.Equal(t, 60*time.Second, cache.setTTL)
	assert.Equal(t, []string{"page:apply"}, cache.delKeys)
	assert.Equal(t, res.ApplicationID, notifier.id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteUploadsDeckBeforeInsert(t *testing.T) {
	storage := &fakeStorage{}
	h, mock := newTestHandler(t, storage, &fakeCache{}, nil)

	mock.ExpectExec("INSERT INTO applications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := h.Execute(context.Background(), &Input{
		Payload: testPayload(),
		Deck:    &DeckFile{Name: "Deck Final.PDF", ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
	})

	require.True(t, res.OK, res.Error)
	assert.Equal(t, "pitch-decks", storage.bucket)
	assert.Equal(t, "ada@example.com/analytical_engines_pitch_deck_2026-03-14.pdf", storage.key)
	assert.Equal(t, storage.key, res.DeckPath)
	assert.Equal(t, "application/pdf", storage.contentType)
	assert.Equal(t, 8, storage.size)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteSkipsEmptyDeck(t *testing.T) {
	storage := &fakeStorage{}
	h, mock := newTestHandler(t, storage, &fakeCache{}, nil)

	mock.ExpectExec("INSERT INTO applications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := h.Execute(context.Background(), &Input{
		Payload: testPayload(),
		Deck:    &DeckFile{Name: "deck.pdf", ContentType: "application/pdf", Data: nil},
	})

	require.True(t, res.OK, res.Error)
	assert.Empty(t, storage.key, "zero-byte file must not be uploaded")
	assert.Empty(t, res.DeckPath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteUploadFailureSkipsInsert(t *testing.T) {
	storage := &fakeStorage{err: errors.New("bucket unreachable")}
	h, mock := newTestHandler(t, storage, &fakeCache{}, nil)

	res := h.Execute(context.Background(), &Input{
		Payload: testPayload(),
		Deck:    &DeckFile{Name: "deck.pdf", Data: []byte("%PDF-1.4")},
	})

	require.False(t, res.OK)
	assert.Equal(t, "bucket unreachable", res.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteInsertErrorIsVerbatim(t *testing.T) {
	h, mock := newTestHandler(t, &fakeStorage{}, &fakeCache{}, nil)

	mock.ExpectExec("INSERT INTO applications").
		WillReturnError(errors.New(`null value in column "founder_email"`))

	res := h.Execute(context.Background(), &Input{Payload: testPayload()})

	require.False(t, res.OK)
	assert.Equal(t, `null value in column "founder_email"`, res.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteRequiresPartner(t *testing.T) {
	h, mock := newTestHandler(t, &fakeStorage{}, &fakeCache{}, nil)

	p := testPayload()
	p.PartnersSelected = nil
	res := h.Execute(context.Background(), &Input{Payload: p})

	require.False(t, res.OK)
	assert.Equal(t, "Select at least one VC partner", res.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteMissingPayload(t *testing.T) {
	h, mock := newTestHandler(t, &fakeStorage{}, &fakeCache{}, nil)

	res := h.Execute(context.Background(), &Input{})

	require.False(t, res.OK)
	assert.Equal(t, "Missing payload", res.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteCacheFailureDoesNotFailSubmission(t *testing.T) {
	cache := &fakeCache{setErr: errors.New("redis down")}
	h, mock := newTestHandler(t, &fakeStorage{}, cache, nil)

	mock.ExpectExec("INSERT INTO applications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := h.Execute(context.Background(), &Input{Payload: testPayload()})

	assert.True(t, res.OK, res.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidatePayloadJSON(t *testing.T) {
	assert.NoError(t, ValidatePayloadJSON([]byte(`{
		"partnersSelected": ["lvlup"],
		"founder": {"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com"},
		"company": {"name": "Analytical Engines"},
		"eligibility": {},
		"financials": {}
	}`)))

	err := ValidatePayloadJSON([]byte(`{"founder": {}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payload")

	err = ValidatePayloadJSON([]byte(`{
		"partnersSelected": ["lvlup"],
		"competitionsSelected": ["a", "b", "c", "d", "e", "f"],
		"founder": {"firstName": "A", "lastName": "B", "email": "a@b.co"},
		"company": {"name": "X"},
		"eligibility": {},
		"financials": {}
	}`))
	assert.Error(t, err)
}
