package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/database"
	applogger "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/logger"
	apptime "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/game-booking/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

type fakeDatabase struct {
	pingErr error
}

func (f fakeDatabase) Ping(context.Context) error { return f.pingErr }

func (f fakeDatabase) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{OpenConnections: 1, Healthy: f.pingErr == nil}
}

type testAPI struct {
	router        *gin.Engine
	games         *mockusecase.MockGameUseCase
	occupancy     *mockusecase.MockOccupancyUseCase
	reservations  *mockusecase.MockReservationUseCase
	registrations *mockusecase.MockRegistrationUseCase
	credits       *mockusecase.MockCreditsUseCase
	payments      *mockusecase.MockPaymentUseCase
	opts          Options
}

func newTestAPI(t *testing.T, db fakeDatabase) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := applogger.NewNoopLogger()
	clock := apptime.NewManualTimeProvider(testNow)

	api := &testAPI{
		games:         mockusecase.NewMockGameUseCase(t),
		occupancy:     mockusecase.NewMockOccupancyUseCase(t),
		reservations:  mockusecase.NewMockReservationUseCase(t),
		registrations: mockusecase.NewMockRegistrationUseCase(t),
		credits:       mockusecase.NewMockCreditsUseCase(t),
		payments:      mockusecase.NewMockPaymentUseCase(t),
		opts: Options{
			Auth:         middleware.AuthConfig{Secret: "routes-secret", Issuer: "game-booking"},
			AdminRole:    "admin",
			GatewayRole:  "gateway",
			AllowOrigins: []string{"*"},
		},
	}

	ids := mockcore.NewMockIDGenerator(t)
	ids.On("NewID").Return("req-id").Maybe()

	api.router = gin.New()
	SetupMiddlewares(api.router, api.opts, ids, logger)
	SetupRoutes(api.router, Handlers{
		Game:         handler.NewGameHandler(api.games, api.occupancy, logger),
		Reservation:  handler.NewReservationHandler(api.reservations, logger),
		Registration: handler.NewRegistrationHandler(api.registrations, logger),
		Credits:      handler.NewCreditsHandler(api.credits, logger),
		Payment:      handler.NewPaymentHandler(api.payments, logger),
		Health:       handler.NewHealthHandler(db, clock, logger),
	}, api.opts, logger)
	return api
}

func (a *testAPI) token(t *testing.T, playerID uint64, role string) string {
	t.Helper()
	token, err := middleware.IssueToken(a.opts.Auth, playerID, role, time.Now(), time.Hour)
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func pendingRegistration(id string, gameID, playerID uint64) *entity.Registration {
	return entity.NewPendingRegistration(id, gameID, playerID, testNow, 5*time.Minute)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	w := api.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)
	assert.Equal(t, "req-id", w.Header().Get(middleware.RequestIDHeader))

	api = newTestAPI(t, fakeDatabase{pingErr: errors.New("connection refused")})
	w = api.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"down"`)
}

func TestAPIRequiresToken(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	w := api.do(t, http.MethodPost, "/api/v1/games/1/reservations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, w).ErrorCode)
}

func TestReserve(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	token := api.token(t, 7, "player")
	reg := pendingRegistration("hold-1", 3, 7)

	api.reservations.On("ReserveSeat", mock.Anything, uint64(3), uint64(7)).
		Return(&usecase.ReservationResult{ReservationID: "hold-1", ExpiresAt: reg.ExpiresAt, Registration: reg}, nil).Once()

	w := api.do(t, http.MethodPost, "/api/v1/games/3/reservations", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hold-1", body.ReservationID)
	require.NotNil(t, body.ExpiresAt)
	assert.True(t, body.ExpiresAt.Equal(testNow.Add(5*time.Minute)))
	assert.Equal(t, "pending", body.Registration.Status)
}

func TestReserve_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"Game full", domainerr.NewCapacityError(3, 1, 0, 1), http.StatusConflict, "GAME_FULL"},
		{"Already registered", domainerr.ErrAlreadyRegistered, http.StatusConflict, "ALREADY_REGISTERED"},
		{"Game not found", domainerr.ErrGameNotFound, http.StatusNotFound, "GAME_NOT_FOUND"},
		{"Game started", domainerr.ErrGameStarted, http.StatusConflict, "GAME_STARTED"},
		{"Retries exhausted", domainerr.ErrConcurrentUpdate, http.StatusConflict, "CONCURRENT_UPDATE"},
		{"Unexpected failure", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, fakeDatabase{})
			api.reservations.On("ReserveSeat", mock.Anything, uint64(3), uint64(7)).Return(nil, tt.err).Once()

			w := api.do(t, http.MethodPost, "/api/v1/games/3/reservations", api.token(t, 7, "player"), nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.ErrorCode)
			if tt.wantCode == "INTERNAL" {
				assert.Equal(t, "Internal server error", body.Message)
			}
		})
	}
}

func TestReserve_InvalidGameID(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	w := api.do(t, http.MethodPost, "/api/v1/games/abc/reservations", api.token(t, 7, "player"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).ErrorCode)
}

func TestRelease(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	api.reservations.On("ReleaseReservation", mock.Anything, uint64(3), uint64(7), "hold-1").
		Return(&usecase.ReleaseResult{Released: true}, nil).Once()

	w := api.do(t, http.MethodDelete, "/api/v1/games/3/reservations?reservationId=hold-1", api.token(t, 7, "player"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"released":true}`, w.Body.String())
}

func TestConfirm(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	token := api.token(t, 7, "player")

	reservationID := "hold-1"
	transactionID := "kaspi-99"
	confirmed := pendingRegistration(reservationID, 3, 7)
	require.NoError(t, confirmed.Confirm(testNow, true))

	api.registrations.On("ConfirmRegistration", mock.Anything, mock.MatchedBy(func(req usecase.ConfirmRequest) bool {
		return req.GameID == 3 && req.PlayerID == 7 &&
			req.Evidence.ReservationID != nil && *req.Evidence.ReservationID == reservationID &&
			req.Evidence.TransactionID != nil && *req.Evidence.TransactionID == transactionID
	})).Return(&usecase.ConfirmResult{
		Registration: confirmed,
		Transaction: &entity.PaymentTransaction{
			ID:                    "ptx-1",
			Provider:              "kaspi",
			ExternalTransactionID: transactionID,
			Amount:                1000,
			Currency:              "KZT",
			Status:                entity.PaymentTransactionSucceeded,
			RegistrationID:        reservationID,
		},
	}, nil).Once()

	w := api.do(t, http.MethodPost, "/api/v1/games/3/registrations/confirm", token, dto.ConfirmRequest{
		ReservationID: &reservationID,
		TransactionID: &transactionID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.ConfirmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body.Registration.Status)
	assert.Equal(t, "paid", body.Registration.PaymentStatus)
	require.NotNil(t, body.Transaction)
	assert.Equal(t, "10.00", body.Transaction.Amount)
}

func TestConfirm_FreeGameWithoutBody(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	reg := entity.NewConfirmedRegistration("reg-1", 4, 7, testNow)

	api.registrations.On("ConfirmRegistration", mock.Anything, usecase.ConfirmRequest{GameID: 4, PlayerID: 7}).
		Return(&usecase.ConfirmResult{Registration: reg}, nil).Once()

	w := api.do(t, http.MethodPost, "/api/v1/games/4/registrations/confirm", api.token(t, 7, "player"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfirm_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"Missing payment", domainerr.ErrMissingPayment, http.StatusUnprocessableEntity, "MISSING_PAYMENT"},
		{"Reservation expired", domainerr.ErrReservationExpired, http.StatusConflict, "RESERVATION_EXPIRED"},
		{"Reservation mismatch", domainerr.ErrReservationMismatch, http.StatusConflict, "RESERVATION_MISMATCH"},
		{"Transaction replay", domainerr.NewTransactionConflictError("kaspi", "tx", "b", "a"), http.StatusConflict, "TRANSACTION_CONFLICT"},
		{"Insufficient credits", domainerr.NewInsufficientCreditsError(7, 800, 500, "KZT"), http.StatusPaymentRequired, "INSUFFICIENT_CREDITS"},
		{"Not registered", domainerr.ErrNotRegistered, http.StatusNotFound, "NOT_REGISTERED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, fakeDatabase{})
			api.registrations.On("ConfirmRegistration", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := api.do(t, http.MethodPost, "/api/v1/games/3/registrations/confirm", api.token(t, 7, "player"),
				dto.ConfirmRequest{UseCredits: true})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).ErrorCode)
		})
	}
}

func TestCancel(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	reg := entity.NewConfirmedRegistration("reg-1", 3, 7, testNow)
	require.NoError(t, reg.Cancel(testNow, true))
	ref := "ctx-1"

	api.registrations.On("CancelRegistration", mock.Anything, uint64(3), uint64(7)).
		Return(&usecase.CancelResult{Registration: reg, RefundAmount: 1000, RefundReference: &ref}, nil).Once()

	w := api.do(t, http.MethodPost, "/api/v1/games/3/registrations/cancel", api.token(t, 7, "player"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "cancelled", body.Registration.Status)
	assert.Equal(t, "10.00", body.RefundAmount)
	require.NotNil(t, body.RefundReference)
	assert.Equal(t, "ctx-1", *body.RefundReference)
}

func TestGetMyRegistration_NotRegistered(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	api.registrations.On("GetRegistration", mock.Anything, uint64(3), uint64(7)).
		Return(nil, domainerr.ErrRegistrationNotFound).Once()

	w := api.do(t, http.MethodGet, "/api/v1/games/3/registrations/me", api.token(t, 7, "player"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_REGISTERED", decodeError(t, w).ErrorCode)
}

func TestGames(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	game := &entity.Game{ID: 9, HostID: 1, Title: "Friday football", MaxPlayers: 10, Price: 150050, Currency: "KZT", Datetime: testNow.Add(48 * time.Hour)}

	api.games.On("CreateGame", mock.Anything, usecase.CreateGameRequest{
		HostID:     1,
		Title:      "Friday football",
		MaxPlayers: 10,
		Price:      150050,
		Currency:   "KZT",
		Datetime:   game.Datetime,
	}).Return(game, nil).Once()

	// players cannot create games
	w := api.do(t, http.MethodPost, "/api/v1/games", api.token(t, 7, "player"), dto.CreateGameRequest{})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/games", api.token(t, 1, "admin"), dto.CreateGameRequest{
		Title:      "Friday football",
		MaxPlayers: 10,
		Price:      "1500.50",
		Currency:   "KZT",
		Datetime:   game.Datetime,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint64(9), created.ID)
	assert.Equal(t, "1500.50", created.Price)

	w = api.do(t, http.MethodPost, "/api/v1/games", api.token(t, 1, "admin"), dto.CreateGameRequest{
		Title:      "Bad price",
		MaxPlayers: 10,
		Price:      "12.345",
		Datetime:   game.Datetime,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_AMOUNT", decodeError(t, w).ErrorCode)
}

func TestOccupancy(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	occupancy := entity.NewOccupancy(3, 10, 4, 2)
	api.occupancy.On("GetOccupancy", mock.Anything, uint64(3)).Return(&occupancy, nil).Once()

	w := api.do(t, http.MethodGet, "/api/v1/games/3/occupancy", api.token(t, 7, "player"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"gameId":3,"maxPlayers":10,"confirmedCount":4,"pendingCount":2,"spotsLeft":4}`, w.Body.String())
}

func TestCredits(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	playerToken := api.token(t, 7, "player")

	api.credits.On("GetBalance", mock.Anything, uint64(7)).
		Return(&entity.UserCredits{UserID: 7, Balance: 50000, Currency: "KZT"}, nil).Once()
	w := api.do(t, http.MethodGet, "/api/v1/credits/me", playerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":7,"balance":"500.00","currency":"KZT"}`, w.Body.String())

	api.credits.On("GetHistory", mock.Anything, uint64(7), 10, 20).
		Return([]*entity.CreditTransaction{{ID: "c1", UserID: 7, Amount: -80000, Type: entity.CreditUse, BalanceBefore: 130000, BalanceAfter: 50000, Currency: "KZT"}}, nil).Once()
	w = api.do(t, http.MethodGet, "/api/v1/credits/me/history?limit=10&offset=20", playerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history dto.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Entries, 1)
	assert.Equal(t, "-800.00", history.Entries[0].Amount)

	w = api.do(t, http.MethodGet, "/api/v1/credits/me/history?limit=-1", playerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// top-up needs the admin role
	w = api.do(t, http.MethodPost, "/api/v1/credits/7/top-up", playerToken, dto.TopUpRequest{Amount: "100"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := api.token(t, 1, "admin")
	api.credits.On("TopUp", mock.Anything, usecase.TopUpRequest{UserID: 7, Amount: 10000, Currency: "KZT"}).
		Return(&entity.UserCredits{UserID: 7, Balance: 60000, Currency: "KZT"}, nil).Once()
	w = api.do(t, http.MethodPost, "/api/v1/credits/7/top-up", adminToken, dto.TopUpRequest{Amount: "100", Currency: "KZT"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/credits/7/top-up", adminToken, dto.TopUpRequest{Amount: "0"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_AMOUNT", decodeError(t, w).ErrorCode)
}

func TestPaymentEvents(t *testing.T) {
	api := newTestAPI(t, fakeDatabase{})
	gatewayToken := api.token(t, 1000, "gateway")

	signal := entity.PaymentSignal{Kind: entity.PaymentSignalComplete, GameID: 3, PlayerID: 7, ReservationID: "hold-1"}
	api.payments.On("HandleSignal", mock.Anything, signal).
		Return(&usecase.PaymentSignalResult{Kind: signal.Kind, Released: true}, nil).Once()

	w := api.do(t, http.MethodPost, "/api/v1/payments/events", gatewayToken, dto.PaymentEventRequest{
		Kind: "complete", GameID: 3, PlayerID: 7, ReservationID: "hold-1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"released":true`)

	w = api.do(t, http.MethodPost, "/api/v1/payments/events", gatewayToken, dto.PaymentEventRequest{
		Kind: "refund", GameID: 3, PlayerID: 7,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/payments/events", api.token(t, 7, "player"), dto.PaymentEventRequest{
		Kind: "success", GameID: 3, PlayerID: 7,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
