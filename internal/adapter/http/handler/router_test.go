package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "wallet-settlement/internal/adapter/storage/redis"
	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"
	"wallet-settlement/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	wallet     *mocks.MockWalletService
	deposit    *mocks.MockDepositService
	settlement *mocks.MockSettlementService
	token      *mocks.MockTokenService
	audit      *mocks.MockAuditService
}

func newTestRouter(t *testing.T) (*gin.Engine, *routerMocks) {
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		wallet:     mocks.NewMockWalletService(ctrl),
		deposit:    mocks.NewMockDepositService(ctrl),
		settlement: mocks.NewMockSettlementService(ctrl),
		token:      mocks.NewMockTokenService(ctrl),
		audit:      mocks.NewMockAuditService(ctrl),
	}

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	r := SetupRouter(RouterDeps{
		WalletSvc:      m.wallet,
		DepositSvc:     m.deposit,
		SettlementSvc:  m.settlement,
		TokenSvc:       m.token,
		RateLimitStore: redisStore.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStore.NewHealthCheck(rdb)},
		AuditSvc:       m.audit,
		Mode:           gin.TestMode,
		Logger:         zerolog.Nop(),
	})
	return r, m
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_WalletRoutesRequireBearer(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wallets/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AuthenticatedWalletRead(t *testing.T) {
	r, m := newTestRouter(t)
	userID := uuid.New()

	m.token.EXPECT().Validate("tok").Return(&ports.TokenClaims{UserID: userID}, nil)
	m.wallet.EXPECT().GetWallet(gomock.Any(), userID).Return(&domain.Wallet{
		ID:          uuid.New(),
		UserID:      userID,
		BalanceFiat: decimal.NewFromInt(100000),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "60", w.Header().Get("X-RateLimit-Limit"))
}

func TestRouter_CallbackIsPublicAndAudited(t *testing.T) {
	r, m := newTestRouter(t)

	tx := completedTx(domain.TransactionKindPayment, domain.CurrencyFiat, "30000")
	m.settlement.EXPECT().VerifyDirectFiat(gomock.Any(), "OK", "A7").
		Return(&ports.SettlementResult{Transaction: tx, RefID: "9"}, nil)

	audited := make(chan *domain.AuditLog, 1)
	m.audit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *domain.AuditLog) {
		audited <- entry
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart/pay/fiat/callback?Status=OK&Authority=A7", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case entry := <-audited:
		assert.Equal(t, domain.AuditActionGatewayCallback, entry.Action)
		assert.Equal(t, tx.ID.String(), entry.ResourceID)
	case <-time.After(time.Second):
		t.Fatal("callback not audited")
	}
}
