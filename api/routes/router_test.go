package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/oscarfuentes/gasinv-backend/internal/auth"
	catalogsvc "github.com/oscarfuentes/gasinv-backend/internal/catalog"
	dashboardsvc "github.com/oscarfuentes/gasinv-backend/internal/dashboard"
	inventorysvc "github.com/oscarfuentes/gasinv-backend/internal/inventory"
	tanksvc "github.com/oscarfuentes/gasinv-backend/internal/tanks"
	usersvc "github.com/oscarfuentes/gasinv-backend/internal/users"
	pkgAuth "github.com/oscarfuentes/gasinv-backend/pkg/auth"
	"github.com/oscarfuentes/gasinv-backend/pkg/auth/session"
	"github.com/oscarfuentes/gasinv-backend/pkg/config"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
	"github.com/oscarfuentes/gasinv-backend/pkg/logger"
	"github.com/oscarfuentes/gasinv-backend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

type stubSessionManager struct{}

func (stubSessionManager) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

func (stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	return "", "", nil
}

func (stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	return nil
}

type stubUsersService struct{}

func (stubUsersService) List(ctx context.Context, page pagination.Params) ([]usersvc.UserDTO, error) {
	return []usersvc.UserDTO{}, nil
}

func (stubUsersService) Create(ctx context.Context, req usersvc.CreateUserRequest) (*usersvc.UserDTO, error) {
	return &usersvc.UserDTO{}, nil
}

func (stubUsersService) Get(ctx context.Context, id uuid.UUID) (*usersvc.UserDTO, error) {
	return &usersvc.UserDTO{ID: id}, nil
}

func (stubUsersService) Update(ctx context.Context, id uuid.UUID, req usersvc.UpdateUserRequest) (*usersvc.UserDTO, error) {
	return &usersvc.UserDTO{ID: id}, nil
}

func (stubUsersService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) List(ctx context.Context, page pagination.Params) ([]catalogsvc.TankTypeDTO, error) {
	return []catalogsvc.TankTypeDTO{}, nil
}

func (stubCatalogService) Create(ctx context.Context, req catalogsvc.CreateTankTypeRequest) (*catalogsvc.TankTypeDTO, error) {
	return &catalogsvc.TankTypeDTO{}, nil
}

type stubTanksService struct{}

func (stubTanksService) List(ctx context.Context, filter tanksvc.ListFilter, page pagination.Params) ([]tanksvc.TankDTO, error) {
	return []tanksvc.TankDTO{}, nil
}

func (stubTanksService) Create(ctx context.Context, req tanksvc.CreateTankRequest, actorID uuid.UUID) (*tanksvc.TankDTO, error) {
	return &tanksvc.TankDTO{}, nil
}

func (stubTanksService) Get(ctx context.Context, id uuid.UUID) (*tanksvc.TankDTO, error) {
	return &tanksvc.TankDTO{ID: id}, nil
}

func (stubTanksService) Update(ctx context.Context, id uuid.UUID, req tanksvc.UpdateTankRequest) (*tanksvc.TankDTO, error) {
	return &tanksvc.TankDTO{ID: id}, nil
}

type stubInventoryService struct{}

func (stubInventoryService) List(ctx context.Context, filter inventorysvc.ListFilter, page pagination.Params) ([]inventorysvc.InventoryDTO, error) {
	return []inventorysvc.InventoryDTO{}, nil
}

func (stubInventoryService) Update(ctx context.Context, id uuid.UUID, req inventorysvc.UpdateInventoryRequest, actorID uuid.UUID) (*inventorysvc.InventoryDTO, error) {
	return &inventorysvc.InventoryDTO{ID: id}, nil
}

func (stubInventoryService) CreateTransaction(ctx context.Context, req inventorysvc.CreateTransactionRequest, actorID uuid.UUID) (*inventorysvc.TransactionDTO, error) {
	return &inventorysvc.TransactionDTO{}, nil
}

func (stubInventoryService) ListTransactions(ctx context.Context, filter inventorysvc.TransactionFilter, page pagination.Params) ([]inventorysvc.TransactionDTO, error) {
	return []inventorysvc.TransactionDTO{}, nil
}

type stubDashboardService struct{}

func (stubDashboardService) Stats(ctx context.Context) (*dashboardsvc.StatsDTO, error) {
	return &dashboardsvc.StatsDTO{}, nil
}

func (stubDashboardService) LowStock(ctx context.Context) ([]inventorysvc.InventoryDTO, error) {
	return []inventorysvc.InventoryDTO{}, nil
}

func (stubDashboardService) TankStatusSummary(ctx context.Context) ([]dashboardsvc.StatusSummaryEntry, error) {
	return []dashboardsvc.StatusSummaryEntry{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{ServiceName: "gasinv-test", Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:           cfg,
		Logger:           logg,
		DB:               stubPinger{},
		SessionManager:   stubSessionManager{},
		AuthService:      stubAuthService{},
		UsersService:     stubUsersService{},
		CatalogService:   stubCatalogService{},
		TanksService:     stubTanksService{},
		InventoryService: stubInventoryService{},
		DashboardService: stubDashboardService{},
	})
}

func buildToken(t *testing.T, cfg *config.Config, role enums.UserRole) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthEndpointsArePublic(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{"/", "/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestProtectedRoutesRejectMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{
		"/auth/me",
		"/inventory/tanks/",
		"/inventory/inventory/",
		"/inventory/transactions/",
		"/dashboard/stats",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token got %d", path, resp.Code)
		}
	}
}

func TestProtectedRoutesAcceptValidJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for dashboard stats got %d", resp.Code)
	}
}

func TestUserManagementRequiresSuperadmin(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	admin := httptest.NewRequest(http.MethodGet, "/auth/users/", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin listing users got %d", resp.Code)
	}

	superadmin := httptest.NewRequest(http.MethodGet, "/auth/users/", nil)
	superadmin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleSuperadmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, superadmin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for superadmin listing users got %d", resp.Code)
	}
}

func TestTankWritesRequireManagerRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	viewer := httptest.NewRequest(http.MethodPost, "/inventory/tanks/", nil)
	viewer.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, viewer)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for regular user tank create got %d", resp.Code)
	}

	reader := httptest.NewRequest(http.MethodGet, "/inventory/tanks/", nil)
	reader.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, reader)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for regular user tank list got %d", resp.Code)
	}
}

func TestInventoryUpdateRequiresManagerRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	target := "/inventory/inventory/" + uuid.NewString()

	viewer := httptest.NewRequest(http.MethodPut, target, nil)
	viewer.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, viewer)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for regular user inventory update got %d", resp.Code)
	}
}
