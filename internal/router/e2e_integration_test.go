//go:build integration

package router_test

// End-to-end run against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"menuadmin/internal/dto"
	"menuadmin/internal/infra"
	"menuadmin/internal/model"
	"menuadmin/internal/router"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func setupContainersEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:15-alpine",
		tcPostgres.WithDatabase("menu_test"),
		tcPostgres.WithUsername("menu"),
		tcPostgres.WithPassword("menu"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.DBDriver = infra.DriverPostgres
	cfg.DatabaseURL = pgURL
	cfg.RedisURL = rdURL

	db, err := infra.NewDatabase(cfg.DBDriver, cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(ctx, cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Employee{Name: "Administrator", Username: "admin", Password: string(hash), Status: model.StatusEnable}).Error)
	require.NoError(t, db.Create(&[]model.Category{
		{Type: model.CategoryTypeDish, Name: "Hot Dishes", Sort: 1, Status: 1},
		{Type: model.CategoryTypeSetmeal, Name: "Lunch Combos", Sort: 2, Status: 1},
	}).Error)

	env := &testEnv{engine: router.New(cfg, db, rdb), db: db}
	var login dto.LoginResponse
	res := env.call(t, http.MethodPost, "/admin/employee/login", dto.LoginRequest{Username: "admin", Password: "123456"}, http.StatusOK)
	require.NoError(t, json.Unmarshal(res.Data, &login))
	env.token = login.Token
	return env
}

func TestE2E_MenuAdministration(t *testing.T) {
	env := setupContainersEnv(t)

	var cats []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(env.call(t, http.MethodGet, "/admin/category/list?type=1", nil, http.StatusOK).Data, &cats))
	require.Len(t, cats, 1)
	dishCat := cats[0].ID

	var dishID int64
	res := env.call(t, http.MethodPost, "/admin/dish", dto.DishRequest{
		Name: "Kung Pao Chicken", CategoryID: dishCat, Price: decimal.RequireFromString("38.00"),
		Flavors: []dto.DishFlavorDTO{{Name: "spiciness", Value: `["mild","hot"]`}},
	}, http.StatusOK)
	require.NoError(t, json.Unmarshal(res.Data, &dishID))

	// first read fills the cache, second is served from it
	listPath := fmt.Sprintf("/admin/dish/list?categoryId=%d", dishCat)
	var list []dto.DishVO
	require.NoError(t, json.Unmarshal(env.call(t, http.MethodGet, listPath, nil, http.StatusOK).Data, &list))
	require.Len(t, list, 1)
	require.NoError(t, json.Unmarshal(env.call(t, http.MethodGet, listPath, nil, http.StatusOK).Data, &list))
	require.Len(t, list, 1)

	// a duplicate name surfaces as a conflict, not a 500
	env.call(t, http.MethodPost, "/admin/dish", dto.DishRequest{
		Name: "Kung Pao Chicken", CategoryID: dishCat, Price: decimal.NewFromInt(1),
	}, http.StatusConflict)

	var setmealID int64
	res = env.call(t, http.MethodPost, "/admin/setmeal", dto.SetmealRequest{
		CategoryID: cats[0].ID, Name: "Combo1", Price: decimal.NewFromInt(45), Status: model.StatusEnable,
		SetmealDishes: []dto.SetmealDishDTO{{DishID: dishID, Name: "Kung Pao Chicken", Price: decimal.RequireFromString("38.00"), Copies: 1}},
	}, http.StatusOK)
	require.NoError(t, json.Unmarshal(res.Data, &setmealID))

	env.call(t, http.MethodDelete, fmt.Sprintf("/admin/setmeal?ids=%d", setmealID), nil, http.StatusConflict)
	env.call(t, http.MethodPost, fmt.Sprintf("/admin/setmeal/status/0?id=%d", setmealID), nil, http.StatusOK)
	env.call(t, http.MethodDelete, fmt.Sprintf("/admin/setmeal?ids=%d", setmealID), nil, http.StatusOK)

	env.call(t, http.MethodDelete, fmt.Sprintf("/admin/dish?ids=%d", dishID), nil, http.StatusOK)
	require.NoError(t, json.Unmarshal(env.call(t, http.MethodGet, listPath, nil, http.StatusOK).Data, &list))
	assert.Empty(t, list, "delete evicts the cached list")

	w := env.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
