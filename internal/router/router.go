package router

import (
	"time"

	_ "menuadmin/docs"
	"menuadmin/internal/cache"
	"menuadmin/internal/config"
	"menuadmin/internal/handler"
	"menuadmin/internal/middleware"
	"menuadmin/internal/repository"
	"menuadmin/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const dishCachePrefix = "menu"

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// A nil rdb runs without the dish cache.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	var dishCache cache.DishCache = cache.Noop{}
	if rdb != nil {
		dishCache = cache.NewRedisDishCache(rdb, dishCachePrefix, cfg.DishCacheTTL)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	dishRepo := repository.NewDishRepository(db)
	dishFlavorRepo := repository.NewDishFlavorRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	setmealDishRepo := repository.NewSetmealDishRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(employeeRepo, cfg)
	dishSvc := service.NewDishService(dishRepo, dishFlavorRepo, dishCache)
	setmealSvc := service.NewSetmealService(setmealRepo, setmealDishRepo)
	categorySvc := service.NewCategoryService(categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	dishesH := handler.NewDishesHandler(dishSvc)
	setmealsH := handler.NewSetmealsHandler(setmealSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/admin/employee/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	admin := r.Group("/admin", middleware.JWTAuth(cfg.JWTSecret))
	{
		admin.GET("/category/list", categoriesH.List)

		dish := admin.Group("/dish")
		{
			dish.POST("", dishesH.Save)
			dish.GET("/page", dishesH.Page)
			dish.DELETE("", dishesH.Delete)
			dish.GET("/list", dishesH.List)
			dish.GET("/:id", dishesH.GetByID)
			dish.PUT("", dishesH.Update)
		}

		setmeal := admin.Group("/setmeal")
		{
			setmeal.POST("", setmealsH.Save)
			setmeal.GET("/page", setmealsH.Page)
			setmeal.DELETE("", setmealsH.Delete)
			setmeal.GET("/:id", setmealsH.GetByID)
			setmeal.PUT("", setmealsH.Update)
			setmeal.POST("/status/:status", setmealsH.StartOrStop)
		}
	}

	// Swagger UI, outside production only
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
