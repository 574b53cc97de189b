package main

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nazmulhossain17/niyenin-api/internal/config"
	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	"github.com/nazmulhossain17/niyenin-api/internal/handler"
	"github.com/nazmulhossain17/niyenin-api/internal/infra/db"
	infraRepo "github.com/nazmulhossain17/niyenin-api/internal/infra/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/logger"
	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/server"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID string, email string, role authz.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  string(role),
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// seedRolesは3つの固定ロールを無ければ作る。
func seedRoles(gormDB *gorm.DB, idGen *uuidGenerator) error {
	roles := []struct {
		name  string
		level int
	}{
		{string(authz.RoleAdmin), authz.LevelAdmin},
		{string(authz.RoleVendor), authz.LevelVendor},
		{string(authz.RoleCustomer), authz.LevelCustomer},
	}

	for _, r := range roles {
		var existing model.Role
		err := gormDB.Where("level = ?", r.level).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := gormDB.Create(&model.Role{
			RoleID: idGen.NewID(),
			Name:   r.name,
			Level:  r.level,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	log := logger.Get()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	metrics.Init(cfg.MetricsPrefix)

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Vendor{},
		&model.Brand{},
		&model.Category{},
		&model.Product{},
		&model.ProductSpecification{},
		&model.ProductWarranty{},
		&model.ProductQuestion{},
		&model.ProductAnswer{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Review{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	idGen := &uuidGenerator{}

	if err := seedRoles(gormDB, idGen); err != nil {
		log.Fatal("role seed failed", zap.Error(err))
	}

	// Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	vendorRepo := infraRepo.NewVendorGormRepository(gormDB)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	specRepo := infraRepo.NewSpecificationGormRepository(gormDB)
	warrantyRepo := infraRepo.NewWarrantyGormRepository(gormDB)
	questionRepo := infraRepo.NewQuestionGormRepository(gormDB)
	answerRepo := infraRepo.NewAnswerGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// usecaseに渡す部品
	clock := &realClock{}
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 24 * time.Hour,
	}

	resolver := authz.NewResolver(userRepo, vendorRepo, productRepo, specRepo, warrantyRepo, answerRepo)

	// Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, roleRepo, hasher, verifier, issuer, idGen, clock)
	userUC := usecase.NewUserUsecase(userRepo, hasher, verifier)
	vendorUC := usecase.NewVendorUsecase(vendorRepo, resolver, idGen)
	brandUC := usecase.NewBrandUsecase(brandRepo, idGen)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, idGen)
	productUC := usecase.NewProductUsecase(txManager, productRepo, specRepo, warrantyRepo, categoryRepo, brandRepo, resolver, idGen)
	specUC := usecase.NewSpecificationUsecase(specRepo, productRepo, resolver, idGen)
	warrantyUC := usecase.NewWarrantyUsecase(warrantyRepo, productRepo, resolver, idGen)
	qaUC := usecase.NewQAUsecase(questionRepo, answerRepo, productRepo, resolver, txManager, idGen)

	// Handler生成
	handlers := server.Handlers{
		Health:        handler.NewHealthHandler(gormDB),
		Auth:          handler.NewAuthHandler(authUC, resolver, cfg),
		User:          handler.NewUserHandler(userUC),
		Vendor:        handler.NewVendorHandler(vendorUC),
		Brand:         handler.NewBrandHandler(brandUC),
		Category:      handler.NewCategoryHandler(categoryUC),
		Product:       handler.NewProductHandler(productUC),
		Specification: handler.NewSpecificationHandler(specUC),
		Warranty:      handler.NewWarrantyHandler(warrantyUC),
		QA:            handler.NewQAHandler(qaUC),
	}

	e := server.New(cfg, handlers)

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
