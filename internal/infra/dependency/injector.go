// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/equivet/backend/config"
	"github.com/equivet/backend/internal/application/usecase/auth"
	"github.com/equivet/backend/internal/application/usecase/billing"
	"github.com/equivet/backend/internal/application/usecase/chargecode"
	"github.com/equivet/backend/internal/application/usecase/companyprofile"
	"github.com/equivet/backend/internal/application/usecase/horse"
	"github.com/equivet/backend/internal/application/usecase/location"
	"github.com/equivet/backend/internal/application/usecase/owner"
	"github.com/equivet/backend/internal/application/usecase/user"
	"github.com/equivet/backend/internal/application/usecase/veterinarian"
	"github.com/equivet/backend/internal/infra/server/router"
	"github.com/equivet/backend/internal/integration/adapters"
	"github.com/equivet/backend/internal/integration/entrypoint/controller"
	"github.com/equivet/backend/internal/integration/entrypoint/middleware"
	"github.com/equivet/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	horseRepo := persistence.NewHorseRepository(db)
	ownerRepo := persistence.NewOwnerRepository(db)
	locationRepo := persistence.NewLocationRepository(db)
	chargeCodeRepo := persistence.NewChargeCodeRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	vetRepo := persistence.NewVeterinarianRepository(db)
	profileRepo := persistence.NewCompanyProfileRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Create user use cases
	createUserUseCase := user.NewCreateUserUseCase(userRepo, passwordService)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)

	// Create horse use cases
	createHorseUseCase := horse.NewCreateHorseUseCase(horseRepo, ownerRepo)
	searchHorsesUseCase := horse.NewSearchHorsesUseCase(horseRepo)
	getHorseUseCase := horse.NewGetHorseUseCase(horseRepo)
	updateHorseUseCase := horse.NewUpdateHorseUseCase(horseRepo)
	deleteHorseUseCase := horse.NewDeleteHorseUseCase(horseRepo)
	setOwnersUseCase := horse.NewSetOwnersUseCase(horseRepo, ownerRepo)
	assignLocationUseCase := horse.NewAssignLocationUseCase(horseRepo, locationRepo)

	// Create owner use cases
	createOwnerUseCase := owner.NewCreateOwnerUseCase(ownerRepo)
	listOwnersUseCase := owner.NewListOwnersUseCase(ownerRepo)
	getOwnerUseCase := owner.NewGetOwnerUseCase(ownerRepo)
	updateOwnerUseCase := owner.NewUpdateOwnerUseCase(ownerRepo)

	// Create location use cases
	createLocationUseCase := location.NewCreateLocationUseCase(locationRepo)
	listLocationsUseCase := location.NewListLocationsUseCase(locationRepo)
	updateLocationUseCase := location.NewUpdateLocationUseCase(locationRepo)
	deleteLocationUseCase := location.NewDeleteLocationUseCase(locationRepo)

	// Create charge code use cases
	createChargeCodeUseCase := chargecode.NewCreateChargeCodeUseCase(chargeCodeRepo)
	listChargeCodesUseCase := chargecode.NewListChargeCodesUseCase(chargeCodeRepo)
	updateChargeCodeUseCase := chargecode.NewUpdateChargeCodeUseCase(chargeCodeRepo)

	// Create veterinarian use cases
	createVetUseCase := veterinarian.NewCreateVeterinarianUseCase(vetRepo)
	listVetsUseCase := veterinarian.NewListVeterinariansUseCase(vetRepo)
	getVetUseCase := veterinarian.NewGetVeterinarianUseCase(vetRepo)
	updateVetUseCase := veterinarian.NewUpdateVeterinarianUseCase(vetRepo)

	// Create company profile use cases
	getProfileUseCase := companyprofile.NewGetCompanyProfileUseCase(profileRepo)
	updateProfileUseCase := companyprofile.NewUpdateCompanyProfileUseCase(profileRepo)

	// Create billing use cases
	addChargeBatchUseCase := billing.NewAddChargeBatchUseCase(transactionRepo, horseRepo, ownerRepo, chargeCodeRepo)
	listPendingUseCase := billing.NewListPendingTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := billing.NewUpdateTransactionUseCase(transactionRepo, chargeCodeRepo)
	deleteTransactionUseCase := billing.NewDeleteTransactionUseCase(transactionRepo)
	generateInvoicesUseCase := billing.NewGenerateInvoicesUseCase(transactionRepo, invoiceRepo, horseRepo)
	listInvoicesUseCase := billing.NewListInvoicesUseCase(invoiceRepo)
	getInvoiceUseCase := billing.NewGetInvoiceUseCase(invoiceRepo)
	recordPaymentUseCase := billing.NewRecordPaymentUseCase(invoiceRepo, ownerRepo)
	voidInvoiceUseCase := billing.NewVoidInvoiceUseCase(invoiceRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		changePasswordUseCase,
	)

	userController := controller.NewUserController(
		createUserUseCase,
		listUsersUseCase,
		updateUserUseCase,
		deleteUserUseCase,
	)

	horseController := controller.NewHorseController(
		createHorseUseCase,
		searchHorsesUseCase,
		getHorseUseCase,
		updateHorseUseCase,
		deleteHorseUseCase,
		setOwnersUseCase,
		assignLocationUseCase,
	)

	ownerController := controller.NewOwnerController(
		createOwnerUseCase,
		listOwnersUseCase,
		getOwnerUseCase,
		updateOwnerUseCase,
	)

	locationController := controller.NewLocationController(
		createLocationUseCase,
		listLocationsUseCase,
		updateLocationUseCase,
		deleteLocationUseCase,
	)

	chargeCodeController := controller.NewChargeCodeController(
		createChargeCodeUseCase,
		listChargeCodesUseCase,
		updateChargeCodeUseCase,
	)

	chargeController := controller.NewChargeController(
		addChargeBatchUseCase,
		listPendingUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		generateInvoicesUseCase,
		listInvoicesUseCase,
		getInvoiceUseCase,
		recordPaymentUseCase,
		voidInvoiceUseCase,
	)

	vetController := controller.NewVeterinarianController(
		createVetUseCase,
		listVetsUseCase,
		getVetUseCase,
		updateVetUseCase,
	)

	profileController := controller.NewCompanyProfileController(
		getProfileUseCase,
		updateProfileUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		horseController,
		ownerController,
		locationController,
		chargeCodeController,
		chargeController,
		invoiceController,
		vetController,
		profileController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
