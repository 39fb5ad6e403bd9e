package persistence

import (
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/equivet/backend/internal/domain/entity"
	"github.com/equivet/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory SQLite database and migrates the billing
// schema. A single connection keeps the in-memory database alive for the
// whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm connection: %v", err)
	}

	if err := db.AutoMigrate(
		&model.OwnerModel{},
		&model.HorseModel{},
		&model.HorseOwnerModel{},
		&model.LocationModel{},
		&model.HorseLocationModel{},
		&model.ChargeCodeModel{},
		&model.TransactionModel{},
		&model.InvoiceModel{},
		&model.PaymentModel{},
		&model.VeterinarianModel{},
		&model.CompanyProfileModel{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("invalid date %q: %v", s, err)
	}
	return d
}

func seedOwner(t *testing.T, db *gorm.DB, farmName string) *entity.Owner {
	t.Helper()
	owner := entity.NewOwner("", farmName, "Test", "Owner")
	if err := db.Create(model.OwnerFromEntity(owner)).Error; err != nil {
		t.Fatalf("failed to seed owner: %v", err)
	}
	return owner
}

func seedHorse(t *testing.T, db *gorm.DB, name string) *entity.Horse {
	t.Helper()
	horse := entity.NewHorse(name, "")
	if err := db.Create(model.HorseFromEntity(horse)).Error; err != nil {
		t.Fatalf("failed to seed horse: %v", err)
	}
	return horse
}

func seedTransaction(t *testing.T, db *gorm.DB, horseID, ownerID uuid.UUID, serviceDate time.Time, total string) *entity.Transaction {
	t.Helper()
	amount := dec(t, total)
	transaction := entity.NewTransaction(
		horseID, ownerID, nil,
		serviceDate, serviceDate,
		"Farm call",
		decimal.NewFromInt(1), amount, amount,
		false, "",
		uuid.New(),
	)
	if err := db.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return transaction
}

func ownerBalance(t *testing.T, db *gorm.DB, ownerID uuid.UUID) decimal.Decimal {
	t.Helper()
	var ownerModel model.OwnerModel
	if err := db.Where("id = ?", ownerID).First(&ownerModel).Error; err != nil {
		t.Fatalf("failed to load owner: %v", err)
	}
	return ownerModel.Balance
}
