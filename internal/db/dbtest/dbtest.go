// Package dbtest opens throwaway in-memory databases with the production
// schema for package tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// One connection keeps the in-memory database alive and serializes writers.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}

// SeedSalon inserts an active salon owned by ownerID (0 for none).
func SeedSalon(t testing.TB, gdb *gorm.DB, nome string, ownerID uint) *models.Salon {
	t.Helper()

	s := &models.Salon{Nome: nome, Estado: models.SalonActive, Cidade: "Lisboa", Regiao: "Lisboa"}
	if ownerID != 0 {
		s.OwnerID = &ownerID
	}
	if err := gdb.Create(s).Error; err != nil {
		t.Fatalf("seed salon: %v", err)
	}
	return s
}

func SeedService(t testing.TB, gdb *gorm.DB, name string) *models.Service {
	t.Helper()

	svc := &models.Service{Name: name, Category: "hair"}
	if err := gdb.Create(svc).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return svc
}

func SeedUser(t testing.TB, gdb *gorm.DB, email string) *models.User {
	t.Helper()

	u := &models.User{Email: email, Name: "Owner", PasswordHash: "x"}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedInterval(t testing.TB, gdb *gorm.DB, salonID uint, weekday int, start, end string) {
	t.Helper()

	iv := &models.OpeningInterval{SalonID: salonID, Weekday: weekday, StartTime: start, EndTime: end, IsAvailable: true}
	if err := gdb.Create(iv).Error; err != nil {
		t.Fatalf("seed interval: %v", err)
	}
}
