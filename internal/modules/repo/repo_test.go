package repo

import (
	"testing"

	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Contact{},
		&model.Project{},
		&model.BudgetItem{},
		&model.Expense{},
		&model.Invoice{},
		&model.PurchaseOrder{},
		&model.Material{},
		&model.ProjectMaterial{},
		&model.MaterialRequest{},
		&model.Task{},
		&model.Setting{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	u := model.User{Email: t.Name() + "@proxis.hn", Name: "Tester", Role: model.RoleManager}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedProject(t *testing.T, db *gorm.DB, budget int64) *model.Project {
	t.Helper()
	p := model.Project{
		Name:            "Residencial Los Pinos",
		Status:          model.ProjectActive,
		EstimatedBudget: decimal.NewFromInt(budget),
		Currency:        "HNL",
		ExchangeRate:    decimal.NewFromInt(1),
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}
