package repo

import (
	"context"
	"testing"

	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectMaterialRepo_CreateWithBudgetIncrement(t *testing.T) {
	db := openTestDB(t)
	p := seedProject(t, db, 1000)
	m := model.Material{Name: "Cemento", Unit: "bolsa", BasePrice: decimal.NewFromInt(10), Currency: "HNL"}
	require.NoError(t, db.Create(&m).Error)

	r := NewProjectMaterialRepo(db)
	pm := &model.ProjectMaterial{
		ProjectID:  p.ID,
		MaterialID: m.ID,
		Quantity:   decimal.NewFromInt(5),
		UnitPrice:  decimal.NewFromInt(10),
		Currency:   "HNL",
	}
	require.NoError(t, r.CreateWithBudgetIncrement(context.Background(), pm))

	var got model.Project
	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	assert.True(t, got.EstimatedBudget.Equal(decimal.NewFromInt(1050)),
		"want 1050, got %s", got.EstimatedBudget)
}

func TestProjectMaterialRepo_DuplicatePairLeavesBudgetUntouched(t *testing.T) {
	db := openTestDB(t)
	p := seedProject(t, db, 1000)
	m := model.Material{Name: "Arena", Unit: "m3", BasePrice: decimal.NewFromInt(20), Currency: "HNL"}
	require.NoError(t, db.Create(&m).Error)

	r := NewProjectMaterialRepo(db)
	pm := &model.ProjectMaterial{
		ProjectID:  p.ID,
		MaterialID: m.ID,
		Quantity:   decimal.NewFromInt(2),
		UnitPrice:  decimal.NewFromInt(20),
		Currency:   "HNL",
	}
	require.NoError(t, r.CreateWithBudgetIncrement(context.Background(), pm))

	dup := &model.ProjectMaterial{
		ProjectID:  p.ID,
		MaterialID: m.ID,
		Quantity:   decimal.NewFromInt(3),
		UnitPrice:  decimal.NewFromInt(20),
		Currency:   "HNL",
	}
	err := r.CreateWithBudgetIncrement(context.Background(), dup)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	var got model.Project
	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	assert.True(t, got.EstimatedBudget.Equal(decimal.NewFromInt(1040)),
		"want 1040, got %s", got.EstimatedBudget)

	var count int64
	require.NoError(t, db.Model(&model.ProjectMaterial{}).
		Where("project_id = ?", p.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProjectMaterialRepo_List(t *testing.T) {
	db := openTestDB(t)
	p := seedProject(t, db, 0)
	other := seedProject(t, db, 0)
	m := model.Material{Name: "Bloque", Unit: "unidad", BasePrice: decimal.NewFromInt(8), Currency: "HNL"}
	require.NoError(t, db.Create(&m).Error)

	r := NewProjectMaterialRepo(db)
	require.NoError(t, r.CreateWithBudgetIncrement(context.Background(), &model.ProjectMaterial{
		ProjectID: p.ID, MaterialID: m.ID,
		Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(8), Currency: "HNL",
	}))
	require.NoError(t, r.CreateWithBudgetIncrement(context.Background(), &model.ProjectMaterial{
		ProjectID: other.ID, MaterialID: m.ID,
		Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(8), Currency: "HNL",
	}))

	got, err := r.List(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p.ID, got[0].ProjectID)
	require.NotNil(t, got[0].Material)
	assert.Equal(t, "Bloque", got[0].Material.Name)
}
