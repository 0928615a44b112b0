package seed_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dinesmart/internal/adapters/in/seed"
	"dinesmart/internal/core/application/usecases/commands"
	"dinesmart/internal/core/domain/model/menu"
	"dinesmart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sample = `
items:
  - name: Burger
    description: Beef, cheddar, pickles
    price: 8.50
    available: true
    category: {kind: food, id: 1, name: Mains, vegan_friendly: false}
  - name: House Red
    price: 6.50
    available: true
    category: {kind: beverage, id: 1, name: Drinks, alcohol: true}
tables:
  - {id: 1, capacity: 2}
  - {id: 2, capacity: 4}
`

type MockAdder struct {
	mock.Mock
}

func (m *MockAdder) Handle(ctx context.Context, cmd commands.AddMenuItemCommand) (menu.MenuItem, error) {
	args := m.Called(ctx, cmd.Draft().Name())
	return args.Get(0).(menu.MenuItem), args.Error(1)
}

func TestParse(t *testing.T) {
	cmds, err := seed.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, cmds, 2)

	burger := cmds[0].Draft()
	assert.Equal(t, "Burger", burger.Name())
	assert.InDelta(t, 8.50, burger.Price(), 1e-9)
	assert.True(t, burger.BelongsTo(menu.Food, 1))

	wine, ok := cmds[1].Draft().Category().(menu.BeverageCategory)
	require.True(t, ok)
	assert.True(t, wine.HasAlcohol())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		document string
		contains string
	}{
		{
			name:     "unknown key",
			document: "items:\n  - name: Burger\n    colour: red\n",
			contains: "colour",
		},
		{
			name: "unknown category kind",
			document: "items:\n  - name: Burger\n    price: 1\n" +
				"    category: {kind: dessert, id: 1, name: Sweets}\n",
			contains: "item 0",
		},
		{
			name: "zero price",
			document: "items:\n  - name: Burger\n    price: 0\n" +
				"    category: {kind: food, id: 1, name: Mains}\n",
			contains: "menu item price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse(strings.NewReader(tt.document))
			require.ErrorContains(t, err, tt.contains)
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	cmds, err := seed.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	ctx := t.Context()
	adder := new(MockAdder)
	adder.On("Handle", ctx, "Burger").
		Return(menu.MenuItem{}, errs.NewObjectAlreadyExistsError("menu item name", "Burger")).Once()
	adder.On("Handle", ctx, "House Red").Return(menu.MenuItem{}, nil).Once()

	added, err := seed.NewLoader(adder, slog.New(slog.DiscardHandler)).LoadFile(ctx, path)

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	adder.AssertExpectations(t)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := seed.NewLoader(new(MockAdder), slog.New(slog.DiscardHandler)).
		LoadFile(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"))

	require.ErrorContains(t, err, "failed to open seed")
}

func TestParseFloorPlan(t *testing.T) {
	tables, err := seed.ParseFloorPlan(strings.NewReader(sample))

	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, int64(1), tables[0].ID())
	assert.Equal(t, 2, tables[0].Capacity())
	assert.Equal(t, 4, tables[1].Capacity())
	assert.False(t, tables[1].IsOccupied())
}

func TestParseFloorPlan_Errors(t *testing.T) {
	_, err := seed.ParseFloorPlan(strings.NewReader("tables:\n  - {id: 1, capacity: 0}\n  - {id: -2, capacity: 4}\n"))

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "table 0")
	assert.Contains(t, err.Error(), "table 1")

	_, err = seed.ParseFloorPlan(strings.NewReader("tables:\n  - {id: 1, seats: 2}\n"))
	require.ErrorContains(t, err, "seats")
}

func TestReadFloorPlanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0o600))

	tables, err := seed.ReadFloorPlanFile(path)
	require.NoError(t, err)
	assert.Empty(t, tables)

	_, err = seed.ReadFloorPlanFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "failed to open seed")
}
