package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type bogusAction struct{}

func (bogusAction) isAction() {}

func product(id, name string) Product {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return Product{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
}

func TestReduceProductLifecycle(t *testing.T) {
	state := State{}
	state = Reduce(state, AddProduct{Product: product("1", "first")})
	state = Reduce(state, AddProduct{Product: product("2", "second")})
	state = Reduce(state, AddProduct{Product: product("3", "third")})

	// Update keeps position.
	state = Reduce(state, UpdateProduct{Product: product("2", "renamed")})
	require.Len(t, state.Products, 3)
	require.Equal(t, "renamed", state.Products[1].Name)
	require.Equal(t, []string{"1", "2", "3"}, ids(state.Products))

	state = Reduce(state, DeleteProduct{ID: "1"})
	require.Equal(t, []string{"2", "3"}, ids(state.Products))

	// Deleting an unknown id is a no-op on membership.
	state = Reduce(state, DeleteProduct{ID: "nope"})
	require.Equal(t, []string{"2", "3"}, ids(state.Products))
}

func TestReduceUpsertCategory(t *testing.T) {
	state := State{}
	state = Reduce(state, UpsertCategory{Category: Category{ID: "1", Name: "Electronics"}})
	state = Reduce(state, UpsertCategory{Category: Category{ID: "2", Name: "Books"}})
	require.Len(t, state.Categories, 2)

	// Same id replaces in place.
	state = Reduce(state, UpsertCategory{Category: Category{ID: "1", Name: "Gadgets"}})
	require.Len(t, state.Categories, 2)
	require.Equal(t, "Gadgets", state.Categories[0].Name)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	original := State{Products: []Product{product("1", "first")}}
	next := Reduce(original, UpdateProduct{Product: product("1", "changed")})

	require.Equal(t, "first", original.Products[0].Name)
	require.Equal(t, "changed", next.Products[0].Name)
}

func TestReduceUnknownActionReturnsSameState(t *testing.T) {
	state := State{Products: []Product{product("1", "first")}}
	next := Reduce(state, bogusAction{})
	require.Equal(t, state, next)

	next = Reduce(state, nil)
	require.Equal(t, state, next)
}

func TestReduceMovementLogIsAppendOnly(t *testing.T) {
	state := State{}
	state = Reduce(state, AddStockMovement{Movement: StockMovement{ID: "m1", Type: MovementIn, Quantity: 5}})
	state = Reduce(state, AddStockMovement{Movement: StockMovement{ID: "m2", Type: MovementOut, Quantity: 2}})
	require.Len(t, state.StockMovements, 2)
	require.Equal(t, "m1", state.StockMovements[0].ID)
	require.Equal(t, "m2", state.StockMovements[1].ID)
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
