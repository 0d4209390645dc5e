package inventory_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/application/inventory"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/infrastructure/kvstore"
)

func setupInventoryUC(t *testing.T) *inventory.UseCase {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return inventory.NewUseCase(kvstore.NewInventoryRepository(store))
}

// Una salida mayor que el stock deja el stock en 0, nunca negativo.
func TestMove_SalidaConPisoEnCero(t *testing.T) {
	uc := setupInventoryUC(t)

	item, err := uc.AddItem(dto.CreateInventoryItemRequest{
		ItemName: "Hilo poliéster", CurrentStock: 10, MinStockLevel: 5, Unit: "conos",
	})
	require.NoError(t, err)

	moved, err := uc.Move(item.ID, dto.StockMovementRequest{Type: dto.MovementStockOut, Quantity: 25})
	require.NoError(t, err)
	assert.Equal(t, 0, moved.CurrentStock)
	assert.True(t, moved.LowStock())
}

// Entradas y salidas normales ajustan el stock y el estado de stock bajo.
func TestMove_EntradaSacaDeStockBajo(t *testing.T) {
	uc := setupInventoryUC(t)

	item, err := uc.AddItem(dto.CreateInventoryItemRequest{
		ItemName: "Tela de algodón", CurrentStock: 10, MinStockLevel: 20, Unit: "m",
	})
	require.NoError(t, err)
	assert.True(t, item.LowStock(), "10 ≤ 20 es stock bajo")

	moved, err := uc.Move(item.ID, dto.StockMovementRequest{Type: dto.MovementStockIn, Quantity: 15})
	require.NoError(t, err)
	assert.Equal(t, 25, moved.CurrentStock)
	assert.False(t, moved.LowStock(), "25 > 20 ya no es stock bajo")

	low, err := uc.LowStock()
	require.NoError(t, err)
	assert.Empty(t, low)
}

// El límite es inclusivo: stock igual al mínimo cuenta como stock bajo.
func TestLowStock_LimiteInclusivo(t *testing.T) {
	uc := setupInventoryUC(t)

	_, err := uc.AddItem(dto.CreateInventoryItemRequest{
		ItemName: "Botones", CurrentStock: 20, MinStockLevel: 20, Unit: "uds",
	})
	require.NoError(t, err)

	low, err := uc.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Botones", low[0].ItemName)
}

// Un tipo de movimiento desconocido se rechaza sin tocar el ítem.
func TestMove_TipoInvalido(t *testing.T) {
	uc := setupInventoryUC(t)

	item, err := uc.AddItem(dto.CreateInventoryItemRequest{
		ItemName: "Cierres", CurrentStock: 50, MinStockLevel: 10, Unit: "uds",
	})
	require.NoError(t, err)

	_, err = uc.Move(item.ID, dto.StockMovementRequest{Type: "transfer", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	items, err := uc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 50, items[0].CurrentStock)
}

func TestMove_ItemInexistente(t *testing.T) {
	uc := setupInventoryUC(t)

	_, err := uc.Move("fantasma", dto.StockMovementRequest{Type: dto.MovementStockIn, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// UpdateItem edita nombre, mínimo y unidad pero nunca el stock.
func TestUpdateItem_NoTocaElStock(t *testing.T) {
	uc := setupInventoryUC(t)

	item, err := uc.AddItem(dto.CreateInventoryItemRequest{
		ItemName: "Tela", CurrentStock: 80, MinStockLevel: 10, Unit: "m",
	})
	require.NoError(t, err)
	before := item.LastUpdated

	updated, err := uc.UpdateItem(item.ID, dto.UpdateInventoryItemRequest{
		ItemName: "Tela premium", MinStockLevel: 30, Unit: "rollos",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tela premium", updated.ItemName)
	assert.Equal(t, 30, updated.MinStockLevel)
	assert.Equal(t, "rollos", updated.Unit)
	assert.Equal(t, 80, updated.CurrentStock, "el stock solo se muta vía movimientos")
	assert.False(t, updated.LastUpdated.Before(before), "toda edición refresca LastUpdated")
}

func TestDeleteItem(t *testing.T) {
	uc := setupInventoryUC(t)

	item, err := uc.AddItem(dto.CreateInventoryItemRequest{
		ItemName: "Etiquetas", CurrentStock: 500, MinStockLevel: 100, Unit: "uds",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteItem(item.ID))
	assert.ErrorIs(t, uc.DeleteItem(item.ID), domain.ErrNotFound)
}
