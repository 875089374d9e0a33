package fulfillment_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	cerr "github.com/muhammadheryan/digital-store/utils/errors"
)

// memStore is an in-memory stand-in for the database with the locking behavior the
// pipeline depends on: SKIP LOCKED key reservation, unique order per payment intent,
// unique item per order position and per key, and open-slot alert dedup. Writes made
// inside a transaction become visible on commit.
type memStore struct {
	mu sync.Mutex

	products map[string]*model.Product
	keys     []*model.DigitalKey
	orders   map[string]*model.Order
	intents  map[string]string
	items    []model.OrderItem
	alerts   []*model.InventoryAlert

	locks   map[string]*sqlx.Tx
	pending map[*sqlx.Tx]*txState

	// failItemInsert makes the n-th InsertItemTx call (1-based) fail once.
	failItemInsert int
	itemInserts    int
}

type txState struct {
	items      []model.OrderItem
	usedKeys   map[string]string
	decrements []string
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*model.Product{},
		orders:   map[string]*model.Order{},
		intents:  map[string]string{},
		locks:    map[string]*sqlx.Tx{},
		pending:  map[*sqlx.Tx]*txState{},
	}
}

func (s *memStore) addProduct(id string, stock int64, keys int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[id] = &model.Product{ID: id, Name: "Product " + id, Stock: stock, IsActive: true}
	for i := 0; i < keys; i++ {
		s.keys = append(s.keys, &model.DigitalKey{
			ID:        uuid.NewString(),
			ProductID: id,
			KeyValue:  id + "-KEY-" + uuid.NewString()[:8],
			CreatedAt: time.Now(),
		})
	}
}

// tx

func (s *memStore) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &sqlx.Tx{}
	s.pending[tx] = &txState{usedKeys: map[string]string{}}
	return tx, nil
}

func (s *memStore) CommitTx(tx *sqlx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.pending[tx]
	if !ok {
		return errors.New("tx done")
	}
	for keyID, orderID := range st.usedKeys {
		k := s.key(keyID)
		k.IsUsed = true
		oid := orderID
		k.OrderID = &oid
		now := time.Now()
		k.UsedAt = &now
	}
	s.items = append(s.items, st.items...)
	for _, pid := range st.decrements {
		if p := s.products[pid]; p != nil && p.Stock > 0 {
			p.Stock--
		}
	}
	s.release(tx)
	return nil
}

func (s *memStore) RollbackTx(tx *sqlx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.release(tx)
	return nil
}

func (s *memStore) release(tx *sqlx.Tx) {
	for keyID, holder := range s.locks {
		if holder == tx {
			delete(s.locks, keyID)
		}
	}
	delete(s.pending, tx)
}

func (s *memStore) key(id string) *model.DigitalKey {
	for _, k := range s.keys {
		if k.ID == id {
			return k
		}
	}
	return nil
}

// keys

func (s *memStore) ReserveTx(ctx context.Context, tx *sqlx.Tx, productID string) (*model.DigitalKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.keys {
		if k.ProductID != productID || k.IsUsed {
			continue
		}
		if holder, locked := s.locks[k.ID]; locked && holder != tx {
			continue
		}
		s.locks[k.ID] = tx
		cp := *k
		return &cp, nil
	}
	return nil, nil
}

func (s *memStore) MarkUsedTx(ctx context.Context, tx *sqlx.Tx, keyID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.key(keyID)
	if k == nil {
		return cerr.SetCustomError(constant.ErrNotFound)
	}
	if k.IsUsed {
		if k.OrderID != nil && *k.OrderID == orderID {
			return nil
		}
		return cerr.SetCustomError(constant.ErrKeyAlreadyUsed)
	}
	s.pending[tx].usedKeys[keyID] = orderID
	return nil
}

func (s *memStore) CountAvailable(ctx context.Context, productID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableKeys(productID), nil
}

func (s *memStore) availableKeys(productID string) int64 {
	var n int64
	for _, k := range s.keys {
		if k.ProductID == productID && !k.IsUsed {
			n++
		}
	}
	return n
}

func (s *memStore) BulkInsert(ctx context.Context, productID string, values []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range values {
		s.keys = append(s.keys, &model.DigitalKey{ID: uuid.NewString(), ProductID: productID, KeyValue: v, CreatedAt: time.Now()})
	}
	return int64(len(values)), nil
}

// orders

func (s *memStore) Insert(ctx context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.intents[o.PaymentIntentID]; ok {
		return cerr.SetCustomError(constant.ErrDuplicateOrder)
	}
	cp := *o
	s.orders[o.ID] = &cp
	s.intents[o.PaymentIntentID] = o.ID
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (s *memStore) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*model.Order, error) {
	s.mu.Lock()
	id, ok := s.intents[paymentIntentID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return s.GetByID(ctx, id)
}

func (s *memStore) GetWithItems(ctx context.Context, id string) (*model.OrderWithItems, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := &model.OrderWithItems{Order: *o, Items: []model.OrderItemDetail{}}
	for _, it := range s.items {
		if it.OrderID != id {
			continue
		}
		d := model.OrderItemDetail{OrderItem: it, ProductName: s.products[it.ProductID].Name}
		if it.DigitalKeyID != nil {
			v := s.key(*it.DigitalKeyID).KeyValue
			d.KeyValue = &v
		}
		out.Items = append(out.Items, d)
	}
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].Position < out.Items[j].Position })
	return out, nil
}

func (s *memStore) ListByUser(ctx context.Context, userID string) ([]model.OrderWithItems, error) {
	return nil, nil
}

func (s *memStore) ListItemPositions(ctx context.Context, orderID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	positions := make([]int, 0)
	for _, it := range s.items {
		if it.OrderID == orderID {
			positions = append(positions, it.Position)
		}
	}
	sort.Ints(positions)
	return positions, nil
}

func (s *memStore) InsertItemTx(ctx context.Context, tx *sqlx.Tx, item *model.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemInserts++
	if s.failItemInsert > 0 && s.itemInserts == s.failItemInsert {
		return errors.New("connection lost")
	}

	taken := func(it model.OrderItem) bool {
		if it.OrderID == item.OrderID && it.Position == item.Position {
			return true
		}
		return it.DigitalKeyID != nil && item.DigitalKeyID != nil && *it.DigitalKeyID == *item.DigitalKeyID
	}
	for _, it := range s.items {
		if taken(it) {
			return cerr.SetCustomError(constant.ErrDuplicateOrder)
		}
	}
	for other, st := range s.pending {
		if other == tx {
			continue
		}
		for _, it := range st.items {
			if taken(it) {
				return cerr.SetCustomError(constant.ErrDuplicateOrder)
			}
		}
	}
	s.pending[tx].items = append(s.pending[tx].items, *item)
	return nil
}

func (s *memStore) UpdateStatus(ctx context.Context, id string, status constant.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (s *memStore) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	return &model.UserStats{}, nil
}

// products

type productStore struct{ *memStore }

func (s productStore) List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductWithCategory, int64, error) {
	return nil, 0, nil
}

func (s productStore) GetByID(ctx context.Context, id string) (*model.ProductWithCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &model.ProductWithCategory{Product: *p}, nil
}

func (s productStore) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	return nil, nil
}

func (s productStore) Create(ctx context.Context, p *model.Product) error { return nil }

func (s productStore) Update(ctx context.Context, p *model.Product) error { return nil }

func (s productStore) Deactivate(ctx context.Context, id string) (bool, error) { return false, nil }

func (s productStore) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[tx].decrements = append(s.pending[tx].decrements, id)
	return true, nil
}

// inventory

type inventoryStore struct{ *memStore }

func (s inventoryStore) GetStockLevel(ctx context.Context, productID string) (*model.StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, nil
	}
	return &model.StockLevel{ProductID: p.ID, IsActive: p.IsActive, Stock: p.Stock, AvailableKeys: s.availableKeys(p.ID)}, nil
}

func (s inventoryStore) ListStockLevels(ctx context.Context) ([]model.StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	levels := make([]model.StockLevel, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive {
			levels = append(levels, model.StockLevel{ProductID: p.ID, IsActive: true, Stock: p.Stock, AvailableKeys: s.availableKeys(p.ID)})
		}
	}
	return levels, nil
}

func (s inventoryStore) InsertAlertIfAbsent(ctx context.Context, alert *model.InventoryAlert) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if !a.IsResolved && a.ProductID == alert.ProductID && a.AlertType == alert.AlertType {
			return false, nil
		}
	}
	cp := *alert
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	s.alerts = append(s.alerts, &cp)
	return true, nil
}

func (s inventoryStore) GetAlert(ctx context.Context, id string) (*model.InventoryAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s inventoryStore) ResolveAlert(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if a.ID == id && !a.IsResolved {
			a.IsResolved = true
			return true, nil
		}
	}
	return false, nil
}

func (s inventoryStore) ListOpenAlerts(ctx context.Context) ([]model.InventoryAlertWithProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.InventoryAlertWithProduct, 0)
	for _, a := range s.alerts {
		if !a.IsResolved {
			out = append(out, model.InventoryAlertWithProduct{InventoryAlert: *a, ProductName: s.products[a.ProductID].Name})
		}
	}
	return out, nil
}

// openAlerts returns the unresolved alert types of a product.
func (s *memStore) openAlerts(productID string) []constant.AlertType {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]constant.AlertType, 0)
	for _, a := range s.alerts {
		if a.ProductID == productID && !a.IsResolved {
			types = append(types, a.AlertType)
		}
	}
	return types
}

func (s *memStore) orderItems(orderID string) []model.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.OrderItem, 0)
	for _, it := range s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out
}

func (s *memStore) usedKeyCount(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, k := range s.keys {
		if k.ProductID == productID && k.IsUsed {
			n++
		}
	}
	return n
}

func (s *memStore) stock(productID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[productID].Stock
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
