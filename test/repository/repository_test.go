package repository_test

import (
	"context"
	"testing"
	"time"

	"restaurant-service/internal/migrate"
	"restaurant-service/internal/models"
	"restaurant-service/internal/repository"
	"restaurant-service/pkg/testutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.SetupTestPostgres(t)
	if err := migrate.MigrateRestaurantDB(context.Background(), db, zap.NewNop(), migrate.DefaultMigrateOptions()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedOrder(t *testing.T, repo repository.OrderRepo, userID *uuid.UUID, restaurantID uuid.UUID, status models.OrderStatus) *models.Order {
	t.Helper()
	ord := &models.Order{
		UserID:        userID,
		RestaurantID:  restaurantID,
		Status:        status,
		City:          "Warszawa",
		Address:       "ul. Smaczna 15",
		PhoneNumber:   "500600700",
		TotalCents:    5000,
		PaymentMethod: models.DefaultPaymentMethod,
		PaymentStatus: models.DefaultPaymentStatus,
		Items: []models.OrderItem{
			{ItemID: uuid.New(), Kind: models.ItemKindDish, Quantity: 2},
		},
	}
	if err := repo.Create(context.Background(), ord); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return ord
}

func TestOrderRepo_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewOrderRepo(db)
	ctx := context.Background()

	userID := uuid.New()
	restaurantID := uuid.New()
	ord := seedOrder(t, repo, &userID, restaurantID, models.OrderStatusPending)

	if ok, err := repo.Exists(ctx, ord.ID); err != nil || !ok {
		t.Fatalf("Exists: ok=%v err=%v", ok, err)
	}

	got, err := repo.GetByID(ctx, ord.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v %v", got, err)
	}
	if len(got.Items) != 1 || got.Items[0].Kind != models.ItemKindDish || got.Items[0].Quantity != 2 {
		t.Fatalf("items not preloaded as stored: %+v", got.Items)
	}
	if got.TotalCents != 5000 || got.Status != models.OrderStatusPending {
		t.Fatalf("order mismatch: %+v", got)
	}

	gotUser, err := repo.GetByIDForUser(ctx, ord.ID, userID)
	if err != nil || gotUser == nil {
		t.Fatalf("GetByIDForUser: %v %v", gotUser, err)
	}

	// чужой пользователь не видит заказ
	foreign, err := repo.GetByIDForUser(ctx, ord.ID, uuid.New())
	if err != nil {
		t.Fatalf("GetByIDForUser foreign: %v", err)
	}
	if foreign != nil {
		t.Fatalf("foreign user must not see the order: %+v", foreign)
	}
}

func TestOrderRepo_UpdateStatusCompareAndSet(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewOrderRepo(db)
	ctx := context.Background()

	ord := seedOrder(t, repo, nil, uuid.New(), models.OrderStatusPending)

	ok, err := repo.UpdateStatus(ctx, ord.ID, models.OrderStatusPending, models.OrderStatusPreparing)
	if err != nil || !ok {
		t.Fatalf("UpdateStatus: ok=%v err=%v", ok, err)
	}

	// устаревший expected не проходит и ничего не меняет
	ok, err = repo.UpdateStatus(ctx, ord.ID, models.OrderStatusPending, models.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus stale: %v", err)
	}
	if ok {
		t.Fatalf("stale compare-and-set must not win")
	}

	got, _ := repo.GetByID(ctx, ord.ID)
	if got.Status != models.OrderStatusPreparing {
		t.Fatalf("status expected preparing got %s", got.Status)
	}
}

func TestOrderRepo_ListScopes(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewOrderRepo(db)
	ctx := context.Background()

	userID := uuid.New()
	restaurantA := uuid.New()
	restaurantB := uuid.New()

	seedOrder(t, repo, &userID, restaurantA, models.OrderStatusPending)
	time.Sleep(10 * time.Millisecond) // разводим created_at для проверки сортировки
	newest := seedOrder(t, repo, &userID, restaurantA, models.OrderStatusPreparing)
	seedOrder(t, repo, nil, restaurantB, models.OrderStatusPending)

	// по владельцу
	list, total, err := repo.List(ctx, repository.OrderListFilter{UserID: &userID})
	if err != nil {
		t.Fatalf("List by user: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("user scope expected 2 got total=%d len=%d", total, len(list))
	}
	if list[0].ID != newest.ID {
		t.Fatalf("expected newest-first ordering")
	}

	// по ресторану
	_, total, err = repo.List(ctx, repository.OrderListFilter{RestaurantID: &restaurantB})
	if err != nil {
		t.Fatalf("List by restaurant: %v", err)
	}
	if total != 1 {
		t.Fatalf("restaurant scope expected 1 got %d", total)
	}

	// по статусу + пагинация
	st := models.OrderStatusPending
	list, total, err = repo.List(ctx, repository.OrderListFilter{Status: &st, Limit: 1})
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if total != 2 || len(list) != 1 {
		t.Fatalf("status scope expected total=2 len=1 got total=%d len=%d", total, len(list))
	}
}

func TestCatalogRepo_Resolve(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewCatalogRepo(db)
	ctx := context.Background()

	dish := &models.Dish{Name: "Pizza", PriceCents: 2500}
	if err := db.Create(dish).Error; err != nil {
		t.Fatalf("create dish: %v", err)
	}
	drink := &models.Drink{Name: "Lemoniada", PriceCents: 800}
	if err := db.Create(drink).Error; err != nil {
		t.Fatalf("create drink: %v", err)
	}

	gotDish, err := repo.GetDish(ctx, dish.ID)
	if err != nil || gotDish == nil || gotDish.PriceCents != 2500 {
		t.Fatalf("GetDish: %+v %v", gotDish, err)
	}

	gotDrink, err := repo.GetDrink(ctx, drink.ID)
	if err != nil || gotDrink == nil || gotDrink.Name != "Lemoniada" {
		t.Fatalf("GetDrink: %+v %v", gotDrink, err)
	}

	// отсутствующая позиция — (nil, nil), не ошибка
	missing, err := repo.GetDish(ctx, uuid.New())
	if err != nil {
		t.Fatalf("GetDish missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing dish, got %+v", missing)
	}
}
