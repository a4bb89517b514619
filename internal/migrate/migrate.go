package migrate

import (
	"context"

	"restaurant-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto
	CreateChecks           bool // CHECK-constraint для целостности
	CreateIndexes          bool // индексы
	CreateUpdatedAtTrigger bool // триггер обновления updated_at
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateUpdatedAtTrigger: true,
	}
}

func MigrateRestaurantDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных ресторана")

	if opt.CreateExtensions {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("Не удалось включить расширение pgcrypto", zap.Error(err))
			return err
		}
	}

	log.Info("Создание таблиц orders, order_items, dishes, drinks")
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Dish{}, &models.Drink{}); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("Не удалось создать триггер updated_at", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")

		// Статусы (храним TEXT)
		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('pending','preparing','ready','delivered','cancelled'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для статусов", zap.Error(err))
			return err
		}

		// Вид позиции
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_kind_allowed;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_kind_allowed
  CHECK (kind IN ('dish','drink'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для вида позиции", zap.Error(err))
			return err
		}

		// Количество > 0
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для order_items.quantity", zap.Error(err))
			return err
		}

		// Сумма заказа неотрицательная
		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_total_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_total_non_negative
  CHECK (total_cents >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для orders.total_cents", zap.Error(err))
			return err
		}

		// Цены каталога неотрицательные
		if err := db.Exec(`
ALTER TABLE dishes
  DROP CONSTRAINT IF EXISTS chk_dishes_price_non_negative;
ALTER TABLE dishes
  ADD CONSTRAINT chk_dishes_price_non_negative
  CHECK (price_cents >= 0);
ALTER TABLE drinks
  DROP CONSTRAINT IF EXISTS chk_drinks_price_non_negative;
ALTER TABLE drinks
  ADD CONSTRAINT chk_drinks_price_non_negative
  CHECK (price_cents >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для цен каталога", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		log.Info("Создание индексов")

		// Заказы пользователя по дате
		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_user_created
ON orders (user_id, created_at DESC);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_orders_user_created", zap.Error(err))
			return err
		}

		// Заказы ресторана по дате (панели worker/manager)
		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_restaurant_created
ON orders (restaurant_id, created_at DESC);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_orders_restaurant_created", zap.Error(err))
			return err
		}

		// Выборки по статусу
		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_status_created
ON orders (status, created_at DESC);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_orders_status_created", zap.Error(err))
			return err
		}
	}

	log.Info("Миграция базы данных ресторана успешно завершена")
	return nil
}
