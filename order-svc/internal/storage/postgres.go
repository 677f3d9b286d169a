package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"overcooked-orders/order-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return unavailable(err)
	}
	defer tx.Rollback()

	order.Version = 1
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, restaurant_name, status, subtotal, delivery_fee, tax,
			grand_total, delivery_address, payment_method, order_date, estimated_delivery_time,
			tracking_id, special_instructions, version, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`, order.UserID, order.RestaurantID, order.RestaurantName, order.Status, order.Subtotal,
		order.DeliveryFee, order.Tax, order.GrandTotal, order.DeliveryAddress, order.PaymentMethod,
		order.OrderDate, order.EstimatedDeliveryTime, order.TrackingID, order.SpecialInstructions,
		order.Version, order.UpdatedAt).Scan(&order.ID)
	if err != nil {
		return unavailable(err)
	}

	for i, line := range order.Lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, position, food_item_id, name, unit_price, quantity,
				total_price, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, order.ID, i, line.FoodItemID, line.Name, line.UnitPrice, line.Quantity,
			line.TotalPrice, line.SpecialInstructions)
		if err != nil {
			return unavailable(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *PostgresRepository) LoadOrder(ctx context.Context, orderID int) (domain.Order, error) {
	var o domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, restaurant_id, restaurant_name, status, subtotal, delivery_fee, tax,
			grand_total, delivery_address, payment_method, order_date, estimated_delivery_time,
			COALESCE(tracking_id, ''), COALESCE(special_instructions, ''), version, updated_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.RestaurantName, &o.Status, &o.Subtotal,
		&o.DeliveryFee, &o.Tax, &o.GrandTotal, &o.DeliveryAddress, &o.PaymentMethod, &o.OrderDate,
		&o.EstimatedDeliveryTime, &o.TrackingID, &o.SpecialInstructions, &o.Version, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("%w: %d", domain.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return domain.Order{}, unavailable(err)
	}

	lines, err := r.orderLines(ctx, []int{orderID})
	if err != nil {
		return domain.Order{}, err
	}
	o.Lines = lines[orderID]

	history, err := r.orderHistory(ctx, []int{orderID})
	if err != nil {
		return domain.Order{}, err
	}
	o.History = history[orderID]
	return o, nil
}

func (r *PostgresRepository) orderLines(ctx context.Context, orderIDs []int) (map[int][]domain.OrderLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, food_item_id, name, unit_price, quantity, total_price,
			COALESCE(special_instructions, '')
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	lines := make(map[int][]domain.OrderLine, len(orderIDs))
	for rows.Next() {
		var orderID int
		var line domain.OrderLine
		if err := rows.Scan(&orderID, &line.FoodItemID, &line.Name, &line.UnitPrice, &line.Quantity,
			&line.TotalPrice, &line.SpecialInstructions); err != nil {
			return nil, unavailable(err)
		}
		lines[orderID] = append(lines[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return lines, nil
}

func (r *PostgresRepository) orderHistory(ctx context.Context, orderIDs []int) (map[int][]domain.StatusChange, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, from_status, to_status, changed_at
		FROM order_status_history
		WHERE order_id = ANY($1)
		ORDER BY order_id, changed_at
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	history := make(map[int][]domain.StatusChange, len(orderIDs))
	for rows.Next() {
		var orderID int
		var change domain.StatusChange
		if err := rows.Scan(&orderID, &change.From, &change.To, &change.At); err != nil {
			return nil, unavailable(err)
		}
		history[orderID] = append(history[orderID], change)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return history, nil
}

// SaveOrder writes the mutable order fields guarded by expectedVersion. Order
// lines are immutable after checkout and are not rewritten.
func (r *PostgresRepository) SaveOrder(ctx context.Context, order domain.Order, expectedVersion int) (domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, unavailable(err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, subtotal = $2, delivery_fee = $3, tax = $4, grand_total = $5,
			version = version + 1, updated_at = $6
		WHERE id = $7 AND version = $8
	`, order.Status, order.Subtotal, order.DeliveryFee, order.Tax, order.GrandTotal,
		order.UpdatedAt, order.ID, expectedVersion)
	if err != nil {
		return domain.Order{}, unavailable(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Order{}, unavailable(err)
	}
	if affected == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, order.ID).Scan(&exists); err != nil {
			return domain.Order{}, unavailable(err)
		}
		if !exists {
			return domain.Order{}, fmt.Errorf("%w: %d", domain.ErrOrderNotFound, order.ID)
		}
		return domain.Order{}, fmt.Errorf("%w: order %d is no longer at version %d",
			domain.ErrConcurrentModification, order.ID, expectedVersion)
	}

	// A linear state machine reaches each status at most once, so
	// (order_id, to_status) identifies a history row.
	for _, change := range order.History {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_status_history (order_id, from_status, to_status, changed_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (order_id, to_status) DO NOTHING
		`, order.ID, change.From, change.To, change.At)
		if err != nil {
			return domain.Order{}, unavailable(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, unavailable(err)
	}
	order.Version = expectedVersion + 1
	return order, nil
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, restaurant_id, restaurant_name, status, subtotal, delivery_fee, tax,
			grand_total, delivery_address, payment_method, order_date, estimated_delivery_time,
			COALESCE(tracking_id, ''), COALESCE(special_instructions, ''), version, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []int
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.RestaurantName, &o.Status, &o.Subtotal,
			&o.DeliveryFee, &o.Tax, &o.GrandTotal, &o.DeliveryAddress, &o.PaymentMethod, &o.OrderDate,
			&o.EstimatedDeliveryTime, &o.TrackingID, &o.SpecialInstructions, &o.Version, &o.UpdatedAt); err != nil {
			return nil, unavailable(err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.orderLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	history, err := r.orderHistory(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
		orders[i].History = history[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) LoadRestaurant(ctx context.Context, restaurantID int) (domain.Restaurant, error) {
	var rest domain.Restaurant
	var deliveryMinutes int
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, owner_id, name, rating, reviews, delivery_fee, minimum_order, is_open, categories,
			latitude, longitude, delivery_minutes, version, updated_at
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Rating, &rest.Reviews,
		&rest.DeliveryFee, &rest.MinimumOrder, &rest.IsOpen, pq.Array(&rest.Categories),
		&rest.Coordinates.Latitude, &rest.Coordinates.Longitude, &deliveryMinutes, &rest.Version,
		&rest.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Restaurant{}, fmt.Errorf("%w: %d", domain.ErrRestaurantNotFound, restaurantID)
	}
	if err != nil {
		return domain.Restaurant{}, unavailable(err)
	}
	rest.DeliveryTime = time.Duration(deliveryMinutes) * time.Minute
	return rest, nil
}

// SaveRestaurant writes the rating aggregate guarded by expectedVersion.
func (r *PostgresRepository) SaveRestaurant(ctx context.Context, rest domain.Restaurant, expectedVersion int) (domain.Restaurant, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE restaurants
		SET rating = $1, reviews = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5
	`, rest.Rating, rest.Reviews, rest.UpdatedAt, rest.ID, expectedVersion)
	if err != nil {
		return domain.Restaurant{}, unavailable(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Restaurant{}, unavailable(err)
	}
	if affected == 0 {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant %d is no longer at version %d",
			domain.ErrConcurrentModification, rest.ID, expectedVersion)
	}
	rest.Version = expectedVersion + 1
	return rest, nil
}

func (r *PostgresRepository) LoadFoodItems(ctx context.Context, ids []int) (map[int]domain.FoodItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(category, ''), COALESCE(image_url, ''), price,
			original_price, vegetarian, vegan, spicy, preparation_time, rating, review_count, created_at
		FROM food_items
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	items := make(map[int]domain.FoodItem, len(ids))
	for rows.Next() {
		var f domain.FoodItem
		var original decimal.NullDecimal
		if err := rows.Scan(&f.ID, &f.RestaurantID, &f.Name, &f.Category, &f.ImageURL, &f.Price,
			&original, &f.Dietary.Vegetarian, &f.Dietary.Vegan, &f.Dietary.Spicy, &f.PreparationTime,
			&f.Rating, &f.ReviewCount, &f.CreatedAt); err != nil {
			return nil, unavailable(err)
		}
		if original.Valid {
			f.OriginalPrice = &original.Decimal
		}
		items[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return items, nil
}
