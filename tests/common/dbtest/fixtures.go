//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, name, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestService(t *testing.T, db DBLike, name, pricingModel string, pricePerMeterMinor, minArea *int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO services (id, name, pricing_model, price_per_meter_minor, min_area, currency) VALUES ($1, $2, $3, $4, $5, 'HUF')",
		serviceID, name, pricingModel, pricePerMeterMinor, minArea)
	require.NoError(t, err)

	return serviceID
}

func CreateTestPricing(t *testing.T, db DBLike, serviceID uuid.UUID, minArea, maxArea, amountMinor int64) uuid.UUID {
	t.Helper()

	pricingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO pricings (id, service_id, min_area, max_area, amount_minor, currency) VALUES ($1, $2, $3, $4, $5, 'HUF')",
		pricingID, serviceID, minArea, maxArea, amountMinor)
	require.NoError(t, err)

	return pricingID
}

func CreateTestExtra(t *testing.T, db DBLike, name string, amountMinor int64) uuid.UUID {
	t.Helper()

	extraID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO extras (id, name, amount_minor, currency) VALUES ($1, $2, $3, 'HUF')",
		extraID, name, amountMinor)
	require.NoError(t, err)

	return extraID
}

func CreateTestPromocode(t *testing.T, db DBLike, code string, discountPercentage string, maxDiscountMinor int64, startsAt, expiresAt *time.Time, maxGlobalUses *int32) uuid.UUID {
	t.Helper()

	promocodeID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO promocodes (id, code, discount_percentage, max_discount_minor, currency, starts_at, expires_at, max_global_uses) VALUES ($1, $2, $3, $4, 'HUF', $5, $6, $7)",
		promocodeID, code, discountPercentage, maxDiscountMinor, startsAt, expiresAt, maxGlobalUses)
	require.NoError(t, err)

	return promocodeID
}

type BookingParams struct {
	ClientID      uuid.UUID
	CleanerID     *uuid.UUID
	ServiceID     uuid.UUID
	Status        string
	PaymentMethod string
	AmountMinor   int64
	PromocodeID   *uuid.UUID
}

func CreateTestBooking(t *testing.T, db DBLike, p BookingParams) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO bookings (id, client_id, cleaner_id, service_id, status, payment_method, amount_minor, currency, promocode_id) VALUES ($1, $2, $3, $4, $5, $6, $7, 'HUF', $8)",
		bookingID, p.ClientID, p.CleanerID, p.ServiceID, p.Status, p.PaymentMethod, p.AmountMinor, p.PromocodeID)
	require.NoError(t, err)

	return bookingID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (id, name, pricing_model, price_per_meter_minor, currency)
		VALUES (gen_random_uuid(), 'Standard Cleaning', 'price_per_meter', 5000, 'HUF')
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
