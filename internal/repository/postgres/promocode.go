package postgres

import (
	"context"
	"database/sql"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/repository"
)

type promoCodeRepository struct {
	db *sql.DB
}

func NewPromoCodeRepository(db *sql.DB) repository.PromoCodeRepository {
	return &promoCodeRepository{db: db}
}

func (r *promoCodeRepository) Create(ctx context.Context, p *domain.PromoCode) error {
	query := `INSERT INTO promo_codes (code, discount_type, discount_value, times_used, max_uses, expires_on, active, min_purchase_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().Format(time.RFC3339)
	p.CreatedOn = now
	p.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		p.Code, p.DiscountType, p.DiscountValue, p.TimesUsed, p.MaxUses, p.ExpiresOn, p.Active,
		p.MinPurchaseCents, p.CreatedOn, p.UpdatedOn,
	).Scan(&p.ID)
}

const promoColumns = `id, code, discount_type, discount_value, times_used, max_uses, expires_on, active, min_purchase_cents, created_on, updated_on`

func (r *promoCodeRepository) scanPromo(row interface {
	Scan(dest ...interface{}) error
}) (*domain.PromoCode, error) {
	p := &domain.PromoCode{}
	var expires sql.NullTime
	var createdOn, updatedOn time.Time
	err := row.Scan(&p.ID, &p.Code, &p.DiscountType, &p.DiscountValue, &p.TimesUsed, &p.MaxUses, &expires, &p.Active, &p.MinPurchaseCents, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	if expires.Valid {
		s := expires.Time.Format(time.RFC3339)
		p.ExpiresOn = &s
	}
	p.CreatedOn = createdOn.Format(time.RFC3339)
	p.UpdatedOn = updatedOn.Format(time.RFC3339)
	return p, nil
}

func (r *promoCodeRepository) GetByID(ctx context.Context, id int32) (*domain.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes WHERE id = $1`
	return r.scanPromo(r.db.QueryRowContext(ctx, query, id))
}

func (r *promoCodeRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes WHERE UPPER(code) = UPPER($1)`
	return r.scanPromo(r.db.QueryRowContext(ctx, query, code))
}

func (r *promoCodeRepository) List(ctx context.Context) ([]domain.PromoCode, error) {
	query := `SELECT ` + promoColumns + ` FROM promo_codes ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []domain.PromoCode
	for rows.Next() {
		p, err := r.scanPromo(rows)
		if err != nil {
			return nil, err
		}
		promos = append(promos, *p)
	}
	return promos, rows.Err()
}

func (r *promoCodeRepository) Update(ctx context.Context, p *domain.PromoCode) error {
	query := `UPDATE promo_codes SET code=$1, discount_type=$2, discount_value=$3, max_uses=$4, expires_on=$5, active=$6, min_purchase_cents=$7, updated_on=$8 WHERE id=$9`
	p.UpdatedOn = time.Now().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query, p.Code, p.DiscountType, p.DiscountValue, p.MaxUses, p.ExpiresOn, p.Active, p.MinPurchaseCents, p.UpdatedOn, p.ID)
	return err
}

func (r *promoCodeRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM promo_codes WHERE id = $1`, id)
	return err
}

func (r *promoCodeRepository) IncrementUsage(ctx context.Context, id int32) error {
	query := `UPDATE promo_codes SET times_used = times_used + 1, updated_on = $1 WHERE id = $2 AND (max_uses = 0 OR times_used < max_uses)`
	res, err := r.db.ExecContext(ctx, query, time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *promoCodeRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	query := `UPDATE promo_codes SET active = FALSE, updated_on = $1 WHERE active = TRUE AND expires_on IS NOT NULL AND expires_on < NOW()`
	res, err := r.db.ExecContext(ctx, query, time.Now().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
