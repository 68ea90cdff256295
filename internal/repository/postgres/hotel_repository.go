package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/repository"
)

type hotelRepository struct {
	db *sqlx.DB
}

func NewHotelRepository(db *sqlx.DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

const hotelColumns = `
	id, user_id, company_name, phone, email, website, bio, address, city, state,
	hotel_type, amenities, room_types, images, price_min, price_max,
	is_verified, is_active, created_at, updated_at
`

func scanHotel(row rowScanner) (*domain.HotelPartner, error) {
	var h domain.HotelPartner
	err := row.Scan(
		&h.ID, &h.UserID, &h.CompanyName, &h.Phone, &h.Email, &h.Website, &h.Bio,
		&h.Address, &h.City, &h.State,
		&h.HotelType, pq.Array(&h.Amenities), pq.Array(&h.RoomTypes), pq.Array(&h.Images),
		&h.PriceMin, &h.PriceMax,
		&h.IsVerified, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hotelRepository) Create(ctx context.Context, hotel *domain.HotelPartner) error {
	query := `
		INSERT INTO hotel_partners (
			user_id, company_name, phone, email, website, bio, address, city, state,
			hotel_type, amenities, room_types, images, price_min, price_max,
			is_verified, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		hotel.UserID, hotel.CompanyName, hotel.Phone, hotel.Email, hotel.Website,
		hotel.Bio, hotel.Address, hotel.City, hotel.State,
		hotel.HotelType, pq.Array(hotel.Amenities), pq.Array(hotel.RoomTypes), pq.Array(hotel.Images),
		hotel.PriceMin, hotel.PriceMax, hotel.IsVerified, hotel.IsActive,
	).Scan(&hotel.ID, &hotel.CreatedAt, &hotel.UpdatedAt)
}

func (r *hotelRepository) GetByUserID(ctx context.Context, userID string) (*domain.HotelPartner, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotel_partners WHERE user_id = $1`
	hotel, err := scanHotel(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return hotel, nil
}

func (r *hotelRepository) GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.HotelPartner, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotel_partners WHERE user_id = ANY($1) AND is_active = true`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []*domain.HotelPartner
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}

func (r *hotelRepository) ListActive(ctx context.Context, limit, offset int) ([]*domain.HotelPartner, error) {
	query := `
		SELECT ` + hotelColumns + ` FROM hotel_partners
		WHERE is_active = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []*domain.HotelPartner
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}

func (r *hotelRepository) Update(ctx context.Context, hotel *domain.HotelPartner) error {
	query := `
		UPDATE hotel_partners
		SET company_name = $1, phone = $2, email = $3, website = $4, bio = $5,
		    address = $6, city = $7, state = $8, hotel_type = $9,
		    amenities = $10, room_types = $11, images = $12,
		    price_min = $13, price_max = $14,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $15
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		hotel.CompanyName, hotel.Phone, hotel.Email, hotel.Website, hotel.Bio,
		hotel.Address, hotel.City, hotel.State, hotel.HotelType,
		pq.Array(hotel.Amenities), pq.Array(hotel.RoomTypes), pq.Array(hotel.Images),
		hotel.PriceMin, hotel.PriceMax,
		hotel.UserID,
	).Scan(&hotel.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *hotelRepository) SetActive(ctx context.Context, userID string, active bool) error {
	return r.setFlag(ctx, "is_active", userID, active)
}

func (r *hotelRepository) SetVerified(ctx context.Context, userID string, verified bool) error {
	return r.setFlag(ctx, "is_verified", userID, verified)
}

func (r *hotelRepository) setFlag(ctx context.Context, column, userID string, value bool) error {
	query := `UPDATE hotel_partners SET ` + column + ` = $1, updated_at = CURRENT_TIMESTAMP WHERE user_id = $2`
	result, err := r.db.ExecContext(ctx, query, value, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
