package repository

import (
	"context"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/infra/converter"
	"reservation-service/internal/infra/queries"
	"reservation-service/internal/usecase"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db queries.DBTX, arg queries.CreateReservationParams) (queries.Reservations, error)
	GetReservationByID(ctx context.Context, db queries.DBTX, id uuid.UUID) (queries.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db queries.DBTX, arg queries.UpdateReservationStatusParams) (queries.Reservations, error)
	DeleteReservationReturning(ctx context.Context, db queries.DBTX, id uuid.UUID) (queries.Reservations, error)
	ListReservationsWithRestaurant(ctx context.Context, db queries.DBTX) ([]queries.ListReservationsWithRestaurantRow, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      queries.DBTX
}

func NewReservationRepository(queries ReservationQueries, db queries.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return toDomain(row)
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return toDomain(row)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error) {
	row, err := r.queries.UpdateReservationStatus(ctx, r.db, queries.UpdateReservationStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return toDomain(row)
}

func (r *ReservationRepository) DeleteReturning(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.DeleteReservationReturning(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return toDomain(row)
}

func (r *ReservationRepository) ListWithRestaurant(ctx context.Context) ([]*usecase.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsWithRestaurant(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	items := make([]*usecase.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		res, err := toDomain(row.Reservations)
		if err != nil {
			return nil, err
		}
		items = append(items, &usecase.ReservationListItem{
			Reservation: res,
			Restaurant:  converter.JoinedRestaurant(row),
		})
	}
	return items, nil
}

func toDomain(row queries.Reservations) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err, infra.KindDBFailure)
	}
	return res, nil
}
