package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/qrave1/HotSeat/internal/domain/models"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	ListByMeeting(ctx context.Context, meetingID int64) ([]*models.Participant, error)
	GetByNameAndMeeting(ctx context.Context, name string, meetingID int64) (*models.Participant, error)
	UpdateStatus(ctx context.Context, id int64, status models.ParticipantStatus) (*models.Participant, error)
	Delete(ctx context.Context, id int64) error
}

type participantRepo struct {
	db *sqlx.DB
}

func NewParticipantRepo(db *sqlx.DB) ParticipantRepository {
	return &participantRepo{db: db}
}

func (r *participantRepo) Create(ctx context.Context, participant *models.Participant) error {
	return r.db.QueryRowxContext(
		ctx,
		"INSERT INTO participants (meeting_id, name, avatar, status, joined_at) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		participant.MeetingID,
		participant.Name,
		participant.Avatar,
		participant.Status,
		participant.JoinedAt,
	).Scan(&participant.ID)
}

func (r *participantRepo) ListByMeeting(ctx context.Context, meetingID int64) ([]*models.Participant, error) {
	participants := make([]*models.Participant, 0)

	err := r.db.SelectContext(
		ctx,
		&participants,
		"SELECT * FROM participants WHERE meeting_id = $1 ORDER BY joined_at, id",
		meetingID,
	)
	if err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *participantRepo) GetByNameAndMeeting(ctx context.Context, name string, meetingID int64) (*models.Participant, error) {
	var participant models.Participant

	err := r.db.GetContext(
		ctx,
		&participant,
		"SELECT * FROM participants WHERE name = $1 AND meeting_id = $2 ORDER BY id LIMIT 1",
		name,
		meetingID,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return &participant, nil
}

func (r *participantRepo) UpdateStatus(
	ctx context.Context,
	id int64,
	status models.ParticipantStatus,
) (*models.Participant, error) {
	var participant models.Participant

	err := r.db.GetContext(
		ctx,
		&participant,
		"UPDATE participants SET status = $1 WHERE id = $2 RETURNING *",
		status,
		id,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return &participant, nil
}

func (r *participantRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM participants WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
