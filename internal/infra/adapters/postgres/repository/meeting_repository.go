package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/qrave1/HotSeat/internal/domain/models"
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	GetByID(ctx context.Context, id int64) (*models.Meeting, error)
	GetByRoomID(ctx context.Context, roomID string) (*models.Meeting, error)

	// UpdatePhase сохраняет фазу и время ее начала, возвращает обновленную встречу
	UpdatePhase(ctx context.Context, id int64, phase models.Phase, startedAt time.Time) (*models.Meeting, error)
}

type meetingRepo struct {
	db *sqlx.DB
}

func NewMeetingRepo(db *sqlx.DB) MeetingRepository {
	return &meetingRepo{db: db}
}

func (r *meetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	query := `
		INSERT INTO meetings (title, room_id, current_phase, phase_start_time, is_active, is_recording, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return r.db.QueryRowxContext(
		ctx,
		query,
		meeting.Title,
		meeting.RoomID,
		meeting.CurrentPhase,
		meeting.PhaseStartTime,
		meeting.IsActive,
		meeting.IsRecording,
		meeting.CreatedAt,
	).Scan(&meeting.ID)
}

func (r *meetingRepo) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	var meeting models.Meeting

	err := r.db.GetContext(ctx, &meeting, "SELECT * FROM meetings WHERE id = $1", id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return &meeting, nil
}

func (r *meetingRepo) GetByRoomID(ctx context.Context, roomID string) (*models.Meeting, error) {
	var meeting models.Meeting

	err := r.db.GetContext(ctx, &meeting, "SELECT * FROM meetings WHERE room_id = $1", roomID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return &meeting, nil
}

func (r *meetingRepo) UpdatePhase(
	ctx context.Context,
	id int64,
	phase models.Phase,
	startedAt time.Time,
) (*models.Meeting, error) {
	var meeting models.Meeting

	err := r.db.GetContext(
		ctx,
		&meeting,
		"UPDATE meetings SET current_phase = $1, phase_start_time = $2 WHERE id = $3 RETURNING *",
		phase,
		startedAt,
		id,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}

	return &meeting, nil
}
