package usecase

import "errors"

var (
	ErrRoomIDRequired = errors.New("room id is required")
	ErrInvalidPhase   = errors.New("invalid meeting phase")
	ErrInvalidStatus  = errors.New("invalid participant status")
	ErrNotRegistered  = errors.New("connection is not registered")
)
