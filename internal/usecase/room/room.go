package usecase_room

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available rooms")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
	ErrWrongPin         = errors.New("wrong pin")
	ErrBadSlot          = errors.New("bad slot")
)

//go:generate mockery --name=RoomRepository --output=./mocks --outpkg=mocks
type RoomRepository interface {
	Create(ctx context.Context, room model.Room) error
	ByCode(ctx context.Context, code string) (model.Room, error)
	BindUser(ctx context.Context, code string, slot model.Slot, userID uuid.UUID) error
	SetConnected(ctx context.Context, code string, slot model.Slot, connected bool) error
	// Activate flips waiting -> active only while both connection flags
	// are simultaneously true. Reports whether this call made the switch.
	Activate(ctx context.Context, code string) (bool, error)
	Expire(ctx context.Context, code string) (bool, error)

	CleanupOrphanRooms(ctx context.Context, waitingDeadline, matchedGrace time.Duration) error
}

//go:generate mockery --name=WatchListReader --output=./mocks --outpkg=mocks
type WatchListReader interface {
	HasWantToWatch(ctx context.Context, userID uuid.UUID) (bool, error)
}

type Usecase struct {
	RoomRepository RoomRepository
	WatchList      WatchListReader

	// Used to make periodic cleanup on every Nth room creation.
	// Creates arrive from concurrent handlers, so the counter is atomic.
	cleanupPeriod int
	createsCount  atomic.Int64
}

func New(
	RoomRepository RoomRepository,
	WatchList WatchListReader,
	cleanup int,
) *Usecase {
	if cleanup <= 0 {
		cleanup = 20 /* default */
	}

	return &Usecase{
		RoomRepository: RoomRepository,
		WatchList:      WatchList,
		cleanupPeriod:  cleanup,
	}
}

// Create books a fresh waiting room with its code, access pin and pool seed.
func (u *Usecase) Create(ctx context.Context) (roomCode string, pin string, err error) {
	// Cleanup orphan rooms
	if u.createsCount.Add(1)%int64(u.cleanupPeriod) == 0 {
		if err := u.RoomRepository.CleanupOrphanRooms(ctx, time.Minute*15 /* never activated */, time.Minute*5 /* past expiry */); err != nil {
			return "", "", errors.Join(ErrInternal, err)
		}
	}

	return u.createRoom(ctx)
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) createRoom(ctx context.Context) (string, string, error) {
	var retries = 3
	for retries > 0 {
		code := buildDigits(6)
		pin := buildDigits(4)
		if err := u.RoomRepository.Create(ctx, model.Room{
			ID:     uuid.New(),
			Code:   code,
			Pin:    pin,
			Status: model.StatusWaiting,
			Seed:   rand.Int63(),
		}); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
			} else {
				return "", "", errors.Join(ErrInternal, err)
			}
		} else {
			return code, pin, nil
		}
	}
	return "", "", ErrRoomsUnavailable
}

func buildDigits(n int) string {
	var builder strings.Builder
	builder.Grow(n)

	for i := 0; i < n; i++ {
		builder.WriteByte(byte(rand.Intn(10)) + '0')
	}

	return builder.String()
}

func (u *Usecase) ByCode(ctx context.Context, code string) (model.Room, error) {
	room, err := u.RoomRepository.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Room{}, ErrResourceNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) Status(ctx context.Context, code string) (string, error) {
	room, err := u.ByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return room.Status, nil
}

// ValidateAccess checks the room's access pin before a client may join.
func (u *Usecase) ValidateAccess(ctx context.Context, code string, pin string) error {
	room, err := u.ByCode(ctx, code)
	if err != nil {
		return err
	}
	if room.Pin != pin {
		return ErrWrongPin
	}
	return nil
}

// Connect registers a slot's presence, optionally binding an authenticated
// user. It reports whether this connect activated the room and whether the
// joining user carries a non-empty want-to-watch list.
func (u *Usecase) Connect(ctx context.Context, code string, slot model.Slot, userID *uuid.UUID) (room model.Room, activated bool, hasWantList bool, err error) {
	if !slot.Valid() {
		return model.Room{}, false, false, ErrBadSlot
	}

	if _, err = u.ByCode(ctx, code); err != nil {
		return model.Room{}, false, false, err
	}

	if userID != nil {
		if err := u.RoomRepository.BindUser(ctx, code, slot, *userID); err != nil {
			return model.Room{}, false, false, errors.Join(ErrInternal, err)
		}
		if hasWantList, err = u.WatchList.HasWantToWatch(ctx, *userID); err != nil {
			// Presence matters more than the flag; degrade to "no list".
			hasWantList = false
		}
	}

	if err := u.RoomRepository.SetConnected(ctx, code, slot, true); err != nil {
		return model.Room{}, false, false, errors.Join(ErrInternal, err)
	}

	activated, err = u.RoomRepository.Activate(ctx, code)
	if err != nil {
		return model.Room{}, false, false, errors.Join(ErrInternal, err)
	}

	room, err = u.ByCode(ctx, code)
	if err != nil {
		return model.Room{}, false, false, err
	}
	return room, activated, hasWantList, nil
}

// Disconnect clears the connection flag. Status is never touched here:
// an active room stays active with a single participant online.
func (u *Usecase) Disconnect(ctx context.Context, code string, slot model.Slot) error {
	if !slot.Valid() {
		return ErrBadSlot
	}
	if err := u.RoomRepository.SetConnected(ctx, code, slot, false); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Expire pushes the room into its terminal state. Safe to call from both
// the deferred post-match timer and cleanup; only the first caller switches.
func (u *Usecase) Expire(ctx context.Context, code string) (bool, error) {
	expired, err := u.RoomRepository.Expire(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return false, ErrResourceNotFound
		}
		return false, errors.Join(ErrInternal, err)
	}
	return expired, nil
}
