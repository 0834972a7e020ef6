package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes. They mirror the SQL layer's contracts: nil on
// missing rows, repository.ErrDuplicate on unique violations, and the same
// spot-counter semantics for Reserve and Release.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) matches(u *entity.User, search string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(u.Username), s) ||
		strings.Contains(strings.ToLower(u.FirstName), s) ||
		strings.Contains(strings.ToLower(u.LastName), s) ||
		strings.Contains(strings.ToLower(u.Email), s)
}

func (f *fakeUserRepo) Search(ctx context.Context, search string, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.User
	for _, u := range f.users {
		if f.matches(u, search) {
			matched = append(matched, u)
		}
	}
	return page(matched, limit, offset), nil
}

func (f *fakeUserRepo) CountSearch(ctx context.Context, search string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if f.matches(u, search) {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, id := range ids {
		for _, u := range f.users {
			if u.ID == id {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.User(nil), f.users...), nil
}

type fakeTourRepo struct {
	mu    sync.Mutex
	tours []*entity.Tour
}

func (f *fakeTourRepo) Create(ctx context.Context, tour *entity.Tour) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tours = append(f.tours, tour)
	return nil
}

func (f *fakeTourRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tour := f.findLocked(id)
	if tour == nil {
		return nil, nil
	}
	// Snapshot, like a row scan. Callers never see later counter changes
	// through an old read.
	copied := *tour
	return &copied, nil
}

func (f *fakeTourRepo) findLocked(id uuid.UUID) *entity.Tour {
	for _, t := range f.tours {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (f *fakeTourRepo) Update(ctx context.Context, tour *entity.Tour) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tours {
		if t.ID == tour.ID {
			f.tours[i] = tour
			return nil
		}
	}
	return nil
}

func (f *fakeTourRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tours {
		if t.ID == id {
			f.tours = append(f.tours[:i], f.tours[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTourRepo) filtered(filter repository.TourFilter) []*entity.Tour {
	var out []*entity.Tour
	for _, t := range f.tours {
		if !filter.IncludeInactive && !t.IsActive {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			desc := ""
			if t.Description != nil {
				desc = *t.Description
			}
			if !strings.Contains(strings.ToLower(t.Title), s) &&
				!strings.Contains(strings.ToLower(desc), s) {
				continue
			}
		}
		if filter.Destination != "" &&
			!strings.Contains(strings.ToLower(t.Destination), strings.ToLower(filter.Destination)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (f *fakeTourRepo) FindAll(ctx context.Context, filter repository.TourFilter, limit, offset int) ([]*entity.Tour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return page(f.filtered(filter), limit, offset), nil
}

func (f *fakeTourRepo) Count(ctx context.Context, filter repository.TourFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.filtered(filter))), nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	tours    *fakeTourRepo
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Reserve(ctx context.Context, booking *entity.Booking) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tours.mu.Lock()
	defer f.tours.mu.Unlock()

	tour := f.tours.findLocked(booking.TourID)
	if tour == nil || tour.AvailableSpots < booking.NumberOfPersons {
		return false, nil
	}
	tour.AvailableSpots -= booking.NumberOfPersons
	f.bookings = append(f.bookings, booking)
	return true, nil
}

func (f *fakeBookingRepo) Release(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tours.mu.Lock()
	if tour := f.tours.findLocked(booking.TourID); tour != nil {
		tour.AvailableSpots += booking.NumberOfPersons
	}
	f.tours.mu.Unlock()

	for i, b := range f.bookings {
		if b.ID == booking.ID {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return page(out, limit, offset), nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return page(append([]*entity.Booking(nil), f.bookings...), limit, offset), nil
}

func (f *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.bookings {
		if b.TourID == tourID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b.Status = status
			return nil
		}
	}
	return nil
}

type fakeLikeRepo struct {
	mu    sync.Mutex
	likes []*entity.Like
}

func (f *fakeLikeRepo) Create(ctx context.Context, like *entity.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.likes {
		if l.UserID == like.UserID && l.TourID == like.TourID {
			return repository.ErrDuplicate
		}
	}
	f.likes = append(f.likes, like)
	return nil
}

func (f *fakeLikeRepo) Find(ctx context.Context, userID, tourID uuid.UUID) (*entity.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.likes {
		if l.UserID == userID && l.TourID == tourID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLikeRepo) Delete(ctx context.Context, userID, tourID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.likes {
		if l.UserID == userID && l.TourID == tourID {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeLikeRepo) FindByTourID(ctx context.Context, tourID uuid.UUID, limit, offset int) ([]*entity.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Like
	for _, l := range f.likes {
		if l.TourID == tourID {
			out = append(out, l)
		}
	}
	return page(out, limit, offset), nil
}

func (f *fakeLikeRepo) CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, l := range f.likes {
		if l.TourID == tourID {
			n++
		}
	}
	return n, nil
}

type fakeFollowRepo struct {
	mu      sync.Mutex
	follows []*entity.Follow
}

func (f *fakeFollowRepo) Create(ctx context.Context, follow *entity.Follow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fl := range f.follows {
		if fl.FollowerID == follow.FollowerID && fl.FollowingID == follow.FollowingID {
			return repository.ErrDuplicate
		}
	}
	f.follows = append(f.follows, follow)
	return nil
}

func (f *fakeFollowRepo) Find(ctx context.Context, followerID, followingID uuid.UUID) (*entity.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fl := range f.follows {
		if fl.FollowerID == followerID && fl.FollowingID == followingID {
			return fl, nil
		}
	}
	return nil, nil
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, fl := range f.follows {
		if fl.FollowerID == followerID && fl.FollowingID == followingID {
			f.follows = append(f.follows[:i], f.follows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeFollowRepo) FindFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Follow
	for _, fl := range f.follows {
		if fl.FollowingID == userID {
			out = append(out, fl)
		}
	}
	return page(out, limit, offset), nil
}

func (f *fakeFollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, fl := range f.follows {
		if fl.FollowingID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeFollowRepo) FindFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Follow
	for _, fl := range f.follows {
		if fl.FollowerID == userID {
			out = append(out, fl)
		}
	}
	return page(out, limit, offset), nil
}

func (f *fakeFollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, fl := range f.follows {
		if fl.FollowerID == userID {
			n++
		}
	}
	return n, nil
}

// recordingNotifier captures published relay events in order.
type recordingNotifier struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	Event       string
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
}

func (n *recordingNotifier) Publish(event string, followerID, followingID uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, publishedEvent{event, followerID, followingID})
}

func (n *recordingNotifier) Events() []publishedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]publishedEvent(nil), n.events...)
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

type fixture struct {
	repo     *repository.Repository
	users    *fakeUserRepo
	tours    *fakeTourRepo
	bookings *fakeBookingRepo
	likes    *fakeLikeRepo
	follows  *fakeFollowRepo
	notifier *recordingNotifier
}

func newFixture() *fixture {
	users := &fakeUserRepo{}
	tours := &fakeTourRepo{}
	bookings := &fakeBookingRepo{tours: tours}
	likes := &fakeLikeRepo{}
	follows := &fakeFollowRepo{}

	return &fixture{
		repo: &repository.Repository{
			User:    users,
			Tour:    tours,
			Booking: bookings,
			Like:    likes,
			Follow:  follows,
		},
		users:    users,
		tours:    tours,
		bookings: bookings,
		likes:    likes,
		follows:  follows,
		notifier: &recordingNotifier{},
	}
}

func (f *fixture) addUser(username string, role entity.Role) *entity.User {
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:    "Test",
		LastName:     "Tester",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$irrelevant",
		Role:         role,
	}
	f.users.users = append(f.users.users, user)
	return user
}

func (f *fixture) addTour(title string, price float64, spots int) *entity.Tour {
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:          title,
		Destination:    "Bali",
		Price:          decimal.NewFromFloat(price),
		Duration:       3,
		AvailableSpots: spots,
		IsActive:       true,
	}
	f.tours.tours = append(f.tours.tours, tour)
	return tour
}
