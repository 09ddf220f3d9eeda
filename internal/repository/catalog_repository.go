package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/acest-fitness/gym-service/internal/domain"
)

// ErrMemberNotFound is returned when a member id is not in the catalog.
var ErrMemberNotFound = errors.New("member not found")

// CatalogRepository defines read access to the gym catalog.
type CatalogRepository interface {
	ListMembers(ctx context.Context) (map[int]domain.Member, error)
	GetMember(ctx context.Context, id int) (*domain.Member, error)
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
	ListClasses(ctx context.Context) ([]domain.Class, error)
}

// Catalog is an immutable snapshot of the gym catalog. It is built once at
// startup and every read returns a copy, so it is safe for concurrent use
// without locking.
type Catalog struct {
	members  map[int]domain.Member
	workouts []domain.Workout
	trainers []domain.Trainer
	classes  []domain.Class
}

// NewCatalog builds a snapshot from the given records. Sequences are ordered by id.
// A later member with a duplicate id replaces the earlier one.
func NewCatalog(members []domain.Member, workouts []domain.Workout, trainers []domain.Trainer, classes []domain.Class) *Catalog {
	c := &Catalog{
		members:  make(map[int]domain.Member, len(members)),
		workouts: append([]domain.Workout(nil), workouts...),
		trainers: append([]domain.Trainer(nil), trainers...),
		classes:  append([]domain.Class(nil), classes...),
	}
	for _, m := range members {
		c.members[m.ID] = m
	}
	sort.SliceStable(c.workouts, func(i, j int) bool { return c.workouts[i].ID < c.workouts[j].ID })
	sort.SliceStable(c.trainers, func(i, j int) bool { return c.trainers[i].ID < c.trainers[j].ID })
	sort.SliceStable(c.classes, func(i, j int) bool { return c.classes[i].ID < c.classes[j].ID })
	return c
}

// DefaultCatalog returns the built-in sample data.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]domain.Member{
			{ID: 1, Name: "Taylor", Age: 25, Membership: domain.MembershipGold},
			{ID: 2, Name: "Travis", Age: 30, Membership: domain.MembershipSilver},
			{ID: 3, Name: "Harry", Age: 28, Membership: domain.MembershipPlatinum},
		},
		[]domain.Workout{
			{ID: 1, Name: "Cardio Blast", Duration: "30 mins"},
			{ID: 2, Name: "Strength Training", Duration: "45 mins"},
			{ID: 3, Name: "Yoga Flex", Duration: "60 mins"},
		},
		[]domain.Trainer{
			{ID: 1, Name: "Coach Mike", Specialty: "Strength"},
			{ID: 2, Name: "Coach Sarah", Specialty: "Yoga"},
		},
		[]domain.Class{
			{ID: 1, Name: "Morning Yoga", Time: "7 AM"},
			{ID: 2, Name: "HIIT", Time: "6 PM"},
		},
	)
}

func (c *Catalog) ListMembers(_ context.Context) (map[int]domain.Member, error) {
	out := make(map[int]domain.Member, len(c.members))
	for id, m := range c.members {
		out[id] = m
	}
	return out, nil
}

func (c *Catalog) GetMember(_ context.Context, id int) (*domain.Member, error) {
	m, ok := c.members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	return &m, nil
}

func (c *Catalog) ListWorkouts(_ context.Context) ([]domain.Workout, error) {
	return append([]domain.Workout{}, c.workouts...), nil
}

func (c *Catalog) ListTrainers(_ context.Context) ([]domain.Trainer, error) {
	return append([]domain.Trainer{}, c.trainers...), nil
}

func (c *Catalog) ListClasses(_ context.Context) ([]domain.Class, error) {
	return append([]domain.Class{}, c.classes...), nil
}
