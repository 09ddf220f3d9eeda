package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acest-fitness/gym-service/internal/domain"
)

func TestDefaultCatalog_Members(t *testing.T) {
	ctx := context.Background()
	c := DefaultCatalog()

	members, err := c.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)

	want := map[int]domain.Member{
		1: {ID: 1, Name: "Taylor", Age: 25, Membership: domain.MembershipGold},
		2: {ID: 2, Name: "Travis", Age: 30, Membership: domain.MembershipSilver},
		3: {ID: 3, Name: "Harry", Age: 28, Membership: domain.MembershipPlatinum},
	}
	for id, expected := range want {
		got, err := c.GetMember(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, expected, *got)
	}
}

func TestCatalog_GetMemberUnknown(t *testing.T) {
	c := DefaultCatalog()

	for _, id := range []int{0, -1, 4, 999} {
		_, err := c.GetMember(context.Background(), id)
		assert.ErrorIs(t, err, ErrMemberNotFound, "id=%d", id)
	}
}

func TestCatalog_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	c := DefaultCatalog()

	workouts, err := c.ListWorkouts(ctx)
	require.NoError(t, err)
	workouts[0].Name = "mutated"

	members, err := c.ListMembers(ctx)
	require.NoError(t, err)
	delete(members, 1)

	member, err := c.GetMember(ctx, 2)
	require.NoError(t, err)
	member.Name = "mutated"

	again, err := c.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cardio Blast", again[0].Name)

	membersAgain, err := c.ListMembers(ctx)
	require.NoError(t, err)
	assert.Contains(t, membersAgain, 1)

	memberAgain, err := c.GetMember(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Travis", memberAgain.Name)
}

func TestNewCatalog_OrdersSequencesByID(t *testing.T) {
	c := NewCatalog(nil,
		[]domain.Workout{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
		[]domain.Trainer{{ID: 2, Name: "y"}, {ID: 1, Name: "x"}},
		[]domain.Class{{ID: 9, Name: "late"}, {ID: 4, Name: "early"}},
	)
	ctx := context.Background()

	workouts, _ := c.ListWorkouts(ctx)
	assert.Equal(t, []int{1, 2, 3}, []int{workouts[0].ID, workouts[1].ID, workouts[2].ID})

	trainers, _ := c.ListTrainers(ctx)
	assert.Equal(t, "x", trainers[0].Name)

	classes, _ := c.ListClasses(ctx)
	assert.Equal(t, "early", classes[0].Name)

	members, _ := c.ListMembers(ctx)
	assert.Empty(t, members)
}

func TestDefaultCatalog_ListsAreStable(t *testing.T) {
	ctx := context.Background()
	c := DefaultCatalog()

	first, err := c.ListClasses(ctx)
	require.NoError(t, err)
	second, err := c.ListClasses(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	trainers, err := c.ListTrainers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Trainer{
		{ID: 1, Name: "Coach Mike", Specialty: "Strength"},
		{ID: 2, Name: "Coach Sarah", Specialty: "Yoga"},
	}, trainers)
}
