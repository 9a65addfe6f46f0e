package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v Version) *Version { return &v }

func Test_FeatureSet_Unconditional(t *testing.T) {
	t.Parallel()

	assert.True(t, NewFeatureSet(nil).Unconditional())
	assert.False(t, NewFeatureSet(ptr(Version{1, 1})).Unconditional())
	assert.False(t, NewFeatureSet(nil, "EXT_hand_interaction").Unconditional())
	assert.False(t, FeatureSet{Never: true}.Unconditional())
}

func Test_FeatureSet_Intersect_VersionTakesStricter(t *testing.T) {
	t.Parallel()

	a := NewFeatureSet(ptr(Version{1, 0}))
	b := NewFeatureSet(ptr(Version{1, 1}))

	got := a.Intersect(b)
	require.NotNil(t, got.MinVersion)
	assert.Equal(t, Version{1, 1}, *got.MinVersion)
}

func Test_FeatureSet_Intersect_ExtensionsUnion(t *testing.T) {
	t.Parallel()

	a := NewFeatureSet(nil, "EXT_b")
	b := NewFeatureSet(nil, "EXT_a", "EXT_b")

	got := a.Intersect(b)
	assert.Nil(t, got.MinVersion)
	assert.Equal(t, []string{"EXT_a", "EXT_b"}, got.Extensions)
}

func Test_FeatureSet_Intersect_VersionSurvivesOneSided(t *testing.T) {
	t.Parallel()

	a := NewFeatureSet(ptr(Version{1, 1}))
	b := NewFeatureSet(nil, "BD_controller_interaction")

	got := a.Intersect(b)
	require.NotNil(t, got.MinVersion)
	assert.Equal(t, Version{1, 1}, *got.MinVersion)
	assert.Equal(t, []string{"BD_controller_interaction"}, got.Extensions)
}

func Test_FeatureSet_Intersect_NeverIsSticky(t *testing.T) {
	t.Parallel()

	never := FeatureSet{Never: true}
	got := never.Intersect(NewFeatureSet(nil, "EXT_a"))
	assert.True(t, got.Never)
}

func Test_FeatureSet_Compare_VersionFreeFirst(t *testing.T) {
	t.Parallel()

	extOnly := NewFeatureSet(nil, "EXT_a")
	versioned := NewFeatureSet(ptr(Version{1, 0}))

	assert.Negative(t, extOnly.Compare(versioned))
	assert.Positive(t, versioned.Compare(extOnly))
	assert.Zero(t, extOnly.Compare(NewFeatureSet(nil, "EXT_a")))
}

func Test_NewAvailability_DropsNeverAndDeduplicates(t *testing.T) {
	t.Parallel()

	a := NewAvailability(
		NewFeatureSet(nil, "EXT_a"),
		FeatureSet{Never: true},
		NewFeatureSet(nil, "EXT_a"),
	)

	require.Len(t, a.FeatureSets, 1)
	assert.Equal(t, []string{"EXT_a"}, a.FeatureSets[0].Extensions)
	assert.False(t, a.IsNever())
}

func Test_NewAvailability_Empty_IsNever(t *testing.T) {
	t.Parallel()

	assert.True(t, NewAvailability().IsNever())
	assert.True(t, NewAvailability(FeatureSet{Never: true}).IsNever())
}

func Test_Availability_Intersection_Pairwise(t *testing.T) {
	t.Parallel()

	// Child reachable via extension OR version 1.1, parent requires
	// its own extension. Both alternatives must survive, each picking
	// up the parent requirement.
	child := NewAvailability(
		NewFeatureSet(nil, "BD_controller_interaction"),
		NewFeatureSet(ptr(Version{1, 1})),
	)
	parent := NewAvailability(NewFeatureSet(nil, "EXT_palm_pose"))

	got := child.Intersection(parent)
	require.Len(t, got.FeatureSets, 2)

	assert.Equal(t, []string{"BD_controller_interaction", "EXT_palm_pose"}, got.FeatureSets[0].Extensions)
	assert.Nil(t, got.FeatureSets[0].MinVersion)

	assert.Equal(t, []string{"EXT_palm_pose"}, got.FeatureSets[1].Extensions)
	require.NotNil(t, got.FeatureSets[1].MinVersion)
	assert.Equal(t, Version{1, 1}, *got.FeatureSets[1].MinVersion)
}

func Test_Availability_Intersection_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := NewAvailability(NewFeatureSet(nil, "EXT_a"), NewFeatureSet(ptr(Version{1, 1})))
	b := NewAvailability(NewFeatureSet(nil, "EXT_b"))
	c := NewAvailability(NewFeatureSet(ptr(Version{1, 0})))

	left := a.Intersection(b).Intersection(c)
	right := a.Intersection(b.Intersection(c))

	assert.Equal(t, left.Key(), right.Key())
}

func Test_Availability_Key_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewAvailability(NewFeatureSet(ptr(Version{1, 1})), NewFeatureSet(nil, "EXT_a"))
	b := NewAvailability(NewFeatureSet(nil, "EXT_a"), NewFeatureSet(ptr(Version{1, 1})))

	assert.Equal(t, a.Key(), b.Key())
}
