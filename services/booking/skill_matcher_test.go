package booking

import (
	"errors"
	"testing"

	"beautyspa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEvaluateSkillMatchDirect(t *testing.T) {
	staff := models.StaffMember{ID: "s1", SkillsText: "deep tissue massage, hot stone"}
	ok, err := EvaluateSkillMatch(staff, models.Service{ID: "svc", Name: "Massage"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateSkillMatchViaRole(t *testing.T) {
	staff := models.StaffMember{ID: "s1", SkillsText: "", RoleName: "Nail Technician"}
	ok, err := EvaluateSkillMatch(staff, models.Service{ID: "svc", Name: "Nail Art"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateSkillMatchSynonymExpansion(t *testing.T) {
	tests := []struct {
		name    string
		service string
		skills  string
		want    bool
	}{
		{"skincare counts for facial", "Facial Treatment", "skincare specialist", true},
		{"vietnamese synonym", "Facial Treatment", "chăm sóc da", true},
		{"therapy counts for massage", "Relaxing Massage", "aroma therapy", true},
		{"waxing counts for hair removal", "Hair Removal", "waxing", true},
		{"styling counts for hair", "Hair Styling", "styling, coloring", true},
		{"hair removal does not fall through to hair", "Hair Removal", "tóc, styling", false},
		{"unrelated skills rejected", "Massage", "nail art", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			staff := models.StaffMember{ID: "s1", SkillsText: tc.skills}
			ok, err := EvaluateSkillMatch(staff, models.Service{ID: "svc", Name: tc.service})
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestEvaluateSkillMatchUnknownServiceName(t *testing.T) {
	// No keyword appears in the service name and no direct hit: excluded.
	staff := models.StaffMember{ID: "s1", SkillsText: "massage"}
	ok, err := EvaluateSkillMatch(staff, models.Service{ID: "svc", Name: "Hot Yoga Class"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateSkillMatchEmptyServiceName(t *testing.T) {
	_, err := EvaluateSkillMatch(models.StaffMember{ID: "s1"}, models.Service{ID: "svc", Name: "  "})
	assert.Error(t, err)
}

func TestSkillFilterFailOpen(t *testing.T) {
	staff := []models.StaffMember{{ID: "ok"}, {ID: "broken"}}
	m := &SkillMatcher{
		FailOpen: true,
		Logger:   zap.NewNop(),
		Evaluate: func(s models.StaffMember, _ models.Service) (bool, error) {
			if s.ID == "broken" {
				return false, errors.New("corrupt skill record")
			}
			return true, nil
		},
	}
	got := m.Filter(staff, models.Service{ID: "svc", Name: "Massage"})
	// The failing member is kept, not dropped.
	assert.Equal(t, []string{"ok", "broken"}, staffIDs(got))
}

func TestSkillFilterFailClosed(t *testing.T) {
	staff := []models.StaffMember{{ID: "broken"}}
	m := &SkillMatcher{
		FailOpen: false,
		Logger:   zap.NewNop(),
		Evaluate: func(models.StaffMember, models.Service) (bool, error) {
			return true, errors.New("boom")
		},
	}
	assert.Empty(t, m.Filter(staff, models.Service{ID: "svc", Name: "Massage"}))
}

func TestSkillFilterErrorIsPerMember(t *testing.T) {
	// One member erroring never affects the verdict for the others.
	staff := roster("a", "b", "c")
	m := &SkillMatcher{
		FailOpen: false,
		Logger:   zap.NewNop(),
		Evaluate: func(s models.StaffMember, _ models.Service) (bool, error) {
			if s.ID == "b" {
				return false, errors.New("bad record")
			}
			return true, nil
		},
	}
	got := m.Filter(staff, models.Service{ID: "svc", Name: "Massage"})
	assert.Equal(t, []string{"a", "c"}, staffIDs(got))
}
