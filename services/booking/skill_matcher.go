package booking

import (
	"fmt"
	"strings"

	"beautyspa/models"

	"go.uber.org/zap"
)

// skillKeyword maps a keyword found in a service name to the synonym set
// accepted in staff skill text. Order matters: the first key found in the
// service name wins, so "hair removal" must sit before "hair".
type skillKeyword struct {
	key      string
	synonyms []string
}

var skillKeywords = []skillKeyword{
	{"facial", []string{"facial", "skin", "skincare", "chăm sóc da"}},
	{"massage", []string{"massage", "therapy", "mát xa", "trị liệu"}},
	{"hair removal", []string{"hair removal", "waxing", "tẩy lông"}},
	{"hair", []string{"hair", "tóc", "styling"}},
	{"nail", []string{"nail", "manicure", "pedicure", "móng"}},
	{"spa", []string{"spa", "wellness"}},
}

// SkillEvalFunc decides whether one staff member matches a service. Split out
// so tests can inject failing evaluators.
type SkillEvalFunc func(staff models.StaffMember, service models.Service) (bool, error)

// SkillMatcher narrows a roster to staff whose declared skills or role are
// compatible with the selected service.
type SkillMatcher struct {
	Evaluate SkillEvalFunc
	// FailOpen decides what to do when evaluating a single member errors.
	// The default policy includes the member so a bad record never hides a
	// potentially qualified person from the customer.
	FailOpen bool
	Logger   *zap.Logger
}

// NewSkillMatcher returns a matcher with the default evaluator and fail-open
// policy.
func NewSkillMatcher(logger *zap.Logger) *SkillMatcher {
	return &SkillMatcher{
		Evaluate: EvaluateSkillMatch,
		FailOpen: true,
		Logger:   logger,
	}
}

// Filter applies the evaluator to each member independently. An evaluation
// error affects only that member and is resolved by the failure policy.
func (m *SkillMatcher) Filter(staff []models.StaffMember, service models.Service) []models.StaffMember {
	out := make([]models.StaffMember, 0, len(staff))
	for _, member := range staff {
		matched, err := m.Evaluate(member, service)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Warn("skill evaluation failed",
					zap.String("staffId", member.ID),
					zap.String("service", service.Name),
					zap.Error(err))
			}
			matched = m.FailOpen
		}
		if matched {
			out = append(out, member)
		}
	}
	return out
}

// EvaluateSkillMatch is the default evaluator. Step 1 looks for the service
// name itself in the member's skill text or role. Step 2 expands the service
// name through the keyword table and accepts any synonym. If no keyword key
// appears in the service name, the step-1 result stands.
func EvaluateSkillMatch(staff models.StaffMember, service models.Service) (bool, error) {
	name := strings.ToLower(strings.TrimSpace(service.Name))
	if name == "" {
		return false, fmt.Errorf("service %q has an empty name", service.ID)
	}

	skills := strings.ToLower(staff.SkillsText)
	role := strings.ToLower(staff.RoleName)

	if strings.Contains(skills, name) || strings.Contains(role, name) {
		return true, nil
	}

	for _, kw := range skillKeywords {
		if !strings.Contains(name, kw.key) {
			continue
		}
		for _, syn := range kw.synonyms {
			if strings.Contains(skills, syn) || strings.Contains(role, syn) {
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}
