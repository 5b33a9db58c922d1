package borrow

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
)

type Status string

const (
	StatusBorrowed Status = "borrowed"
	StatusReturned Status = "returned"
)

type Condition string

const (
	ConditionGood        Condition = "good"
	ConditionDamaged     Condition = "damaged"
	ConditionNeedsRepair Condition = "needs_repair"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionGood, ConditionDamaged, ConditionNeedsRepair:
		return true
	default:
		return false
	}
}

// NeedsMaintenance reports whether a return in this condition goes to the repair queue.
func (c Condition) NeedsMaintenance() bool {
	return c == ConditionDamaged || c == ConditionNeedsRepair
}

func ParseCondition(s string) (Condition, error) {
	c := Condition(s)
	if !c.IsValid() {
		return "", errs.Validationf("unknown return condition %q", s)
	}
	return c, nil
}
