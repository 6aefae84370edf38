package bankroll

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateAccountName trims the name and checks it is not used yet.
func validateAccountName(name string, accounts []Account) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: account name is required", ErrInvalid)
	}
	for _, a := range accounts {
		if sameName(a.Name, name) {
			return "", fmt.Errorf("%w: account %q already exists", ErrInvalid, a.Name)
		}
	}
	return name, nil
}

// validateGoal accepts a positive goal, or zero to clear it.
func validateGoal(goal Money) error {
	if goal.IsNegative() {
		return fmt.Errorf("%w: goal must not be negative, got %s", ErrInvalid, goal.Fixed(2))
	}
	return nil
}

// validateSnapshot checks a balance entry before it is recorded. Any amount
// is a valid balance, an overdrawn account included.
func validateSnapshot(on Date) error {
	if on.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalid)
	}
	return nil
}
