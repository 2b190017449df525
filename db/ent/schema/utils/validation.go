package utils

import "fmt"

// EnumValidator builds an ent string validator that accepts only the
// listed values. The invoice status column uses it to reject anything
// outside the uppercase status set.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; !ok {
			return fmt.Errorf("value %q is not allowed", s)
		}
		return nil
	}
}
