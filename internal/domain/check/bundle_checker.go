package check

import (
	"fmt"
	"strings"

	"github.com/abdidvp/bundleverify/internal/domain"
)

// SelfCheck scans the reference entry for keys whose value is blank after
// trimming and returns one error message per such key, in load order.
func SelfCheck(ref domain.BundleEntry) []string {
	var errs []string
	for _, k := range BlankKeys(ref) {
		errs = append(errs, noValueMessage(k))
	}
	return errs
}

// BlankKeys returns the keys of e whose value is blank after trimming, in load order.
func BlankKeys(e domain.BundleEntry) []string {
	var keys []string
	for _, p := range e.Properties.Pairs() {
		if isBlank(p.Value) {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// CompareEntry checks every key of the reference entry against cmp.
// The reference key set is authoritative; keys only present in cmp are ignored.
func CompareEntry(ref, cmp domain.BundleEntry) domain.ValidationResult {
	result := domain.ValidationResult{File: cmp.Path}

	for _, p := range ref.Properties.Pairs() {
		result.TotalEntries++

		value, ok := cmp.Properties.Get(p.Key)
		switch {
		case !ok:
			result.MissingEntries++
			result.Errors = append(result.Errors, fmt.Sprintf("The key %q is missing.", p.Key))
		case isBlank(value):
			result.EmptyValues++
			result.Errors = append(result.Errors, noValueMessage(p.Key))
		case value == p.Value:
			result.SameValueAsMain++
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("The key %q has the same value as the main file (%q). Please check it out.", p.Key, value))
		}
	}

	return result
}

func noValueMessage(key string) string {
	return fmt.Sprintf("The key %q has no value. Please check it out.", key)
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}
