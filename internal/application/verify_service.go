package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abdidvp/bundleverify/internal/domain"
	"github.com/abdidvp/bundleverify/internal/domain/check"
)

const successBanner = "LOCALE VERIFICATION SUCCESSFUL"

// VerifyService orchestrates the verification pipeline:
// validate config -> load reference -> self-check -> load locales -> cross-check -> report.
type VerifyService struct {
	loader domain.BundleLoader
}

func NewVerifyService(loader domain.BundleLoader) *VerifyService {
	return &VerifyService{loader: loader}
}

// Assemble loads the reference file followed by every comparison file, in
// order, and returns them as a BundleSet. The first load failure aborts.
func (s *VerifyService) Assemble(cfg domain.RunConfig) (*domain.BundleSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ref, err := s.load(cfg.ReferenceFile)
	if err != nil {
		return nil, err
	}

	set := domain.NewBundleSet(ref)
	if err := s.loadComparisons(set, cfg.ComparisonFiles); err != nil {
		return nil, err
	}
	return set, nil
}

// Verify runs a full verification and writes progress to rep.
//
// A reference file with blank values ends the run before any locale file is
// loaded. Otherwise every locale file is checked and reported, and a
// *domain.ValidationError is returned if any of them has missing or empty
// entries. The summary is returned whenever cross-checks ran.
func (s *VerifyService) Verify(cfg domain.RunConfig, rep domain.Reporter) (*domain.RunSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ref, err := s.load(cfg.ReferenceFile)
	if err != nil {
		return nil, err
	}

	if err := selfCheck(ref, rep); err != nil {
		return nil, err
	}

	set := domain.NewBundleSet(ref)
	if err := s.loadComparisons(set, cfg.ComparisonFiles); err != nil {
		return nil, err
	}

	summary := crossCheck(set, rep)
	if !summary.Passed() {
		return summary, &domain.ValidationError{
			Reason: fmt.Sprintf("there are missing/empty entries in your locale resources (%d of %d files failed)",
				len(summary.FailedFiles()), len(summary.Results)),
		}
	}

	rep.Separator()
	rep.Success(successBanner)
	rep.Separator()
	return summary, nil
}

func (s *VerifyService) load(path string) (domain.BundleEntry, error) {
	props, err := s.loader.Load(path)
	if err != nil {
		return domain.BundleEntry{}, err
	}
	return domain.BundleEntry{Path: path, Properties: props}, nil
}

func (s *VerifyService) loadComparisons(set *domain.BundleSet, paths []string) error {
	for _, p := range paths {
		e, err := s.load(p)
		if err != nil {
			return err
		}
		set.Add(e)
	}
	return nil
}

func selfCheck(ref domain.BundleEntry, rep domain.Reporter) error {
	name := filepath.Base(ref.Path)
	fileHeader(rep, name)

	for _, msg := range check.SelfCheck(ref) {
		rep.Error(msg)
	}
	if keys := check.BlankKeys(ref); len(keys) > 0 {
		return &domain.ValidationError{
			File:   name,
			Reason: "has keys with no value defined: " + strings.Join(keys, ", "),
		}
	}
	return nil
}

func crossCheck(set *domain.BundleSet, rep domain.Reporter) *domain.RunSummary {
	ref := set.Reference()
	summary := &domain.RunSummary{ReferenceFile: ref.Path}

	rep.Info("Main bundle resource file: " + ref.Path)
	rep.Info(fmt.Sprintf("Total entries: %d", ref.Properties.Len()))

	for _, cmp := range set.Comparisons() {
		fileHeader(rep, cmp.Path)

		result := check.CompareEntry(ref, cmp)
		for _, msg := range result.Warnings {
			rep.Warn(msg)
		}
		for _, msg := range result.Errors {
			rep.Error(msg)
		}
		rep.Info(fmt.Sprintf("Total: %d, Empty Values: %d, Same Values: %d, Missing Entries: %d",
			result.TotalEntries, result.EmptyValues, result.SameValueAsMain, result.MissingEntries))

		summary.Results = append(summary.Results, result)
	}

	return summary
}

func fileHeader(rep domain.Reporter, name string) {
	rep.Separator()
	rep.Info("Checking file: " + name)
	rep.Separator()
}
