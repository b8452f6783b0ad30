package service

import (
	"context"
	"log/slog"

	"sayyara-vehicle-api/internal/catalog"
	"sayyara-vehicle-api/internal/matching"
	"sayyara-vehicle-api/internal/metrics"
	"sayyara-vehicle-api/internal/model"
	"sayyara-vehicle-api/internal/resolver"
)

// ValidationService is the engine's public entry point. It drives
// normalization, fuzzy correction and year-range resolution, and composes
// localized verdicts. Stateless per call; all state lives in the resolver's
// cache and the immutable catalog.
type ValidationService struct {
	catalog  *catalog.Catalog
	resolver *resolver.Resolver
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewValidationService creates the orchestrator.
func NewValidationService(cat *catalog.Catalog, res *resolver.Resolver, m *metrics.Metrics, logger *slog.Logger) *ValidationService {
	return &ValidationService{
		catalog:  cat,
		resolver: res,
		metrics:  m,
		logger:   logger,
	}
}

// Validate checks a raw brand/model/year triple and returns a structured
// verdict with localized feedback. It never fails: unknown vehicles degrade
// to generic sanity bounds flagged with Confidence false.
func (s *ValidationService) Validate(ctx context.Context, rawBrand, rawModel string, year int) model.ValidationVerdict {
	brandTok, brandResolved, suggestion := s.resolveBrand(rawBrand)

	// The user may have typed a model name where the brand belongs
	if !brandResolved {
		if inferredBrand, inferredModel, ok := s.catalog.ModelAsBrand(brandTok); ok {
			s.metrics.RecordVerdict(false)
			brandEN, brandAR := s.catalog.BrandDisplay(inferredBrand)
			modelDisplay := s.catalog.ModelDisplay(inferredBrand, inferredModel)
			return model.ValidationVerdict{
				IsValid: false,
				Message: modelAsBrandMessage(modelDisplay, brandEN, brandAR),
				Suggestion: &model.Suggestion{
					Field:          model.SuggestionBrand,
					CorrectedValue: inferredBrand,
				},
			}
		}
	}

	modelTok, modelSuggestion := s.resolveModel(brandTok, brandResolved, rawModel)
	if suggestion == nil {
		suggestion = modelSuggestion
	}

	rng := s.resolver.Resolve(ctx, brandTok, modelTok)
	isValid := rng.Contains(year)
	s.metrics.RecordVerdict(isValid)

	verdict := model.ValidationVerdict{
		IsValid:    isValid,
		Brand:      brandTok,
		Model:      modelTok,
		Year:       year,
		YearRange:  &rng,
		Suggestion: suggestion,
	}

	modelDisplay := s.catalog.ModelDisplay(brandTok, modelTok)
	if !isValid {
		verdict.Message = yearOutOfRangeMessage(modelDisplay, year, rng.MinYear, rng.MaxYear)
	} else if !rng.Confidence {
		verdict.Advisory = genericBoundsAdvisory()
	}

	return verdict
}

// ResolveYearRange resolves the production-year range for a raw brand/model
// pair without validating a year, for UIs that show the range up front.
func (s *ValidationService) ResolveYearRange(ctx context.Context, rawBrand, rawModel string) (brand, mdl string, rng model.YearRange) {
	brandTok, brandResolved, _ := s.resolveBrand(rawBrand)
	modelTok, _ := s.resolveModel(brandTok, brandResolved, rawModel)
	return brandTok, modelTok, s.resolver.Resolve(ctx, brandTok, modelTok)
}

// ClearCache drops all cached year ranges and reports how many were removed.
func (s *ValidationService) ClearCache() int {
	n := s.resolver.Cache().Clear()
	s.logger.Info("year-range cache cleared", "entries", n)
	return n
}

// resolveBrand normalizes the raw brand and fuzzy-corrects it against the
// alias table when exact lookup misses.
func (s *ValidationService) resolveBrand(rawBrand string) (token string, resolved bool, suggestion *model.Suggestion) {
	token, resolved = s.catalog.CanonicalBrand(rawBrand)
	if resolved || token == "" {
		return token, resolved, nil
	}

	corrected, ok := matching.Closest(token, s.catalog.BrandAliasTokens(), matching.MaxDistanceFor(token))
	if !ok {
		return token, false, nil
	}

	canonical, ok := s.catalog.BrandForAlias(corrected)
	if !ok {
		return token, false, nil
	}

	s.metrics.RecordCorrection("brand")
	s.logger.Debug("brand fuzzy-corrected", "input", token, "corrected", canonical)
	return canonical, true, &model.Suggestion{
		Field:          model.SuggestionBrand,
		CorrectedValue: canonical,
	}
}

// resolveModel normalizes the raw model and, when the brand is known,
// fuzzy-corrects it against that brand's model tokens.
func (s *ValidationService) resolveModel(brandTok string, brandResolved bool, rawModel string) (string, *model.Suggestion) {
	modelTok, matched := s.catalog.CanonicalModel(brandTok, rawModel)
	if matched || !brandResolved || modelTok == "" {
		return modelTok, nil
	}

	corrected, ok := matching.Closest(modelTok, s.catalog.ModelTokens(brandTok), matching.MaxDistanceFor(modelTok))
	if !ok {
		return modelTok, nil
	}

	s.metrics.RecordCorrection("model")
	s.logger.Debug("model fuzzy-corrected", "brand", brandTok, "input", modelTok, "corrected", corrected)
	return corrected, &model.Suggestion{
		Field:          model.SuggestionModel,
		CorrectedValue: corrected,
	}
}
