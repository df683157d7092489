package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/sm107-uiuc/sparemate-hub/internal/converter"
	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	storefrontv1 "github.com/sm107-uiuc/sparemate-hub/shared/pkg/api/storefront/v1"
)

func (h *handler) listParts(w http.ResponseWriter, r *http.Request) {
	filter, sortBy, err := parsePartsQuery(r.URL.Query())
	if err != nil {
		respondError(w, r, err)
		return
	}

	parts, err := h.parts.ListParts(r.Context(), filter, sortBy)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, storefrontv1.PartsResponse{
		Success: true,
		Parts:   converter.PartsToAPI(parts),
	})
}

func (h *handler) part(w http.ResponseWriter, r *http.Request) {
	part, err := h.parts.Part(r.Context(), chi.URLParam(r, "partId"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, storefrontv1.PartResponse{
		Success: true,
		Part:    converter.PartToAPI(part),
	})
}

func (h *handler) facets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.parts.Facets(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, storefrontv1.FacetsResponse{
		Success: true,
		Facets:  converter.FacetsToAPI(facets),
	})
}

// parsePartsQuery reads q, category, manufacturer, minPrice, maxPrice,
// compatibility, inStock and sort. Repeated and comma separated values are
// both accepted for category and manufacturer.
func parsePartsQuery(q url.Values) (model.PartsFilter, model.SortOption, error) {
	filter := model.PartsFilter{
		Query:         q.Get("q"),
		Compatibility: q.Get("compatibility"),
	}
	if cats := multi(q, "category"); len(cats) > 0 {
		filter.Categories = lo.Map(cats, func(c string, _ int) model.Category { return model.Category(c) })
	}
	if mfrs := multi(q, "manufacturer"); len(mfrs) > 0 {
		filter.Manufacturers = mfrs
	}

	minPrice, hasMin, err := floatParam(q, "minPrice")
	if err != nil {
		return model.PartsFilter{}, "", err
	}
	maxPrice, hasMax, err := floatParam(q, "maxPrice")
	if err != nil {
		return model.PartsFilter{}, "", err
	}
	if hasMin || hasMax {
		if !hasMax {
			maxPrice = math.MaxFloat64
		}
		if minPrice > maxPrice {
			return model.PartsFilter{}, "", fmt.Errorf("%w: minPrice is greater than maxPrice", model.ErrInvalidArgument)
		}
		filter.PriceRange = &model.PriceRange{Min: minPrice, Max: maxPrice}
	}

	if v := q.Get("inStock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			return model.PartsFilter{}, "", errors.Join(model.ErrInvalidArgument, fmt.Errorf("inStock: %q is not a boolean", v))
		}
		filter.InStockOnly = inStock
	}

	sortBy, err := model.ParseSortOption(q.Get("sort"))
	if err != nil {
		return model.PartsFilter{}, "", err
	}

	return filter, sortBy, nil
}

func multi(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return lo.Uniq(out)
}

func floatParam(q url.Values, key string) (float64, bool, error) {
	v := q.Get(key)
	if v == "" {
		return 0, false, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, errors.Join(model.ErrInvalidArgument, fmt.Errorf("%s: %q is not a valid price", key, v))
	}

	return f, true, nil
}
