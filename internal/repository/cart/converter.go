package repository

import (
	"encoding/json"
	"fmt"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

func EntitiesToModel(items []LineEntity) []model.CartLine {
	out := make([]model.CartLine, 0, len(items))
	for _, it := range items {
		out = append(out, model.CartLine{PartID: it.PartID, Quantity: it.Quantity})
	}
	return out
}

func EntitiesFromModel(lines []model.CartLine) []LineEntity {
	out := make([]LineEntity, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineEntity{PartID: l.PartID, Quantity: l.Quantity})
	}
	return out
}

// Encode serialises lines to the text form kept by key-value stores.
func Encode(lines []model.CartLine) ([]byte, error) {
	data, err := json.Marshal(EntitiesFromModel(lines))
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	return data, nil
}

// Decode parses stored text. Lines that cannot be valid are migrated away by
// Sanitize; the second result reports whether that happened.
func Decode(data []byte) ([]model.CartLine, bool, error) {
	var items []LineEntity
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("%w: %v", model.ErrMalformedCart, err)
	}

	lines, migrated := Sanitize(EntitiesToModel(items))
	return lines, migrated, nil
}

// Sanitize drops lines with an empty part id or a quantity below one and
// merges duplicate part ids into the first occurrence.
func Sanitize(lines []model.CartLine) ([]model.CartLine, bool) {
	out := make([]model.CartLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	migrated := false

	for _, l := range lines {
		if l.PartID == "" || l.Quantity < 1 {
			migrated = true
			continue
		}
		if i, ok := index[l.PartID]; ok {
			out[i].Quantity += l.Quantity
			migrated = true
			continue
		}
		index[l.PartID] = len(out)
		out = append(out, l)
	}

	return out, migrated
}
