package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"sort"

	"setsync/internal/core/domain"
)

// mergeUpdates applies per-section field overrides to a copy of base.
// Fields not named in updates keep their stored values. Each touched
// section is decoded strictly so unknown fields and wrong types are
// reported against that section.
func mergeUpdates(base *domain.Campaign, updates map[string]json.RawMessage) (*domain.Campaign, error) {
	if len(updates) == 0 {
		out := base.Clone()
		if err := out.Validate(); err != nil {
			return nil, err
		}
		return out, nil
	}

	raw, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	var doc map[string]json.RawMessage
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	sections := make([]string, 0, len(updates))
	for s := range updates {
		sections = append(sections, s)
	}
	sort.Strings(sections)

	for _, section := range sections {
		if !slices.Contains(domain.Sections, section) {
			return nil, &domain.ValidationError{Section: section, Reason: "unknown section"}
		}
		var patch map[string]json.RawMessage
		if err = json.Unmarshal(updates[section], &patch); err != nil || patch == nil {
			return nil, &domain.ValidationError{Section: section, Reason: "must be an object of field overrides"}
		}
		current := map[string]json.RawMessage{}
		if len(doc[section]) > 0 {
			if err = json.Unmarshal(doc[section], &current); err != nil {
				return nil, err
			}
		}
		for k, v := range patch {
			current[k] = v
		}
		merged, err := json.Marshal(current)
		if err != nil {
			return nil, err
		}
		if err = decodeSection(section, merged); err != nil {
			return nil, err
		}
		doc[section] = merged
	}

	raw, err = json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out domain.Campaign
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, &domain.ValidationError{Reason: err.Error()}
	}
	if err = out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func decodeSection(section string, data []byte) error {
	var target any
	switch section {
	case "audience":
		target = &domain.AudienceSettings{}
	case "optimization":
		target = &domain.OptimizationSettings{}
	case "creative":
		target = &domain.CreativeSettings{}
	case "copy":
		target = &domain.CopySettings{}
	case "timeframe":
		target = &domain.TimeframeSettings{}
	case "budget":
		target = &domain.BudgetSettings{}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		ve := &domain.ValidationError{Section: section, Reason: err.Error()}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			ve.Field = typeErr.Field
			ve.Reason = "expected " + typeErr.Type.String()
		}
		return ve
	}
	return nil
}
