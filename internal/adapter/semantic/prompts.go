package semantic

import (
	"encoding/json"
	"fmt"
)

const categorySystemPrompt = "You are a legal compliance auditor for advertising. " +
	"You perform semantic analysis of content categories. You respond only with JSON."

const toneSystemPrompt = "You are a legal compliance auditor for advertising. " +
	"You judge whether ad copy matches a required brand tone. You respond only with JSON."

func categoryPrompt(selected, forbidden []string) string {
	return fmt.Sprintf(`Compare the following selected genres for an ad campaign against the forbidden genres list from a legal contract.
Selected Genres: %s
Forbidden Genres: %s

Check for semantic overlaps. For example, if 'Horror' is forbidden and 'Slasher' is selected, that is a conflict.

Return ONLY a JSON array of objects with this structure:
[{"genre": "selected_genre", "forbidden_match": "forbidden_genre", "reason": "why it matches"}]
If no matches, return an empty array [].`, jsonList(selected), jsonList(forbidden))
}

func tonePrompt(text, tone string) string {
	return fmt.Sprintf(`Decide whether the following ad copy violates the required tone from a legal contract.
Ad Copy: %q
Required Tone: %q

Return ONLY a JSON object with this structure:
{"violates": true or false, "reason": "short explanation"}`, text, tone)
}

func jsonList(values []string) string {
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}
