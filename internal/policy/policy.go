// Package policy holds the tunable scoring and validation tables. All
// weights, penalties, vocabularies, and bounds used by the analyzers
// and the validator live here so that scoring policy can be adjusted
// or tested independently of parsing logic.
package policy

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Description configures description-quality scoring.
type Description struct {
	MinWords       int `toml:"min_words"`
	MaxWords       int `toml:"max_words"`
	ShortPenalty   int `toml:"short_penalty"`
	LongPenalty    int `toml:"long_penalty"`
	TriggerPenalty int `toml:"trigger_penalty"`
	VerbPenalty    int `toml:"verb_penalty"`
}

// Structure configures body-structure scoring.
type Structure struct {
	MaxLines             int `toml:"max_lines"`
	MinLines             int `toml:"min_lines"`
	LongBodyPenalty      int `toml:"long_body_penalty"`
	ShortBodyPenalty     int `toml:"short_body_penalty"`
	MissingH1Penalty     int `toml:"missing_h1_penalty"`
	MultipleH1Penalty    int `toml:"multiple_h1_penalty"`
	FewSectionsPenalty   int `toml:"few_sections_penalty"`
	MinSections          int `toml:"min_sections"`
	TodoPenalty          int `toml:"todo_penalty"`
	CodeExampleThreshold int `toml:"code_example_threshold"`
}

// Weights blends the sub-scores into the overall score.
type Weights struct {
	Description float64 `toml:"description"`
	Structure   float64 `toml:"structure"`
	Resources   float64 `toml:"resources"`
}

// Validation configures the hard bounds checked by validate.
type Validation struct {
	MinDescriptionChars int `toml:"min_description_chars"`
	MinBodyLines        int `toml:"min_body_lines"`
	MaxBodyLines        int `toml:"max_body_lines"`
	// MaxContentReduction is the proportional loss of non-empty body
	// lines tolerated before the regression check fires.
	MaxContentReduction float64 `toml:"max_content_reduction"`
}

// Policy is the full scoring and validation configuration.
type Policy struct {
	Description Description `toml:"description"`
	Structure   Structure   `toml:"structure"`
	Weights     Weights     `toml:"weights"`
	Validation  Validation  `toml:"validation"`

	// TriggerPhrases are matched case-insensitively as substrings of
	// the description; at least one must appear.
	TriggerPhrases []string `toml:"trigger_phrases"`
	// ActionVerbs are matched case-insensitively as whole words of the
	// description; at least one must appear.
	ActionVerbs []string `toml:"action_verbs"`
	// KnownFields are the header fields validate accepts.
	KnownFields []string `toml:"known_fields"`
	// DegradedResourceHealth is the resource-health sub-score used
	// when the inventory has issues; otherwise health is 100.
	DegradedResourceHealth int `toml:"degraded_resource_health"`
}

// Default returns the built-in policy tables.
func Default() Policy {
	return Policy{
		Description: Description{
			MinWords:       10,
			MaxWords:       100,
			ShortPenalty:   30,
			LongPenalty:    10,
			TriggerPenalty: 20,
			VerbPenalty:    10,
		},
		Structure: Structure{
			MaxLines:             500,
			MinLines:             20,
			LongBodyPenalty:      20,
			ShortBodyPenalty:     15,
			MissingH1Penalty:     15,
			MultipleH1Penalty:    10,
			FewSectionsPenalty:   10,
			MinSections:          2,
			TodoPenalty:          5,
			CodeExampleThreshold: 50,
		},
		Weights: Weights{
			Description: 0.3,
			Structure:   0.5,
			Resources:   0.2,
		},
		Validation: Validation{
			MinDescriptionChars: 20,
			MinBodyLines:        10,
			MaxBodyLines:        500,
			MaxContentReduction: 0.3,
		},
		TriggerPhrases: []string{
			"use when", "use for", "triggers on", "use this", "should be used",
		},
		ActionVerbs: []string{
			"create", "edit", "manage", "process", "handle",
			"generate", "analyze", "convert", "build",
		},
		KnownFields:            []string{"name", "description", "license"},
		DegradedResourceHealth: 80,
	}
}

// Load returns the default policy overlaid with the TOML file at
// path. An empty path returns the defaults unchanged.
func Load(path string) (Policy, error) {
	pol := Default()
	if path == "" {
		return pol, nil
	}
	if _, err := os.Stat(path); err != nil {
		return pol, fmt.Errorf("policy file: %w", err)
	}
	if _, err := toml.DecodeFile(path, &pol); err != nil {
		return pol, fmt.Errorf("parse policy file %s: %w", path, err)
	}
	return pol, nil
}
