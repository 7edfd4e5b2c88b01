// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContextHistory is the predicate function for contexthistory builders.
type ContextHistory func(*sql.Selector)

// ContextVariant is the predicate function for contextvariant builders.
type ContextVariant func(*sql.Selector)

// GenerationRun is the predicate function for generationrun builders.
type GenerationRun func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningSession is the predicate function for learningsession builders.
type LearningSession func(*sql.Selector)

// RewardEvent is the predicate function for rewardevent builders.
type RewardEvent func(*sql.Selector)

// ScenarioFamily is the predicate function for scenariofamily builders.
type ScenarioFamily func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)

// TemplateFeedback is the predicate function for templatefeedback builders.
type TemplateFeedback func(*sql.Selector)
