// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContextHistoriesColumns holds the columns for the "context_histories" table.
	ContextHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "scenario_family_id", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "combination", Type: field.TypeJSON},
		{Name: "combination_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContextHistoriesTable holds the schema information for the "context_histories" table.
	ContextHistoriesTable = &schema.Table{
		Name:       "context_histories",
		Columns:    ContextHistoriesColumns,
		PrimaryKey: []*schema.Column{ContextHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contexthistory_user_id_category_grade",
				Unique:  false,
				Columns: []*schema.Column{ContextHistoriesColumns[1], ContextHistoriesColumns[3], ContextHistoriesColumns[4]},
			},
			{
				Name:    "contexthistory_combination_hash",
				Unique:  false,
				Columns: []*schema.Column{ContextHistoriesColumns[6]},
			},
			{
				Name:    "contexthistory_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContextHistoriesColumns[7]},
			},
		},
	}
	// ContextVariantsColumns holds the columns for the "context_variants" table.
	ContextVariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scenario_family_id", Type: field.TypeInt},
		{Name: "dimension_type", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "semantic_cluster", Type: field.TypeString, Nullable: true},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "quality_score", Type: field.TypeFloat64, Default: 0.5},
	}
	// ContextVariantsTable holds the schema information for the "context_variants" table.
	ContextVariantsTable = &schema.Table{
		Name:       "context_variants",
		Columns:    ContextVariantsColumns,
		PrimaryKey: []*schema.Column{ContextVariantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contextvariant_scenario_family_id_dimension_type",
				Unique:  false,
				Columns: []*schema.Column{ContextVariantsColumns[1], ContextVariantsColumns[2]},
			},
			{
				Name:    "contextvariant_semantic_cluster",
				Unique:  false,
				Columns: []*schema.Column{ContextVariantsColumns[4]},
			},
		},
	}
	// GenerationRunsColumns holds the columns for the "generation_runs" table.
	GenerationRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "gaps_targeted", Type: field.TypeInt, Default: 0},
		{Name: "generated", Type: field.TypeInt, Default: 0},
		{Name: "rejected", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// GenerationRunsTable holds the schema information for the "generation_runs" table.
	GenerationRunsTable = &schema.Table{
		Name:       "generation_runs",
		Columns:    GenerationRunsColumns,
		PrimaryKey: []*schema.Column{GenerationRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationRunsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningSessionsColumns holds the columns for the "learning_sessions" table.
	LearningSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "templates", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearningSessionsTable holds the schema information for the "learning_sessions" table.
	LearningSessionsTable = &schema.Table{
		Name:       "learning_sessions",
		Columns:    LearningSessionsColumns,
		PrimaryKey: []*schema.Column{LearningSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningsession_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LearningSessionsColumns[2], LearningSessionsColumns[9]},
			},
			{
				Name:    "learningsession_category_grade",
				Unique:  false,
				Columns: []*schema.Column{LearningSessionsColumns[3], LearningSessionsColumns[4]},
			},
		},
	}
	// RewardEventsColumns holds the columns for the "reward_events" table.
	RewardEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "minutes", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString},
		{Name: "streak", Type: field.TypeInt, Default: 0},
	}
	// RewardEventsTable holds the schema information for the "reward_events" table.
	RewardEventsTable = &schema.Table{
		Name:       "reward_events",
		Columns:    RewardEventsColumns,
		PrimaryKey: []*schema.Column{RewardEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rewardevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[1]},
			},
			{
				Name:    "rewardevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[2]},
			},
			{
				Name:    "rewardevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[3]},
			},
			{
				Name:    "rewardevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[4]},
			},
			{
				Name:    "rewardevent_reason",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[6]},
			},
		},
	}
	// ScenarioFamiliesColumns holds the columns for the "scenario_families" table.
	ScenarioFamiliesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "grade_min", Type: field.TypeInt},
		{Name: "grade_max", Type: field.TypeInt},
		{Name: "base_template", Type: field.TypeString, Size: 2147483647},
		{Name: "context_slots", Type: field.TypeJSON},
		{Name: "difficulty_level", Type: field.TypeInt, Default: 1},
	}
	// ScenarioFamiliesTable holds the schema information for the "scenario_families" table.
	ScenarioFamiliesTable = &schema.Table{
		Name:       "scenario_families",
		Columns:    ScenarioFamiliesColumns,
		PrimaryKey: []*schema.Column{ScenarioFamiliesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scenariofamily_category",
				Unique:  false,
				Columns: []*schema.Column{ScenarioFamiliesColumns[2]},
			},
			{
				Name:    "scenariofamily_grade_min_grade_max",
				Unique:  false,
				Columns: []*schema.Column{ScenarioFamiliesColumns[3], ScenarioFamiliesColumns[4]},
			},
		},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "grade", Type: field.TypeInt},
		{Name: "grade_app", Type: field.TypeInt},
		{Name: "quarter_app", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "solution", Type: field.TypeString, Size: 2147483647},
		{Name: "distractors", Type: field.TypeJSON, Nullable: true},
		{Name: "quality_score", Type: field.TypeFloat64, Default: 0},
		{Name: "plays", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "rating_sum", Type: field.TypeInt, Default: 0},
		{Name: "rating_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "ACTIVE"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "template_grade_app_quarter_app",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[2], TemplatesColumns[3]},
			},
			{
				Name:    "template_domain_subcategory",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[4], TemplatesColumns[5]},
			},
			{
				Name:    "template_status",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[16]},
			},
			{
				Name:    "template_plays",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[12]},
			},
		},
	}
	// TemplateFeedbacksColumns holds the columns for the "template_feedbacks" table.
	TemplateFeedbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeInt, Nullable: true},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "feedback_type", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TemplateFeedbacksTable holds the schema information for the "template_feedbacks" table.
	TemplateFeedbacksTable = &schema.Table{
		Name:       "template_feedbacks",
		Columns:    TemplateFeedbacksColumns,
		PrimaryKey: []*schema.Column{TemplateFeedbacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "templatefeedback_user_id_feedback_type",
				Unique:  false,
				Columns: []*schema.Column{TemplateFeedbacksColumns[1], TemplateFeedbacksColumns[4]},
			},
			{
				Name:    "templatefeedback_template_id",
				Unique:  false,
				Columns: []*schema.Column{TemplateFeedbacksColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContextHistoriesTable,
		ContextVariantsTable,
		GenerationRunsTable,
		LlmRequestEventsTable,
		LearningSessionsTable,
		RewardEventsTable,
		ScenarioFamiliesTable,
		TemplatesTable,
		TemplateFeedbacksTable,
	}
)

func init() {
}
