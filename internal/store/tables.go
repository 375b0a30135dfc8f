package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const llmEventsTable = "llm_request_events"

// tables returns the migrated schema. Every event table carries the shared
// sequence and a unix-millisecond timestamp.
func tables() []*schema.Table {
	llm := schema.NewTable(llmEventsTable).
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true})
	for _, c := range eventColumns() {
		llm.AddColumn(c)
	}
	for _, c := range []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 1 << 20, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 1 << 20, Default: ""},
	} {
		llm.AddColumn(c)
	}
	llm.AddIndex("llmrequestevent_sequence", true, []string{"sequence"})
	llm.AddIndex("llmrequestevent_timestamp", false, []string{"timestamp"})
	llm.AddIndex("llmrequestevent_purpose", false, []string{"purpose"})
	llm.AddIndex("llmrequestevent_session_id", false, []string{"session_id"})

	return []*schema.Table{llm}
}

func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeInt64},
	}
}
