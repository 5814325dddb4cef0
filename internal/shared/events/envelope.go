package events

// Envelope is the shared event shape used in Cartulary.
// OccurredAt carries the registry's logical clock value, not wall time.
type Envelope struct {
	EventID        string `json:"event_id"`
	EventType      string `json:"event_type"`
	SourceService  string `json:"source_service"`
	OccurredAt     uint64 `json:"occurred_at"`
	EntityType     string `json:"entity_type"`
	EntityID       string `json:"entity_id"`
	PayloadVersion int    `json:"payload_version"`
	Payload        any    `json:"payload"`
}
