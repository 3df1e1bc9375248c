package constants

// NSQ topics for ledger change events
const (
	TopicTransactionEvents = "ledger.transaction.events"
	TopicCategoryEvents    = "ledger.category.events"
	TopicGoalEvents        = "ledger.goal.events"
)

// Ledger event actions
const (
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
	ActionRenamed    = "renamed"
	ActionReassigned = "reassigned"
)
