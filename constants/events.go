package constants

// Broadcast event names pushed over the websocket channel. Delivery is
// fire-and-forget: a client that is not connected at emission time catches
// up on its next full refresh.
const (
	EventTaskCreated = "task:created"
	EventTaskUpdated = "task:updated"
	EventTaskDeleted = "task:deleted"

	EventTaskAttachmentAdded   = "task:attachment-added"
	EventTaskAttachmentDeleted = "task:attachment-deleted"

	EventProjectCreated = "project:created"
	EventProjectUpdated = "project:updated"
	EventProjectDeleted = "project:deleted"

	EventUserCreated = "user:created"
	EventUserUpdated = "user:updated"
	EventUserDeleted = "user:deleted"

	EventDemandCreated = "it-demand:created"
	EventDemandUpdated = "it-demand:updated"
	EventDemandDeleted = "it-demand:deleted"

	EventColumnCreated = "column:created"
	EventColumnUpdated = "column:updated"
	EventColumnDeleted = "column:deleted"

	EventAssetUploaded = "asset:uploaded"
	EventAssetDeleted  = "asset:deleted"

	EventNotificationCreated = "notification:created"
)
