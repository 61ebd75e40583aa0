package models

// All returns every model registered for schema migration, parents before
// children so foreign-key constraints resolve.
func All() []any {
	return []any{
		&User{},
		&Project{},
		&ProjectMember{},
		&Task{},
		&Subtask{},
		&Attachment{},
		&TaskAssignee{},
		&TaskTag{},
		&BoardColumn{},
		&Notification{},
		&Asset{},
		&AssetTag{},
		&Demand{},
		&DemandAssignee{},
	}
}
