package models

// job that garbage-collects actions older than the retention window
type CleanupOldActionsArgs struct{}

func (CleanupOldActionsArgs) Kind() string { return "cleanup_old_actions" }
