// Package aggregate derives the views every renderer shares from a
// ProjectData snapshot: task buckets, the subtask index, risk partitions and
// display strings.
package aggregate

import "github.com/alexanderramin/cadrage/internal/domain"

// TaskBuckets holds top-level tasks split by status, in input order.
type TaskBuckets struct {
	Todo       []domain.Task
	InProgress []domain.Task
	Done       []domain.Task
}

// ByStatus returns the bucket for status, or nil for an unknown status.
func (b TaskBuckets) ByStatus(status domain.TaskStatus) []domain.Task {
	switch status {
	case domain.TaskTodo:
		return b.Todo
	case domain.TaskInProgress:
		return b.InProgress
	case domain.TaskDone:
		return b.Done
	default:
		return nil
	}
}

// Len is the number of top-level tasks across all buckets.
func (b TaskBuckets) Len() int {
	return len(b.Todo) + len(b.InProgress) + len(b.Done)
}

// TaskStatusOrder is the order status groups appear in documents.
var TaskStatusOrder = []domain.TaskStatus{domain.TaskTodo, domain.TaskInProgress, domain.TaskDone}

// BucketTasks keeps only top-level tasks and groups them by status. Tasks with
// an unknown status are left out of every bucket.
func BucketTasks(tasks []domain.Task) TaskBuckets {
	var b TaskBuckets
	for _, t := range tasks {
		if !t.IsTopLevel() {
			continue
		}
		switch t.Status {
		case domain.TaskTodo:
			b.Todo = append(b.Todo, t)
		case domain.TaskInProgress:
			b.InProgress = append(b.InProgress, t)
		case domain.TaskDone:
			b.Done = append(b.Done, t)
		}
	}
	return b
}

// SubtaskIndex maps a parent task id to its direct children, built in one pass.
type SubtaskIndex struct {
	children map[string][]domain.Task
}

// IndexSubtasks builds the parent→children index for tasks.
func IndexSubtasks(tasks []domain.Task) *SubtaskIndex {
	idx := &SubtaskIndex{children: make(map[string][]domain.Task)}
	for _, t := range tasks {
		if t.ParentTaskID == nil {
			continue
		}
		pid := *t.ParentTaskID
		idx.children[pid] = append(idx.children[pid], t)
	}
	return idx
}

// SubtasksOf returns the direct children of parentID in input order. The
// result is never nil.
func (idx *SubtaskIndex) SubtasksOf(parentID string) []domain.Task {
	if idx == nil {
		return []domain.Task{}
	}
	if c, ok := idx.children[parentID]; ok {
		return c
	}
	return []domain.Task{}
}

// TaskGroup is one status section: a top-level task and its subtasks.
type TaskGroup struct {
	Task     domain.Task
	Subtasks []domain.Task
}

// Groups pairs every task of the bucket for status with its subtasks.
func (v *View) Groups(status domain.TaskStatus) []TaskGroup {
	bucket := v.Tasks.ByStatus(status)
	groups := make([]TaskGroup, 0, len(bucket))
	for _, t := range bucket {
		groups = append(groups, TaskGroup{Task: t, Subtasks: v.Subtasks.SubtasksOf(t.ID)})
	}
	return groups
}
