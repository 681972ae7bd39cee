package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_PlanEligible(t *testing.T) {
	assert.True(t, PrioritySacred.PlanEligible())
	assert.True(t, PriorityImportant.PlanEligible())
	assert.False(t, PriorityOptional.PlanEligible())
}

func TestBlockType_TaskCarrying(t *testing.T) {
	assert.True(t, BlockSacred.TaskCarrying())
	assert.True(t, BlockImportant.TaskCarrying())
	assert.True(t, BlockOptional.TaskCarrying())
	assert.False(t, BlockBuffer.TaskCarrying())
	assert.False(t, BlockRescue.TaskCarrying())
}

func TestTask_DifficultyTier(t *testing.T) {
	tests := []struct {
		difficulty int
		want       string
	}{
		{1, "easy"},
		{2, "easy"},
		{3, "medium"},
		{4, "hard"},
		{5, "hard"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Task{Difficulty: tt.difficulty}.DifficultyTier(), "difficulty %d", tt.difficulty)
	}
}
