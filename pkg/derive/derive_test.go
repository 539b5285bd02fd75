package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(5, 0))
	assert.Equal(t, 50, Percentage(5, 10))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 100, Percentage(10, 10))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(now.Add(24*time.Hour), now))
	assert.Equal(t, 1, DaysUntil(now.Add(2*time.Hour), now))
	assert.Equal(t, 3, DaysUntil(now.Add(49*time.Hour), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 0, DaysUntil(now.Add(-2*time.Hour), now))
	assert.Equal(t, -2, DaysUntil(now.Add(-49*time.Hour), now))
}

func TestOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.False(t, Overdue(now.Add(time.Minute), now))
	assert.False(t, Overdue(now, now))
	assert.True(t, Overdue(now.Add(-time.Minute), now))

	past := now.Add(-72 * time.Hour)
	assert.True(t, Overdue(past, now))
	assert.Negative(t, DaysUntil(past, now))
}

func TestAveragePercent(t *testing.T) {
	assert.Equal(t, 0, AveragePercent(nil))
	assert.Equal(t, 0, AveragePercent([]Score{}))

	scores := []Score{
		{Earned: 8, Total: 10},  // 80%
		{Earned: 45, Total: 50}, // 90%
	}
	assert.Equal(t, 85, AveragePercent(scores))

	// A zero-total entry must not blow up the mean.
	scores = append(scores, Score{Earned: 5, Total: 0})
	assert.Equal(t, 85, AveragePercent(scores))
}

func TestCountBy(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5, 6}
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, 3, CountBy(nums, even))
	assert.Equal(t, 0, CountBy(nil, even))
}

type paymentRow struct {
	Amount float64
	Status string
}

func TestSumBy_CompletedPayments(t *testing.T) {
	payments := []paymentRow{
		{Amount: 100, Status: "completed"},
		{Amount: 50, Status: "pending"},
		{Amount: 200, Status: "completed"},
	}

	completed := func(p paymentRow) bool { return p.Status == "completed" }
	amount := func(p paymentRow) float64 { return p.Amount }

	assert.Equal(t, 300.0, SumBy(payments, completed, amount))
	assert.Equal(t, 350.0, SumBy(payments, nil, amount))
	assert.Equal(t, 0.0, SumBy(nil, completed, amount))
}
