package aggregation

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func txn(category, amount string, date time.Time) Transaction {
	return Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Description: category + " purchase",
		Amount:      dec(amount),
		Date:        date,
		Category:    category,
	}
}

func budget(category, amount, month string) Budget {
	return Budget{
		ID:       uuid.Must(uuid.NewV4()),
		Category: category,
		Amount:   dec(amount),
		Month:    month,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s got %s %v", want, got.String(), msgAndArgs)
}

// -- month helpers --

func TestMonthKey_UsesCalendarFields(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2025-02-01 in UTC+10 is still January in UTC.
	assert.Equal(t, "2025-02", MonthKey(time.Date(2025, 2, 1, 5, 0, 0, 0, loc)))
	assert.Equal(t, "2025-01", MonthKey(day(2025, time.January, 31)))
}

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth("2025-01"))
	assert.False(t, ValidMonth("2025-13"))
	assert.False(t, ValidMonth("2025-1"))
	assert.False(t, ValidMonth("January"))
	assert.False(t, ValidMonth(""))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan 2025", MonthLabel(day(2025, time.January, 15)))
}

// -- BudgetsWithSpending --

func TestBudgetsWithSpending_HalfSpent(t *testing.T) {
	budgets := []Budget{budget("Food", "1000", "2025-01")}
	txns := []Transaction{
		txn("Food", "-300", day(2025, time.January, 15)),
		txn("Food", "-200", day(2025, time.January, 20)),
	}

	rows, err := BudgetsWithSpending(budgets, txns, "2025-01")
	require.NoError(t, err)
	require.Len(t, rows, 1, spew.Sdump(rows))

	assert.Equal(t, budgets[0].ID, rows[0].ID)
	assertDecimal(t, "500", rows[0].Spending)
	assertDecimal(t, "500", rows[0].Remaining)
	assert.Equal(t, 50.0, rows[0].Percentage)
}

func TestBudgetsWithSpending_OverspendClampsPercentage(t *testing.T) {
	budgets := []Budget{budget("Food", "1000", "2025-01")}
	txns := []Transaction{
		txn("Food", "-1000", day(2025, time.January, 3)),
		txn("Food", "500", day(2025, time.January, 9)),
	}

	rows, err := BudgetsWithSpending(budgets, txns, "2025-01")
	require.NoError(t, err)

	assertDecimal(t, "1500", rows[0].Spending)
	assertDecimal(t, "-500", rows[0].Remaining)
	assert.Equal(t, 100.0, rows[0].Percentage)
}

func TestBudgetsWithSpending_NoTransactions(t *testing.T) {
	budgets := []Budget{budget("Travel", "250", "2025-01")}

	rows, err := BudgetsWithSpending(budgets, nil, "2025-01")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assertDecimal(t, "0", rows[0].Spending)
	assertDecimal(t, "250", rows[0].Remaining)
	assert.Equal(t, 0.0, rows[0].Percentage)
}

func TestBudgetsWithSpending_ZeroBudget(t *testing.T) {
	budgets := []Budget{budget("Food", "0", "2025-01")}
	txns := []Transaction{txn("Food", "40", day(2025, time.January, 2))}

	rows, err := BudgetsWithSpending(budgets, txns, "2025-01")
	require.NoError(t, err)

	assert.Equal(t, 0.0, rows[0].Percentage)
	assertDecimal(t, "-40", rows[0].Remaining)
}

func TestBudgetsWithSpending_FiltersMonthAndCategory(t *testing.T) {
	budgets := []Budget{
		budget("Food", "100", "2025-01"),
		budget(categoryUncategorizedForTest, "50", "2025-01"),
	}
	txns := []Transaction{
		txn("Food", "10", day(2025, time.January, 31)),
		txn("Food", "99", day(2025, time.February, 1)),
		txn("Food", "99", day(2024, time.January, 10)),
		txn("Travel", "99", day(2025, time.January, 10)),
		txn("", "20", day(2025, time.January, 10)),
	}

	rows, err := BudgetsWithSpending(budgets, txns, "2025-01")
	require.NoError(t, err)

	assertDecimal(t, "10", rows[0].Spending)
	assertDecimal(t, "20", rows[1].Spending, "empty category folds into Uncategorized")
}

const categoryUncategorizedForTest = "Uncategorized"

func TestBudgetsWithSpending_DuplicateKey(t *testing.T) {
	budgets := []Budget{
		budget("Food", "100", "2025-01"),
		budget("Food", "200", "2025-01"),
	}

	rows, err := BudgetsWithSpending(budgets, nil, "2025-01")

	assert.ErrorIs(t, err, ErrDuplicateBudget)
	assert.Nil(t, rows)
}

func TestBudgetsWithSpending_PercentageProperty(t *testing.T) {
	cases := []struct {
		amount, spent string
		want          float64
	}{
		{"1000", "0", 0},
		{"1000", "250", 25},
		{"1000", "1000", 100},
		{"1000", "1001", 100},
		{"0", "10", 0},
		{"0", "0", 0},
		{"80", "20", 25},
	}

	for _, c := range cases {
		rows, err := BudgetsWithSpending(
			[]Budget{budget("Food", c.amount, "2025-03")},
			[]Transaction{txn("Food", c.spent, day(2025, time.March, 1))},
			"2025-03",
		)
		require.NoError(t, err)

		assert.Equal(t, c.want, rows[0].Percentage, "amount %s spent %s", c.amount, c.spent)
		assertDecimal(t, dec(c.amount).Sub(dec(c.spent)).String(), rows[0].Remaining)
	}
}

func TestBudgetsWithSpending_DoesNotMutateInputs(t *testing.T) {
	budgets := []Budget{budget("Food", "1000", "2025-01")}
	txns := []Transaction{txn("Food", "-300", day(2025, time.January, 15))}
	before := spew.Sdump(budgets, txns)

	first, err := BudgetsWithSpending(budgets, txns, "2025-01")
	require.NoError(t, err)
	second, err := BudgetsWithSpending(budgets, txns, "2025-01")
	require.NoError(t, err)

	assert.Equal(t, before, spew.Sdump(budgets, txns))
	assert.Equal(t, spew.Sdump(first), spew.Sdump(second))
}

// -- BudgetComparison --

func TestBudgetComparison_Totals(t *testing.T) {
	rows := []BudgetWithSpending{
		{Category: "Food", Amount: dec("1000"), Spending: dec("500")},
		{Category: "Travel", Amount: dec("1000"), Spending: dec("1500")},
	}

	cmp := BudgetComparison(rows)

	assertDecimal(t, "2000", cmp.TotalBudget)
	assertDecimal(t, "2000", cmp.TotalSpending)
	assertDecimal(t, "0", cmp.TotalRemaining)
	assert.Equal(t, 100.0, cmp.OverallPercentage)
	assert.Len(t, cmp.Budgets, 2)
}

func TestBudgetComparison_Overspend(t *testing.T) {
	cmp := BudgetComparison([]BudgetWithSpending{
		{Amount: dec("100"), Spending: dec("150")},
	})

	assertDecimal(t, "-50", cmp.TotalRemaining)
	assert.Equal(t, 100.0, cmp.OverallPercentage)
}

func TestBudgetComparison_Empty(t *testing.T) {
	cmp := BudgetComparison(nil)

	assertDecimal(t, "0", cmp.TotalBudget)
	assertDecimal(t, "0", cmp.TotalSpending)
	assertDecimal(t, "0", cmp.TotalRemaining)
	assert.Equal(t, 0.0, cmp.OverallPercentage)
	assert.Empty(t, cmp.Budgets)
}

// -- CategoryInsights --

func TestCategoryInsights_SortedByTotal(t *testing.T) {
	txns := []Transaction{
		txn("A", "100", day(2025, time.January, 1)),
		txn("B", "-700", day(2025, time.January, 2)),
		txn("A", "200", day(2025, time.January, 3)),
	}

	insights := CategoryInsights(txns)
	require.Len(t, insights, 2, spew.Sdump(insights))

	assert.Equal(t, "B", insights[0].Category)
	assertDecimal(t, "700", insights[0].Total)
	assert.Equal(t, 70.0, insights[0].Percentage)
	assertDecimal(t, "700", insights[0].Average)
	assert.Equal(t, 1, insights[0].Count)

	assert.Equal(t, "A", insights[1].Category)
	assertDecimal(t, "300", insights[1].Total)
	assert.Equal(t, 30.0, insights[1].Percentage)
	assertDecimal(t, "150", insights[1].Average)
	assert.Equal(t, 2, insights[1].Count)
}

func TestCategoryInsights_TiesKeepEncounterOrder(t *testing.T) {
	txns := []Transaction{
		txn("Second", "50", day(2025, time.January, 1)),
		txn("First", "50", day(2025, time.January, 2)),
		txn("Big", "90", day(2025, time.January, 3)),
	}

	insights := CategoryInsights(txns)

	assert.Equal(t, []string{"Big", "Second", "First"}, insightNames(insights))
}

func TestCategoryInsights_TotalsSumToGrandTotal(t *testing.T) {
	txns := []Transaction{
		txn("Food", "12.35", day(2025, time.January, 1)),
		txn("Travel", "-7.10", day(2025, time.January, 2)),
		txn("", "3.05", day(2025, time.February, 2)),
		txn("Food", "-0.50", day(2025, time.March, 2)),
	}

	sum := decimal.Zero
	for _, i := range CategoryInsights(txns) {
		sum = sum.Add(i.Total)
	}

	assertDecimal(t, TotalSpending(txns).String(), sum)
	assertDecimal(t, "23", sum)
}

func TestCategoryInsights_Empty(t *testing.T) {
	assert.Empty(t, CategoryInsights(nil))
}

func TestCategoryInsights_Uncategorized(t *testing.T) {
	insights := CategoryInsights([]Transaction{txn("", "5", day(2025, time.January, 1))})

	require.Len(t, insights, 1)
	assert.Equal(t, "Uncategorized", insights[0].Category)
	assert.Equal(t, 100.0, insights[0].Percentage)
}

func TestCategoryInsights_ZeroGrandTotal(t *testing.T) {
	insights := CategoryInsights([]Transaction{txn("Food", "0", day(2025, time.January, 1))})

	require.Len(t, insights, 1)
	assert.Equal(t, 0.0, insights[0].Percentage)
}

func TestByFrequency_CopiesInput(t *testing.T) {
	txns := []Transaction{
		txn("B", "700", day(2025, time.January, 1)),
		txn("A", "100", day(2025, time.January, 2)),
		txn("A", "200", day(2025, time.January, 3)),
	}
	insights := CategoryInsights(txns)

	byCount := ByFrequency(insights)

	assert.Equal(t, []string{"A", "B"}, insightNames(byCount))
	assert.Equal(t, []string{"B", "A"}, insightNames(insights), "original order untouched")

	top, ok := TopCategory(insights)
	assert.True(t, ok)
	assert.Equal(t, "B", top.Category)

	frequent, ok := MostFrequentCategory(insights)
	assert.True(t, ok)
	assert.Equal(t, "A", frequent.Category)
}

func TestTopCategory_Empty(t *testing.T) {
	_, ok := TopCategory(nil)
	assert.False(t, ok)

	_, ok = MostFrequentCategory(nil)
	assert.False(t, ok)
}

func insightNames(insights []SpendingInsight) []string {
	names := make([]string, len(insights))
	for i, in := range insights {
		names[i] = in.Category
	}
	return names
}

// -- MonthlyTrend --

func TestMonthlyTrend_EmptyHasAllBuckets(t *testing.T) {
	points := MonthlyTrend(nil, DefaultTrendMonths, day(2025, time.March, 31))

	require.Len(t, points, 6)
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Month
		assertDecimal(t, "0", p.Amount)
	}
	assert.Equal(t, []string{"Oct 2024", "Nov 2024", "Dec 2024", "Jan 2025", "Feb 2025", "Mar 2025"}, labels)
}

func TestMonthlyTrend_BucketsAndIgnoresOutsideWindow(t *testing.T) {
	ref := day(2025, time.March, 10)
	txns := []Transaction{
		txn("Food", "-10", day(2025, time.March, 1)),
		txn("Food", "5", day(2025, time.March, 28)),
		txn("Food", "20", day(2025, time.January, 15)),
		txn("Food", "1000", day(2024, time.March, 15)),
		txn("Food", "1000", day(2024, time.September, 30)),
	}

	points := MonthlyTrend(txns, 6, ref)

	require.Len(t, points, 6)
	assertDecimal(t, "15", points[5].Amount)
	assertDecimal(t, "20", points[3].Amount)
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Amount)
	}
	assertDecimal(t, "35", total, "last year's March and last September fall outside")
}

func TestMonthlyTrend_NonPositiveWindow(t *testing.T) {
	assert.Empty(t, MonthlyTrend(nil, 0, day(2025, time.March, 10)))
	assert.Empty(t, MonthlyTrend(nil, -2, day(2025, time.March, 10)))
}

func TestMonthlyTrend_Idempotent(t *testing.T) {
	txns := []Transaction{txn("Food", "7", day(2025, time.February, 2))}
	ref := day(2025, time.March, 10)

	assert.Equal(t, spew.Sdump(MonthlyTrend(txns, 3, ref)), spew.Sdump(MonthlyTrend(txns, 3, ref)))
}

// -- summary and breakdown --

func TestSummarize(t *testing.T) {
	txns := []Transaction{
		txn("Food", "-30", day(2025, time.March, 20)),
		txn("Food", "10", day(2025, time.March, 2)),
		txn("Travel", "20", day(2025, time.February, 2)),
	}

	summary := Summarize(txns, day(2025, time.March, 25), 2)

	assertDecimal(t, "60", summary.TotalSpending)
	assertDecimal(t, "20", summary.AverageTransaction)
	assertDecimal(t, "40", summary.CurrentMonthSpending)
	assert.Equal(t, 3, summary.TransactionCount)
	require.Len(t, summary.Recent, 2)
	assert.Equal(t, txns[0].ID, summary.Recent[0].ID)

	require.Len(t, summary.Trend, DefaultTrendMonths)
	assert.Equal(t, "Oct 2024", summary.Trend[0].Month)
	assert.Equal(t, "Feb 2025", summary.Trend[4].Month)
	assertDecimal(t, "20", summary.Trend[4].Amount)
	assert.Equal(t, "Mar 2025", summary.Trend[5].Month)
	assertDecimal(t, "40", summary.Trend[5].Amount)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, day(2025, time.March, 1), DefaultRecentCount)

	assertDecimal(t, "0", summary.TotalSpending)
	assertDecimal(t, "0", summary.AverageTransaction)
	assert.Equal(t, 0, summary.TransactionCount)
	assert.Empty(t, summary.Recent)
	require.Len(t, summary.Trend, DefaultTrendMonths)
	for _, p := range summary.Trend {
		assertDecimal(t, "0", p.Amount)
	}
}

func TestCategoryBreakdown_PaletteByPosition(t *testing.T) {
	var txns []Transaction
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "a"} {
		txns = append(txns, txn(name, "1", day(2025, time.January, 1)))
	}

	breakdown := CategoryBreakdown(txns)

	require.Len(t, breakdown, 9)
	assert.Equal(t, "a", breakdown[0].Category)
	assertDecimal(t, "2", breakdown[0].Amount)
	assert.Equal(t, "#3B82F6", breakdown[0].Color)
	assert.Equal(t, "#3B82F6", breakdown[8].Color, "palette wraps")
}
